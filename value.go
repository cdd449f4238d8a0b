package lox

import "strconv"

// ValueTag enumerates all runtime kinds a Value may hold.
type ValueTag int

const (
	VTNil  ValueTag = iota // nil (no payload)
	VTBool                 // bool
	VTNum                  // float32
	VTStr                  // string
)

// Value is the universal runtime carrier used by the interpreter.
// The tag determines which type of Data is valid: nil, bool, float32
// or string. Values are copied on use; equality is structural.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Nil is the singleton nil Value.
var Nil = Value{Tag: VTNil}

// Primitive constructors for convenience.
func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Num(f float32) Value { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }

// String renders the display form: numbers in shortest form, booleans as
// true/false, nil as nil, strings as their raw contents.
func (v Value) String() string {
	switch v.Tag {
	case VTNil:
		return "nil"
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTNum:
		return strconv.FormatFloat(float64(v.Data.(float32)), 'f', -1, 32)
	case VTStr:
		return v.Data.(string)
	default:
		return "<unknown>"
	}
}

// Truthy coerces a value to a boolean for "!", conditionals and the logical
// operators. false and nil are falsy, and so are numeric zero and the empty
// string.
func (v Value) Truthy() bool {
	switch v.Tag {
	case VTNil:
		return false
	case VTBool:
		return v.Data.(bool)
	case VTNum:
		return v.Data.(float32) != 0
	case VTStr:
		return v.Data.(string) != ""
	default:
		return true
	}
}

// Equal reports structural equality. Two NaN numbers compare equal, unlike
// under IEEE comparison.
func (v Value) Equal(o Value) bool {
	if v.Tag != o.Tag {
		return false
	}
	switch v.Tag {
	case VTNil:
		return true
	case VTBool:
		return v.Data.(bool) == o.Data.(bool)
	case VTNum:
		a, b := v.Data.(float32), o.Data.(float32)
		if a != a && b != b { // both NaN
			return true
		}
		return a == b
	case VTStr:
		return v.Data.(string) == o.Data.(string)
	default:
		return false
	}
}
