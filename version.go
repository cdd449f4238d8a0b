package lox

// Set via -ldflags at build time.
var (
	Version   = "dev"
	BuildDate = "unknown"
)
