package version

// Current is the CLI version, overridden at build time via -ldflags.
var Current = "dev"
