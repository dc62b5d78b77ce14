// version.go
package nslang

// Version is the engine version reported by the CLI.
const Version = "0.3.0"
