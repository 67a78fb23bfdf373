// Package version holds the application version, overridable at build time with
// -ldflags "-X github.com/ndewijer/TradeLog-Backend/internal/version.Version=x.y.z".
package version

// Version is the semantic version of the running binary.
var Version = "1.0.0"
