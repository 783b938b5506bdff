// Package buildinfo carries values stamped in at link time. It lives in
// its own package so any other package can read them without creating
// import cycles.
package buildinfo

// Set via -ldflags by the release build.
var (
	Version   string = "0.0.0"
	GitCommit string
	BuildDate string
	BuiltBy   string
)
