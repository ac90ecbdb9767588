package version

// Version is the semantic version of the pytoc toolchain.
// Bumped by hand on release; no build-time injection yet.
const Version = "0.2.0"

// String returns the full human-readable version line.
func String() string { return "pytoc " + Version }
