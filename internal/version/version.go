package version

// Version is the triorng release string surfaced by --version.
const Version = "1.0.0"
