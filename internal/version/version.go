package version

// Version is the release of the backend. Update when cutting a release.
const Version = "1.0.0"
