package models

// AppBuildInfo carries the values stamped in at link time plus the support
// contact, shown on the settings screen.
type AppBuildInfo struct {
	Version      string
	Date         string
	Commit       string
	SupportEmail string
}
