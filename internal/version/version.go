package version

const (
	AppName = "command-forge"

	// Version is stamped onto every generated artifact.
	Version = "1.0.0"
)
