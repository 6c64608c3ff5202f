package cmd

// version is set at build time using -ldflags "-X github.com/clawdesk/clawconf/internal/cmd.version=...".
var version = "dev"

// Version returns the clawconf build version.
func Version() string {
	return version
}
