package version

import "fmt"

// Tagline is the application's tagline used in help text and documentation
const Tagline = "Multi-agent build pipeline, one keystroke away"

// Build information injected at build time via ldflags
// Example: -ldflags="-X github.com/aura-ide/aura/internal/version.Version=v1.0.0"
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("aura %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
