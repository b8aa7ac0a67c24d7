package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/bjaus/wikifmt/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/bjaus/wikifmt/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/bjaus/wikifmt/internal/version.Date={{.Date}}
)
