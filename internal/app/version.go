package app

import "fmt"

// Name identifies the service in logs and database sessions.
const Name = "ai-arabic-dictionary"

// Set via ldflags, e.g.
// -X github.com/heartmarshall/ai-arabic-dictionary/internal/app.Version=1.4.0
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version line logged at startup.
func BuildVersion() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", Name, Version, Commit, BuildTime)
}

// ApplicationName returns the Postgres application_name for one of the
// binaries, so sessions from the API, migrations and imports can be told
// apart in pg_stat_activity.
func ApplicationName(binary string) string {
	return fmt.Sprintf("%s/%s@%s", Name, binary, Version)
}
