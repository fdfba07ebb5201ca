package seeddata

import "os"

// ShowHelp prints usage information for the seeding tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`perftrack seed tool
===================

Generates reproducible weekly results for the server's roster, uploads them
into a new session and checks trends, profiles and report cards for a sample
of athletes.

Usage:
  go run ./cmd/seed-weeks [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -weeks int
        Weeks to upload, 1..12 (default 12)
  -seed int
        Generator seed (default 1)
  -sample int
        Athletes to verify (default 10)
  -missing float
        Chance that a metric cell is left blank (default 0.1)
  -timeout duration
        HTTP request timeout (default 30s)
  -keep
        Keep the session open after the run
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  go run ./cmd/seed-weeks -weeks 6 -seed 42
  go run ./cmd/seed-weeks -url http://localhost:8080 -sample 110 -missing 0
`)
}
