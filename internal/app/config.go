package app

import "time"

// Config holds the resolved invocation options. The command layer
// merges flags with their environment fallbacks exactly once (flag
// wins) before constructing this; no component reads the process
// environment for these values.
type Config struct {
	KeyUR   string        // --key / GARNER_KEY, UR-encoded
	Address string        // --address / GARNER_ADDRESS (client only)
	Docroot string        // --docroot (server only)
	DataDir string        // session base override; default per-user data dir
	Timeout time.Duration // overall per-path connect deadline
	Verbose bool
}
