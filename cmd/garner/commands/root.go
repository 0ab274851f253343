package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"garner/internal/app"
	"garner/internal/fetch"
	"garner/internal/ui"
)

// Environment fallbacks, consulted only when the matching flag is
// unset.
const (
	envKey     = "GARNER_KEY"
	envAddress = "GARNER_ADDRESS"
)

var (
	keyArg     string
	addressArg string
	docrootArg string
	dataDirArg string
	timeoutArg time.Duration
	verbose    bool
)

func Execute() error {
	root := &cobra.Command{
		Use:           "garner",
		Short:         "Serve and fetch static files over a Tor onion service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&keyArg, "key", "", "signing key in UR form (env "+envKey+")")
	root.PersistentFlags().StringVar(&dataDirArg, "data-dir", "", "session state base directory (default: per-user data dir)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(generateCmd(), serverCmd(), getCmd())

	err := root.Execute()
	if err != nil {
		ui.Errorf("%v", err)
	}
	return err
}

// resolveConfig merges flags with their environment fallbacks, flag
// taking precedence. This is the only place the process environment is
// consulted for key or address material.
func resolveConfig() app.Config {
	key := keyArg
	if key == "" {
		key = os.Getenv(envKey)
	}
	address := addressArg
	if address == "" {
		address = os.Getenv(envAddress)
	}
	timeout := timeoutArg
	if timeout <= 0 {
		timeout = fetch.DefaultTimeout
	}
	return app.Config{
		KeyUR:   key,
		Address: address,
		Docroot: docrootArg,
		DataDir: dataDirArg,
		Timeout: timeout,
		Verbose: verbose,
	}
}
