package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"garner/internal/app"
	"garner/internal/domain"
	"garner/internal/keycodec"
	"garner/internal/keystore"
	"garner/internal/serve"
	"garner/internal/ui"
)

func serverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the onion service, serving static files",
		Long: `Run a Tor onion service serving static files from the docroot.

With --key (or GARNER_KEY) the service address is derived from the
supplied private signing key and is the same every run. Without a key a
fresh random key is generated in memory, yielding a new address each
run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), resolveConfig())
		},
	}
	cmd.Flags().StringVar(&docrootArg, "docroot", "public", "directory of documents to serve")
	return cmd
}

func runServer(parent context.Context, cfg app.Config) error {
	logger := ui.NewLogger(cfg.Verbose)
	defer logger.Sync()

	// Config errors abort before any network activity.
	info, err := os.Stat(cfg.Docroot)
	if err != nil {
		return fmt.Errorf("docroot %q: %w", cfg.Docroot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("docroot %q is not a directory", cfg.Docroot)
	}

	store, err := openKeyStore(cfg.KeyUR)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	ui.Statusf("Connecting to the Tor network...")
	wire, err := app.NewWire(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer wire.Close()

	signer, err := store.Signer()
	if err != nil {
		return err
	}

	ui.Statusf("Publishing %s...", store.Address())
	listener, addr, err := wire.Network.Publish(ctx, signer)
	if err != nil {
		return err
	}
	if addr != store.Address() {
		// The network layer's address is authoritative; a mismatch
		// means the key plumbing is broken and must not go unnoticed.
		logger.Warn("published address differs from derived address",
			zap.String("published", addr.String()),
			zap.String("derived", store.Address().String()))
	}

	onionURL := addr.URL("/")
	ui.Readyf("Serving %s (started in %ds)", onionURL, int(time.Since(start).Seconds()))
	fmt.Fprintln(os.Stderr, keycodec.EncodePublic(store.PublicKey()))
	if !ui.StdoutIsTerminal() {
		// Raw URL on stdout for piping.
		fmt.Println(onionURL)
	}

	srv := serve.New(cfg.Docroot, logger)
	served := make(chan error, 1)
	go func() { served <- srv.Serve(listener) }()

	select {
	case <-ctx.Done():
		// Drain requests and close the listener, which unpublishes the
		// descriptor before the session scope is removed.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
		<-served
		return nil
	case err := <-served:
		return err
	}
}

// openKeyStore builds the signing identity: deterministic from a
// supplied key, ephemeral otherwise.
func openKeyStore(keyUR string) (*keystore.Store, error) {
	if keyUR == "" {
		return keystore.Generate()
	}
	key, err := keycodec.Decode(keyUR)
	if err != nil {
		return nil, err
	}
	priv, ok := key.(domain.SigningPrivateKey)
	if !ok {
		return nil, errors.New("server requires a private signing key, got a public key")
	}
	return keystore.New(priv), nil
}
