package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"garner/internal/app"
	"garner/internal/domain"
	"garner/internal/fetch"
	"garner/internal/keycodec"
	"garner/internal/onion"
	"garner/internal/ui"
)

func getCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [paths or urls...]",
		Short: "Fetch documents from an onion service",
		Long: `Fetch documents over Tor and print them to stdout in argument order.

The target service comes from --address (or GARNER_ADDRESS), from the
address derived from --key (or GARNER_KEY), or from a full onion URL
given as an argument. With no paths at all the service root is fetched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.Context(), resolveConfig(), args)
		},
	}
	cmd.Flags().StringVar(&addressArg, "address", "", "onion service address (env "+envAddress+")")
	cmd.Flags().DurationVar(&timeoutArg, "timeout", fetch.DefaultTimeout, "per-path connect deadline")
	return cmd
}

func runGet(parent context.Context, cfg app.Config, args []string) error {
	logger := ui.NewLogger(cfg.Verbose)
	defer logger.Sync()

	addr, paths, err := resolveTarget(cfg.KeyUR, cfg.Address, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui.Statusf("Connecting to the Tor network...")
	wire, err := app.NewWire(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer wire.Close()

	dialer, err := wire.Network.Dialer(ctx)
	if err != nil {
		return err
	}

	client := fetch.New(dialer, logger, fetch.Options{Timeout: cfg.Timeout})
	results := client.FetchAll(ctx, addr, paths)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			ui.Errorf("%s: %v", res.Path, res.Err)
			continue
		}
		os.Stdout.Write(res.Body)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d paths failed", failed, len(results))
	}
	return nil
}

// resolveTarget determines the service address and the paths to fetch.
// An explicit address wins over one derived from the key, which wins
// over hosts embedded in URL arguments. URL arguments contribute their
// path either way; embedded hosts must all agree when they are the only
// source.
func resolveTarget(keyUR, address string, args []string) (domain.ServiceAddress, []string, error) {
	addr := domain.ServiceAddress(normalizeHost(address))

	if addr == "" && keyUR != "" {
		key, err := keycodec.Decode(keyUR)
		if err != nil {
			return "", nil, err
		}
		addr = onion.FromCanonical(key)
	}

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		host, path := splitTarget(arg)
		if host != "" {
			switch {
			case addr == "":
				addr = domain.ServiceAddress(host)
			case addr.String() != host:
				return "", nil, fmt.Errorf("%q names a different service than %s", arg, addr)
			}
		}
		paths = append(paths, path)
	}
	if addr == "" {
		return "", nil, errors.New("no service address: pass --address, --key, or a full onion URL")
	}
	if len(paths) == 0 {
		paths = []string{"/"}
	}
	return addr, paths, nil
}

// splitTarget separates an argument into an optional embedded host and
// a path. A host is recognized only behind an explicit "http://" prefix
// or as a leading segment that itself ends in ".onion"; ".onion"
// appearing elsewhere, as in a file name, keeps the argument a plain
// path. "http://x.onion/a", "x.onion/a" and "/a" are all accepted.
func splitTarget(arg string) (host, path string) {
	rest, explicit := strings.CutPrefix(arg, "http://")
	head, tail, found := strings.Cut(rest, "/")
	if !explicit && !strings.HasSuffix(head, onion.Suffix) {
		return "", arg
	}
	if !found || tail == "" {
		return head, "/"
	}
	return head, "/" + tail
}

// normalizeHost strips the scheme and any trailing slash from an
// address given as a URL.
func normalizeHost(address string) string {
	address = strings.TrimPrefix(address, "http://")
	return strings.TrimSuffix(address, "/")
}
