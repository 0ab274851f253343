package tornet

import (
	"context"
	"crypto"
	"crypto/ed25519"
	"fmt"
	"net"

	"github.com/cretz/bine/tor"
	bineed "github.com/cretz/bine/torutil/ed25519"
	"go.uber.org/zap"

	"garner/internal/domain"
	"garner/internal/onion"
)

// Config carries the filesystem scopes and logger for one tor instance.
type Config struct {
	// StateDir is the invocation-private scope, used as tor's
	// DataDirectory. It holds the control auth cookie and transient
	// protocol state, never key material of ours.
	StateDir string

	// CacheDir is the shared scope, used as tor's CacheDirectory for
	// consensus and descriptor caches. Never locked by us.
	CacheDir string

	Logger *zap.Logger
}

// Network is one bootstrapped tor instance.
type Network struct {
	t      *tor.Tor
	logger *zap.Logger
}

// Start launches and bootstraps tor. The returned Network must be
// closed; closing tears the tor process down.
func Start(ctx context.Context, cfg Config) (*Network, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	conf := &tor.StartConf{
		DataDir: cfg.StateDir,
	}
	if cfg.CacheDir != "" {
		conf.ExtraArgs = append(conf.ExtraArgs, "--CacheDirectory", cfg.CacheDir)
	}

	logger.Debug("starting tor",
		zap.String("state_dir", cfg.StateDir),
		zap.String("cache_dir", cfg.CacheDir))
	t, err := tor.Start(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("starting tor: %w", err)
	}
	return &Network{t: t, logger: logger}, nil
}

// Dialer returns a stream dialer routed through tor. Dial failures in
// the transient negotiation class are wrapped with
// domain.ErrTransientNegotiation for the fetch client's classifier.
func (n *Network) Dialer(ctx context.Context) (domain.Dialer, error) {
	d, err := n.t.Dialer(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("building tor dialer: %w", err)
	}
	return &classifyingDialer{d: d}, nil
}

// Publish brings up an onion service for identity on virtual port 80
// and waits for descriptor publication. The returned listener yields
// inbound streams; closing it unpublishes the descriptor.
func (n *Network) Publish(ctx context.Context, identity crypto.Signer) (net.Listener, domain.ServiceAddress, error) {
	priv, ok := identity.(ed25519.PrivateKey)
	if !ok {
		return nil, "", fmt.Errorf("unsupported identity key type %T", identity)
	}

	svc, err := n.t.Listen(ctx, &tor.ListenConf{
		Version3:    true,
		Key:         bineed.FromCryptoPrivateKey(priv),
		RemotePorts: []int{80},
	})
	if err != nil {
		return nil, "", fmt.Errorf("publishing onion service: %w", err)
	}

	addr := domain.ServiceAddress(svc.ID + onion.Suffix)
	n.logger.Debug("onion service published", zap.String("address", addr.String()))
	return svc, addr, nil
}

// Close shuts the tor process down.
func (n *Network) Close() error {
	return n.t.Close()
}
