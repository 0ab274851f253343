package app

import (
	"context"

	"go.uber.org/zap"

	"garner/internal/session"
	"garner/internal/tornet"
)

// Wire bundles the per-invocation runtime: logger, session scopes and
// the bootstrapped network. Close releases them in reverse order.
type Wire struct {
	Logger  *zap.Logger
	Session *session.Session
	Network *tornet.Network
}

// NewWire opens the session scopes and bootstraps the network from cfg.
// On any failure the partially built graph is torn down before
// returning, so the private session scope never outlives an error.
func NewWire(ctx context.Context, cfg Config, logger *zap.Logger) (*Wire, error) {
	sess, err := openSession(cfg)
	if err != nil {
		return nil, err
	}

	network, err := tornet.Start(ctx, tornet.Config{
		StateDir: sess.PrivateDir(),
		CacheDir: sess.CacheDir(),
		Logger:   logger,
	})
	if err != nil {
		sess.Close()
		return nil, err
	}

	return &Wire{Logger: logger, Session: sess, Network: network}, nil
}

// Close tears the network down and removes the private session scope.
func (w *Wire) Close() {
	if w.Network != nil {
		if err := w.Network.Close(); err != nil {
			w.Logger.Warn("closing network", zap.Error(err))
		}
	}
	if w.Session != nil {
		if err := w.Session.Close(); err != nil {
			w.Logger.Warn("closing session", zap.Error(err))
		}
	}
}

func openSession(cfg Config) (*session.Session, error) {
	if cfg.DataDir != "" {
		return session.OpenAt(cfg.DataDir)
	}
	return session.Open()
}
