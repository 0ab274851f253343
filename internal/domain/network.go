package domain

import (
	"context"
	"crypto"
	"net"
)

// Dialer opens streams through the anonymous network. Implementations
// must honor ctx cancellation during connection establishment.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Publisher makes a service reachable under the address derived from
// its signing identity. The returned listener yields inbound streams;
// closing it unpublishes the service.
type Publisher interface {
	Publish(ctx context.Context, identity crypto.Signer) (net.Listener, ServiceAddress, error)
}
