package tornet

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/cretz/bine/tor"

	"garner/internal/domain"
)

// transientReplies are the SOCKS failure texts tor reports when an
// onion stream closes mid-negotiation for a miscellaneous reason, as
// opposed to a definitive refusal. They are the only failures eligible
// for retry.
var transientReplies = []string{
	"general socks server failure",
	"ttl expired",
}

// classifyingDialer wraps bine's dialer and tags the transient
// negotiation failure class with domain.ErrTransientNegotiation.
type classifyingDialer struct {
	d *tor.Dialer
}

func (c *classifyingDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	conn, err := c.d.DialContext(ctx, network, address)
	if err != nil {
		if isTransientReply(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrTransientNegotiation, err)
		}
		return nil, err
	}
	return conn, nil
}

func isTransientReply(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, reply := range transientReplies {
		if strings.Contains(msg, reply) {
			return true
		}
	}
	return false
}
