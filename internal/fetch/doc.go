// Package fetch retrieves documents from a service address through the
// anonymous network.
//
// Each fetch runs under one overall connect deadline (default 120
// seconds) and a small fixed retry budget that is spent only on the
// transient negotiation failure class; every other failure surfaces
// immediately. Multi-path invocations fetch concurrently over one
// dialer and report success or failure per path, in input order.
package fetch
