// Package session allocates per-invocation runtime state directories.
//
// Every invocation gets a fresh private scope for the network layer's
// transient state, named randomly so concurrent invocations cannot
// collide, plus a reference to one well-known shared scope for network
// cache data. The private scope is removed on Close; the shared scope
// is never removed or locked by any invocation — concurrent access
// safety there is the network library's guarantee.
//
// No key material is ever written to either scope.
package session
