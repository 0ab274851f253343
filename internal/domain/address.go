package domain

import "strings"

// ServiceAddress is the hostname under which a service is reachable,
// e.g. "yyhws9optuwiwsns....onion". It is derived deterministically from
// the service's public signing key and carries no port or scheme.
type ServiceAddress string

// String returns the string form of the address.
func (a ServiceAddress) String() string { return string(a) }

// URL returns the http URL for path on this address. Path may or may
// not carry a leading slash.
func (a ServiceAddress) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "http://" + string(a) + path
}
