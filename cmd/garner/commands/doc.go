// Package commands defines the garner CLI: keypair generation, the
// onion service server, and the fetch client.
package commands
