// Package serve maps inbound request paths to documents under a
// configured docroot and serves them over a listener.
//
// The route table is fixed: "/" falls back from index.html to
// index.txt, the two index files are addressable directly, and
// everything else is not found. Paths that would resolve outside the
// docroot are rejected before any filesystem access.
package serve
