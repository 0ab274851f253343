// Package tornet is the boundary to the Tor network layer, backed by
// the bine library driving a tor process.
//
// The process's DataDirectory is the invocation's private session
// scope; the shared session scope is passed as tor's CacheDirectory,
// which tor keeps safe under concurrent multi-process use. Circuit
// building, descriptor publication and directory lookups all happen on
// the other side of this boundary.
package tornet
