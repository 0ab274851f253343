package domain

import "errors"

// Key decode failures. Both are terminal for the invocation and never
// retried.
var (
	// ErrMalformedKey covers framing, checksum, truncation, wrong byte
	// length and unknown scheme tags inside a recognized container.
	ErrMalformedKey = errors.New("malformed key encoding")

	// ErrUnsupportedKeyFormat marks a well-formed container of a type
	// this program does not recognize.
	ErrUnsupportedKeyFormat = errors.New("unsupported key container type")
)

// Fetch failures. NotFound is a normal negative result; the others
// describe why a path could not be retrieved.
var (
	// ErrFetchTimeout: the overall connect deadline elapsed with no
	// successful connection.
	ErrFetchTimeout = errors.New("connect deadline exceeded")

	// ErrRetryExhausted: the transient negotiation failure recurred
	// until the attempt budget ran out.
	ErrRetryExhausted = errors.New("transient failures exhausted retry budget")

	// ErrTransientNegotiation is the one retryable failure class: the
	// remote end closed the stream mid-negotiation for a miscellaneous
	// reason. The network boundary reports it; the fetch client's
	// classifier is the only consumer.
	ErrTransientNegotiation = errors.New("stream negotiation closed (reason: misc)")

	// ErrNotFound: the service answered and the document does not exist.
	ErrNotFound = errors.New("document not found")
)

// ErrSessionCollision: the freshly allocated private session scope
// already exists. Practically unreachable with random naming; when it
// happens the invocation must abort rather than alias another process's
// scope.
var ErrSessionCollision = errors.New("session scope already exists")
