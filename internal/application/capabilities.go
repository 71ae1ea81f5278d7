package application

import "context"

// Hasher is the one-way credential hashing capability. Injected so the
// account service stays testable without paying bcrypt cost in tests.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// Publisher enqueues a JSON message for asynchronous delivery. Publish
// failures are the caller's problem to recover; the queue itself is
// fire-and-forget relative to the request that triggered it.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}
