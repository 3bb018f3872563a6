package ucr

import "context"

// Store is the read boundary to the external configuration store that
// owns context records. This package never persists records itself.
type Store interface {
	GetContextRecord(ctx context.Context, id string) (*ContextRecord, error)
}
