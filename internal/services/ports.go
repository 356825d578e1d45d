package services

import (
	"context"

	"fatura/internal/storage"
)

// RecognitionStore is the port the session needs from the recognition
// cache. Both the SQLite repository and the in-memory store satisfy it.
type RecognitionStore interface {
	Lookup(ctx context.Context, fingerprint string) (*storage.Recognition, error)
	Record(ctx context.Context, rec storage.Recognition) error
}
