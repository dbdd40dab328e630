// Package storage abstracts where rental pictures live. The rest of the
// application only ever sees opaque public URLs.
package storage

//go:generate mockgen -destination=../mocks/mock_storage.go -package=mocks github.com/Olelouer/backend-chatop/internal/storage Storage

import "context"

type Storage interface {
	// Store persists the content under a unique name derived from filename
	// and returns the public URL it is reachable at.
	Store(ctx context.Context, filename string, content []byte) (string, error)
	// Delete removes the blob a previous Store returned the URL for.
	// Deleting an already-absent blob is not an error.
	Delete(ctx context.Context, url string) error
}
