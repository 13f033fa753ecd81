package storage

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
)

// CoverStorage persists book cover images outside the database and returns
// the public URL recorded on the catalog row.
type CoverStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// NewCoverKey returns a fresh object key for one uploaded cover.
func NewCoverKey() string {
	return "covers/" + strings.ReplaceAll(uuid.NewString(), "-", "") + ".webp"
}
