// Package store owns the lifecycle of per-document knowledge contexts and
// chat transcripts. Persistence goes through a minimal key-value boundary
// so the backing store stays swappable.
package store

import (
	"context"
	"errors"
)

// Key namespaces for the two record kinds.
const (
	DocumentContextPrefix = "document_context_"
	ChatSessionPrefix     = "chat_session_"
)

// ErrKeyNotFound is returned by KVStore.Get for absent keys.
var ErrKeyNotFound = errors.New("key not found")

// ErrContextNotFound means a chat turn or session lookup referenced a
// documentId with no stored DocumentContext. Lookups never create stub
// records as a side effect.
var ErrContextNotFound = errors.New("document context not found")

// KVStore is the external persistence boundary: a flat namespace of
// byte values with prefix listing. Writes are whole-value, last-write-wins.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

func documentContextKey(documentID string) string {
	return DocumentContextPrefix + documentID
}

func chatSessionKey(documentID string) string {
	return ChatSessionPrefix + documentID
}
