package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"legalmind/types"
)

// ContextStore manages DocumentContext and ChatSession records on top of
// the KVStore boundary. Session appends are read-modify-write against a
// whole-session value; a per-document lock serializes them so concurrent
// chat turns on one document cannot lose an update. Turns on different
// documents do not contend.
type ContextStore struct {
	kv KVStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewContextStore(kv KVStore) *ContextStore {
	return &ContextStore{
		kv:    kv,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *ContextStore) docLock(documentID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[documentID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[documentID] = lock
	}
	return lock
}

func (s *ContextStore) StoreContext(ctx context.Context, dc *types.DocumentContext) error {
	data, err := json.Marshal(dc)
	if err != nil {
		return fmt.Errorf("failed to marshal document context: %w", err)
	}
	return s.kv.Set(ctx, documentContextKey(dc.DocumentID), data)
}

func (s *ContextStore) GetContext(ctx context.Context, documentID string) (*types.DocumentContext, error) {
	data, err := s.kv.Get(ctx, documentContextKey(documentID))
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrContextNotFound
	}
	if err != nil {
		return nil, err
	}
	var dc types.DocumentContext
	if err := json.Unmarshal(data, &dc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document context: %w", err)
	}
	return &dc, nil
}

// DeleteDocument removes the context and its chat session together. This
// is the only way either record is destroyed.
func (s *ContextStore) DeleteDocument(ctx context.Context, documentID string) error {
	if err := s.kv.Delete(ctx, documentContextKey(documentID)); err != nil {
		return err
	}
	return s.kv.Delete(ctx, chatSessionKey(documentID))
}

// CreateSession creates the one chat session for a document. The document
// context must already be stored.
func (s *ContextStore) CreateSession(ctx context.Context, documentID, documentName string, sessionCtx types.SessionContext) (*types.ChatSession, error) {
	if _, err := s.GetContext(ctx, documentID); err != nil {
		return nil, err
	}

	if sessionCtx.LastUpdated.IsZero() {
		sessionCtx.LastUpdated = time.Now()
	}
	session := &types.ChatSession{
		SessionID:    fmt.Sprintf("session_%s_%d", documentID, time.Now().UnixMilli()),
		DocumentID:   documentID,
		DocumentName: documentName,
		Messages:     []types.ChatMessage{},
		Context:      sessionCtx,
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *ContextStore) GetSession(ctx context.Context, documentID string) (*types.ChatSession, error) {
	data, err := s.kv.Get(ctx, chatSessionKey(documentID))
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrContextNotFound
	}
	if err != nil {
		return nil, err
	}
	var session types.ChatSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chat session: %w", err)
	}
	return &session, nil
}

// AppendMessage appends to the session transcript and refreshes both the
// session context and the owning document context timestamps. It never
// creates a session as a side effect: a missing document or session is
// ErrContextNotFound.
func (s *ContextStore) AppendMessage(ctx context.Context, documentID string, msg types.ChatMessage) (*types.ChatSession, error) {
	lock := s.docLock(documentID)
	lock.Lock()
	defer lock.Unlock()

	dc, err := s.GetContext(ctx, documentID)
	if err != nil {
		return nil, err
	}
	session, err := s.GetSession(ctx, documentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session.Messages = append(session.Messages, msg)
	session.Context.LastUpdated = now
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	dc.LastUpdated = now
	if err := s.StoreContext(ctx, dc); err != nil {
		return nil, err
	}
	return session, nil
}

// ListSessions returns all chat sessions, most recently updated first.
func (s *ContextStore) ListSessions(ctx context.Context) ([]types.ChatSession, error) {
	keys, err := s.kv.List(ctx, ChatSessionPrefix)
	if err != nil {
		return nil, err
	}

	sessions := make([]types.ChatSession, 0, len(keys))
	for _, key := range keys {
		data, err := s.kv.Get(ctx, key)
		if errors.Is(err, ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var session types.ChatSession
		if err := json.Unmarshal(data, &session); err != nil {
			continue
		}
		if session.DocumentID == "" {
			continue
		}
		sessions = append(sessions, session)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Context.LastUpdated.After(sessions[j].Context.LastUpdated)
	})
	return sessions, nil
}

func (s *ContextStore) saveSession(ctx context.Context, session *types.ChatSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal chat session: %w", err)
	}
	return s.kv.Set(ctx, chatSessionKey(session.DocumentID), data)
}
