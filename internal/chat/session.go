package chat

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/urithi-ke/urithi/internal/llm"
)

// titleMaxLen caps auto-generated session titles
const titleMaxLen = 40

// Session is one conversation: its history plus display metadata. Sessions
// live in process memory only; durable storage belongs to the caller.
type Session struct {
	ID        string
	Title     string
	Messages  []llm.Message
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionStore keeps sessions in memory with a TTL so abandoned
// conversations age out on their own.
type SessionStore struct {
	cache *gocache.Cache
}

// NewSessionStore creates a store whose sessions expire after ttl of
// inactivity.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

// Create starts a new session, titled from the first message
func (s *SessionStore) Create(firstMessage string) *Session {
	now := time.Now()
	session := &Session{
		ID:        newSessionID(),
		Title:     TitleFromMessage(firstMessage),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.cache.SetDefault(session.ID, session)
	return session
}

// Get retrieves a session by ID
func (s *SessionStore) Get(id string) (*Session, bool) {
	val, found := s.cache.Get(id)
	if !found {
		return nil, false
	}
	return val.(*Session), true
}

// Append adds a message to a session's history and refreshes its TTL
func (s *SessionStore) Append(id string, msg llm.Message) error {
	session, found := s.Get(id)
	if !found {
		return fmt.Errorf("session %s not found", id)
	}
	session.Messages = append(session.Messages, msg)
	session.UpdatedAt = time.Now()
	s.cache.SetDefault(id, session)
	return nil
}

// Rename sets a session's title
func (s *SessionStore) Rename(id, title string) error {
	session, found := s.Get(id)
	if !found {
		return fmt.Errorf("session %s not found", id)
	}
	session.Title = strings.TrimSpace(title)
	session.UpdatedAt = time.Now()
	s.cache.SetDefault(id, session)
	return nil
}

// Delete removes a session
func (s *SessionStore) Delete(id string) {
	s.cache.Delete(id)
}

// List returns all live sessions, most recently updated first
func (s *SessionStore) List() []*Session {
	items := s.cache.Items()
	sessions := make([]*Session, 0, len(items))
	for _, item := range items {
		sessions = append(sessions, item.Object.(*Session))
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
	})
	return sessions
}

// TitleFromMessage derives a session title from its first message: the
// first 40 characters, cut back to the last word boundary when that leaves
// more than 20 characters, with an ellipsis for truncation. Counting is in
// runes so multibyte text is never cut mid-character.
func TitleFromMessage(message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return "New Chat"
	}
	runes := []rune(message)
	if len(runes) <= titleMaxLen {
		return message
	}

	title := runes[:titleMaxLen]
	lastSpace := -1
	for i, r := range title {
		if r == ' ' {
			lastSpace = i
		}
	}
	if lastSpace > 20 {
		title = title[:lastSpace]
	}
	return string(title) + "..."
}

func newSessionID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
