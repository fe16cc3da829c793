package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/familiada-game/familiada/internal/feud"
)

// Session is one live game behind the API: the state machine, a
// serialization mutex, and the collaborator state the core treats as
// opaque. Every handler runs its game operation under mu, which gives
// the core the strictly sequential dispatch it assumes.
type Session struct {
	ID        string
	SetName   string
	CreatedAt time.Time

	mu      sync.Mutex
	game    *feud.Game
	broker  *Broker
	view    json.RawMessage
	speech  bool
	grammar []string
}

// lock runs fn with the session's game, serialized.
func (s *Session) lock(fn func(g *feud.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}

// Capture implements feud.ViewState: the blob the client last
// uploaded, stored untouched into snapshots.
func (s *Session) Capture() json.RawMessage { return s.view }

// Restore implements feud.ViewState.
func (s *Session) Restore(view json.RawMessage) { s.view = view }

// Supported implements feud.Recognizer with whatever capability the
// client reported at session creation.
func (s *Session) Supported() bool { return s.speech }

// LoadGrammar implements feud.Recognizer: the word list is kept for
// the grammar endpoint and pushed to connected clients.
func (s *Session) LoadGrammar(words []string) {
	s.grammar = words
	if s.broker != nil {
		s.broker.Publish(s.ID, []feud.Effect{{Type: feud.EffectGrammar, Words: words}})
	}
}

// SessionRegistry is the in-memory index of live sessions. Sessions
// are never persisted; a restart forgets them.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

func (r *SessionRegistry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *SessionRegistry) Add(s *Session) {
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
}

func (r *SessionRegistry) Remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
