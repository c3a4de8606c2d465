package routing

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/greedyroute/core"
)

// Session is the state of one interactive area: its network, the last
// computed result and the selected route. A Session is never modified;
// every action returns a new value, and selecting a new area means creating
// a new Session. Selected is the index of the highlighted route, or -1.
type Session struct {
	ID        uuid.UUID
	Area      string
	Network   *Network
	Result    *Result
	Selected  int
	CreatedAt time.Time
}

// NewSession builds the network of area from raw.
//
// Errors: ErrGraphEmpty.
func NewSession(area string, raw *core.Graph) (*Session, error) {
	net, err := NewNetwork(raw)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:        uuid.New(),
		Area:      area,
		Network:   net,
		Selected:  -1,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Compute returns a session holding the routes from start to end, with the
// first route selected when there is one. s is unchanged.
func (s *Session) Compute(start, end string, opts ...Option) (*Session, error) {
	res, err := ComputeRoutes(s.Network, start, end, opts...)
	if err != nil {
		return nil, err
	}
	next := *s
	next.Result = res
	next.Selected = -1
	if !res.Empty() {
		next.Selected = 0
	}

	return &next, nil
}

// Select returns a session with route i highlighted.
//
// Errors: ErrSelectionOutOfRange when there is no route i.
func (s *Session) Select(i int) (*Session, error) {
	if s.Result == nil || i < 0 || i >= len(s.Result.Routes) {
		return nil, ErrSelectionOutOfRange
	}
	next := *s
	next.Selected = i

	return &next, nil
}

// Reset returns a session of the same area without results.
func (s *Session) Reset() *Session {
	next := *s
	next.Result = nil
	next.Selected = -1

	return &next
}

// Store keeps the current Session of every ID. Sessions are swapped whole.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session)}
}

// Put stores s under s.ID, replacing any previous value.
func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

// Get returns the current session for id.
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return s, nil
}

// Update replaces the session for id with fn's result. fn runs under the
// store lock, so concurrent updates of one session apply in sequence; when
// fn fails, the stored session is left as it was.
func (st *Store) Update(id uuid.UUID, fn func(*Session) (*Session, error)) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	cur, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	next, err := fn(cur)
	if err != nil {
		return nil, err
	}
	st.sessions[id] = next

	return next, nil
}

// Delete removes the session for id.
func (st *Store) Delete(id uuid.UUID) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)

	return nil
}

// Len returns the number of stored sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.sessions)
}
