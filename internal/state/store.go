package state

import (
	"sync"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

// Store owns the current State of one form session.
// Every method applies one transition atomically.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates a store holding an empty session.
func NewStore(customMessage string, platform domain.Platform) *Store {
	return &Store{state: New(customMessage, platform)}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.clone()
}

func (s *Store) apply(fn func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = fn(s.state)
	return s.state.clone()
}

func (s *Store) SetResult(result string) State {
	return s.apply(func(st State) State { return st.WithResult(result) })
}

// UpdateDraft applies a partial draft change atomically.
func (s *Store) UpdateDraft(u DraftUpdate) State {
	return s.apply(func(st State) State { return st.WithDraft(u) })
}

// ComposedMessage returns the current composed message.
func (s *Store) ComposedMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.ComposedMessage()
}

// AddContact registers a new contact. It is a no-op returning false when
// name or info is empty after trimming.
func (s *Store) AddContact(name, info string) (domain.Contact, bool) {
	c, ok := domain.NewContact(name, info)
	if !ok {
		return domain.Contact{}, false
	}
	s.apply(func(st State) State { return st.WithContact(c) })
	return c, true
}

// RemoveContact removes the contact and its selection entry.
// It reports whether a contact was removed.
func (s *Store) RemoveContact(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.HasContact(id) {
		return false
	}
	s.state = s.state.WithoutContact(id)
	return true
}

// Contacts returns the registry in insertion order.
func (s *Store) Contacts() []domain.Contact {
	return s.Snapshot().Contacts
}

// Count returns the number of registered contacts.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.state.Contacts)
}

func (s *Store) ToggleSelect(id string) State {
	return s.apply(func(st State) State { return st.Toggled(id) })
}

func (s *Store) SelectAll() State {
	return s.apply(State.AllSelected)
}

func (s *Store) DeselectAll() State {
	return s.apply(State.NoneSelected)
}

func (s *Store) ToggleAll() State {
	return s.apply(State.AllToggled)
}

// CanGenerate reports why generation is currently disabled, or nil.
func (s *Store) CanGenerate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.CanGenerate()
}

// Generate recomputes the link set from the current draft and selection.
func (s *Store) Generate() ([]domain.GeneratedLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.Generated()
	if err != nil {
		return nil, err
	}
	s.state = next
	return next.clone().Links, nil
}

// Links returns the last generated link set.
func (s *Store) Links() []domain.GeneratedLink {
	return s.Snapshot().Links
}

// ClearLinks drops the generated links and the selection.
func (s *Store) ClearLinks() State {
	return s.apply(State.Cleared)
}
