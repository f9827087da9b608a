package state

import (
	"slices"
	"strings"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

// DefaultCustomMessage is the custom message a fresh session starts with.
const DefaultCustomMessage = "Check out my Wordle result!"

// State is the whole form: draft, contact registry, selection and the last
// generated link set.
//
// Transitions are methods returning a new State; the receiver is never
// mutated, so a State handed out by Store.Snapshot stays valid.
type State struct {
	Result        string                 `json:"result"`
	CustomMessage string                 `json:"custom_message"`
	Platform      domain.Platform        `json:"platform"`
	Contacts      []domain.Contact       `json:"contacts"`
	Selected      []string               `json:"selected"`
	Links         []domain.GeneratedLink `json:"links"`
}

// New returns an empty state with the given defaults.
func New(customMessage string, platform domain.Platform) State {
	if !platform.Valid() {
		platform = domain.PlatformWhatsApp
	}
	return State{
		CustomMessage: customMessage,
		Platform:      platform,
		Contacts:      []domain.Contact{},
		Selected:      []string{},
		Links:         []domain.GeneratedLink{},
	}
}

func (s State) clone() State {
	s.Contacts = slices.Clone(s.Contacts)
	s.Selected = slices.Clone(s.Selected)
	s.Links = slices.Clone(s.Links)
	return s
}

// ─────────────────────────────────────────────────────────────────
// Draft
// ─────────────────────────────────────────────────────────────────

func (s State) WithResult(result string) State {
	s = s.clone()
	s.Result = result
	return s
}

func (s State) WithCustomMessage(msg string) State {
	s = s.clone()
	s.CustomMessage = msg
	return s
}

// WithPlatform ignores unsupported platforms.
func (s State) WithPlatform(p domain.Platform) State {
	if !p.Valid() {
		return s
	}
	s = s.clone()
	s.Platform = p
	return s
}

// ComposedMessage is the text every link carries.
// DraftUpdate is a partial draft change; nil fields are left untouched.
type DraftUpdate struct {
	Result        *string
	CustomMessage *string
	Platform      *domain.Platform
}

// WithDraft applies every set field of u in one transition.
func (s State) WithDraft(u DraftUpdate) State {
	if u.Result != nil {
		s = s.WithResult(*u.Result)
	}
	if u.CustomMessage != nil {
		s = s.WithCustomMessage(*u.CustomMessage)
	}
	if u.Platform != nil {
		s = s.WithPlatform(*u.Platform)
	}
	return s
}

func (s State) ComposedMessage() string {
	return domain.ComposeMessage(s.CustomMessage, s.Result)
}

// ─────────────────────────────────────────────────────────────────
// Contact registry
// ─────────────────────────────────────────────────────────────────

// WithContact appends c in insertion order.
func (s State) WithContact(c domain.Contact) State {
	s = s.clone()
	s.Contacts = append(s.Contacts, c)
	return s
}

// WithoutContact drops the contact and its selection entry.
// Removing an unknown id returns the state unchanged.
func (s State) WithoutContact(id string) State {
	if !s.HasContact(id) {
		return s
	}
	s = s.clone()
	s.Contacts = slices.DeleteFunc(s.Contacts, func(c domain.Contact) bool { return c.ID == id })
	s.Selected = slices.DeleteFunc(s.Selected, func(sel string) bool { return sel == id })
	return s
}

func (s State) HasContact(id string) bool {
	return slices.ContainsFunc(s.Contacts, func(c domain.Contact) bool { return c.ID == id })
}

// ─────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────

func (s State) IsSelected(id string) bool {
	return slices.Contains(s.Selected, id)
}

// Toggled flips the selection of id. Unknown ids are ignored.
func (s State) Toggled(id string) State {
	if !s.HasContact(id) {
		return s
	}
	s = s.clone()
	if idx := slices.Index(s.Selected, id); idx >= 0 {
		s.Selected = slices.Delete(s.Selected, idx, idx+1)
	} else {
		s.Selected = append(s.Selected, id)
	}
	return s
}

// AllSelected selects exactly the current registry.
func (s State) AllSelected() State {
	s = s.clone()
	s.Selected = make([]string, 0, len(s.Contacts))
	for _, c := range s.Contacts {
		s.Selected = append(s.Selected, c.ID)
	}
	return s
}

func (s State) NoneSelected() State {
	s = s.clone()
	s.Selected = []string{}
	return s
}

// AllToggled deselects everything when the whole registry is selected and
// selects the whole registry otherwise.
func (s State) AllToggled() State {
	if len(s.Contacts) > 0 && len(s.Selected) == len(s.Contacts) {
		return s.NoneSelected()
	}
	return s.AllSelected()
}

// SelectedContacts returns the selected contacts in registry order.
func (s State) SelectedContacts() []domain.Contact {
	out := make([]domain.Contact, 0, len(s.Selected))
	for _, c := range s.Contacts {
		if s.IsSelected(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────
// Links
// ─────────────────────────────────────────────────────────────────

// CanGenerate reports why generation is disabled, or nil.
func (s State) CanGenerate() error {
	if strings.TrimSpace(s.Result) == "" {
		return ErrEmptyResult
	}
	if len(s.Selected) == 0 {
		return ErrNoSelection
	}
	return nil
}

// Generated replaces the link set with freshly generated links.
func (s State) Generated() (State, error) {
	if err := s.CanGenerate(); err != nil {
		return s, err
	}
	links := domain.GenerateLinks(s.ComposedMessage(), s.Platform, s.SelectedContacts())
	s = s.clone()
	s.Links = links
	return s, nil
}

// Cleared drops the generated links and the selection.
func (s State) Cleared() State {
	s = s.clone()
	s.Links = []domain.GeneratedLink{}
	s.Selected = []string{}
	return s
}
