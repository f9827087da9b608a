package domain

// LinkKind describes what a generated link addresses.
type LinkKind string

const (
	KindIndividual LinkKind = "Individual"
	KindGroup      LinkKind = "Group"
	KindDirect     LinkKind = "Direct"
)

// GroupNote is attached to WhatsApp links that cannot carry the message.
const GroupNote = "Select group manually and paste message"

// GeneratedLink is a derived deep link for one selected contact.
// It is recomputed on every generation and never stored elsewhere.
type GeneratedLink struct {
	Contact  Contact  `json:"contact"`
	URL      string   `json:"url"`
	Platform string   `json:"platform"`
	Kind     LinkKind `json:"kind"`
	Note     string   `json:"note,omitempty"`
}

// Action is the verb a UI shows next to the link.
func (l GeneratedLink) Action() string {
	if l.Kind == KindGroup {
		return "Open"
	}
	return "Send"
}
