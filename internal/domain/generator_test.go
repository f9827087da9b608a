package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testMessage = "Check out my Wordle result!\n\nWordle 1,234 4/6"

const testEncoded = "Check%20out%20my%20Wordle%20result!%0A%0AWordle%201%2C234%204%2F6"

func contact(id, name, info string) Contact {
	return Contact{ID: id, Name: name, Info: info}
}

func TestComposeMessage(t *testing.T) {
	got := ComposeMessage("Check out my Wordle result!", "Wordle 1,234 4/6")
	if got != testMessage {
		t.Errorf("ComposeMessage() = %q, want %q", got, testMessage)
	}

	if got := ComposeMessage("", ""); got != "\n\n" {
		t.Errorf("ComposeMessage(empty) = %q, want two newlines", got)
	}
}

func TestGenerateLinksWhatsApp(t *testing.T) {
	mom := contact("1", "Mom", "+1 (234) 567-8900")
	gang := contact("2", "Wordle Gang", "Wordle Gang")

	got := GenerateLinks(testMessage, PlatformWhatsApp, []Contact{mom, gang})
	want := []GeneratedLink{
		{
			Contact:  mom,
			URL:      "https://wa.me/12345678900?text=" + testEncoded,
			Platform: "WhatsApp",
			Kind:     KindIndividual,
		},
		{
			Contact:  gang,
			URL:      "https://web.whatsapp.com/",
			Platform: "WhatsApp",
			Kind:     KindGroup,
			Note:     GroupNote,
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GenerateLinks() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateLinksSMS(t *testing.T) {
	dad := contact("1", "Dad", "555-0100")
	gang := contact("2", "Wordle Gang", "Wordle Gang")
	sis := contact("3", "Sis", "+44 20 7946 0958")

	got := GenerateLinks(testMessage, PlatformSMS, []Contact{dad, gang, sis})
	want := []GeneratedLink{
		{
			Contact:  dad,
			URL:      "sms:5550100?body=" + testEncoded,
			Platform: "SMS",
			Kind:     KindIndividual,
		},
		{
			Contact:  sis,
			URL:      "sms:442079460958?body=" + testEncoded,
			Platform: "SMS",
			Kind:     KindIndividual,
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GenerateLinks() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateLinksPastedPhone(t *testing.T) {
	// contact apps paste numbers with non-breaking spaces
	pasted := contact("1", "Mom", "+1\u00a0234\u00a0567\u00a08900")

	for _, p := range []Platform{PlatformWhatsApp, PlatformSMS} {
		t.Run(string(p), func(t *testing.T) {
			links := GenerateLinks(testMessage, p, []Contact{pasted})
			if len(links) != 1 {
				t.Fatalf("GenerateLinks() returned %d links, want 1", len(links))
			}
			if links[0].Kind != KindIndividual {
				t.Errorf("Kind = %v, want %v", links[0].Kind, KindIndividual)
			}
			if !strings.Contains(links[0].URL, "12345678900?") {
				t.Errorf("URL = %q, want digits 12345678900", links[0].URL)
			}
		})
	}
}

func TestGenerateLinksTelegram(t *testing.T) {
	tests := []struct {
		name     string
		info     string
		wantURL  string
		wantKind LinkKind
	}{
		{
			name:     "handle with at",
			info:     "@alice",
			wantURL:  "https://t.me/alice",
			wantKind: KindDirect,
		},
		{
			name:     "group without at",
			info:     "mygroup",
			wantURL:  "https://t.me/mygroup",
			wantKind: KindGroup,
		},
		{
			name:     "phone is still a handle link",
			info:     "+1 234",
			wantURL:  "https://t.me/+1 234",
			wantKind: KindGroup,
		},
		{
			name:     "only leading at is stripped",
			info:     "@team@work",
			wantURL:  "https://t.me/team@work",
			wantKind: KindDirect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := GenerateLinks(testMessage, PlatformTelegram, []Contact{contact("1", "x", tt.info)})
			if len(links) != 1 {
				t.Fatalf("GenerateLinks() returned %d links, want 1", len(links))
			}
			if links[0].URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", links[0].URL, tt.wantURL)
			}
			if links[0].Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", links[0].Kind, tt.wantKind)
			}
			if links[0].Note != "" {
				t.Errorf("Note = %q, want empty", links[0].Note)
			}
		})
	}
}

func TestGenerateLinksUnknownPlatform(t *testing.T) {
	links := GenerateLinks(testMessage, Platform("signal"), []Contact{contact("1", "Mom", "+12345")})
	if len(links) != 0 {
		t.Errorf("GenerateLinks() with unknown platform = %v, want none", links)
	}
}

func TestGenerateLinksDeterministic(t *testing.T) {
	contacts := []Contact{
		contact("1", "Mom", "+1 (234) 567-8900"),
		contact("2", "Gang", "Wordle Gang"),
		contact("3", "Alice", "@alice"),
	}

	for _, p := range Platforms {
		first := GenerateLinks(testMessage, p, contacts)
		second := GenerateLinks(testMessage, p, contacts)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("GenerateLinks(%s) not deterministic:\n%s", p, diff)
		}
	}
}

func TestBuildLinkSkipsSMSHandle(t *testing.T) {
	if _, ok := BuildLink(testMessage, PlatformSMS, contact("1", "Gang", "Wordle Gang")); ok {
		t.Error("BuildLink() should skip non-phone SMS recipients")
	}
}

func TestGeneratedLinkAction(t *testing.T) {
	if got := (GeneratedLink{Kind: KindGroup}).Action(); got != "Open" {
		t.Errorf("Action() for group = %q, want Open", got)
	}
	if got := (GeneratedLink{Kind: KindDirect}).Action(); got != "Send" {
		t.Errorf("Action() for direct = %q, want Send", got)
	}
}
