package domain

import (
	"strings"
)

const (
	whatsAppDirectBase = "https://wa.me/"
	whatsAppWebClient  = "https://web.whatsapp.com/"
	telegramBase       = "https://t.me/"
)

// MessageSeparator joins the custom message and the result text.
const MessageSeparator = "\n\n"

// ComposeMessage builds the message that is shared with every contact.
func ComposeMessage(customMessage, result string) string {
	return customMessage + MessageSeparator + result
}

// GenerateLinks maps the selected contacts to deep links for platform.
//
// Output order follows contacts. Contacts that cannot be addressed on the
// platform (non-phone recipients over SMS) are left out.
func GenerateLinks(message string, platform Platform, contacts []Contact) []GeneratedLink {
	encoded := EncodeURIComponent(message)

	links := make([]GeneratedLink, 0, len(contacts))
	for _, c := range contacts {
		if link, ok := buildLink(encoded, platform, c); ok {
			links = append(links, link)
		}
	}
	return links
}

// BuildLink builds the deep link for a single contact.
// The second return value is false when the contact gets no link.
func BuildLink(message string, platform Platform, contact Contact) (GeneratedLink, bool) {
	return buildLink(EncodeURIComponent(message), platform, contact)
}

func buildLink(encodedMessage string, platform Platform, contact Contact) (GeneratedLink, bool) {
	class := Classify(contact.Info)

	switch platform {
	case PlatformWhatsApp:
		if class == RecipientPhone {
			return GeneratedLink{
				Contact:  contact,
				URL:      whatsAppDirectBase + DigitsOnly(contact.Info) + "?text=" + encodedMessage,
				Platform: platform.Label(),
				Kind:     KindIndividual,
			}, true
		}
		// wa.me cannot target groups, the user pastes the message by hand
		return GeneratedLink{
			Contact:  contact,
			URL:      whatsAppWebClient,
			Platform: platform.Label(),
			Kind:     KindGroup,
			Note:     GroupNote,
		}, true

	case PlatformSMS:
		if class != RecipientPhone {
			return GeneratedLink{}, false
		}
		return GeneratedLink{
			Contact:  contact,
			URL:      "sms:" + DigitsOnly(contact.Info) + "?body=" + encodedMessage,
			Platform: platform.Label(),
			Kind:     KindIndividual,
		}, true

	case PlatformTelegram:
		kind := KindGroup
		if strings.Contains(contact.Info, "@") {
			kind = KindDirect
		}
		return GeneratedLink{
			Contact:  contact,
			URL:      telegramBase + strings.TrimPrefix(strings.TrimSpace(contact.Info), "@"),
			Platform: platform.Label(),
			Kind:     kind,
		}, true

	default:
		return GeneratedLink{}, false
	}
}
