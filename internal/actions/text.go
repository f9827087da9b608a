package actions

import (
	"strings"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

// LinksText renders one "name: url" line per link.
func LinksText(links []domain.GeneratedLink) string {
	lines := make([]string, 0, len(links))
	for _, l := range links {
		lines = append(lines, l.Contact.Name+": "+l.URL)
	}
	return strings.Join(lines, "\n")
}

// CopyMessage copies the composed message.
func CopyMessage(c Copier, message string) error {
	return c.Copy(message)
}

// CopyLinks copies every link as LinksText and returns the copied text.
func CopyLinks(c Copier, links []domain.GeneratedLink) (string, error) {
	text := LinksText(links)
	return text, c.Copy(text)
}
