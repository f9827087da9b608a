package deps

import (
	"time"

	"github.com/MrSnakeDoc/sharelink/internal/actions"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
	"github.com/MrSnakeDoc/sharelink/internal/scheduler"
	"github.com/MrSnakeDoc/sharelink/internal/sources/contacts"
	"github.com/MrSnakeDoc/sharelink/internal/state"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	AllowedHosts []string              // Host headers allowed to access the server
	AllowedCIDRS []string              // IPs allowed to access the API
	TrustProxy   bool                  // true if running behind a trusted reverse proxy
	Store        *state.Store          // form session state
	Clipboard    actions.Copier        // clipboard used by the copy endpoints
	LinkOpener   *scheduler.LinkOpener // staggered "open all"
	Importer     *contacts.Importer    // contacts seed importer (nil when no file is configured)
}
