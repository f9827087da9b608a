package contacts

import (
	"fmt"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
)

// Registry is the part of the state store the importer writes to.
type Registry interface {
	AddContact(name, info string) (domain.Contact, bool)
}

// Result summarizes one import run.
type Result struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// Importer loads the seed file into a registry.
type Importer struct {
	loader *Loader
	logger logger.Logger
}

func NewImporter(filePath string, log logger.Logger) *Importer {
	return &Importer{
		loader: NewLoader(filePath),
		logger: log,
	}
}

// Path returns the seed file location.
func (im *Importer) Path() string {
	return im.loader.Path()
}

// Import appends every valid entry to reg. Entries with an empty name or
// info are skipped like a rejected form submission. No dedup is done, so
// importing twice registers the contacts twice.
func (im *Importer) Import(reg Registry) (Result, error) {
	f, err := im.loader.Load()
	if err != nil {
		return Result{}, fmt.Errorf("failed to load contacts: %w", err)
	}

	var res Result
	for i, e := range f.Contacts {
		if _, ok := reg.AddContact(e.Name, e.Info); !ok {
			res.Skipped++
			im.logger.Debug("skipping invalid seed contact",
				logger.Int("index", i),
				logger.String("name", e.Name))
			continue
		}
		res.Added++
	}

	im.logger.Info("contacts imported",
		logger.String("file", im.loader.Path()),
		logger.Int("added", res.Added),
		logger.Int("skipped", res.Skipped))
	return res, nil
}
