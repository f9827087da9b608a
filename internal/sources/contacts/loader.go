package contacts

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// envRef matches a value that is exactly one ${VAR} reference.
var envRef = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// Loader reads a contacts seed file. The file is only ever read.
type Loader struct {
	filePath string
}

func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Path returns the seed file location.
func (l *Loader) Path() string {
	return l.filePath
}

// Load reads and parses the seed file.
// A name or info that is exactly "${VAR}" is replaced by that environment
// variable. Any other "$" is kept as written.
func (l *Loader) Load() (File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return File{}, fmt.Errorf("failed to read contacts file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse contacts yaml: %w", err)
	}

	for i := range f.Contacts {
		f.Contacts[i].Name = expandRef(f.Contacts[i].Name)
		f.Contacts[i].Info = expandRef(f.Contacts[i].Info)
	}
	return f, nil
}

func expandRef(v string) string {
	m := envRef.FindStringSubmatch(v)
	if m == nil {
		return v
	}
	return os.Getenv(m[1])
}
