// Package labels maps result kinds to the verdict wording used in typeset
// tables.
package labels

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/signalnine/goldtable/internal/result"
	"gopkg.in/yaml.v3"
)

// Table maps a result kind to its label. A sat answer means a reachable bug,
// hence "unsafe".
type Table struct {
	Kinds map[result.Kind]string
}

func Default() *Table {
	return &Table{Kinds: map[result.Kind]string{
		result.Sat:   "Небезопасно",
		result.Unsat: "Безопасно",
	}}
}

// Load reads a YAML mapping of kind name to label, e.g. `sat: Unsafe`.
// Kinds the file leaves out keep their default label.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading label file")
	}
	var raw map[result.Kind]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parsing label file")
	}
	t := Default()
	for k, v := range raw {
		t.Kinds[k] = v
	}
	return t, nil
}

// Label returns the label for k, falling back to the kind name.
func (t *Table) Label(k result.Kind) string {
	if t != nil && t.Kinds != nil {
		if s, ok := t.Kinds[k]; ok {
			return s
		}
	}
	return k.String()
}
