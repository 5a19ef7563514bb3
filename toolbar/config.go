package toolbar

import (
	"errors"
	"fmt"
)

// ErrInvalidGroup indicates a group configuration without a name.
var ErrInvalidGroup = errors.New("invalid toolbar group")

// GroupConfig places a named, ordered set of tools on the toolbar.
type GroupConfig struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
	Label string   `yaml:"label,omitempty"`
}

// DefaultGroups is the configuration used when none is given.
func DefaultGroups() []GroupConfig {
	return []GroupConfig{
		{Name: "history", Items: []string{"undo", "redo"}},
		{Name: "textStyle", Items: []string{"format"}},
		{Name: "textStyle", Items: []string{"bold", "italic", "link", "clear"}},
		{Name: "list", Items: []string{"number", "bullet", "outdent", "indent"}},
	}
}

// ValidateGroups checks that every group is named.
func ValidateGroups(groups []GroupConfig) error {
	for i, g := range groups {
		if g.Name == "" {
			return fmt.Errorf("%w: group %d has no name", ErrInvalidGroup, i)
		}
	}
	return nil
}
