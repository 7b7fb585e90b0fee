package group

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-roster/internal/domain"
)

// Group is a named roster container. The name is its only identity and is
// compared exactly, case included.
type Group struct {
	Name string
}

// NormalizeName trims surrounding whitespace from a group name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

func (g Group) Validate() error {
	if NormalizeName(g.Name) == "" {
		return errors.WithHint(
			errors.Wrap(domain.ErrInvalidInput, "group name is required"),
			"Enter the group name.",
		)
	}

	return nil
}
