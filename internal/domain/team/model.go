package team

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-roster/internal/domain"
)

// Team is a label partitioning a group's players into disjoint subsets.
type Team string

const (
	TeamA Team = "Time A"
	TeamB Team = "Time B"
)

// DefaultTeams returns the two labels a roster starts with.
func DefaultTeams() []Team {
	return []Team{TeamA, TeamB}
}

// Set is the closed list of labels accepted by a deployment. It is ordered
// so views render teams the same way every time.
type Set []Team

// NewSet builds a Set from raw labels, dropping blanks and duplicates.
func NewSet(labels []string) (Set, error) {
	out := make(Set, 0, len(labels))
	seen := make(map[Team]struct{}, len(labels))
	for _, raw := range labels {
		label := Team(strings.TrimSpace(raw))
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	if len(out) == 0 {
		return nil, errors.Wrap(domain.ErrInvalidInput, "at least one team label is required")
	}

	return out, nil
}

func (s Set) Contains(t Team) bool {
	for _, item := range s {
		if item == t {
			return true
		}
	}
	return false
}

// Default is the label used when a caller does not pick one.
func (s Set) Default() Team {
	if len(s) == 0 {
		return TeamA
	}
	return s[0]
}

// Validate checks t against the set.
func (s Set) Validate(t Team) error {
	if strings.TrimSpace(string(t)) == "" {
		return errors.WithHint(
			errors.Wrap(domain.ErrInvalidInput, "team is required"),
			"Pick a team.",
		)
	}
	if !s.Contains(t) {
		return errors.WithHintf(
			errors.Wrapf(domain.ErrInvalidInput, "unknown team %q", t),
			"Team %q does not exist.", t,
		)
	}
	return nil
}
