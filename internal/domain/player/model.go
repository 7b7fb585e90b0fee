package player

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-roster/internal/domain"
	"github.com/riskibarqy/team-roster/internal/domain/team"
)

// Player is a roster member of exactly one group. It has no identity
// outside that group: the name is unique per group, regardless of team.
type Player struct {
	Name string
	Team team.Team
}

// NormalizeName trims surrounding whitespace. Names stay case-sensitive.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// Normalize trims surrounding whitespace from the name and team label.
func (p Player) Normalize() Player {
	return Player{
		Name: NormalizeName(p.Name),
		Team: team.Team(strings.TrimSpace(string(p.Team))),
	}
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.WithHint(
			errors.Wrap(domain.ErrInvalidInput, "player name is required"),
			"Enter the person's name to add.",
		)
	}
	if strings.TrimSpace(string(p.Team)) == "" {
		return errors.WithHint(
			errors.Wrap(domain.ErrInvalidInput, "player team is required"),
			"Pick a team.",
		)
	}

	return nil
}
