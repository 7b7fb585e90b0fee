package player

import (
	"context"

	"github.com/riskibarqy/team-roster/internal/domain/team"
)

// Repository describes roster persistence needs from use cases. Rosters are
// keyed by group name.
type Repository interface {
	AddToGroup(ctx context.Context, p Player, groupName string) error
	GetByGroup(ctx context.Context, groupName string) ([]Player, error)
	GetByGroupAndTeam(ctx context.Context, groupName string, t team.Team) ([]Player, error)
	RemoveFromGroup(ctx context.Context, playerName, groupName string) error
	RemoveAllForGroup(ctx context.Context, groupName string) error
}
