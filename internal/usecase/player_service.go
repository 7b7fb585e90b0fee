package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-roster/internal/domain"
	"github.com/riskibarqy/team-roster/internal/domain/group"
	"github.com/riskibarqy/team-roster/internal/domain/player"
	"github.com/riskibarqy/team-roster/internal/domain/team"
	"github.com/riskibarqy/team-roster/internal/platform/logging"
	"github.com/riskibarqy/team-roster/internal/platform/tracing"
)

type PlayerService struct {
	groupRepo  group.Repository
	playerRepo player.Repository
	teams      team.Provider
	logger     *logging.Logger
}

func NewPlayerService(
	groupRepo group.Repository,
	playerRepo player.Repository,
	teams team.Provider,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		groupRepo:  groupRepo,
		playerRepo: playerRepo,
		teams:      teams,
		logger:     logger,
	}
}

// AddPlayerInput adds Name to Group on Team. An empty Team selects the
// first configured team.
type AddPlayerInput struct {
	Group string
	Name  string
	Team  string
}

// RosterView is a group's roster, optionally narrowed to one team.
type RosterView struct {
	Group   string
	Team    team.Team
	Players []player.Player
}

func (v RosterView) Count() int {
	return len(v.Players)
}

func (s *PlayerService) AddPlayer(ctx context.Context, input AddPlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AddPlayer", tracing.GroupKey.String(input.Group))
	defer span.End()

	groupName := group.NormalizeName(input.Group)
	if err := (group.Group{Name: groupName}).Validate(); err != nil {
		return player.Player{}, err
	}

	teams := s.teams.Teams(ctx)
	p := player.Player{Name: input.Name, Team: team.Team(input.Team)}.Normalize()
	if p.Team == "" {
		p.Team = teams.Default()
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, err
	}
	if err := teams.Validate(p.Team); err != nil {
		return player.Player{}, err
	}

	if err := s.playerRepo.AddToGroup(ctx, p, groupName); err != nil {
		logFailure(ctx, s.logger, "add player failed", err, "group", groupName, "player", p.Name)
		return player.Player{}, errors.Wrap(err, "add player")
	}

	s.logger.InfoContext(ctx, "player added", "group", groupName, "player", p.Name, "team", string(p.Team))
	return p, nil
}

// ListPlayers returns the roster of an existing group. A non-empty teamLabel
// narrows it to that team.
func (s *PlayerService) ListPlayers(ctx context.Context, groupName, teamLabel string) (RosterView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers", tracing.GroupKey.String(groupName))
	defer span.End()

	groupName = group.NormalizeName(groupName)
	if err := s.ensureGroup(ctx, groupName); err != nil {
		return RosterView{}, err
	}

	view := RosterView{Group: groupName, Team: team.Team(teamLabel)}.normalize()

	var (
		players []player.Player
		err     error
	)
	if view.Team == "" {
		players, err = s.playerRepo.GetByGroup(ctx, groupName)
	} else {
		if verr := s.teams.Teams(ctx).Validate(view.Team); verr != nil {
			return RosterView{}, verr
		}
		players, err = s.playerRepo.GetByGroupAndTeam(ctx, groupName, view.Team)
	}
	if err != nil {
		logFailure(ctx, s.logger, "list players failed", err, "group", groupName, "team", string(view.Team))
		return RosterView{}, errors.Wrap(err, "list players")
	}

	view.Players = players
	return view, nil
}

// RemovePlayer is idempotent; removing an absent player succeeds.
func (s *PlayerService) RemovePlayer(ctx context.Context, groupName, playerName string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RemovePlayer", tracing.GroupKey.String(groupName))
	defer span.End()

	groupName = group.NormalizeName(groupName)
	if err := (group.Group{Name: groupName}).Validate(); err != nil {
		return err
	}
	playerName = player.NormalizeName(playerName)

	if err := s.playerRepo.RemoveFromGroup(ctx, playerName, groupName); err != nil {
		logFailure(ctx, s.logger, "remove player failed", err, "group", groupName, "player", playerName)
		return errors.Wrap(err, "remove player")
	}

	s.logger.InfoContext(ctx, "player removed", "group", groupName, "player", playerName)
	return nil
}

func (s *PlayerService) ensureGroup(ctx context.Context, name string) error {
	if err := (group.Group{Name: name}).Validate(); err != nil {
		return err
	}

	exists, err := s.groupRepo.Exists(ctx, name)
	if err != nil {
		logFailure(ctx, s.logger, "check group failed", err, "group", name)
		return errors.Wrap(err, "check group")
	}
	if !exists {
		return errors.WithHint(
			errors.Wrapf(domain.ErrNotFound, "group %q", name),
			"Group not found.",
		)
	}
	return nil
}

func (v RosterView) normalize() RosterView {
	v.Team = player.Player{Team: v.Team}.Normalize().Team
	return v
}
