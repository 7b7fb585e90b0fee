package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/team-roster/internal/domain/group"
	"github.com/riskibarqy/team-roster/internal/domain/player"
	"github.com/riskibarqy/team-roster/internal/domain/team"
	"github.com/riskibarqy/team-roster/internal/platform/logging"
	"github.com/riskibarqy/team-roster/internal/platform/tracing"
)

const defaultSummaryWorkers = 4

type GroupService struct {
	groupRepo      group.Repository
	playerRepo     player.Repository
	teams          team.Provider
	logger         *logging.Logger
	summaryWorkers int
}

func NewGroupService(
	groupRepo group.Repository,
	playerRepo player.Repository,
	teams team.Provider,
	summaryWorkers int,
	logger *logging.Logger,
) *GroupService {
	if logger == nil {
		logger = logging.Default()
	}
	if summaryWorkers < 1 {
		summaryWorkers = defaultSummaryWorkers
	}

	return &GroupService{
		groupRepo:      groupRepo,
		playerRepo:     playerRepo,
		teams:          teams,
		logger:         logger,
		summaryWorkers: summaryWorkers,
	}
}

// RemoveGroupInput carries the caller's explicit confirmation. Removal
// only runs when Confirmed is set.
type RemoveGroupInput struct {
	Name      string
	Confirmed bool
}

// TeamCount is the number of players on one team of a group.
type TeamCount struct {
	Team  team.Team
	Count int
}

type GroupSummary struct {
	Name    string
	Players int
	Teams   []TeamCount
}

func (s *GroupService) CreateGroup(ctx context.Context, name string) (group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.CreateGroup", tracing.GroupKey.String(name))
	defer span.End()

	g := group.Group{Name: group.NormalizeName(name)}
	if err := g.Validate(); err != nil {
		return group.Group{}, err
	}

	if err := s.groupRepo.Create(ctx, g.Name); err != nil {
		logFailure(ctx, s.logger, "create group failed", err, "group", g.Name)
		return group.Group{}, errors.Wrap(err, "create group")
	}

	s.logger.InfoContext(ctx, "group created", "group", g.Name)
	return g, nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.ListGroups")
	defer span.End()

	items, err := s.groupRepo.ListAll(ctx)
	if err != nil {
		logFailure(ctx, s.logger, "list groups failed", err)
		return nil, errors.Wrap(err, "list groups")
	}
	return items, nil
}

// RemoveGroup removes the group and, through the repository cascade, its
// whole roster.
func (s *GroupService) RemoveGroup(ctx context.Context, input RemoveGroupInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.RemoveGroup", tracing.GroupKey.String(input.Name))
	defer span.End()

	name := group.NormalizeName(input.Name)
	if err := (group.Group{Name: name}).Validate(); err != nil {
		return err
	}
	if !input.Confirmed {
		return errRemovalNotConfirmed(name)
	}

	if err := s.groupRepo.RemoveByName(ctx, name); err != nil {
		logFailure(ctx, s.logger, "remove group failed", err, "group", name)
		return errors.Wrap(err, "remove group")
	}

	s.logger.InfoContext(ctx, "group removed", "group", name)
	return nil
}

// ListSummaries loads every roster on a bounded worker pool and reports
// per-team counts. Configured teams come first in their configured order,
// followed by any other label found in a roster.
func (s *GroupService) ListSummaries(ctx context.Context) ([]GroupSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.ListSummaries")
	defer span.End()

	groups, err := s.groupRepo.ListAll(ctx)
	if err != nil {
		logFailure(ctx, s.logger, "list groups failed", err)
		return nil, errors.Wrap(err, "list groups")
	}
	if len(groups) == 0 {
		return []GroupSummary{}, nil
	}

	teams := s.teams.Teams(ctx)
	summaries := make([]GroupSummary, len(groups))
	failures := make([]error, len(groups))

	pool, err := ants.NewPool(min(s.summaryWorkers, len(groups)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for idx, g := range groups {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			roster, err := s.playerRepo.GetByGroup(ctx, g.Name)
			if err != nil {
				failures[idx] = errors.Wrapf(err, "load roster of group %q", g.Name)
				return
			}
			summaries[idx] = summarize(g, roster, teams)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit summary task: %w", err)
		}
	}
	workers.Wait()

	for _, failure := range failures {
		if failure != nil {
			logFailure(ctx, s.logger, "group summary failed", failure)
			return nil, failure
		}
	}

	return summaries, nil
}

func summarize(g group.Group, roster []player.Player, teams team.Set) GroupSummary {
	counts := player.CountsByTeam(roster)

	out := GroupSummary{
		Name:    g.Name,
		Players: len(roster),
		Teams:   make([]TeamCount, 0, len(teams)+len(counts)),
	}
	for _, label := range teams {
		out.Teams = append(out.Teams, TeamCount{Team: label, Count: counts[label]})
		delete(counts, label)
	}

	extras := make([]team.Team, 0, len(counts))
	for label := range counts {
		extras = append(extras, label)
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	for _, label := range extras {
		out.Teams = append(out.Teams, TeamCount{Team: label, Count: counts[label]})
	}

	return out
}
