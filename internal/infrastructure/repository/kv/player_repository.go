package kv

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-roster/internal/domain"
	"github.com/riskibarqy/team-roster/internal/domain/group"
	"github.com/riskibarqy/team-roster/internal/domain/player"
	"github.com/riskibarqy/team-roster/internal/domain/team"
	"github.com/riskibarqy/team-roster/internal/platform/kvstore"
	"github.com/riskibarqy/team-roster/internal/platform/resilience"
)

// PlayerRepository stores each group's roster as one document under the
// group's roster key. Every mutation is a read-modify-write of the whole
// document, serialized per group by locks. Writers in other processes are
// not coordinated.
type PlayerRepository struct {
	store kvstore.Store
	locks *resilience.KeyedMutex
}

// NewPlayerRepository builds a PlayerRepository. locks must be shared with
// the GroupRepository over the same store; nil gets a private table.
func NewPlayerRepository(store kvstore.Store, locks *resilience.KeyedMutex) *PlayerRepository {
	if locks == nil {
		locks = &resilience.KeyedMutex{}
	}
	return &PlayerRepository{store: store, locks: locks}
}

func (r *PlayerRepository) AddToGroup(ctx context.Context, p player.Player, groupName string) error {
	groupName = group.NormalizeName(groupName)
	if err := (group.Group{Name: groupName}).Validate(); err != nil {
		return err
	}
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}

	unlock := r.locks.Lock(groupName)
	defer unlock()

	exists, err := groupExists(ctx, r.store, groupName)
	if err != nil {
		return err
	}
	if !exists {
		return errGroupNotFound(groupName)
	}

	roster, err := r.loadRoster(ctx, groupName)
	if err != nil {
		return err
	}
	if player.IndexByName(roster, p.Name) >= 0 {
		return errors.WithHint(
			errors.Wrapf(domain.ErrDuplicateEntry, "player %q in group %q", p.Name, groupName),
			"This person is already on a team in this group.",
		)
	}

	return r.saveRoster(ctx, groupName, append(roster, p))
}

func (r *PlayerRepository) GetByGroup(ctx context.Context, groupName string) ([]player.Player, error) {
	return r.loadRoster(ctx, group.NormalizeName(groupName))
}

func (r *PlayerRepository) GetByGroupAndTeam(ctx context.Context, groupName string, t team.Team) ([]player.Player, error) {
	roster, err := r.GetByGroup(ctx, groupName)
	if err != nil {
		return nil, err
	}
	return player.FilterByTeam(roster, t), nil
}

// RemoveFromGroup is idempotent: an absent player leaves the roster
// untouched and reports no error.
func (r *PlayerRepository) RemoveFromGroup(ctx context.Context, playerName, groupName string) error {
	groupName = group.NormalizeName(groupName)
	playerName = player.NormalizeName(playerName)

	unlock := r.locks.Lock(groupName)
	defer unlock()

	roster, err := r.loadRoster(ctx, groupName)
	if err != nil {
		return err
	}

	idx := player.IndexByName(roster, playerName)
	if idx < 0 {
		return nil
	}

	next := make([]player.Player, 0, len(roster)-1)
	next = append(next, roster[:idx]...)
	next = append(next, roster[idx+1:]...)
	return r.saveRoster(ctx, groupName, next)
}

func (r *PlayerRepository) RemoveAllForGroup(ctx context.Context, groupName string) error {
	groupName = group.NormalizeName(groupName)

	unlock := r.locks.Lock(groupName)
	defer unlock()

	if err := r.store.Remove(ctx, rosterKey(groupName)); err != nil {
		return domain.StorageFailure(err, "remove roster")
	}
	return nil
}

func (r *PlayerRepository) loadRoster(ctx context.Context, groupName string) ([]player.Player, error) {
	raw, found, err := r.store.Get(ctx, rosterKey(groupName))
	if err != nil {
		return nil, domain.StorageFailure(err, "read roster")
	}
	if !found {
		return []player.Player{}, nil
	}

	roster, err := decodeRoster(raw)
	if err != nil {
		return nil, domain.StorageFailure(err, "decode roster")
	}
	return roster, nil
}

func (r *PlayerRepository) saveRoster(ctx context.Context, groupName string, roster []player.Player) error {
	raw, err := encodeRoster(roster)
	if err != nil {
		return domain.StorageFailure(err, "encode roster")
	}
	if err := r.store.Set(ctx, rosterKey(groupName), raw); err != nil {
		return domain.StorageFailure(err, "write roster")
	}
	return nil
}

func groupExists(ctx context.Context, store kvstore.Store, name string) (bool, error) {
	_, found, err := store.Get(ctx, groupKey(name))
	if err != nil {
		return false, domain.StorageFailure(err, "read group")
	}
	return found, nil
}

func errGroupNotFound(name string) error {
	return errors.WithHint(
		errors.Wrapf(domain.ErrNotFound, "group %q", name),
		"Group not found.",
	)
}
