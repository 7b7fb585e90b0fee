package kv

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-roster/internal/domain"
	"github.com/riskibarqy/team-roster/internal/domain/group"
	"github.com/riskibarqy/team-roster/internal/platform/kvstore"
	"github.com/riskibarqy/team-roster/internal/platform/resilience"
)

// RosterRemover deletes a group's whole roster. It is the cascade target of
// GroupRepository.RemoveByName.
type RosterRemover interface {
	RemoveAllForGroup(ctx context.Context, groupName string) error
}

type GroupRepository struct {
	store  kvstore.Store
	roster RosterRemover
	locks  *resilience.KeyedMutex
}

func NewGroupRepository(store kvstore.Store, roster RosterRemover, locks *resilience.KeyedMutex) *GroupRepository {
	if locks == nil {
		locks = &resilience.KeyedMutex{}
	}
	return &GroupRepository{store: store, roster: roster, locks: locks}
}

// NewRepositories wires a group and a player repository over store with a
// shared lock table and the player repository as cascade target.
func NewRepositories(store kvstore.Store) (*GroupRepository, *PlayerRepository) {
	locks := &resilience.KeyedMutex{}
	players := NewPlayerRepository(store, locks)
	return NewGroupRepository(store, players, locks), players
}

// Create writes an empty roster and then the group record. A roster left
// over from an interrupted removal is reset by the first write.
func (r *GroupRepository) Create(ctx context.Context, name string) error {
	name = group.NormalizeName(name)
	g := group.Group{Name: name}
	if err := g.Validate(); err != nil {
		return err
	}

	unlock := r.locks.Lock(name)
	defer unlock()

	exists, err := groupExists(ctx, r.store, name)
	if err != nil {
		return err
	}
	if exists {
		return errors.WithHint(
			errors.Wrapf(domain.ErrDuplicateGroup, "group %q", name),
			"A group with this name already exists.",
		)
	}

	emptyRoster, err := encodeRoster(nil)
	if err != nil {
		return domain.StorageFailure(err, "encode roster")
	}
	if err := r.store.Set(ctx, rosterKey(name), emptyRoster); err != nil {
		return domain.StorageFailure(err, "write roster")
	}

	record, err := encodeGroup(g)
	if err != nil {
		return domain.StorageFailure(err, "encode group")
	}
	if err := r.store.Set(ctx, groupKey(name), record); err != nil {
		return domain.StorageFailure(err, "write group")
	}

	return nil
}

// ListAll returns every group sorted by name.
func (r *GroupRepository) ListAll(ctx context.Context) ([]group.Group, error) {
	keys, err := r.store.ListKeys(ctx, groupNamespace)
	if err != nil {
		return nil, domain.StorageFailure(err, "list groups")
	}

	out := make([]group.Group, 0, len(keys))
	for _, key := range keys {
		name, ok := kvstore.TrimNamespace(groupNamespace, key)
		if !ok || name == "" {
			continue
		}
		out = append(out, group.Group{Name: name})
	}
	return out, nil
}

func (r *GroupRepository) Exists(ctx context.Context, name string) (bool, error) {
	return groupExists(ctx, r.store, group.NormalizeName(name))
}

// RemoveByName deletes the group record and then cascades to the roster.
// The record goes first so a concurrent add sees the group as gone and
// cannot recreate the roster after the cascade.
func (r *GroupRepository) RemoveByName(ctx context.Context, name string) error {
	name = group.NormalizeName(name)
	if err := (group.Group{Name: name}).Validate(); err != nil {
		return err
	}

	unlock := r.locks.Lock(name)
	exists, err := groupExists(ctx, r.store, name)
	if err != nil {
		unlock()
		return err
	}
	if !exists {
		unlock()
		return errGroupNotFound(name)
	}
	if err := r.store.Remove(ctx, groupKey(name)); err != nil {
		unlock()
		return domain.StorageFailure(err, "remove group")
	}
	unlock()

	if err := r.roster.RemoveAllForGroup(ctx, name); err != nil {
		return errors.Wrapf(err, "cascade roster removal for group %q", name)
	}
	return nil
}
