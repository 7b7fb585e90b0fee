package cache

import (
	"context"

	"github.com/riskibarqy/team-roster/internal/domain/group"
	"github.com/riskibarqy/team-roster/internal/domain/player"
	"github.com/riskibarqy/team-roster/internal/domain/team"
	basecache "github.com/riskibarqy/team-roster/internal/platform/cache"
)

const (
	groupKeyPrefix  = "group:"
	groupListKey    = groupKeyPrefix + "list"
	rosterKeyPrefix = "roster:"
)

// GroupRepository caches group reads. Any mutation drops every cached
// group entry; Create also drops the group's roster, which it resets.
type GroupRepository struct {
	next  group.Repository
	cache *basecache.Store
}

func NewGroupRepository(next group.Repository, cache *basecache.Store) *GroupRepository {
	return &GroupRepository{next: next, cache: cache}
}

func (r *GroupRepository) Create(ctx context.Context, name string) error {
	defer r.cache.DeletePrefix(ctx, groupKeyPrefix)
	defer r.cache.Delete(ctx, rosterCacheKey(name))
	return r.next.Create(ctx, name)
}

func (r *GroupRepository) ListAll(ctx context.Context) ([]group.Group, error) {
	v, err := r.cache.GetOrLoad(ctx, groupListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return append([]group.Group(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]group.Group)
	return append(make([]group.Group, 0, len(items)), items...), nil
}

func (r *GroupRepository) Exists(ctx context.Context, name string) (bool, error) {
	key := groupKeyPrefix + "exists:" + group.NormalizeName(name)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		exists, err := r.next.Exists(ctx, name)
		if err != nil {
			return nil, err
		}
		return exists, nil
	})
	if err != nil {
		return false, err
	}

	exists, _ := v.(bool)
	return exists, nil
}

func (r *GroupRepository) RemoveByName(ctx context.Context, name string) error {
	defer r.cache.DeletePrefix(ctx, groupKeyPrefix)
	return r.next.RemoveByName(ctx, name)
}

// PlayerRepository caches whole rosters per group; team views are
// filtered from the cached roster.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) AddToGroup(ctx context.Context, p player.Player, groupName string) error {
	defer r.invalidate(ctx, groupName)
	return r.next.AddToGroup(ctx, p, groupName)
}

func (r *PlayerRepository) GetByGroup(ctx context.Context, groupName string) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, rosterCacheKey(groupName), func(ctx context.Context) (any, error) {
		items, err := r.next.GetByGroup(ctx, groupName)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append(make([]player.Player, 0, len(items)), items...), nil
}

func (r *PlayerRepository) GetByGroupAndTeam(ctx context.Context, groupName string, t team.Team) ([]player.Player, error) {
	roster, err := r.GetByGroup(ctx, groupName)
	if err != nil {
		return nil, err
	}
	return player.FilterByTeam(roster, t), nil
}

func (r *PlayerRepository) RemoveFromGroup(ctx context.Context, playerName, groupName string) error {
	defer r.invalidate(ctx, groupName)
	return r.next.RemoveFromGroup(ctx, playerName, groupName)
}

func (r *PlayerRepository) RemoveAllForGroup(ctx context.Context, groupName string) error {
	defer r.invalidate(ctx, groupName)
	return r.next.RemoveAllForGroup(ctx, groupName)
}

func (r *PlayerRepository) invalidate(ctx context.Context, groupName string) {
	r.cache.Delete(ctx, rosterCacheKey(groupName))
}

func rosterCacheKey(groupName string) string {
	return rosterKeyPrefix + group.NormalizeName(groupName)
}
