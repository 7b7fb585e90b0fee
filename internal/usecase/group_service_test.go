package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-roster/internal/domain"
	"github.com/riskibarqy/team-roster/internal/domain/group"
	"github.com/riskibarqy/team-roster/internal/domain/player"
	"github.com/riskibarqy/team-roster/internal/domain/team"
	"github.com/riskibarqy/team-roster/internal/infrastructure/kvstore/memory"
	"github.com/riskibarqy/team-roster/internal/infrastructure/repository/kv"
	groupmock "github.com/riskibarqy/team-roster/internal/mocks/domain/group"
	playermock "github.com/riskibarqy/team-roster/internal/mocks/domain/player"
	"github.com/riskibarqy/team-roster/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

var defaultTeams = team.StaticProvider(team.Set{team.TeamA, team.TeamB})

func newTestGroupService(t *testing.T) (*GroupService, *groupmock.Repository, *playermock.Repository) {
	t.Helper()

	groupRepo := groupmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	return NewGroupService(groupRepo, playerRepo, defaultTeams, 2, logging.NewNop()), groupRepo, playerRepo
}

func TestGroupService_CreateGroup_TrimsName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, groupRepo, _ := newTestGroupService(t)

	groupRepo.On("Create", ctx, "Saturday Five").Return(nil).Once()

	got, err := service.CreateGroup(ctx, "  Saturday Five ")
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if got.Name != "Saturday Five" {
		t.Fatalf("unexpected group name: %q", got.Name)
	}
}

func TestGroupService_CreateGroup_BlankNameSkipsRepository(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestGroupService(t)

	_, err := service.CreateGroup(context.Background(), "   ")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGroupService_CreateGroup_PropagatesDuplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, groupRepo, _ := newTestGroupService(t)

	groupRepo.
		On("Create", ctx, "Futsal").
		Return(errors.Wrap(domain.ErrDuplicateGroup, "group \"Futsal\"")).
		Once()

	_, err := service.CreateGroup(ctx, "Futsal")
	if !errors.Is(err, domain.ErrDuplicateGroup) {
		t.Fatalf("expected ErrDuplicateGroup, got %v", err)
	}
}

func TestGroupService_RemoveGroup_RequiresConfirmation(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestGroupService(t)

	err := service.RemoveGroup(context.Background(), RemoveGroupInput{Name: "Futsal"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if msg, ok := domain.UserMessage(err); !ok || msg != "Confirm that the group should be removed." {
		t.Fatalf("unexpected user message: %q ok=%v", msg, ok)
	}
}

func TestGroupService_RemoveGroup_Confirmed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, groupRepo, _ := newTestGroupService(t)

	groupRepo.On("RemoveByName", ctx, "Futsal").Return(nil).Once()

	if err := service.RemoveGroup(ctx, RemoveGroupInput{Name: " Futsal ", Confirmed: true}); err != nil {
		t.Fatalf("remove group: %v", err)
	}
}

func TestGroupService_RemoveGroup_StorageFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, groupRepo, _ := newTestGroupService(t)

	groupRepo.
		On("RemoveByName", ctx, "Futsal").
		Return(domain.StorageFailure(errors.New("disk full"), "remove group record")).
		Once()

	err := service.RemoveGroup(ctx, RemoveGroupInput{Name: "Futsal", Confirmed: true})
	if !errors.Is(err, domain.ErrStorageFailure) {
		t.Fatalf("expected ErrStorageFailure, got %v", err)
	}
	if _, ok := domain.UserMessage(err); ok {
		t.Fatalf("storage failure must not carry a user message")
	}
}

func TestGroupService_ListSummaries_CountsPerTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, groupRepo, playerRepo := newTestGroupService(t)

	groupRepo.
		On("ListAll", ctx).
		Return([]group.Group{{Name: "Futsal"}, {Name: "Volley"}, {Name: "Empty"}}, nil).
		Once()
	playerRepo.
		On("GetByGroup", mock.Anything, "Futsal").
		Return([]player.Player{
			{Name: "Ana", Team: team.TeamA},
			{Name: "Bia", Team: team.TeamB},
			{Name: "Caio", Team: team.TeamA},
		}, nil).
		Once()
	playerRepo.
		On("GetByGroup", mock.Anything, "Volley").
		Return([]player.Player{
			{Name: "Duda", Team: team.Team("Reserva")},
			{Name: "Edu", Team: team.TeamB},
		}, nil).
		Once()
	playerRepo.
		On("GetByGroup", mock.Anything, "Empty").
		Return([]player.Player{}, nil).
		Once()

	got, err := service.ListSummaries(ctx)
	if err != nil {
		t.Fatalf("list summaries: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("unexpected summary count: got=%d want=3", len(got))
	}

	futsal := got[0]
	if futsal.Name != "Futsal" || futsal.Players != 3 {
		t.Fatalf("unexpected futsal summary: %+v", futsal)
	}
	if len(futsal.Teams) != 2 || futsal.Teams[0] != (TeamCount{Team: team.TeamA, Count: 2}) || futsal.Teams[1] != (TeamCount{Team: team.TeamB, Count: 1}) {
		t.Fatalf("unexpected futsal teams: %+v", futsal.Teams)
	}

	volley := got[1]
	if len(volley.Teams) != 3 || volley.Teams[0].Count != 0 || volley.Teams[2] != (TeamCount{Team: "Reserva", Count: 1}) {
		t.Fatalf("unexpected volley teams: %+v", volley.Teams)
	}

	if got[2].Players != 0 || len(got[2].Teams) != 2 {
		t.Fatalf("unexpected empty summary: %+v", got[2])
	}
}

func TestGroupService_ListSummaries_RosterFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, groupRepo, playerRepo := newTestGroupService(t)

	groupRepo.On("ListAll", ctx).Return([]group.Group{{Name: "Futsal"}}, nil).Once()
	playerRepo.
		On("GetByGroup", mock.Anything, "Futsal").
		Return(nil, domain.StorageFailure(errors.New("io"), "load roster")).
		Once()

	_, err := service.ListSummaries(ctx)
	if !errors.Is(err, domain.ErrStorageFailure) {
		t.Fatalf("expected ErrStorageFailure, got %v", err)
	}
}

func TestGroupService_ListSummaries_NoGroups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, groupRepo, _ := newTestGroupService(t)

	groupRepo.On("ListAll", ctx).Return([]group.Group{}, nil).Once()

	got, err := service.ListSummaries(ctx)
	if err != nil {
		t.Fatalf("list summaries: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil summaries, got %#v", got)
	}
}

func TestGroupService_RemoveGroup_ConfirmedDeletesRoster(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore()
	groupRepo, playerRepo := kv.NewRepositories(store)
	groups := NewGroupService(groupRepo, playerRepo, defaultTeams, 2, logging.NewNop())
	players := NewPlayerService(groupRepo, playerRepo, defaultTeams, logging.NewNop())

	if _, err := groups.CreateGroup(ctx, "Futsal"); err != nil {
		t.Fatalf("create group: %v", err)
	}
	if _, err := players.AddPlayer(ctx, AddPlayerInput{Group: "Futsal", Name: "Ana"}); err != nil {
		t.Fatalf("add player: %v", err)
	}

	if err := groups.RemoveGroup(ctx, RemoveGroupInput{Name: "Futsal", Confirmed: true}); err != nil {
		t.Fatalf("remove group: %v", err)
	}

	exists, err := groupRepo.Exists(ctx, "Futsal")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatalf("group still exists after confirmed removal")
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store after removal, got %d keys", store.Len())
	}
}
