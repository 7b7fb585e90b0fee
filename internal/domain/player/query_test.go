package player

import (
	"testing"

	"github.com/riskibarqy/team-roster/internal/domain/team"
)

func sampleRoster() []Player {
	return []Player{
		{Name: "Ana", Team: team.TeamA},
		{Name: "Bruno", Team: team.TeamB},
		{Name: "Carla", Team: team.TeamA},
		{Name: "Davi", Team: "Time C"},
	}
}

func TestFilterByTeam_IsExactSubset(t *testing.T) {
	t.Parallel()

	roster := sampleRoster()
	for _, label := range []team.Team{team.TeamA, team.TeamB, "Time C", "Time Z"} {
		got := FilterByTeam(roster, label)
		if got == nil {
			t.Fatalf("team %q: filter returned nil", label)
		}

		want := make([]Player, 0)
		for _, p := range roster {
			if p.Team == label {
				want = append(want, p)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("team %q: got=%d want=%d", label, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("team %q: unexpected player at %d: got=%+v want=%+v", label, i, got[i], want[i])
			}
		}
		if CountByTeam(roster, label) != len(want) {
			t.Fatalf("team %q: count mismatch", label)
		}
	}
}

func TestFilterByTeam_EmptyRoster(t *testing.T) {
	t.Parallel()

	if got := FilterByTeam(nil, team.TeamA); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	if CountByTeam(nil, team.TeamA) != 0 {
		t.Fatalf("expected zero count")
	}
}

func TestCountsByTeam(t *testing.T) {
	t.Parallel()

	counts := CountsByTeam(sampleRoster())
	if counts[team.TeamA] != 2 || counts[team.TeamB] != 1 || counts["Time C"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestIndexByName_IsCaseSensitive(t *testing.T) {
	t.Parallel()

	roster := sampleRoster()
	if idx := IndexByName(roster, "Carla"); idx != 2 {
		t.Fatalf("unexpected index: %d", idx)
	}
	if idx := IndexByName(roster, "carla"); idx != -1 {
		t.Fatalf("expected -1 for different case, got %d", idx)
	}
}

func TestPlayerNormalizeAndValidate(t *testing.T) {
	t.Parallel()

	p := Player{Name: "  Ana ", Team: " Time A"}.Normalize()
	if p.Name != "Ana" || p.Team != team.TeamA {
		t.Fatalf("unexpected normalized player: %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Player{Name: " ", Team: team.TeamA}).Validate(); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if err := (Player{Name: "Ana"}).Validate(); err == nil {
		t.Fatalf("expected error for blank team")
	}
}
