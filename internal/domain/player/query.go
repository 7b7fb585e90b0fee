package player

import "github.com/riskibarqy/team-roster/internal/domain/team"

// FilterByTeam returns the players assigned to t, preserving roster order.
// The result is never nil.
func FilterByTeam(players []Player, t team.Team) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		if p.Team == t {
			out = append(out, p)
		}
	}
	return out
}

func CountByTeam(players []Player, t team.Team) int {
	count := 0
	for _, p := range players {
		if p.Team == t {
			count++
		}
	}
	return count
}

// CountsByTeam tallies players per team label present in the roster.
func CountsByTeam(players []Player) map[team.Team]int {
	out := make(map[team.Team]int)
	for _, p := range players {
		out[p.Team]++
	}
	return out
}

// IndexByName returns the position of the player named name, or -1.
func IndexByName(players []Player, name string) int {
	for idx, p := range players {
		if p.Name == name {
			return idx
		}
	}
	return -1
}
