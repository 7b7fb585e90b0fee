package httpapi

import (
	"github.com/riskibarqy/team-roster/internal/domain/group"
	"github.com/riskibarqy/team-roster/internal/domain/player"
	"github.com/riskibarqy/team-roster/internal/usecase"
)

type createGroupRequest struct {
	Name string `json:"name" validate:"max=120"`
}

type addPlayerRequest struct {
	Name string `json:"name" validate:"max=120"`
	Team string `json:"team" validate:"omitempty,max=60"`
}

type groupDTO struct {
	Name string `json:"name"`
}

type playerDTO struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

type rosterDTO struct {
	Group   string      `json:"group"`
	Team    string      `json:"team,omitempty"`
	Count   int         `json:"count"`
	Players []playerDTO `json:"players"`
}

type teamCountDTO struct {
	Team  string `json:"team"`
	Count int    `json:"count"`
}

type groupSummaryDTO struct {
	Name    string         `json:"name"`
	Players int            `json:"players"`
	Teams   []teamCountDTO `json:"teams"`
}

func toGroupDTOs(items []group.Group) []groupDTO {
	out := make([]groupDTO, 0, len(items))
	for _, item := range items {
		out = append(out, groupDTO{Name: item.Name})
	}
	return out
}

func toPlayerDTO(p player.Player) playerDTO {
	return playerDTO{Name: p.Name, Team: string(p.Team)}
}

func toRosterDTO(view usecase.RosterView) rosterDTO {
	players := make([]playerDTO, 0, len(view.Players))
	for _, p := range view.Players {
		players = append(players, toPlayerDTO(p))
	}

	return rosterDTO{
		Group:   view.Group,
		Team:    string(view.Team),
		Count:   view.Count(),
		Players: players,
	}
}

func toGroupSummaryDTOs(items []usecase.GroupSummary) []groupSummaryDTO {
	out := make([]groupSummaryDTO, 0, len(items))
	for _, item := range items {
		teams := make([]teamCountDTO, 0, len(item.Teams))
		for _, tc := range item.Teams {
			teams = append(teams, teamCountDTO{Team: string(tc.Team), Count: tc.Count})
		}
		out = append(out, groupSummaryDTO{Name: item.Name, Players: item.Players, Teams: teams})
	}
	return out
}
