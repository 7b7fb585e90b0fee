package kv

import (
	"github.com/bytedance/sonic"
	"github.com/riskibarqy/team-roster/internal/domain/group"
	"github.com/riskibarqy/team-roster/internal/domain/player"
	"github.com/riskibarqy/team-roster/internal/domain/team"
)

type groupRecord struct {
	Name string `json:"name"`
}

type playerRecord struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

func encodeGroup(g group.Group) (string, error) {
	return sonic.MarshalString(groupRecord{Name: g.Name})
}

func decodeRoster(raw string) ([]player.Player, error) {
	var records []playerRecord
	if err := sonic.UnmarshalString(raw, &records); err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(records))
	for _, item := range records {
		out = append(out, player.Player{
			Name: item.Name,
			Team: team.Team(item.Team),
		})
	}
	return out, nil
}

func encodeRoster(players []player.Player) (string, error) {
	records := make([]playerRecord, 0, len(players))
	for _, p := range players {
		records = append(records, playerRecord{
			Name: p.Name,
			Team: string(p.Team),
		})
	}
	return sonic.MarshalString(records)
}
