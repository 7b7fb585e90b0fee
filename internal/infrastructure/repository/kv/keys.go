package kv

import "github.com/riskibarqy/team-roster/internal/platform/kvstore"

// The group key is the only record of a group's existence. The roster key
// holds the group's players as one serialized document.
const (
	groupNamespace  = "@roster:group/"
	rosterNamespace = "@roster:players/"
)

func groupKey(name string) string {
	return kvstore.Key(groupNamespace, name)
}

func rosterKey(groupName string) string {
	return kvstore.Key(rosterNamespace, groupName)
}
