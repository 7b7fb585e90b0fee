package team

import "context"

// Provider exposes the team labels configured for a deployment.
type Provider interface {
	Teams(ctx context.Context) Set
}

// StaticProvider serves a fixed Set.
type StaticProvider Set

func (p StaticProvider) Teams(context.Context) Set {
	return Set(p)
}
