package group

import "context"

// Repository describes group persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, name string) error
	ListAll(ctx context.Context) ([]Group, error)
	Exists(ctx context.Context, name string) (bool, error)
	// RemoveByName removes the group and cascades to its roster.
	RemoveByName(ctx context.Context, name string) error
}
