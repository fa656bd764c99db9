package groups

import "context"

type Repository interface {
	CreateGroup(ctx context.Context, name string) (Group, error)
	ListGroups(ctx context.Context) ([]Group, error)
	GetGroup(ctx context.Context, id int64) (Group, error)

	CreateFamily(ctx context.Context, name string, groupID int64) (Family, error)
	ListFamiliesByGroup(ctx context.Context, groupID int64) ([]Family, error)
}
