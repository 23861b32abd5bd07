package repository

import (
	"context"

	"github.com/primedecor/backend/internal/domain/model"
)

// ProjectFilter narrows portfolio listings. PublishedOnly hides drafts from
// the public site.
type ProjectFilter struct {
	Category      string
	PublishedOnly bool
	Limit         int
	Offset        int
}

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	Create(ctx context.Context, project model.Project) (*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]model.Project, int, error)
	Update(ctx context.Context, project model.Project) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}
