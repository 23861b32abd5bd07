package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/primedecor/backend/internal/domain/errors"
	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
)

// ProjectUseCase manages the portfolio.
type ProjectUseCase struct {
	projects repository.ProjectRepository
}

// NewProjectUseCase constructs ProjectUseCase.
func NewProjectUseCase(projects repository.ProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{projects: projects}
}

// Create adds a portfolio project.
func (u *ProjectUseCase) Create(ctx context.Context, project model.Project) (*model.Project, error) {
	if strings.TrimSpace(project.Title) == "" {
		return nil, domainErrors.NewValidation("title is required")
	}
	return u.projects.Create(ctx, project)
}

// Get returns one project. When publishedOnly is set, drafts behave as
// missing so the public site cannot probe them.
func (u *ProjectUseCase) Get(ctx context.Context, id string, publishedOnly bool) (*model.Project, error) {
	project, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if publishedOnly && !project.Published {
		return nil, domainErrors.ErrNotFound
	}
	return project, nil
}

// List returns projects with pagination.
func (u *ProjectUseCase) List(ctx context.Context, filter repository.ProjectFilter) ([]model.Project, int, error) {
	filter.Limit, filter.Offset = ClampPage(filter.Limit, filter.Offset)
	return u.projects.List(ctx, filter)
}

// Update replaces a project's fields.
func (u *ProjectUseCase) Update(ctx context.Context, project model.Project) (*model.Project, error) {
	if strings.TrimSpace(project.Title) == "" {
		return nil, domainErrors.NewValidation("title is required")
	}
	return u.projects.Update(ctx, project)
}

// Delete removes a project.
func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	return u.projects.Delete(ctx, id)
}
