package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/primedecor/backend/internal/domain/errors"
	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
	"github.com/primedecor/backend/internal/server/http/dto"
)

// ProjectHandler manages portfolio endpoints. Public routes only see
// published projects, admin routes see everything.
type ProjectHandler struct {
	facade ProjectFacade
}

// NewProjectHandler constructs ProjectHandler.
func NewProjectHandler(facade ProjectFacade) *ProjectHandler {
	return &ProjectHandler{facade: facade}
}

// ListPublic handles GET /api/projects.
func (h *ProjectHandler) ListPublic(c *gin.Context) {
	h.list(c, true)
}

// ListAdmin handles GET /api/admin/projects.
func (h *ProjectHandler) ListAdmin(c *gin.Context) {
	h.list(c, false)
}

func (h *ProjectHandler) list(c *gin.Context, publishedOnly bool) {
	limit, offset := pageParams(c)
	filter := repository.ProjectFilter{
		Category:      c.Query("category"),
		PublishedOnly: publishedOnly,
		Limit:         limit,
		Offset:        offset,
	}

	projects, total, err := h.facade.Projects(c.Request.Context(), filter)
	if err != nil {
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	items := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, toProjectResponse(p))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.ProjectResponse]{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetPublic handles GET /api/projects/:id.
func (h *ProjectHandler) GetPublic(c *gin.Context) {
	h.get(c, true)
}

// GetAdmin handles GET /api/admin/projects/:id.
func (h *ProjectHandler) GetAdmin(c *gin.Context) {
	h.get(c, false)
}

func (h *ProjectHandler) get(c *gin.Context, publishedOnly bool) {
	project, err := h.facade.Project(c.Request.Context(), c.Param("id"), publishedOnly)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortError(c, http.StatusNotFound, "project not found")
			return
		}
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(*project))
}

// Create handles POST /api/admin/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	project, err := h.facade.CreateProject(c.Request.Context(), projectFromRequest(req))
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			abortError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	c.JSON(http.StatusCreated, toProjectResponse(*project))
}

// Update handles PUT /api/admin/projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	project := projectFromRequest(req)
	project.ID = c.Param("id")

	updated, err := h.facade.UpdateProject(c.Request.Context(), project)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			abortError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domainErrors.ErrNotFound):
			abortError(c, http.StatusNotFound, "project not found")
		default:
			abortError(c, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(*updated))
}

// Delete handles DELETE /api/admin/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortError(c, http.StatusNotFound, "project not found")
			return
		}
		abortError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	c.Status(http.StatusNoContent)
}

func projectFromRequest(req dto.ProjectRequest) model.Project {
	return model.Project{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		AreaSqm:     req.AreaSqm,
		Year:        req.Year,
		CoverImage:  req.CoverImage,
		Published:   req.Published,
	}
}

func toProjectResponse(project model.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Category:    project.Category,
		Location:    project.Location,
		AreaSqm:     project.AreaSqm,
		Year:        project.Year,
		CoverImage:  project.CoverImage,
		Published:   project.Published,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
