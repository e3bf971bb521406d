package handlers

import (
	"net/http"

	"smart-erd-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject handles POST /teams/:teamId/projects
// @Summary Create a project
// @Description Create a project inside the team; VIEWER members cannot write
// @Tags projects
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a team member or read-only role"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.projectService.Create(loginID, teamID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects handles GET /teams/:teamId/projects
// @Summary List the team's projects
// @Description Get all projects in the team; the caller must be a member
// @Tags projects
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} service.ProjectResponse "Successfully retrieved projects"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Not a team member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	projects, err := h.projectService.List(loginID, teamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /teams/:teamId/projects/:projectId
// @Summary Get project by ID
// @Description Get a specific project within the team's scope
// @Tags projects
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 400 {object} ErrorResponse "Invalid ID or cross-team reference"
// @Failure 403 {object} ErrorResponse "Not a team member"
// @Failure 404 {object} ErrorResponse "Team or project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(loginID, teamID, projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /teams/:teamId/projects/:projectId
// @Summary Delete a project
// @Description Delete a project and its diagrams; VIEWER members cannot write
// @Tags projects
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param projectId path string true "Project ID (UUID)"
// @Success 204 "Project deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID or cross-team reference"
// @Failure 403 {object} ErrorResponse "Not a team member or read-only role"
// @Failure 404 {object} ErrorResponse "Team or project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/projects/{projectId} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	if err := h.projectService.Delete(loginID, teamID, projectID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
