package handlers

import (
	"net/http"

	"smart-erd-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DiagramHandler handles HTTP requests for diagram operations
type DiagramHandler struct {
	diagramService service.DiagramServiceInterface
}

// NewDiagramHandler creates a new diagram handler
func NewDiagramHandler(diagramService service.DiagramServiceInterface) *DiagramHandler {
	return &DiagramHandler{
		diagramService: diagramService,
	}
}

// CreateDiagram handles POST /teams/:teamId/projects/:projectId/diagrams
// @Summary Create a diagram
// @Description Create a diagram under the project; VIEWER members cannot write
// @Tags diagrams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param projectId path string true "Project ID (UUID)"
// @Param diagram body service.CreateDiagramRequest true "Diagram data"
// @Success 201 {object} service.DiagramResponse "Successfully created diagram"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a team member or read-only role"
// @Failure 404 {object} ErrorResponse "Team or project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/projects/{projectId}/diagrams [post]
func (h *DiagramHandler) CreateDiagram(c *gin.Context) {
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

	var req service.CreateDiagramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	diagram, err := h.diagramService.Create(loginID, teamID, projectID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, diagram)
}

// ListDiagrams handles GET /teams/:teamId/projects/:projectId/diagrams
// @Summary List the project's diagrams
// @Description Get all diagrams in the project; the caller must be a member
// @Tags diagrams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {array} service.DiagramResponse "Successfully retrieved diagrams"
// @Failure 400 {object} ErrorResponse "Invalid ID or cross-team reference"
// @Failure 403 {object} ErrorResponse "Not a team member"
// @Failure 404 {object} ErrorResponse "Team or project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/projects/{projectId}/diagrams [get]
func (h *DiagramHandler) ListDiagrams(c *gin.Context) {
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

	diagrams, err := h.diagramService.List(loginID, teamID, projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, diagrams)
}

// GetDiagram handles GET /teams/:teamId/projects/:projectId/diagrams/:diagramId
// @Summary Get diagram by ID
// @Description Get a diagram with its serialized content
// @Tags diagrams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param projectId path string true "Project ID (UUID)"
// @Param diagramId path string true "Diagram ID (UUID)"
// @Success 200 {object} service.DiagramResponse "Successfully retrieved diagram"
// @Failure 400 {object} ErrorResponse "Invalid ID or cross-scope reference"
// @Failure 403 {object} ErrorResponse "Not a team member"
// @Failure 404 {object} ErrorResponse "Team, project or diagram not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/projects/{projectId}/diagrams/{diagramId} [get]
func (h *DiagramHandler) GetDiagram(c *gin.Context) {
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
	diagramID, ok := parseUUIDParam(c, "diagramId")
	if !ok {
		return
	}

	diagram, err := h.diagramService.GetByID(loginID, teamID, projectID, diagramID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, diagram)
}

// UpdateDiagramContent handles PUT /teams/:teamId/projects/:projectId/diagrams/:diagramId
// @Summary Save a diagram's content
// @Description Overwrite the diagram's serialized content; last write wins
// @Tags diagrams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param projectId path string true "Project ID (UUID)"
// @Param diagramId path string true "Diagram ID (UUID)"
// @Param content body service.UpdateDiagramContentRequest true "Serialized content"
// @Success 200 {object} service.DiagramResponse "Successfully saved diagram"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a team member or read-only role"
// @Failure 404 {object} ErrorResponse "Team, project or diagram not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/projects/{projectId}/diagrams/{diagramId} [put]
func (h *DiagramHandler) UpdateDiagramContent(c *gin.Context) {
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
	diagramID, ok := parseUUIDParam(c, "diagramId")
	if !ok {
		return
	}

	var req service.UpdateDiagramContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	diagram, err := h.diagramService.UpdateContent(loginID, teamID, projectID, diagramID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, diagram)
}

// DeleteDiagram handles DELETE /teams/:teamId/projects/:projectId/diagrams/:diagramId
// @Summary Delete a diagram
// @Description Delete a diagram; VIEWER members cannot write
// @Tags diagrams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param projectId path string true "Project ID (UUID)"
// @Param diagramId path string true "Diagram ID (UUID)"
// @Success 204 "Diagram deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID or cross-scope reference"
// @Failure 403 {object} ErrorResponse "Not a team member or read-only role"
// @Failure 404 {object} ErrorResponse "Team, project or diagram not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/projects/{projectId}/diagrams/{diagramId} [delete]
func (h *DiagramHandler) DeleteDiagram(c *gin.Context) {
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
	diagramID, ok := parseUUIDParam(c, "diagramId")
	if !ok {
		return
	}

	if err := h.diagramService.Delete(loginID, teamID, projectID, diagramID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
