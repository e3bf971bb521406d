package handlers

import (
	"net/http"

	"smart-erd-backend/internal/auth"
	"smart-erd-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team and membership operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// requester extracts the authenticated login id, answering 401 when the
// middleware did not run
func requester(c *gin.Context) (string, bool) {
	loginID, ok := auth.GetLoginID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return "", false
	}
	return loginID, true
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team; the caller becomes its owner with the ADMIN role
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.Create(loginID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetMyTeams handles GET /teams
// @Summary List my teams
// @Description Get the teams the caller is a member of
// @Tags teams
// @Accept json
// @Produce json
// @Success 200 {array} service.TeamResponse "Successfully retrieved teams"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) GetMyTeams(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}

	teams, err := h.teamService.GetMyTeams(loginID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:teamId
// @Summary Get team by ID
// @Description Get a specific team; the caller must be a member
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Not a team member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(loginID, teamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:teamId
// @Summary Delete a team
// @Description Delete a team and everything scoped to it; only the owner may do this
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 204 "Team deleted"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Not the team owner"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	if err := h.teamService.Delete(loginID, teamID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMembers handles GET /teams/:teamId/members
// @Summary List team members
// @Description Get the team's memberships with roles; the caller must be a member
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} service.TeamMemberResponse "Successfully retrieved members"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Not a team member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/members [get]
func (h *TeamHandler) ListMembers(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	members, err := h.teamService.ListMembers(loginID, teamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// AddMember handles POST /teams/:teamId/members
// @Summary Add a team member
// @Description Invite an existing user into the team with a role; requires ADMIN
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} service.TeamMemberResponse "Successfully added member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "ADMIN role required"
// @Failure 404 {object} ErrorResponse "Team or user not found"
// @Failure 409 {object} ErrorResponse "User already a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/members [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.teamService.AddMember(loginID, teamID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ChangeMemberRole handles PUT /teams/:teamId/members/:userId
// @Summary Change a member's role
// @Description Change a member's role in place; requires ADMIN, the owner's membership is protected
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Param role body service.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} service.TeamMemberResponse "Successfully changed role"
// @Failure 400 {object} ErrorResponse "Invalid request or protected owner"
// @Failure 403 {object} ErrorResponse "ADMIN role required"
// @Failure 404 {object} ErrorResponse "Team or membership not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/members/{userId} [put]
func (h *TeamHandler) ChangeMemberRole(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	var req service.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.teamService.ChangeRole(loginID, teamID, userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /teams/:teamId/members/:userId
// @Summary Remove a team member
// @Description Remove a member from the team; requires ADMIN, the owner's membership is protected
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid ID or protected owner"
// @Failure 403 {object} ErrorResponse "ADMIN role required"
// @Failure 404 {object} ErrorResponse "Team or membership not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(loginID, teamID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
