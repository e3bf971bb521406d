package handlers

import (
	"net/http"

	"smart-erd-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DictionaryHandler handles HTTP requests for the team's data dictionary:
// terms and the domains terms can reference.
type DictionaryHandler struct {
	termService   service.TermServiceInterface
	domainService service.DomainServiceInterface
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(termService service.TermServiceInterface, domainService service.DomainServiceInterface) *DictionaryHandler {
	return &DictionaryHandler{
		termService:   termService,
		domainService: domainService,
	}
}

// CreateTerm handles POST /teams/:teamId/terms
// @Summary Create a dictionary term
// @Description Create a term in the team's dictionary; VIEWER members cannot write
// @Tags dictionary
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param term body service.CreateTermRequest true "Term data"
// @Success 201 {object} service.TermResponse "Successfully created term"
// @Failure 400 {object} ErrorResponse "Invalid request or cross-team domain"
// @Failure 403 {object} ErrorResponse "Not a team member or read-only role"
// @Failure 404 {object} ErrorResponse "Team or domain not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/terms [post]
func (h *DictionaryHandler) CreateTerm(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	var req service.CreateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	term, err := h.termService.Create(loginID, teamID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, term)
}

// ListTerms handles GET /teams/:teamId/terms
// @Summary List dictionary terms
// @Description Get the team's dictionary terms; the caller must be a member
// @Tags dictionary
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} service.TermResponse "Successfully retrieved terms"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Not a team member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/terms [get]
func (h *DictionaryHandler) ListTerms(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	terms, err := h.termService.List(loginID, teamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, terms)
}

// UpdateTerm handles PUT /teams/:teamId/terms/:termId
// @Summary Update a dictionary term
// @Description Replace a term's names and domain reference; VIEWER members cannot write
// @Tags dictionary
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param termId path string true "Term ID (UUID)"
// @Param term body service.UpdateTermRequest true "Term data"
// @Success 200 {object} service.TermResponse "Successfully updated term"
// @Failure 400 {object} ErrorResponse "Invalid request or cross-team reference"
// @Failure 403 {object} ErrorResponse "Not a team member or read-only role"
// @Failure 404 {object} ErrorResponse "Team, term or domain not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/terms/{termId} [put]
func (h *DictionaryHandler) UpdateTerm(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	termID, ok := parseUUIDParam(c, "termId")
	if !ok {
		return
	}

	var req service.UpdateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	term, err := h.termService.Update(loginID, teamID, termID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, term)
}

// DeleteTerm handles DELETE /teams/:teamId/terms/:termId
// @Summary Delete a dictionary term
// @Description Delete a term; VIEWER members cannot write
// @Tags dictionary
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param termId path string true "Term ID (UUID)"
// @Success 204 "Term deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID or cross-team reference"
// @Failure 403 {object} ErrorResponse "Not a team member or read-only role"
// @Failure 404 {object} ErrorResponse "Team or term not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/terms/{termId} [delete]
func (h *DictionaryHandler) DeleteTerm(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	termID, ok := parseUUIDParam(c, "termId")
	if !ok {
		return
	}

	if err := h.termService.Delete(loginID, teamID, termID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateDomain handles POST /teams/:teamId/domains
// @Summary Create a dictionary domain
// @Description Create a reusable domain (logical name / physical type); VIEWER members cannot write
// @Tags dictionary
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param domain body service.CreateDomainRequest true "Domain data"
// @Success 201 {object} service.DomainResponse "Successfully created domain"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a team member or read-only role"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/domains [post]
func (h *DictionaryHandler) CreateDomain(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	var req service.CreateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	domain, err := h.domainService.Create(loginID, teamID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, domain)
}

// ListDomains handles GET /teams/:teamId/domains
// @Summary List dictionary domains
// @Description Get the team's dictionary domains; the caller must be a member
// @Tags dictionary
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} service.DomainResponse "Successfully retrieved domains"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Not a team member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/domains [get]
func (h *DictionaryHandler) ListDomains(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	domains, err := h.domainService.List(loginID, teamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, domains)
}

// UpdateDomain handles PUT /teams/:teamId/domains/:domainId
// @Summary Update a dictionary domain
// @Description Replace a domain's logical name and physical type; VIEWER members cannot write
// @Tags dictionary
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param domainId path string true "Domain ID (UUID)"
// @Param domain body service.UpdateDomainRequest true "Domain data"
// @Success 200 {object} service.DomainResponse "Successfully updated domain"
// @Failure 400 {object} ErrorResponse "Invalid request or cross-team reference"
// @Failure 403 {object} ErrorResponse "Not a team member or read-only role"
// @Failure 404 {object} ErrorResponse "Team or domain not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/domains/{domainId} [put]
func (h *DictionaryHandler) UpdateDomain(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	domainID, ok := parseUUIDParam(c, "domainId")
	if !ok {
		return
	}

	var req service.UpdateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	domain, err := h.domainService.Update(loginID, teamID, domainID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain)
}

// DeleteDomain handles DELETE /teams/:teamId/domains/:domainId
// @Summary Delete a dictionary domain
// @Description Delete a domain that no term references; VIEWER members cannot write
// @Tags dictionary
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param domainId path string true "Domain ID (UUID)"
// @Success 204 "Domain deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID, cross-team reference or domain still in use"
// @Failure 403 {object} ErrorResponse "Not a team member or read-only role"
// @Failure 404 {object} ErrorResponse "Team or domain not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/domains/{domainId} [delete]
func (h *DictionaryHandler) DeleteDomain(c *gin.Context) {
	loginID, ok := requester(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	domainID, ok := parseUUIDParam(c, "domainId")
	if !ok {
		return
	}

	if err := h.domainService.Delete(loginID, teamID, domainID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
