package routes

import (
	"net/http"

	"smart-erd-backend/internal/api/handlers"
	"smart-erd-backend/internal/api/middleware"
	"smart-erd-backend/internal/auth"
	"smart-erd-backend/internal/config"
	"smart-erd-backend/internal/repository"
	"smart-erd-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	diagramRepo := repository.NewDiagramRepository(db)
	domainRepo := repository.NewDomainRepository(db)
	termRepo := repository.NewTermRepository(db)

	// Initialize services
	authService := auth.NewAuthService(cfg, userRepo, validator)
	teamService := service.NewTeamService(userRepo, teamRepo, memberRepo, validator)
	projectService := service.NewProjectService(userRepo, teamRepo, memberRepo, projectRepo, validator)
	diagramService := service.NewDiagramService(userRepo, teamRepo, memberRepo, projectRepo, diagramRepo, validator)
	termService := service.NewTermService(userRepo, teamRepo, memberRepo, termRepo, domainRepo, validator)
	domainService := service.NewDomainService(userRepo, teamRepo, memberRepo, domainRepo, termRepo, validator)

	// Initialize handlers
	authHandler := auth.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService)
	projectHandler := handlers.NewProjectHandler(projectService)
	diagramHandler := handlers.NewDiagramHandler(diagramService)
	dictionaryHandler := handlers.NewDictionaryHandler(termService, domainService)
	healthHandler := handlers.NewHealthHandler(db)

	authMiddleware := auth.NewAuthMiddleware(authService)

	// Health endpoints (unauthenticated)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth endpoints
	api := router.Group("/api")
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
	}

	// Everything below requires a valid token
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		teams := protected.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.GetMyTeams)
			teams.GET("/:teamId", teamHandler.GetTeam)
			teams.DELETE("/:teamId", teamHandler.DeleteTeam)

			teams.GET("/:teamId/members", teamHandler.ListMembers)
			teams.POST("/:teamId/members", teamHandler.AddMember)
			teams.PUT("/:teamId/members/:userId", teamHandler.ChangeMemberRole)
			teams.DELETE("/:teamId/members/:userId", teamHandler.RemoveMember)

			teams.POST("/:teamId/projects", projectHandler.CreateProject)
			teams.GET("/:teamId/projects", projectHandler.ListProjects)
			teams.GET("/:teamId/projects/:projectId", projectHandler.GetProject)
			teams.DELETE("/:teamId/projects/:projectId", projectHandler.DeleteProject)

			teams.POST("/:teamId/projects/:projectId/diagrams", diagramHandler.CreateDiagram)
			teams.GET("/:teamId/projects/:projectId/diagrams", diagramHandler.ListDiagrams)
			teams.GET("/:teamId/projects/:projectId/diagrams/:diagramId", diagramHandler.GetDiagram)
			teams.PUT("/:teamId/projects/:projectId/diagrams/:diagramId", diagramHandler.UpdateDiagramContent)
			teams.DELETE("/:teamId/projects/:projectId/diagrams/:diagramId", diagramHandler.DeleteDiagram)

			teams.POST("/:teamId/terms", dictionaryHandler.CreateTerm)
			teams.GET("/:teamId/terms", dictionaryHandler.ListTerms)
			teams.PUT("/:teamId/terms/:termId", dictionaryHandler.UpdateTerm)
			teams.DELETE("/:teamId/terms/:termId", dictionaryHandler.DeleteTerm)

			teams.POST("/:teamId/domains", dictionaryHandler.CreateDomain)
			teams.GET("/:teamId/domains", dictionaryHandler.ListDomains)
			teams.PUT("/:teamId/domains/:domainId", dictionaryHandler.UpdateDomain)
			teams.DELETE("/:teamId/domains/:domainId", dictionaryHandler.DeleteDomain)
		}
	}

	// 404 for unmatched routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return router
}
