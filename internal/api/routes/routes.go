package routes

import (
	"log"

	"hackathon-portal-backend/internal/api/handlers"
	"hackathon-portal-backend/internal/api/middleware"
	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/config"
	"hackathon-portal-backend/internal/mail"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/service"

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

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Fatalf("Failed to load auth config: %v", err)
	}
	userRepo := repository.NewUserRepository(db)
	authService := auth.NewAuthService(authConfig, userRepo)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize services
	mailer := mail.NewMailer(cfg)
	githubService := service.NewGitHubService(cfg)
	teamService := service.NewTeamService(db, validator, githubService)
	userService := service.NewUserService(db, validator, authService, mailer)
	mentorService := service.NewMentorService(db)
	technologyService := service.NewTechnologyService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	userHandler := handlers.NewUserHandler(userService, teamService)
	mentorHandler := handlers.NewMentorHandler(mentorService)
	technologyHandler := handlers.NewTechnologyHandler(technologyService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	requireAuth := authMiddleware.RequireAuth()
	optionalAuth := authMiddleware.OptionalAuth()

	// Team routes. Reads are open but pick up the caller's identity for
	// request logging when a token is sent.
	teams := router.Group("/teams")
	{
		teams.GET("", optionalAuth, teamHandler.ListTeams)
		teams.GET("/:id", optionalAuth, teamHandler.GetTeam)
		teams.POST("", requireAuth, teamHandler.CreateTeam)
		teams.PATCH("/:id", requireAuth, teamHandler.UpdateTeam)
		teams.PUT("/:id", requireAuth, teamHandler.UpdateTeam)
		teams.DELETE("/:id", requireAuth, teamHandler.DeleteTeam)
		teams.POST("/:id/change_captain", requireAuth, teamHandler.ChangeCaptain)
	}

	// User routes. Registration and the token-driven flows are public.
	users := router.Group("/users")
	{
		users.GET("", optionalAuth, userHandler.ListUsers)
		users.GET("/:id", optionalAuth, userHandler.GetUser)
		users.POST("", userHandler.CreateUser)
		users.POST("/forgotten_password", userHandler.ForgottenPassword)
		users.POST("/change_password", userHandler.ChangePassword)
		users.POST("/confirm_email", userHandler.ConfirmEmail)
		users.PATCH("/:id", requireAuth, userHandler.UpdateUser)
		users.PUT("/:id", requireAuth, userHandler.UpdateUser)
		users.DELETE("/:id", requireAuth, userHandler.DeleteUser)
		users.POST("/:id/leave_team", requireAuth, userHandler.LeaveTeam)
	}

	// Mentor routes (read-only)
	mentors := router.Group("/mentors")
	{
		mentors.GET("", mentorHandler.ListMentors)
		mentors.GET("/:id", mentorHandler.GetMentor)
	}

	// Technology routes (read-only)
	technologies := router.Group("/technologies")
	{
		technologies.GET("", technologyHandler.ListTechnologies)
		technologies.GET("/:id", technologyHandler.GetTechnology)
	}

	return router
}
