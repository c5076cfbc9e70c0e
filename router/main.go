package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/vee-grants/vee-api/config"
	"github.com/vee-grants/vee-api/database"
	"github.com/vee-grants/vee-api/graph"
	"github.com/vee-grants/vee-api/handlers"
	auth_handlers "github.com/vee-grants/vee-api/handlers/auth"
	"github.com/vee-grants/vee-api/services"
	"github.com/vee-grants/vee-api/utils"
	"github.com/vee-grants/vee-api/utils/auth"
	"github.com/vee-grants/vee-api/utils/middleware"
	"github.com/vee-grants/vee-api/utils/validation"
)

// Dependencies are the long-lived collaborators the routes need.
// BruteForce may be nil, which disables login throttling.
type Dependencies struct {
	Store      database.Storage
	Env        *config.EnvironmentVariable
	BruteForce *middleware.BruteForceProtection
}

func SetupRoutes(app *fiber.App, deps Dependencies) error {
	tokens, err := auth.NewTokenManager(auth.TokenConfig{
		Secret:    deps.Env.SECRET_KEY,
		Algorithm: deps.Env.ALGORITHM,
		TTL:       deps.Env.TokenTTL(),
	})
	if err != nil {
		return err
	}

	db := deps.Store.GetDB()

	authService := services.NewAuthService(db, tokens, deps.Env.BCRYPT_COST)
	authHandler := auth_handlers.NewAuthHandler(authService, deps.BruteForce)
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	schema, err := graph.NewSchema(graph.Services{
		Foundations: services.NewFoundationService(db),
		Grants:      services.NewGrantService(db),
		Feedbacks:   services.NewGrantFeedbackService(db),
		Audit:       services.NewAuditService(db),
		Validator:   validation.NewValidator(),
	})
	if err != nil {
		return err
	}
	graphHandler := graph.NewHandler(schema)

	// Apply security middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    deps.Env.ALLOWED_ORIGINS,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, deps.Store))

	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", deps.BruteForce.CheckAndRecordAttempt(), authHandler.Login)

	app.Post("/graphql", authMiddleware.Identify(), graphHandler.Serve)

	log.Info("✅ Routes registered")
	return nil
}
