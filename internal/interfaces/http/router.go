package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	purchaseUsecases "privstore/internal/application/purchase/usecases"
	userUsecases "privstore/internal/application/user/usecases"
	"privstore/internal/infrastructure/auth"
	"privstore/internal/infrastructure/config"
	"privstore/internal/infrastructure/email"
	"privstore/internal/infrastructure/permission"
	"privstore/internal/infrastructure/ratelimit"
	"privstore/internal/infrastructure/repository"
	"privstore/internal/interfaces/http/handlers"
	"privstore/internal/interfaces/http/middleware"
	"privstore/internal/shared/biztime"
	"privstore/internal/shared/db"
	"privstore/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine          *gin.Engine
	catalogHandler  *handlers.CatalogHandler
	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	purchaseHandler *handlers.PurchaseHandler
	adminHandler    *handlers.AdminHandler
	healthHandler   *handlers.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
	permMiddleware  *middleware.PermissionMiddleware
	submitLimiter   *middleware.SubmissionRateLimiter
	allowedOrigins  []string
	logger          logger.Interface
}

// NewRouter wires repositories, use cases and handlers. redisClient may be
// nil, in which case submissions are not rate limited.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()
	clock := biztime.Clock(biztime.NowUTC)

	userRepo := repository.NewUserRepository(database, log)
	requestRepo := repository.NewPurchaseRequestRepository(database, log)
	privilegeRepo := repository.NewPrivilegeRepository(database, log)
	txManager := db.NewTransactionManager(database)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.TTL())
	steamAuth := auth.NewSteamAuthenticator(cfg.Steam, log)
	notifier := email.NewAdminNotifier(cfg.Notify, cfg.Server.BaseURL, log)

	enforcer, err := permission.NewEnforcer(database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return nil, fmt.Errorf("failed to seed permission policies: %w", err)
	}

	upsertUserUC := userUsecases.NewUpsertUserUseCase(userRepo, privilegeRepo, clock, log)
	getUserUC := userUsecases.NewGetUserWithPrivilegesUseCase(userRepo, privilegeRepo, clock, log)
	listUsersUC := userUsecases.NewListUsersUseCase(userRepo, clock, log)
	steamLoginUC := userUsecases.NewSteamLoginUseCase(steamAuth, upsertUserUC, jwtService, log)

	submitUC := purchaseUsecases.NewSubmitRequestUseCase(requestRepo, userRepo, notifier, clock, log)
	listPendingUC := purchaseUsecases.NewListPendingRequestsUseCase(requestRepo, log)
	approveUC := purchaseUsecases.NewApproveRequestUseCase(requestRepo, privilegeRepo, txManager, clock, log)
	rejectUC := purchaseUsecases.NewRejectRequestUseCase(requestRepo, clock, log)

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	var submitLimiter *middleware.SubmissionRateLimiter
	if redisClient != nil && cfg.RateLimit.Enabled {
		submitLimiter = middleware.NewSubmissionRateLimiter(
			ratelimit.NewRedisRateLimiter(redisClient),
			cfg.RateLimit.Submissions,
			cfg.RateLimit.Window(),
			log,
		)
	}

	return &Router{
		engine:          engine,
		catalogHandler:  handlers.NewCatalogHandler(),
		authHandler:     handlers.NewAuthHandler(steamLoginUC, log),
		userHandler:     handlers.NewUserHandler(getUserUC, listUsersUC, log),
		purchaseHandler: handlers.NewPurchaseHandler(submitUC, log),
		adminHandler:    handlers.NewAdminHandler(listPendingUC, approveUC, rejectUC, log),
		healthHandler:   handlers.NewHealthHandler(sqlDB, log),
		authMiddleware:  middleware.NewAuthMiddleware(jwtService, log),
		permMiddleware:  middleware.NewPermissionMiddleware(enforcer, userRepo, log),
		submitLimiter:   submitLimiter,
		allowedOrigins:  cfg.Server.AllowedOrigins,
		logger:          log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthHandler.Check)

	api := r.engine.Group("/api")

	api.GET("/catalog", r.catalogHandler.ListOffers)

	authGroup := api.Group("/auth/steam")
	{
		authGroup.GET("/login", r.authHandler.SteamLogin)
		authGroup.GET("/callback", r.authHandler.SteamCallback)
	}

	api.GET("/users/:steam_id", r.userHandler.GetBySteamID)

	requireAuth := r.authMiddleware.RequireAuth()

	api.GET("/me",
		requireAuth,
		r.permMiddleware.RequirePermission(permission.ResourceProfile, permission.ActionRead),
		r.userHandler.GetMe,
	)

	api.POST("/purchases",
		requireAuth,
		r.permMiddleware.RequirePermission(permission.ResourcePurchases, permission.ActionCreate),
		r.submitLimiter.Limit(),
		r.purchaseHandler.Submit,
	)

	admin := api.Group("/admin")
	admin.Use(requireAuth)
	{
		admin.GET("/requests",
			r.permMiddleware.RequirePermission(permission.ResourcePurchaseRequests, permission.ActionList),
			r.adminHandler.ListPending,
		)
		admin.POST("/requests/:id/approve",
			r.permMiddleware.RequirePermission(permission.ResourcePurchaseRequests, permission.ActionApprove),
			r.adminHandler.Approve,
		)
		admin.POST("/requests/:id/reject",
			r.permMiddleware.RequirePermission(permission.ResourcePurchaseRequests, permission.ActionReject),
			r.adminHandler.Reject,
		)
		admin.GET("/users",
			r.permMiddleware.RequirePermission(permission.ResourceUsers, permission.ActionList),
			r.userHandler.ListUsers,
		)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
