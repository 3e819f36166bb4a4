package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campulse/campulse-api/internal/api/handler"
	"github.com/campulse/campulse-api/internal/api/middleware"
	"github.com/campulse/campulse-api/internal/core/ports"
)

// Deps are the services and clients the router wires into handlers. Mongo
// and Redis are optional and only feed the readiness probe.
type Deps struct {
	Auth          ports.AuthService
	Tasks         ports.TaskService
	Opportunities ports.OpportunityService
	Tutors        ports.TutorService
	Bookmarks     handler.BookmarkDispatcher

	Mongo *mongo.Database
	Redis *redis.Client

	JWTSecret string
	Log       zerolog.Logger

	// Registry receives the HTTP metrics. Nil means the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "campulse_http",
		Registerer: registerer,
	}))

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	health := handler.NewHealthHandler()
	ready := handler.NewReadinessHandler(d.Auth, d.Mongo, d.Redis)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", ready.Readiness)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(d.Auth)
	auth := e.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	requireToken := middleware.Auth(d.JWTSecret)
	auth.POST("/logout", authHandler.Logout, requireToken)
	auth.GET("/me", authHandler.Me, requireToken)

	// --- Resources ---
	v1 := e.Group("/v1", requireToken)

	tasks := handler.NewTaskHandler(d.Tasks)
	v1.GET("/tasks", tasks.List)
	v1.POST("/tasks", tasks.Create)
	v1.PATCH("/tasks/:id", tasks.Update)
	v1.DELETE("/tasks/:id", tasks.Delete)

	opps := handler.NewOpportunityHandler(d.Opportunities, d.Bookmarks)
	v1.GET("/opportunities", opps.List)
	v1.GET("/opportunities/bookmarks", opps.Bookmarks)
	v1.GET("/opportunities/:id", opps.Get)
	v1.POST("/opportunities/:id/bookmark", opps.ToggleBookmark)

	tutors := handler.NewTutorHandler(d.Tutors)
	v1.GET("/tutors", tutors.List)
	v1.GET("/tutors/:id", tutors.Get)

	return e
}
