package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"backend/insurance-platform/app/api/controller"
	"backend/insurance-platform/app/api/middleware"
	"backend/insurance-platform/app/database/repository"
	"backend/insurance-platform/app/internal/runtime"
	"backend/insurance-platform/app/internal/validator"
	ctxutil "backend/insurance-platform/app/pkg/util/context"
	echoUtil "backend/insurance-platform/app/pkg/util/echo"
	_ "backend/insurance-platform/docs"
)

const (
	// Base paths
	apiV1BasePath = "/v1"
	swaggerPath   = "/swagger/*"
	healthPath    = "/health"

	// Route prefixes
	usersPrefix  = "/users"
	uploadPrefix = "/upload"
)

type Router struct {
	*echo.Echo
	res          runtime.Resource
	vals         *validator.Validators
	middleware   *middleware.Middleware
	controllers  *controller.Controllers
	repositories *repository.Repositories
}

// NewRouter @title Insurance Platform
// @description User and media API of the insurance platform
// @version 1.0
// @host localhost:8081
// @BasePath /v1
func NewRouter(
	res runtime.Resource,
	vals *validator.Validators,
	middleware *middleware.Middleware,
	controllers *controller.Controllers,
	repositories *repository.Repositories,
) *Router {
	if controllers == nil {
		panic("controllers cannot be nil")
	}
	if vals == nil {
		panic("validators cannot be nil")
	}

	r := &Router{
		Echo:         echo.New(),
		res:          res,
		vals:         vals,
		middleware:   middleware,
		controllers:  controllers,
		repositories: repositories,
	}

	r.setupEcho()
	r.setupMiddlewares()
	r.setupSwagger()
	r.setupHealthRoutes()
	r.setupRoutes()

	return r
}

func (r *Router) setupEcho() {
	r.Echo.HidePort = true
	r.Echo.HideBanner = true
	r.Echo.Validator = r.vals
}

func (r *Router) setupMiddlewares() {
	r.Echo.Use(echoMiddleware.RequestID())
	r.Echo.Use(echoUtil.SetupCORSMiddleware(r.res))
	r.Echo.Use(echoUtil.SetupLoggerMiddleware(r.res))
}

func (r *Router) setupSwagger() {
	env := ctxutil.GetAppModeFromEnv()
	if env == ctxutil.AppModeDev || env == ctxutil.AppModeLocal {
		r.Echo.Debug = true
		r.Echo.GET(swaggerPath, echoSwagger.WrapHandler)
	}
}

func (r *Router) setupHealthRoutes() {
	r.Echo.GET(healthPath, r.controllers.HealthController.HealthCheck)
}

func (r *Router) setupRoutes() {
	apiGroup := r.Echo.Group(apiV1BasePath, r.middleware.LimitRequests())

	r.setupUserRoutes(apiGroup)
	r.setupUploadRoutes(apiGroup)
}

func (r *Router) setupUserRoutes(apiGroup *echo.Group) {
	userGroup := apiGroup.Group(usersPrefix)
	userGroup.POST("", r.controllers.UserController.Create)
	userGroup.GET("", r.controllers.UserController.FindAll)
	userGroup.GET("/stats", r.controllers.UserController.GetStats)
	userGroup.GET("/:id", r.controllers.UserController.FindOne)
	userGroup.PATCH("/:id", r.controllers.UserController.Update)
	userGroup.DELETE("/:id", r.controllers.UserController.Remove)
	userGroup.PATCH("/:id/soft-delete", r.controllers.UserController.SoftDelete)
	userGroup.PATCH("/:id/lock", r.controllers.UserController.Lock)
	userGroup.PATCH("/:id/unlock", r.controllers.UserController.Unlock)
	userGroup.PATCH("/:id/verify-email", r.controllers.UserController.VerifyEmail)
}

func (r *Router) setupUploadRoutes(apiGroup *echo.Group) {
	apiGroup.POST(uploadPrefix, r.controllers.UploadController.Upload)
}
