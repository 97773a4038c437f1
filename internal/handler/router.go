package handler

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/handler/api"
	reqdto "commission-tracker/internal/handler/dto/request"
	"commission-tracker/internal/handler/middleware"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/pkg/errs"
)

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Clock          clock.Clock
	Logger         *middleware.Logger
	AuthMiddleware *middleware.AuthMiddleware

	Auth      *api.AuthHandler
	Campaigns *api.CampaignHandler
	Orders    *api.OrderHandler
	Users     *api.UserHandler
	Dashboard *api.DashboardHandler
	Sequences *api.SequenceHandler
}

func NewRouter(p RouterParams) error {
	if err := registerValidators(p.Clock); err != nil {
		return err
	}
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
	return nil
}

func registerValidators(clk clock.Clock) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin validator engine is not go-playground/validator")
	}
	return reqdto.RegisterValidators(v, clk)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.ErrorHandler())
}

// access is the guard a route sits behind.
type access int

const (
	public access = iota
	member
	adminOnly
)

type route struct {
	method string
	path   string
	access access
	handle gin.HandlerFunc
}

// apiRoutes lists every endpoint under /api. Sales users read; admins write.
func apiRoutes(p RouterParams) []route {
	return []route{
		{http.MethodPost, "/auth/login", public, p.Auth.Login},
		{http.MethodPost, "/auth/refresh", public, p.Auth.Refresh},
		{http.MethodPost, "/auth/logout", member, p.Auth.Logout},
		{http.MethodGet, "/auth/me", member, p.Auth.Me},

		{http.MethodGet, "/campaigns", member, p.Campaigns.List},
		{http.MethodGet, "/campaigns/:ref", member, p.Campaigns.Get},
		{http.MethodPost, "/campaigns", adminOnly, p.Campaigns.Create},
		{http.MethodPatch, "/campaigns/:ref", adminOnly, p.Campaigns.Update},
		{http.MethodPut, "/campaigns/:ref/status", adminOnly, p.Campaigns.ChangeStatus},

		{http.MethodGet, "/orders", member, p.Orders.List},
		{http.MethodGet, "/orders/:ref", member, p.Orders.Get},
		{http.MethodPost, "/orders", adminOnly, p.Orders.Create},
		{http.MethodPut, "/orders/:ref/items", adminOnly, p.Orders.ReplaceItems},

		{http.MethodGet, "/users", adminOnly, p.Users.List},
		{http.MethodGet, "/users/:id", adminOnly, p.Users.Get},
		{http.MethodPost, "/users", adminOnly, p.Users.Create},
		{http.MethodPut, "/users/:id/commission-rate", adminOnly, p.Users.ChangeCommissionRate},
		{http.MethodPut, "/users/:id/status", adminOnly, p.Users.SetStatus},

		{http.MethodGet, "/dashboard/commissions", member, p.Dashboard.Commissions},
		{http.MethodGet, "/sequences/:key", adminOnly, p.Sequences.Current},
	}
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authn := p.AuthMiddleware.RequireAuth()
	guards := map[access][]gin.HandlerFunc{
		public:    nil,
		member:    {authn},
		adminOnly: {authn, p.AuthMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
	}

	api := engine.Group("/api")
	for _, r := range apiRoutes(p) {
		chain := append(slices.Clone(guards[r.access]), r.handle)
		api.Handle(r.method, r.path, chain...)
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}
