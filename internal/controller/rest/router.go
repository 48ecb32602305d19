package rest

import (
	"disputeresolver/internal/controller/rest/handlers"
	"disputeresolver/internal/domain/auth"
	"disputeresolver/pkg/health"
	"disputeresolver/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	auth        handlers.AuthHandler
	dispute     handlers.DisputeHandler
	authService *auth.Service
	health      *health.Registry
}

func NewRouter(
	authHandler handlers.AuthHandler,
	disputeHandler handlers.DisputeHandler,
	authService *auth.Service,
	healthRegistry *health.Registry,
) *Router {
	return &Router{
		auth:        authHandler,
		dispute:     disputeHandler,
		authService: authService,
		health:      healthRegistry,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.health, health.DefaultTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api")
	api.POST("/auth/phone-login", r.auth.PhoneLogin)

	disputes := api.Group("/disputes", RequireAuth(r.authService))
	disputes.POST("", r.dispute.File)
	disputes.GET("/:dispute_id", r.dispute.Get)
	disputes.GET("/:dispute_id/events", r.dispute.GetEvents)
	disputes.GET("/user/:phone", r.dispute.ListByUser)
	disputes.DELETE("/user/:phone", r.dispute.DeleteByUser)
}
