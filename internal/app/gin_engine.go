package app

import (
	"disputeresolver/pkg/logger"
	"disputeresolver/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine(l *logger.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(metrics.GinMiddleware(), logger.CorrelationMiddleware(), l.GinRequestLogger(), gin.Recovery())
	return engine
}
