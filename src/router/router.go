package router

import (
	ginlogger "github.com/FabienMht/ginslog/logger"
	ginrecovery "github.com/FabienMht/ginslog/recovery"
	"github.com/gin-gonic/gin"
	"log/slog"
)

// DefaultRouter returns a bare engine with slog-backed request logging and
// panic recovery.
func DefaultRouter() *gin.Engine {
	r := gin.New()

	r.Use(ginlogger.New(slog.Default()))
	r.Use(ginrecovery.New(slog.Default()))

	return r
}
