package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	_ "superheroes/docs"
	"superheroes/internal/core/config"
	"superheroes/internal/core/server"
	mdw "superheroes/internal/transport/http/middleware"
	resp "superheroes/internal/transport/http/response"
	"superheroes/internal/transport/http/validation"
)

const APIPrefix = "/api/v1"

type Options struct {
	Mode        string
	CORSOrigins []string
	Swagger     bool
	Limits      config.Limits
	Ping        func(*gin.Context) error // 返回 error 时 /health 回 503
}

func NewAPIEngine(l *zap.Logger, opt Options, mods ...APIModule) *gin.Engine {
	validation.MustRegister()

	r := server.NewRouter(l, server.Options{
		Mode:        opt.Mode,
		CORSOrigins: opt.CORSOrigins,
		OnPanic:     mdw.PanicJSON,
	})
	r.Use(mdw.RequestID(), mdw.AccessLog(l), mdw.Metrics())
	r.Use(limiters(opt.Limits)...)

	r.GET("/health", health(opt.Ping))
	r.GET("/metrics", mdw.MetricsHandler())
	if opt.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	MountAllAPI(r.Group(APIPrefix), mods...)

	r.NoRoute(func(c *gin.Context) {
		resp.Abort(c, http.StatusNotFound, "No handler found for "+c.Request.Method+" "+c.Request.URL.Path)
	})
	r.NoMethod(func(c *gin.Context) {
		resp.Abort(c, http.StatusMethodNotAllowed, "Request method '"+c.Request.Method+"' is not supported")
	})
	return r
}

// 零值表示不启用对应限制
func limiters(lim config.Limits) []gin.HandlerFunc {
	var hs []gin.HandlerFunc
	if lim.RPS > 0 {
		hs = append(hs, mdw.RateLimit(rate.Limit(lim.RPS), max(1, lim.Burst)))
	}
	if lim.PerIPRPS > 0 {
		hs = append(hs, mdw.RateLimitPerIP(rate.Limit(lim.PerIPRPS), max(1, lim.PerIPBurst)))
	}
	if lim.Concurrency > 0 {
		hs = append(hs, mdw.ConcurrencyLimit(lim.Concurrency))
	}
	if lim.BodyBytes > 0 {
		hs = append(hs, mdw.MaxBodyBytes(lim.BodyBytes))
	}
	if lim.TimeoutSec > 0 {
		hs = append(hs, mdw.Timeout(lim.Timeout()))
	}
	return hs
}

func health(ping func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(c); err != nil {
				_ = c.Error(err)
				resp.Abort(c, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	}
}
