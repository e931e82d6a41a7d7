package observability

import (
	"net/http"
	"time"

	"github.com/danmuck/dutctl/internal/iface"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// SlotSource is the read side of the interface allocator.
type SlotSource interface {
	Slots() []iface.Slot
	Default() string
}

// AdminInfo is what the admin router reports besides the slot table.
type AdminInfo struct {
	Version  string
	Started  time.Time
	Commands func() []string
	// AllowOrigins enables CORS for browser dashboards; empty disables it.
	AllowOrigins []string
}

// NewAdminRouter serves health, metrics, the allocator snapshot and the
// registered command list. It never mutates agent state.
func NewAdminRouter(slots SlotSource, info AdminInfo, logger zerolog.Logger) *gin.Engine {
	RegisterMetrics()
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(RequestMetricsMiddleware())
	if len(info.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: info.AllowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodOptions},
			AllowHeaders: []string{"Origin", "Accept"},
			MaxAge:       12 * time.Hour,
		}))
	}
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(info.Started).String(),
			"version": info.Version,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/interfaces", func(c *gin.Context) {
		if slots == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "allocator not attached"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"default": slots.Default(),
			"slots":   slots.Slots(),
		})
	})

	r.GET("/commands", func(c *gin.Context) {
		var list []string
		if info.Commands != nil {
			list = info.Commands()
		}
		c.JSON(http.StatusOK, gin.H{"commands": list})
	})

	return r
}
