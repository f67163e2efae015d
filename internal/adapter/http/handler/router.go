package handler

import (
	"private-tips/internal/adapter/http/middleware"
	"private-tips/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Kols           ports.KolDirectory
	Tips           ports.TipService
	Balances       ports.BalanceService
	Relayer        ports.Relayer
	Decrypt        ports.DecryptService
	RateLimiter    ports.RateLimiter // nil = rate limiting disabled
	AuditSvc       ports.AuditService // nil = audit logging disabled
	HealthCheckers []ports.HealthChecker
	AllowedOrigins []string // empty or "*" allows any origin
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(cors.New(corsConfig(deps.AllowedOrigins)))
	r.Use(middleware.MaxBodySize(1 << 20))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimiter == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	api := r.Group("/api")

	kolHandler := NewKolHandler(deps.Kols)
	api.GET("/kols", rl("read"), kolHandler.List)
	api.GET("/kols/:id", rl("read"), kolHandler.Get)

	balanceHandler := NewBalanceHandler(deps.Balances)
	api.GET("/kol-balance", rl("read"), balanceHandler.Get)
	api.POST("/kol-balance", rl("balance_write"), balanceHandler.Set)

	tipHandler := NewTipHandler(deps.Tips)
	api.POST("/encrypt-tip", rl("encrypt"), tipHandler.EncryptTip)
	tips := api.Group("/tips")
	{
		tips.POST("", rl("tips"), tipHandler.Send)
		tips.GET("/:encryptionId", rl("read"), tipHandler.Get)
		tips.POST("/:encryptionId/confirm", rl("tips_report"), tipHandler.Confirm)
		tips.POST("/:encryptionId/fail", rl("tips_report"), tipHandler.Fail)
	}

	relayHandler := NewRelayHandler(deps.Relayer)
	api.POST("/relay-tx", rl("relay"), relayHandler.Relay)

	decryptHandler := NewDecryptHandler(deps.Decrypt)
	api.POST("/decrypt", rl("decrypt"), decryptHandler.UserDecrypt)
	api.POST("/public-decrypt", rl("public_decrypt"), decryptHandler.PublicDecrypt)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID, middleware.HeaderIdempotencyKey}
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"}
	return cfg
}
