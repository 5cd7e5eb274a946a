package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eathub.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	couponHandler     *handlers.CouponHandler
	promotionHandler  *handlers.PromotionHandler
	merchantHandler   *handlers.MerchantHandler
	userCouponHandler *handlers.UserCouponHandler
	billingHandler    *handlers.BillingHandler
	authMiddleware    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", d.authHandler.Signup)
			auth.POST("/merchant-signup", d.authHandler.MerchantSignup)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Coupon routes (protected)
		coupons := v1.Group("/coupons")
		coupons.Use(d.authMiddleware)
		{
			coupons.POST("", d.couponHandler.Create)
			coupons.POST("/:id/claim", d.couponHandler.Claim)
			coupons.GET("/:id", d.couponHandler.Detail)
			coupons.PATCH("/:id", d.couponHandler.Archive)
			coupons.GET("/:id/usages", d.couponHandler.Usages)
		}

		// Promotion routes (protected)
		promotions := v1.Group("/promotions")
		promotions.Use(d.authMiddleware)
		{
			promotions.POST("", d.promotionHandler.Create)
			promotions.GET("/:id", d.promotionHandler.Detail)
			promotions.PATCH("/:id", d.promotionHandler.Archive)
		}

		// Merchant dashboard (protected)
		v1.GET("/merchant", d.authMiddleware, d.merchantHandler.Dashboard)

		// User coupon wallet routes (protected)
		userCoupons := v1.Group("/user-coupons")
		userCoupons.Use(d.authMiddleware)
		{
			userCoupons.GET("", d.userCouponHandler.List)
			userCoupons.DELETE("/:id", d.userCouponHandler.Delete)
			userCoupons.PATCH("/:id", d.userCouponHandler.MarkUsed)
		}

		// Billing routes (protected)
		billing := v1.Group("/billing")
		billing.Use(d.authMiddleware)
		{
			billing.POST("/orders", d.billingHandler.PrepareOrder)
		}
	}
}

// applyCORSMiddleware echoes the request origin so the browser can send
// the auth cookie cross-site.
func applyCORSMiddleware(r *gin.Engine) {
	allowed := corsAllowedOrigins()
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (len(allowed) == 0 || allowed[origin]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func corsAllowedOrigins() map[string]bool {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return nil
	}
	allowed := make(map[string]bool)
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed[origin] = true
		}
	}
	return allowed
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "eathub-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
