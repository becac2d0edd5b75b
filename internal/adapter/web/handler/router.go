package handler

import (
	"currency-wallet-web/internal/adapter/web/middleware"
	"currency-wallet-web/internal/core/ports"
	"currency-wallet-web/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Auth     ports.AuthAPI
	Profile  ports.ProfileAPI
	Accounts ports.AccountAPI
	Transfer ports.TransferAPI
	Exchange ports.ExchangeAPI
	Currency ports.CurrencyAPI
	Payments ports.PaymentAPI
	Admin    ports.AdminAPI

	Sessions       ports.SessionStore
	Bundle         *i18n.Bundle
	LangCookie     string
	SecureCookies  bool
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.SetHTMLTemplate(Templates())

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(middleware.Language(deps.Bundle, deps.LangCookie))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	authHandler := NewAuthHandler(deps.Auth, deps.Sessions, deps.Bundle, deps.LangCookie, deps.SecureCookies, deps.Logger)
	dashboardHandler := NewDashboardHandler(
		deps.Auth, deps.Accounts, deps.Transfer, deps.Exchange,
		deps.Currency, deps.Payments, deps.Sessions, deps.Bundle,
		deps.SecureCookies, deps.Logger,
	)
	profileHandler := NewProfileHandler(deps.Profile, deps.Sessions, deps.Bundle, deps.SecureCookies, deps.Logger)
	adminHandler := NewAdminHandler(deps.Admin, deps.Sessions, deps.Bundle, deps.SecureCookies, deps.Logger)
	paymentHandler := NewPaymentHandler(deps.Payments, deps.Bundle)

	// --- Public routes ---
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.POST("/language", authHandler.SetLanguage)

	// The deposit provider redirects back here, possibly without a session.
	r.GET("/payment-status", paymentHandler.Status)

	// --- Authenticated routes ---
	requireSession := middleware.RequireSession(deps.Sessions, deps.Logger)
	authed := r.Group("/", requireSession)
	{
		authed.GET("", dashboardHandler.Show)
		authed.POST("accounts", dashboardHandler.CreateAccount)
		authed.POST("transfers", dashboardHandler.Transfer)
		authed.POST("exchange", dashboardHandler.Exchange)
		authed.POST("convert", dashboardHandler.Convert)
		authed.POST("deposit", dashboardHandler.Deposit)
		authed.POST("logout", authHandler.Logout)

		authed.GET("profile", profileHandler.Show)
		authed.POST("profile", profileHandler.Update)
		authed.POST("profile/delete", profileHandler.Delete)
	}

	// --- Admin routes (role re-checked against the backend per request) ---
	admin := r.Group("/admin", requireSession, middleware.RequireAdmin(deps.Auth, deps.Sessions, deps.Logger))
	{
		admin.GET("", adminHandler.Show)
		admin.POST("/accounts/:id/delete", adminHandler.DeleteAccount)
		admin.POST("/transactions/:id/delete", adminHandler.DeleteTransaction)
	}

	return r
}
