// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"alertboard/internal/database"
	"alertboard/internal/handler"
	"alertboard/internal/handler/alerts"
	"alertboard/internal/handler/auth"
	"alertboard/internal/middleware"
	"alertboard/internal/session"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, sessions session.Registry) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db))

	// 註冊與登入不需認證
	api.POST("/register", auth.RegisterHandler(db))
	api.POST("/login", auth.LoginHandler(db, sessions))

	// 需認證的路由
	apiAuth := api.Group("", middleware.RequireAuth(sessions, db))
	apiAuth.POST("/logout", auth.LogoutHandler(sessions))
	apiAuth.GET("/alerts", alerts.ListAlertsHandler(db))
	apiAuth.POST("/alerts", alerts.CreateAlertHandler(db))
	apiAuth.PUT("/alerts/:id", alerts.UpdateAlertHandler(db))
	apiAuth.DELETE("/alerts/:id", alerts.DeleteAlertHandler(db))
	apiAuth.POST("/alerts/:id/restore", alerts.RestoreAlertHandler(db))
}
