// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vms/internal/delivery/http/middleware"
	"vms/internal/delivery/http/router/handler"
	"vms/internal/domain/policy"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	VisitHandler        *handler.VisitHandler
	ScheduleHandler     *handler.ScheduleHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	visitHandler        *handler.VisitHandler
	scheduleHandler     *handler.ScheduleHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		visitHandler:        params.VisitHandler,
		scheduleHandler:     params.ScheduleHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, open to unauthenticated callers
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/forgot-password", r.userHandler.ForgotPassword)
		authGroup.POST("/verify-otp", r.userHandler.VerifyOTP)
		authGroup.POST("/reset-password", r.userHandler.ResetPassword)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	authed := r.authMiddleware.Authenticate
	perm := r.authMiddleware.RequirePermission

	// Staff account management
	userGroup := e.Group("/users", authed)
	{
		userGroup.POST("", r.userHandler.CreateUser, perm(policy.ActionUserCreate))
		userGroup.GET("", r.userHandler.ListUsers, perm(policy.ActionUserList))
		userGroup.GET("/hosts", r.userHandler.ListHosts)
		userGroup.GET("/:id", r.userHandler.GetUser, perm(policy.ActionUserList))
		// Ownership (self vs administrator) is enforced by the usecase.
		userGroup.PUT("/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser, perm(policy.ActionUserDelete))
	}

	// Visit lifecycle
	visitGroup := e.Group("/visits", authed)
	{
		visitGroup.POST("", r.visitHandler.CheckIn, perm(policy.ActionVisitCreate))
		visitGroup.PATCH("/:id", r.visitHandler.CheckOut, perm(policy.ActionVisitCheckOut))
		visitGroup.DELETE("/:id", r.visitHandler.DeleteVisit, perm(policy.ActionVisitDelete))
		visitGroup.GET("", r.visitHandler.ListVisits, perm(policy.ActionVisitList))
		visitGroup.GET("/mine", r.visitHandler.HostVisits, perm(policy.ActionVisitOwnList))
		visitGroup.GET("/stats", r.visitHandler.Stats, perm(policy.ActionVisitStats))
		visitGroup.GET("/purposes", r.visitHandler.Purposes, perm(policy.ActionPurposeList))
		visitGroup.GET("/:id/badge", r.visitHandler.Badge, perm(policy.ActionVisitList))
	}

	// Availability schedules: hosts manage their own, receptionists manage by host ID
	scheduleGroup := e.Group("/schedules", authed, perm(policy.ActionScheduleManage))
	{
		scheduleGroup.POST("", r.scheduleHandler.CreateWindow)
		scheduleGroup.GET("", r.scheduleHandler.ListWindows)
		scheduleGroup.PUT("/:id", r.scheduleHandler.UpdateWindow)
		scheduleGroup.DELETE("/:id", r.scheduleHandler.DeleteWindow)

		scheduleGroup.POST("/hosts/:hostID", r.scheduleHandler.CreateWindow)
		scheduleGroup.GET("/hosts/:hostID", r.scheduleHandler.ListWindows)
		scheduleGroup.PUT("/hosts/:hostID/:id", r.scheduleHandler.UpdateWindow)
		scheduleGroup.DELETE("/hosts/:hostID/:id", r.scheduleHandler.DeleteWindow)
	}

	// Availability resolution for the front desk
	e.GET("/availability/:hostID", r.scheduleHandler.Availability, authed)

	// In-app notifications and web push subscriptions
	notificationGroup := e.Group("/notifications", authed)
	{
		notificationGroup.POST("/subscribe", r.notificationHandler.Subscribe, perm(policy.ActionNotificationSubscribe))
		notificationGroup.GET("", r.notificationHandler.ListNotifications, perm(policy.ActionNotificationRead))
		notificationGroup.GET("/unread", r.notificationHandler.UnreadCount, perm(policy.ActionNotificationRead))
		notificationGroup.PATCH("/:id/read", r.notificationHandler.MarkRead, perm(policy.ActionNotificationRead))
		notificationGroup.PATCH("/read-all", r.notificationHandler.MarkAllRead, perm(policy.ActionNotificationRead))
	}

	// Mobile device registrations for FCM
	deviceGroup := e.Group("/devices", authed, perm(policy.ActionDeviceRegister))
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		deviceGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
