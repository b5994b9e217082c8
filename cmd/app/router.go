package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventmanager/internal/api/controllers"
	"eventmanager/internal/infra"
	"eventmanager/internal/models/db_models"
	"eventmanager/internal/services"
	"eventmanager/pkg/middleware"
	"eventmanager/pkg/utils"
)

type RouterParams struct {
	fx.In

	Log         *zap.Logger
	DB          *gorm.DB
	Registry    *prometheus.Registry
	Metrics     *middleware.HTTPMetrics
	RateLimiter *middleware.IPRateLimiter
	CORS        middleware.CORSConfig
	Issuer      *utils.TokenIssuer
	Access      services.AuthServiceInterface

	Auth        *controllers.AuthController
	Role        *controllers.RoleController
	Permission  *controllers.PermissionController
	Admin       *controllers.AdminController
	Organizer   *controllers.OrganizerController
	User        *controllers.UserController
	EventType   *controllers.EventTypeController
	Event       *controllers.EventController
	EventCoupon *controllers.EventCouponController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(p.CORS))
	r.Use(p.Metrics.Handler())

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{})))
	r.GET("/health", healthHandler(p.DB))

	RegisterRoutes(r, p)
	return r
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := infra.Ping(ctx, db); err != nil {
			utils.RespondError(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		utils.RespondSuccess(c, nil, "ok")
	}
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	v1 := r.Group("/v1")

	auth := v1.Group("/auth", p.RateLimiter.Handler())
	auth.POST("/login", p.Auth.Login)
	auth.POST("/forgot-password", p.Auth.ForgotPassword)
	auth.GET("/reset-password", p.Auth.ResetPasswordStatus)
	auth.POST("/reset-password", p.Auth.ResetPassword)

	authenticated := v1.Group("", middleware.JWTAuthMiddleware(p.Issuer))
	adminOnly := middleware.RequireUserType(string(db_models.AdminKind))

	roles := authenticated.Group("/roles", adminOnly, middleware.RequirePermission(p.Access, "roles:manage"))
	roles.GET("", p.Role.ListRoles)
	roles.GET("/:id", p.Role.GetRole)
	roles.POST("", p.Role.CreateRole)
	roles.PUT("/:id", p.Role.UpdateRole)
	roles.DELETE("/:id", p.Role.DeleteRole)
	roles.POST("/:id/admins", p.Role.AddAdmins)
	roles.DELETE("/:id/admins", p.Role.RemoveAdmins)
	roles.POST("/:id/organizers", p.Role.AddOrganizers)
	roles.DELETE("/:id/organizers", p.Role.RemoveOrganizers)
	roles.POST("/:id/users", p.Role.AddUsers)
	roles.DELETE("/:id/users", p.Role.RemoveUsers)
	roles.POST("/:id/permissions", p.Role.AddPermissions)
	roles.DELETE("/:id/permissions", p.Role.RemovePermissions)

	permissions := authenticated.Group("/permissions", adminOnly, middleware.RequirePermission(p.Access, "permissions:manage"))
	permissions.GET("", p.Permission.ListPermissions)
	permissions.GET("/:id", p.Permission.GetPermission)
	permissions.POST("", p.Permission.CreatePermission)
	permissions.DELETE("/:id", p.Permission.DeletePermission)

	adminMe := authenticated.Group("/admins/me", adminOnly)
	adminMe.GET("", p.Admin.Me)
	adminMe.PUT("", p.Admin.UpdateMe)
	adminMe.PUT("/password", p.Admin.UpdateMyPassword)

	organizerMe := authenticated.Group("/organizers/me", middleware.RequireUserType(string(db_models.OrganizerKind)))
	organizerMe.GET("", p.Organizer.Me)
	organizerMe.PUT("", p.Organizer.UpdateMe)
	organizerMe.PUT("/password", p.Organizer.UpdateMyPassword)

	userMe := authenticated.Group("/users/me", middleware.RequireUserType(string(db_models.UserKind)))
	userMe.GET("", p.User.Me)
	userMe.PUT("", p.User.UpdateMe)
	userMe.PUT("/password", p.User.UpdateMyPassword)

	managements := authenticated.Group("/managements", adminOnly)

	admins := managements.Group("/admins")
	admins.GET("", p.Admin.ListAdmins)
	admins.GET("/:id", p.Admin.GetAdmin)
	admins.POST("", p.Admin.CreateAdmin)
	admins.PUT("/:id", p.Admin.UpdateAdmin)
	admins.PUT("/:id/role", p.Admin.UpdateAdminRole)

	organizers := managements.Group("/organizers")
	organizers.GET("", p.Organizer.ListOrganizers)
	organizers.GET("/:id", p.Organizer.GetOrganizer)
	organizers.POST("", p.Organizer.CreateOrganizer)
	organizers.PUT("/:id", p.Organizer.UpdateOrganizer)
	organizers.PUT("/:id/role", p.Organizer.UpdateOrganizerRole)

	users := managements.Group("/users")
	users.GET("", p.User.ListUsers)
	users.GET("/:id", p.User.GetUser)
	users.POST("", p.User.CreateUser)
	users.PUT("/:id", p.User.UpdateUser)
	users.PUT("/:id/role", p.User.UpdateUserRole)

	eventTypes := managements.Group("/events-types")
	eventTypes.GET("", p.EventType.ListEventTypes)
	eventTypes.GET("/:id", p.EventType.GetEventType)
	eventTypes.POST("", p.EventType.CreateEventType)
	eventTypes.PUT("/:id", p.EventType.UpdateEventType)
	eventTypes.DELETE("/:id", p.EventType.DeleteEventType)

	events := managements.Group("/events")
	events.GET("", p.Event.ListEvents)
	events.GET("/:id", p.Event.GetEvent)
	events.POST("", p.Event.CreateEvent)
	events.PUT("/:id", p.Event.UpdateEvent)
	events.DELETE("/:id", p.Event.DeleteEvent)

	coupons := managements.Group("/events-coupon")
	coupons.GET("", p.EventCoupon.ListCoupons)
	coupons.GET("/:id", p.EventCoupon.GetCoupon)
	coupons.POST("", p.EventCoupon.CreateCoupon)
	coupons.PUT("/:id", p.EventCoupon.UpdateCoupon)
}
