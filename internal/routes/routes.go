package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/crownbraids/salon-scheduler/internal/audit"
	"github.com/crownbraids/salon-scheduler/internal/cache"
	"github.com/crownbraids/salon-scheduler/internal/config"
	"github.com/crownbraids/salon-scheduler/internal/handlers"
	"github.com/crownbraids/salon-scheduler/internal/media"
	"github.com/crownbraids/salon-scheduler/internal/middleware"
	"github.com/crownbraids/salon-scheduler/internal/models"
	"github.com/crownbraids/salon-scheduler/internal/payments"

	infraRepo "github.com/crownbraids/salon-scheduler/internal/infra/repository"
	ucAppointment "github.com/crownbraids/salon-scheduler/internal/usecase/appointment"
	ucIdentity "github.com/crownbraids/salon-scheduler/internal/usecase/identity"
	ucRewards "github.com/crownbraids/salon-scheduler/internal/usecase/rewards"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	rewardsRepo := infraRepo.NewRewardsGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	availCache := cache.NewAvailabilityCache(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	storage := media.NewStorage(cfg)

	var deposits *payments.DepositLinker
	if cfg.MPAccessToken != "" {
		linker, err := payments.NewDepositLinker(cfg.MPAccessToken)
		if err != nil {
			log.Printf("payments disabled: %v", err)
		} else {
			deposits = linker
		}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucIdentity.NewRegister(userRepo)
	authenticateUC := ucIdentity.NewAuthenticate(userRepo)
	changePasswordUC := ucIdentity.NewChangePassword(userRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, availCache, auditDispatcher)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listHistoryUC := ucAppointment.NewListHistory(appointmentRepo)
	listDayUC := ucAppointment.NewListDay(appointmentRepo)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, rewardsRepo, availCache, auditDispatcher)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, availCache, auditDispatcher)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, availCache)

	balanceUC := ucRewards.NewGetBalance(rewardsRepo)
	redeemUC := ucRewards.NewRedeemPoints(rewardsRepo, auditDispatcher)
	adjustUC := ucRewards.NewAdjustPoints(rewardsRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, authenticateUC, cfg)
	meHandler := handlers.NewMeHandler(db, changePasswordUC)
	adminUsersHandler := handlers.NewAdminUsersHandler(db, registerUC, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		getAppointmentUC,
		listHistoryUC,
		listDayUC,
		updateStatusUC,
		cancelAppointmentUC,
		deposits,
	)

	rewardsHandler := handlers.NewRewardsHandler(balanceUC, redeemUC, adjustUC)
	galleryHandler := handlers.NewGalleryHandler(db, storage, auditDispatcher)
	publicHandler := handlers.NewPublicHandler(availabilityUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	staffOnly := middleware.RequireRoles(models.RoleEmployee, models.RoleAdmin)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		public := api.Group("/public")
		{
			public.GET("/availability", publicHandler.Availability)
			public.GET("/slots", publicHandler.Slots)
			public.GET("/gallery", galleryHandler.List)
		}

		// Guest booking: identity attached when a token is present.
		api.POST("/appointments", middleware.OptionalAuth(cfg), appointmentHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateProfile)
			secured.POST("/me/change-password", meHandler.ChangePassword)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListHistory)
			secured.GET("/appointments/day", appointmentHandler.ListDay)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/status", staffOnly, appointmentHandler.UpdateStatus)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.POST("/appointments/:id/payment-link", appointmentHandler.PaymentLink)

			// ------------------------------
			// REWARDS
			// ------------------------------
			secured.GET("/me/rewards", rewardsHandler.MyRewards)
			secured.POST("/me/rewards/redeem", rewardsHandler.Redeem)
			secured.GET("/clients/:id/rewards", staffOnly, rewardsHandler.ClientRewards)
			secured.POST("/clients/:id/rewards/adjust", staffOnly, rewardsHandler.Adjust)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(adminOnly)
			{
				admin.GET("/users", adminUsersHandler.List)
				admin.POST("/users", adminUsersHandler.Create)
				admin.PATCH("/users/:id", adminUsersHandler.Update)
				admin.POST("/users/:id/reset-password", adminUsersHandler.ResetPassword)

				admin.POST("/gallery", galleryHandler.Upload)
				admin.DELETE("/gallery/:id", galleryHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
