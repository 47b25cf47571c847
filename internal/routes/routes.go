package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberpro/internal/ai"
	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/chatbot"
	"github.com/BruksfildServices01/barberpro/internal/config"
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/handlers"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/store"
	ucAppointment "github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

// Deps são os singletons montados no main.
type Deps struct {
	Config   *config.Config
	Log      *zap.Logger
	Store    *store.Store
	Audit    *audit.Dispatcher
	AuditLog *audit.Logger
	Notifier ucAppointment.Notifier
	Stylist  *ai.Stylist
	Shop     ucAppointment.Shop
	Bot      *chatbot.Registry

	FormCatalogue domain.Catalogue

	// Opcionais: nil desliga o recurso.
	Checkout ucAppointment.Checkout
	Uploader handlers.AvatarUploader
	Emails   handlers.EmailChecker
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	// ======================================================
	// 🧠 USE CASES (APPOINTMENTS)
	// ======================================================
	createBookingUC := ucAppointment.NewCreateBooking(d.Store, d.Audit, d.Notifier, d.Shop)
	confirmUC := ucAppointment.NewConfirmAppointment(d.Store, d.Audit, d.Shop)
	cancelUC := ucAppointment.NewCancelAppointment(d.Store, d.Audit, d.Shop)
	completeUC := ucAppointment.NewCompleteAppointment(d.Store, d.Audit, d.Notifier, d.Shop)
	deleteUC := ucAppointment.NewDeleteAppointment(d.Store, d.Audit)
	receiptUC := ucAppointment.NewSendReceipt(d.Store, d.Notifier, d.Shop)
	paymentLinkUC := ucAppointment.NewCreatePaymentLink(d.Store, d.Checkout)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(d.Store)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(d.Store)

	dashboardUC := ucAppointment.NewGetDashboard(d.Store, d.Shop)
	formAvailabilityUC := ucAppointment.NewGetAvailability(d.Store, d.FormCatalogue)
	shareAvailabilityUC := ucAppointment.NewShareAvailability(
		ucAppointment.NewGetAvailability(d.Store, domain.ShareCatalogue),
		d.Notifier,
		d.Shop,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Store, d.Config, d.Audit, d.Emails, d.Shop.Clock)
	meHandler := handlers.NewMeHandler(d.Store, d.Audit, d.Uploader, d.Log)
	clientHandler := handlers.NewClientHandler(d.Store, d.Audit, d.Stylist, d.Notifier, d.Shop)
	serviceHandler := handlers.NewServiceHandler(d.Store, d.Audit)

	appointmentHandler := handlers.NewAppointmentHandler(
		createBookingUC,
		confirmUC,
		cancelUC,
		completeUC,
		deleteUC,
		receiptUC,
		paymentLinkUC,
		listByDateUC,
		listByMonthUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(dashboardUC, formAvailabilityUC, shareAvailabilityUC, d.Shop)
	aiHandler := handlers.NewAIHandler(d.Stylist)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLog, d.Shop.Loc)
	publicHandler := handlers.NewPublicHandler(d.Store, d.Bot)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (cliente / bot)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)

			publicAPI.POST("/bot/sessions", publicHandler.OpenBotSession)
			publicAPI.GET("/bot/sessions/:id", publicHandler.BotSession)
			publicAPI.POST("/bot/sessions/:id/messages", publicHandler.SendBotMessage)
			publicAPI.DELETE("/bot/sessions/:id", publicHandler.CloseBotSession)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (barbeiro)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)
			secured.GET("/barbers", meHandler.ListBarbers)

			secured.GET("/dashboard", scheduleHandler.Dashboard)
			secured.GET("/availability", scheduleHandler.Availability)
			secured.POST("/availability/share", scheduleHandler.Share)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)
			secured.POST("/clients/:id/marketing", clientHandler.Marketing)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Replace)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.POST("/appointments/:id/receipt", appointmentHandler.Receipt)
			secured.POST("/appointments/:id/payment-link", appointmentHandler.PaymentLink)

			secured.POST("/ai/styles", aiHandler.StyleRecommendations)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
