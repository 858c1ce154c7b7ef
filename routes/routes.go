package routes

import (
	"os"

	"freightdesk/constants"
	authController "freightdesk/controllers/auth"
	bookingController "freightdesk/controllers/booking"
	documentController "freightdesk/controllers/document"
	kycController "freightdesk/controllers/kyc"
	quotationController "freightdesk/controllers/quotation"
	"freightdesk/logger"
	"freightdesk/middleware"
	authService "freightdesk/services/auth"
	bookingService "freightdesk/services/booking"
	documentService "freightdesk/services/document"
	"freightdesk/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)

	authSvc := authService.NewService(authService.NewRepository(db), os.Getenv("SESSION_SECRET"))
	bookingSvc := bookingService.NewService(bookingService.NewRepository(db))
	documentSvc := documentService.NewService(documentService.CompanyProfileFromEnv())

	authCtrl := authController.NewAuthController(authSvc, db, asyncLogger)
	kycCtrl := kycController.NewKYCController(db, asyncLogger)
	quotationCtrl := quotationController.NewQuotationController(db, asyncLogger)
	bookingCtrl := bookingController.NewBookingController(bookingSvc, db, asyncLogger)
	documentCtrl := documentController.NewDocumentController(bookingSvc, documentSvc, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(types.ApiResponse{
			Message: "freightdesk is running",
			Status:  fiber.StatusOK,
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/auth/register", authCtrl.Register)
	api.Post("/auth/login", authCtrl.Login)

	/*=============================================================================
	| Session Routes
	===============================================================================*/
	session := api.Group("/auth").Use(middleware.RequireAuthentication())
	session.Get("/profile", authCtrl.Profile)
	session.Put("/complete-profile", authCtrl.CompleteProfile)
	session.Post("/logout", authCtrl.Logout)

	/*=============================================================================
	| KYC Routes
	===============================================================================*/
	api.Get("/companies", middleware.RequireRoles(constants.StaffRoles...), kycCtrl.Companies)

	kycGroup := api.Group("/kyc")
	kycGroup.Get("/", middleware.RequireRoles(constants.StaffRoles...), kycCtrl.Index)
	kycGroup.Post("/", middleware.RequireRoles(constants.RecordWriteRoles...), kycCtrl.Store)

	/*=============================================================================
	| Quotation Routes
	===============================================================================*/
	quotationGroup := api.Group("/quotations")
	quotationGroup.Get("/", middleware.RequireRoles(constants.StaffRoles...), quotationCtrl.Index)
	quotationGroup.Post("/", middleware.RequireRoles(constants.RecordWriteRoles...), quotationCtrl.Store)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings")
	bookingGroup.Get("/", middleware.RequireRoles(constants.StaffRoles...), bookingCtrl.Index)
	bookingGroup.Get("/export", middleware.RequireRoles(constants.StaffRoles...), bookingCtrl.Export)
	bookingGroup.Get("/last-job-number", middleware.RequireRoles(constants.StaffRoles...), bookingCtrl.LastJobNumber)
	bookingGroup.Get("/:job_number", middleware.RequireRoles(constants.StaffRoles...), bookingCtrl.Show)
	bookingGroup.Get("/:job_number/history", middleware.RequireRoles(constants.StaffRoles...), bookingCtrl.StatusHistory)

	bookingGroup.Post("/", middleware.RequireRoles(constants.BookingWriteRoles...), bookingCtrl.Store)
	bookingGroup.Put("/:job_number", middleware.RequireRoles(constants.BookingWriteRoles...), bookingCtrl.Update)
	bookingGroup.Post("/status", middleware.RequireRoles(constants.BookingWriteRoles...), bookingCtrl.UpdateStatus)
	bookingGroup.Delete("/:job_number", middleware.RequireRoles(constants.RoleAdmin), bookingCtrl.Delete)

	/*=============================================================================
	| Document Routes
	===============================================================================*/
	documentGroup := api.Group("/documents")
	documentGroup.Get("/delivery-order/:job_number", middleware.RequireRoles(constants.StaffRoles...), documentCtrl.DeliveryOrder)
	documentGroup.Get("/freight-certificate/:job_number", middleware.RequireRoles(constants.StaffRoles...), documentCtrl.FreightCertificate)
}
