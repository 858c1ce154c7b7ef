package quotation

import (
	"fmt"
	"strings"

	"freightdesk/logger"
	"freightdesk/middleware"
	quotationModel "freightdesk/models/quotation"
	"freightdesk/types"
	quotationTypes "freightdesk/types/quotation"
	"freightdesk/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

type QuotationController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewQuotationController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *QuotationController {
	return &QuotationController{db: db, loggerInstance: asyncLogger}
}

// Store creates a quotation. Validity is normalized to the end of the
// requested day so a quote dated today survives until midnight.
func (h *QuotationController) Store(c *fiber.Ctx) error {
	var req quotationTypes.QuotationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing quotation request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	validity, err := now.Parse(strings.TrimSpace(req.Validity))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "validity is not a valid date",
			Status:  fiber.StatusBadRequest,
		})
	}

	claims, _ := middleware.SessionClaims(c)
	createdBy := ""
	if claims != nil {
		createdBy = claims.Email
	}

	quote := quotationModel.Quotation{
		Reference:     "QTN-" + uuid.NewString(),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		POL:           req.POL,
		POD:           req.POD,
		ContainerSize: req.ContainerSize,
		Shipper:       req.Shipper,
		Consignee:     req.Consignee,
		Terms:         req.Terms,
		ValidUntil:    now.With(validity).EndOfDay(),
		CreatedBy:     createdBy,
	}

	if err := h.db.Create(&quote).Error; err != nil {
		logger.Error("Failed to create quotation", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to store quotation",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("Quotation created: " + quote.Reference)
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Quotation stored",
		Status:  fiber.StatusCreated,
		Data:    quote,
	})
}

// Index lists quotations newest first.
func (h *QuotationController) Index(c *fiber.Ctx) error {
	var quotes []quotationModel.Quotation
	if err := h.db.Order("created_at DESC").Find(&quotes).Error; err != nil {
		logger.Error("Failed to list quotations", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to list quotations",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Quotations retrieved",
		Status:  fiber.StatusOK,
		Data:    quotes,
	})
}
