package document

import (
	"errors"
	"fmt"
	"time"

	"freightdesk/logger"
	bookingService "freightdesk/services/booking"
	documentService "freightdesk/services/document"
	"freightdesk/types"
	"freightdesk/utils"

	"github.com/gofiber/fiber/v2"
)

type DocumentController struct {
	bookings       *bookingService.Service
	documents      *documentService.Service
	loggerInstance *logger.AsyncLogger
}

func NewDocumentController(bookings *bookingService.Service, documents *documentService.Service, asyncLogger *logger.AsyncLogger) *DocumentController {
	return &DocumentController{bookings: bookings, documents: documents, loggerInstance: asyncLogger}
}

func (h *DocumentController) jobNumberParam(c *fiber.Ctx) (int, error) {
	jobNumber, err := c.ParamsInt("job_number")
	if err != nil || jobNumber <= 0 {
		return 0, fmt.Errorf("job_number must be a positive integer")
	}
	return jobNumber, nil
}

// DeliveryOrder issues a delivery order for a booked shipment.
func (h *DocumentController) DeliveryOrder(c *fiber.Ctx) error {
	jobNumber, err := h.jobNumberParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	b, err := h.bookings.Get(jobNumber)
	if err != nil {
		if errors.Is(err, bookingService.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: fmt.Sprintf("No booking with job number %d", jobNumber),
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load booking for delivery order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to issue delivery order",
			Status:  fiber.StatusInternalServerError,
		})
	}

	order, err := h.documents.BuildDeliveryOrder(b, time.Now())
	if err != nil {
		if errors.Is(err, documentService.ErrDocumentsUnavailable) {
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Message: fmt.Sprintf("Documents cannot be issued while job %d is %s", b.JobNumber, b.Status),
				Status:  fiber.StatusConflict,
			})
		}
		logger.Error("Failed to build delivery order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to issue delivery order",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Delivery order issued: job %d", b.JobNumber))
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Delivery order issued",
		Status:  fiber.StatusOK,
		Data:    order,
	})
}

// FreightCertificate issues a freight certificate for a booked shipment.
func (h *DocumentController) FreightCertificate(c *fiber.Ctx) error {
	jobNumber, err := h.jobNumberParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	b, err := h.bookings.Get(jobNumber)
	if err != nil {
		if errors.Is(err, bookingService.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: fmt.Sprintf("No booking with job number %d", jobNumber),
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load booking for freight certificate", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to issue freight certificate",
			Status:  fiber.StatusInternalServerError,
		})
	}

	certificate, err := h.documents.BuildFreightCertificate(b, time.Now())
	if err != nil {
		if errors.Is(err, documentService.ErrDocumentsUnavailable) {
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Message: fmt.Sprintf("Documents cannot be issued while job %d is %s", b.JobNumber, b.Status),
				Status:  fiber.StatusConflict,
			})
		}
		logger.Error("Failed to build freight certificate", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to issue freight certificate",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Freight certificate issued: job %d", b.JobNumber))
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Freight certificate issued",
		Status:  fiber.StatusOK,
		Data:    certificate,
	})
}
