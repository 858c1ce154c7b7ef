package booking

import (
	"errors"
	"fmt"

	"freightdesk/logger"
	"freightdesk/middleware"
	bookingModel "freightdesk/models/booking"
	bookingService "freightdesk/services/booking"
	"freightdesk/types"
	bookingTypes "freightdesk/types/booking"
	"freightdesk/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BookingController struct {
	service        *bookingService.Service
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewBookingController(service *bookingService.Service, db *gorm.DB, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{service: service, db: db, loggerInstance: asyncLogger}
}

func sessionEmail(c *fiber.Ctx) string {
	if claims, ok := middleware.SessionClaims(c); ok {
		return claims.Email
	}
	return ""
}

func jobNumberParam(c *fiber.Ctx) (int, error) {
	jobNumber, err := c.ParamsInt("job_number")
	if err != nil || jobNumber <= 0 {
		return 0, fmt.Errorf("job_number must be a positive integer")
	}
	return jobNumber, nil
}

// Store creates a booking. A request without a job number gets the next free
// one.
func (h *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing booking request body", err)
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

	b, err := h.service.Create(req, sessionEmail(c))
	if err != nil {
		if errors.Is(err, bookingService.ErrDuplicateJobNumber) {
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Message: fmt.Sprintf("Job number %d is already in use", req.JobNumber),
				Status:  fiber.StatusConflict,
			})
		}
		logger.Error("Failed to create booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Booking created: job %d", b.JobNumber))
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Booking created",
		Status:  fiber.StatusCreated,
		Data:    b,
	})
}

// Index lists the booking register ordered by job number.
func (h *BookingController) Index(c *fiber.Ctx) error {
	bookings, err := h.service.List()
	if err != nil {
		logger.Error("Failed to list bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to list bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings retrieved",
		Status:  fiber.StatusOK,
		Data:    bookings,
	})
}

// Show returns a single booking by job number.
func (h *BookingController) Show(c *fiber.Ctx) error {
	jobNumber, err := jobNumberParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	b, err := h.service.Get(jobNumber)
	if err != nil {
		if errors.Is(err, bookingService.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: fmt.Sprintf("No booking with job number %d", jobNumber),
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking retrieved",
		Status:  fiber.StatusOK,
		Data:    b,
	})
}

// Update replaces the editable fields of a booking. Status moves only through
// UpdateStatus.
func (h *BookingController) Update(c *fiber.Ctx) error {
	jobNumber, err := jobNumberParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var req bookingTypes.BookingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing booking request body", err)
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

	b, err := h.service.Update(jobNumber, req, sessionEmail(c))
	if err != nil {
		if errors.Is(err, bookingService.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: fmt.Sprintf("No booking with job number %d", jobNumber),
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to update booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Booking updated: job %d", b.JobNumber))
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking updated",
		Status:  fiber.StatusOK,
		Data:    b,
	})
}

// Delete removes a booking from the register.
func (h *BookingController) Delete(c *fiber.Ctx) error {
	jobNumber, err := jobNumberParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := h.service.Delete(jobNumber); err != nil {
		if errors.Is(err, bookingService.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: fmt.Sprintf("No booking with job number %d", jobNumber),
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to delete booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Booking deleted: job %d", jobNumber))
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking deleted",
		Status:  fiber.StatusOK,
	})
}

// UpdateStatus moves a booking through its lifecycle. Forbidden moves are
// rejected with the transition spelled out.
func (h *BookingController) UpdateStatus(c *fiber.Ctx) error {
	var req bookingTypes.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing status request body", err)
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

	b, err := h.service.UpdateStatus(req.JobNumber, bookingModel.BookingStatus(req.Status), sessionEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: fmt.Sprintf("No booking with job number %d", req.JobNumber),
				Status:  fiber.StatusNotFound,
			})
		case errors.Is(err, bookingService.ErrUnknownStatus),
			errors.Is(err, bookingService.ErrInvalidTransition):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: err.Error(),
				Status:  fiber.StatusBadRequest,
			})
		}
		logger.Error("Failed to update booking status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update booking status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Booking status updated: job %d -> %s", b.JobNumber, b.Status))
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking status updated",
		Status:  fiber.StatusOK,
		Data:    b,
	})
}

// StatusHistory returns the ordered transition log for a booking.
func (h *BookingController) StatusHistory(c *fiber.Ctx) error {
	jobNumber, err := jobNumberParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	events, err := h.service.StatusHistory(jobNumber)
	if err != nil {
		if errors.Is(err, bookingService.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: fmt.Sprintf("No booking with job number %d", jobNumber),
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load status history", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load status history",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Status history retrieved",
		Status:  fiber.StatusOK,
		Data:    events,
	})
}

// LastJobNumber returns the highest job number and the one the next booking
// would receive.
func (h *BookingController) LastJobNumber(c *fiber.Ctx) error {
	last, err := h.service.LastJobNumber()
	if err != nil {
		logger.Error("Failed to read last job number", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to read last job number",
			Status:  fiber.StatusInternalServerError,
		})
	}

	next, err := h.service.NextJobNumber()
	if err != nil {
		logger.Error("Failed to compute next job number", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to compute next job number",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Job numbers retrieved",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"last_job_number": last,
			"next_job_number": next,
		},
	})
}
