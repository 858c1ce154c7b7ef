package kyc

import (
	"fmt"
	"strings"

	"freightdesk/logger"
	"freightdesk/middleware"
	kycModel "freightdesk/models/kyc"
	"freightdesk/types"
	kycTypes "freightdesk/types/kyc"
	"freightdesk/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

type KYCController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewKYCController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *KYCController {
	return &KYCController{db: db, loggerInstance: asyncLogger}
}

// kycView is a record with the identity numbers decrypted for staff display.
type kycView struct {
	kycModel.KYCRecord
	PANNumber     string `json:"pan_number"`
	AadhaarNumber string `json:"aadhaar_number"`
}

// Store creates a KYC record. Identity numbers are encrypted before they
// touch the database.
func (h *KYCController) Store(c *fiber.Ctx) error {
	var req kycTypes.KYCCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing KYC request body", err)
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

	kycDate, err := now.Parse(strings.TrimSpace(req.Date))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "date is not a valid date",
			Status:  fiber.StatusBadRequest,
		})
	}

	panEncrypted, err := utils.EncryptData(strings.TrimSpace(req.PANNumber))
	if err != nil {
		logger.Error("Failed to encrypt PAN", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to store KYC record",
			Status:  fiber.StatusInternalServerError,
		})
	}
	aadhaarEncrypted, err := utils.EncryptData(strings.TrimSpace(req.AadhaarNumber))
	if err != nil {
		logger.Error("Failed to encrypt Aadhaar", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to store KYC record",
			Status:  fiber.StatusInternalServerError,
		})
	}

	claims, _ := middleware.SessionClaims(c)
	createdBy := ""
	if claims != nil {
		createdBy = claims.Email
	}

	record := kycModel.KYCRecord{
		Reference:           "KYC-" + uuid.NewString(),
		KYCDate:             now.With(kycDate).BeginningOfDay(),
		Branch:              req.Branch,
		CustomerName:        strings.TrimSpace(req.CustomerName),
		CustomerAddress:     req.CustomerAddress,
		CustomerState:       req.CustomerState,
		CustomerPincode:     req.CustomerPincode,
		CustomerMobile:      req.CustomerMobile,
		CustomerWebsite:     req.CustomerWebsite,
		CustomerType:        req.CustomerType,
		CustomerStatus:      req.CustomerStatus,
		YearOfEstablishment: req.YearOfEstablishment,
		DirectorName:        req.DirectorName,
		DirectorAddress:     req.DirectorAddress,
		DirectorEmail:       req.DirectorEmail,
		PANEncrypted:        panEncrypted,
		AadhaarEncrypted:    aadhaarEncrypted,
		BranchOffices:       req.BranchOffices,
		BranchAddress:       req.BranchAddress,
		OfficeAddress:       req.OfficeAddress,
		GSTState:            req.GSTState,
		GSTIN:               req.GSTIN,
		Remarks:             req.Remarks,
		CreatedBy:           createdBy,
	}

	if err := h.db.Create(&record).Error; err != nil {
		logger.Error("Failed to create KYC record", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to store KYC record",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("KYC record created: " + record.Reference)
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "KYC record stored",
		Status:  fiber.StatusCreated,
		Data:    record,
	})
}

// Index lists KYC records newest first, with identity numbers decrypted for
// the staff view. A record whose ciphertext cannot be decrypted is returned
// with the identifiers blank rather than failing the whole listing.
func (h *KYCController) Index(c *fiber.Ctx) error {
	var records []kycModel.KYCRecord
	if err := h.db.Order("kyc_date DESC, id DESC").Find(&records).Error; err != nil {
		logger.Error("Failed to list KYC records", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to list KYC records",
			Status:  fiber.StatusInternalServerError,
		})
	}

	views := make([]kycView, 0, len(records))
	for _, record := range records {
		view := kycView{KYCRecord: record}
		if pan, err := utils.DecryptData(record.PANEncrypted); err == nil {
			view.PANNumber = pan
		} else {
			logger.Warning("Failed to decrypt PAN for " + record.Reference)
		}
		if aadhaar, err := utils.DecryptData(record.AadhaarEncrypted); err == nil {
			view.AadhaarNumber = aadhaar
		} else {
			logger.Warning("Failed to decrypt Aadhaar for " + record.Reference)
		}
		views = append(views, view)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "KYC records retrieved",
		Status:  fiber.StatusOK,
		Data:    views,
	})
}

// Companies returns the distinct customer names on file, for the booking and
// quotation forms.
func (h *KYCController) Companies(c *fiber.Ctx) error {
	var names []string
	err := h.db.Model(&kycModel.KYCRecord{}).
		Distinct("customer_name").
		Order("customer_name").
		Pluck("customer_name", &names).Error
	if err != nil {
		logger.Error("Failed to list companies", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to list companies",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Companies retrieved",
		Status:  fiber.StatusOK,
		Data:    names,
	})
}
