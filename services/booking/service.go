package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	bookingModel "freightdesk/models/booking"
	bookingTypes "freightdesk/types/booking"

	"github.com/jinzhu/now"
)

var (
	// ErrUnknownStatus signals a status string outside the lifecycle set.
	ErrUnknownStatus = errors.New("booking: unknown status")
	// ErrInvalidTransition signals a lifecycle move the transition table forbids.
	ErrInvalidTransition = errors.New("booking: invalid status transition")
)

// firstJobNumber is assigned when the booking register is empty.
const firstJobNumber = 1001

// Service handles booking business logic.
type Service struct {
	repo Repository
}

// NewService creates a new booking service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new booking. A zero job number means "assign the next one".
func (s *Service) Create(req bookingTypes.BookingCreateRequest, createdBy string) (bookingModel.Booking, error) {
	jobNumber := req.JobNumber
	if jobNumber == 0 {
		next, err := s.NextJobNumber()
		if err != nil {
			return bookingModel.Booking{}, err
		}
		jobNumber = next
	}

	b := bookingModel.Booking{
		JobNumber:     jobNumber,
		Consignee:     req.Consignee,
		Shipper:       req.Shipper,
		HBLNo:         req.HBLNo,
		MBLNo:         req.MBLNo,
		POL:           req.POL,
		POD:           req.POD,
		ContainerSize: req.ContainerSize,
		Agent:         req.Agent,
		ShippingLine:  req.ShippingLine,
		BuyRate:       req.BuyRate,
		SellRate:      req.SellRate,
		SWB:           req.SWB,
		IGMFiled:      req.IGMFiled,
		CHA:           req.CHA,
		Description:   req.Description,
		Status:        bookingModel.BookingStatusNominated,
		CreatedBy:     createdBy,
	}

	var err error
	if b.NominationDate, err = parseDate(req.NominationDate, "nomination_date"); err != nil {
		return bookingModel.Booking{}, err
	}
	if b.ETD, err = parseDate(req.ETD, "etd"); err != nil {
		return bookingModel.Booking{}, err
	}
	if b.ETA, err = parseDate(req.ETA, "eta"); err != nil {
		return bookingModel.Booking{}, err
	}

	if err := s.repo.Create(&b); err != nil {
		return bookingModel.Booking{}, err
	}
	return b, nil
}

// Get returns the booking with the given job number.
func (s *Service) Get(jobNumber int) (bookingModel.Booking, error) {
	return s.repo.GetByJobNumber(jobNumber)
}

// List returns all bookings ordered by job number.
func (s *Service) List() ([]bookingModel.Booking, error) {
	return s.repo.List()
}

// Update replaces the editable field set of an existing booking. The status
// is deliberately untouched; it only moves through UpdateStatus.
func (s *Service) Update(jobNumber int, req bookingTypes.BookingUpdateRequest, updatedBy string) (bookingModel.Booking, error) {
	b, err := s.repo.GetByJobNumber(jobNumber)
	if err != nil {
		return bookingModel.Booking{}, err
	}

	b.Consignee = req.Consignee
	b.Shipper = req.Shipper
	b.HBLNo = req.HBLNo
	b.MBLNo = req.MBLNo
	b.POL = req.POL
	b.POD = req.POD
	b.ContainerSize = req.ContainerSize
	b.Agent = req.Agent
	b.ShippingLine = req.ShippingLine
	b.BuyRate = req.BuyRate
	b.SellRate = req.SellRate
	b.SWB = req.SWB
	b.IGMFiled = req.IGMFiled
	b.CHA = req.CHA
	b.Description = req.Description
	b.UpdatedBy = updatedBy

	if b.NominationDate, err = parseDate(req.NominationDate, "nomination_date"); err != nil {
		return bookingModel.Booking{}, err
	}
	if b.ETD, err = parseDate(req.ETD, "etd"); err != nil {
		return bookingModel.Booking{}, err
	}
	if b.ETA, err = parseDate(req.ETA, "eta"); err != nil {
		return bookingModel.Booking{}, err
	}

	if err := s.repo.Update(&b); err != nil {
		return bookingModel.Booking{}, err
	}
	return b, nil
}

// Delete removes a booking. Deleting a missing booking returns
// ErrBookingNotFound, so a second delete is a 404 rather than a fault.
func (s *Service) Delete(jobNumber int) error {
	return s.repo.Delete(jobNumber)
}

// UpdateStatus moves a booking through the lifecycle, appending a status
// event for the transition. Unknown targets and forbidden moves are rejected.
func (s *Service) UpdateStatus(jobNumber int, target bookingModel.BookingStatus, changedBy string) (bookingModel.Booking, error) {
	if !target.IsValid() {
		return bookingModel.Booking{}, fmt.Errorf("%w: %q", ErrUnknownStatus, target)
	}

	b, err := s.repo.GetByJobNumber(jobNumber)
	if err != nil {
		return bookingModel.Booking{}, err
	}

	if !b.Status.CanTransitionTo(target) {
		return bookingModel.Booking{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, target)
	}

	event := bookingModel.BookingStatusEvent{
		BookingID:  b.ID,
		FromStatus: b.Status,
		ToStatus:   target,
		ChangedBy:  changedBy,
	}
	b.Status = target
	b.UpdatedBy = changedBy

	if err := s.repo.UpdateStatus(&b, &event); err != nil {
		return bookingModel.Booking{}, err
	}
	return b, nil
}

// StatusHistory returns the ordered transition log for a booking.
func (s *Service) StatusHistory(jobNumber int) ([]bookingModel.BookingStatusEvent, error) {
	b, err := s.repo.GetByJobNumber(jobNumber)
	if err != nil {
		return nil, err
	}
	return s.repo.StatusHistory(b.ID)
}

// LastJobNumber returns the highest assigned job number, zero when none.
func (s *Service) LastJobNumber() (int, error) {
	return s.repo.MaxJobNumber()
}

// NextJobNumber returns the job number the next booking would receive.
func (s *Service) NextJobNumber() (int, error) {
	max, err := s.repo.MaxJobNumber()
	if err != nil {
		return 0, err
	}
	if max == 0 {
		return firstJobNumber, nil
	}
	return max + 1, nil
}

// parseDate accepts the common date spellings forms send us and normalizes
// to the beginning of the day. Empty input stays nil.
func parseDate(value, field string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := now.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("booking: %s is not a valid date: %w", field, err)
	}
	day := now.With(parsed).BeginningOfDay()
	return &day, nil
}
