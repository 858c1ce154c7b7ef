package booking

import (
	"errors"
	"fmt"

	bookingModel "freightdesk/models/booking"

	"gorm.io/gorm"
)

var (
	// ErrBookingNotFound signals that no booking has the given job number.
	ErrBookingNotFound = errors.New("booking: not found")
	// ErrDuplicateJobNumber signals a create with an already-used job number.
	ErrDuplicateJobNumber = errors.New("booking: job number already exists")
)

// Repository handles data access for bookings and their status history.
type Repository interface {
	Create(b *bookingModel.Booking) error
	GetByJobNumber(jobNumber int) (bookingModel.Booking, error)
	List() ([]bookingModel.Booking, error)
	Update(b *bookingModel.Booking) error
	Delete(jobNumber int) error
	MaxJobNumber() (int, error)
	UpdateStatus(b *bookingModel.Booking, event *bookingModel.BookingStatusEvent) error
	StatusHistory(bookingID uint) ([]bookingModel.BookingStatusEvent, error)
}

// GormRepository implements Repository backed by PostgreSQL through GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewRepository creates a GORM-backed booking repository.
func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(b *bookingModel.Booking) error {
	var existing bookingModel.Booking
	err := r.db.Where("job_number = ?", b.JobNumber).First(&existing).Error
	if err == nil {
		return ErrDuplicateJobNumber
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("booking: check existing job number: %w", err)
	}

	if err := r.db.Create(b).Error; err != nil {
		return fmt.Errorf("booking: create: %w", err)
	}
	return nil
}

func (r *GormRepository) GetByJobNumber(jobNumber int) (bookingModel.Booking, error) {
	var b bookingModel.Booking
	if err := r.db.Where("job_number = ?", jobNumber).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bookingModel.Booking{}, ErrBookingNotFound
		}
		return bookingModel.Booking{}, fmt.Errorf("booking: get by job number: %w", err)
	}
	return b, nil
}

func (r *GormRepository) List() ([]bookingModel.Booking, error) {
	var bookings []bookingModel.Booking
	if err := r.db.Order("job_number").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("booking: list: %w", err)
	}
	return bookings, nil
}

func (r *GormRepository) Update(b *bookingModel.Booking) error {
	if err := r.db.Save(b).Error; err != nil {
		return fmt.Errorf("booking: update: %w", err)
	}
	return nil
}

func (r *GormRepository) Delete(jobNumber int) error {
	result := r.db.Where("job_number = ?", jobNumber).Delete(&bookingModel.Booking{})
	if result.Error != nil {
		return fmt.Errorf("booking: delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *GormRepository) MaxJobNumber() (int, error) {
	var max int
	err := r.db.Model(&bookingModel.Booking{}).
		Select("COALESCE(MAX(job_number), 0)").Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("booking: max job number: %w", err)
	}
	return max, nil
}

// UpdateStatus writes the booking and its status event in one transaction so
// history never drifts from the record.
func (r *GormRepository) UpdateStatus(b *bookingModel.Booking, event *bookingModel.BookingStatusEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(b).Error; err != nil {
			return fmt.Errorf("booking: save status: %w", err)
		}
		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("booking: append status event: %w", err)
		}
		return nil
	})
}

func (r *GormRepository) StatusHistory(bookingID uint) ([]bookingModel.BookingStatusEvent, error) {
	var events []bookingModel.BookingStatusEvent
	if err := r.db.Where("booking_id = ?", bookingID).Order("created_at").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("booking: status history: %w", err)
	}
	return events, nil
}
