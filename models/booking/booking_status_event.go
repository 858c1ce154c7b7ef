package booking

import (
	"time"
)

// BookingStatusEvent records a single status transition of a booking.
// Events are append-only, many per booking.
type BookingStatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint    `gorm:"not null;index" json:"booking_id"`
	Booking   Booking `gorm:"foreignKey:BookingID" json:"booking"`

	FromStatus BookingStatus `gorm:"size:20;not null" json:"from_status"`
	ToStatus   BookingStatus `gorm:"size:20;not null" json:"to_status"`
	ChangedBy  string        `gorm:"type:varchar(255);not null" json:"changed_by"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the BookingStatusEvent model
func (BookingStatusEvent) TableName() string {
	return "booking_status_events"
}
