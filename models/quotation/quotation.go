package quotation

import (
	"time"
)

// Quotation is a rate quote for a route. Created once, never updated.
type Quotation struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference string `gorm:"type:varchar(64);not null;unique" json:"reference"`

	Email         string `gorm:"type:varchar(255);not null;index" json:"email"`
	POL           string `gorm:"column:pol;type:varchar(100);not null" json:"pol"`
	POD           string `gorm:"column:pod;type:varchar(100);not null" json:"pod"`
	ContainerSize string `gorm:"type:varchar(50)" json:"container_size"`
	Shipper       string `gorm:"type:text" json:"shipper"`
	Consignee     string `gorm:"type:text" json:"consignee"`
	Terms         string `gorm:"type:text" json:"terms"`

	// ValidUntil is normalized to the end of the requested day.
	ValidUntil time.Time `gorm:"not null" json:"valid_until"`

	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
