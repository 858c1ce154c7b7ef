package booking

import (
	"time"
)

// Booking is a shipment record identified by its job number.
type Booking struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	JobNumber int  `gorm:"not null;unique" json:"job_number"`

	NominationDate *time.Time `json:"nomination_date,omitempty"`
	Consignee      string     `gorm:"type:varchar(255);not null" json:"consignee"`
	Shipper        string     `gorm:"type:varchar(255);not null" json:"shipper"`
	HBLNo          string     `gorm:"column:hbl_no;type:varchar(100)" json:"hbl_no"`
	MBLNo          string     `gorm:"column:mbl_no;type:varchar(100)" json:"mbl_no"`
	POL            string     `gorm:"column:pol;type:varchar(100);not null" json:"pol"`
	POD            string     `gorm:"column:pod;type:varchar(100);not null" json:"pod"`
	ContainerSize  string     `gorm:"type:varchar(50)" json:"container_size"`
	Agent          string     `gorm:"type:varchar(255)" json:"agent"`
	ShippingLine   string     `gorm:"type:varchar(255)" json:"shipping_line"`
	BuyRate        float64    `gorm:"type:decimal(12,2)" json:"buy_rate"`
	SellRate       float64    `gorm:"type:decimal(12,2)" json:"sell_rate"`
	ETD            *time.Time `gorm:"column:etd" json:"etd,omitempty"`
	ETA            *time.Time `gorm:"column:eta" json:"eta,omitempty"`
	SWB            string     `gorm:"column:swb;type:varchar(100)" json:"swb"`
	IGMFiled       string     `gorm:"column:igm_filed;type:varchar(100)" json:"igm_filed"`
	CHA            string     `gorm:"column:cha;type:varchar(255)" json:"cha"`
	Description    string     `gorm:"type:text" json:"description"`

	Status BookingStatus `gorm:"size:20;not null;default:nominated;index" json:"status"`

	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedBy string    `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
