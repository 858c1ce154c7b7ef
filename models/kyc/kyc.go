package kyc

import (
	"time"
)

// KYCRecord is a customer onboarding record. Records are created once at
// submission and are read-only afterwards. PAN and Aadhaar identifiers are
// stored AES-256-GCM encrypted.
type KYCRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference string    `gorm:"type:varchar(64);not null;unique" json:"reference"`
	KYCDate   time.Time `gorm:"not null" json:"kyc_date"`
	Branch    string    `gorm:"type:varchar(255)" json:"branch"`

	CustomerName    string `gorm:"type:varchar(255);not null;index" json:"customer_name"`
	CustomerAddress string `gorm:"type:text" json:"customer_address"`
	CustomerState   string `gorm:"type:varchar(100)" json:"customer_state"`
	CustomerPincode string `gorm:"type:varchar(20)" json:"customer_pincode"`
	CustomerMobile  string `gorm:"type:varchar(20)" json:"customer_mobile"`
	CustomerWebsite string `gorm:"type:varchar(255)" json:"customer_website"`
	CustomerType    string `gorm:"type:varchar(100)" json:"customer_type"`
	CustomerStatus  string `gorm:"type:varchar(100)" json:"customer_status"`

	YearOfEstablishment string `gorm:"type:varchar(10)" json:"year_of_establishment"`

	DirectorName    string `gorm:"type:varchar(255)" json:"director_name"`
	DirectorAddress string `gorm:"type:text" json:"director_address"`
	DirectorEmail   string `gorm:"type:varchar(255)" json:"director_email"`

	PANEncrypted     string `gorm:"column:pan_encrypted;type:text" json:"-"`
	AadhaarEncrypted string `gorm:"column:aadhaar_encrypted;type:text" json:"-"`

	BranchOffices string `gorm:"type:text" json:"branch_offices"`
	BranchAddress string `gorm:"type:text" json:"branch_address"`
	OfficeAddress string `gorm:"type:text" json:"office_address"`
	GSTState      string `gorm:"column:gst_state;type:varchar(100)" json:"gst_state"`
	GSTIN         string `gorm:"column:gstin;type:varchar(30)" json:"gstin"`
	Remarks       string `gorm:"type:text" json:"remarks"`

	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName keeps the canonical table name used by the rest of the schema.
func (KYCRecord) TableName() string {
	return "kyc_details"
}
