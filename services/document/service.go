package document

import (
	"errors"
	"fmt"
	"os"
	"time"

	bookingModel "freightdesk/models/booking"

	"github.com/jinzhu/now"
)

// ErrDocumentsUnavailable signals that the booking is not far enough along
// the lifecycle for shipment documents to be issued.
var ErrDocumentsUnavailable = errors.New("document: booking is not yet booked")

// doValidityDays is how long a delivery order stays valid after issue.
const doValidityDays = 7

// CompanyProfile is the letterhead printed on every shipment document.
type CompanyProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// DeliveryOrder is the printable payload for a delivery order.
type DeliveryOrder struct {
	Company       CompanyProfile `json:"company"`
	DONumber      string         `json:"do_number"`
	JobNumber     int            `json:"job_number"`
	IssueDate     time.Time      `json:"issue_date"`
	ValidUntil    time.Time      `json:"valid_until"`
	Consignee     string         `json:"consignee"`
	Shipper       string         `json:"shipper"`
	HBLNo         string         `json:"hbl_no"`
	MBLNo         string         `json:"mbl_no"`
	POL           string         `json:"pol"`
	POD           string         `json:"pod"`
	ContainerSize string         `json:"container_size"`
	ShippingLine  string         `json:"shipping_line"`
	CHA           string         `json:"cha"`
	IGMFiled      string         `json:"igm_filed"`
	Description   string         `json:"description"`
	ETA           *time.Time     `json:"eta,omitempty"`
}

// FreightCertificate is the printable payload for a freight certificate.
type FreightCertificate struct {
	Company           CompanyProfile `json:"company"`
	CertificateNumber string         `json:"certificate_number"`
	JobNumber         int            `json:"job_number"`
	IssueDate         time.Time      `json:"issue_date"`
	Consignee         string         `json:"consignee"`
	Shipper           string         `json:"shipper"`
	HBLNo             string         `json:"hbl_no"`
	MBLNo             string         `json:"mbl_no"`
	POL               string         `json:"pol"`
	POD               string         `json:"pod"`
	ContainerSize     string         `json:"container_size"`
	FreightAmount     float64        `json:"freight_amount"`
	ETD               *time.Time     `json:"etd,omitempty"`
	ETA               *time.Time     `json:"eta,omitempty"`
}

// Service assembles shipment document payloads from bookings.
type Service struct {
	company CompanyProfile
}

// NewService creates a document service with the given letterhead.
func NewService(company CompanyProfile) *Service {
	return &Service{company: company}
}

// CompanyProfileFromEnv reads the letterhead from the environment.
func CompanyProfileFromEnv() CompanyProfile {
	return CompanyProfile{
		Name:    os.Getenv("COMPANY_NAME"),
		Address: os.Getenv("COMPANY_ADDRESS"),
		Email:   os.Getenv("COMPANY_EMAIL"),
		Phone:   os.Getenv("COMPANY_PHONE"),
	}
}

// BuildDeliveryOrder assembles a delivery order for a booked shipment. The
// DO number mirrors the master bill number; that is how the issued paper
// documents are keyed.
func (s *Service) BuildDeliveryOrder(b bookingModel.Booking, issuedAt time.Time) (DeliveryOrder, error) {
	if !b.Status.CanIssueDocuments() {
		return DeliveryOrder{}, fmt.Errorf("%w: job %d is %s", ErrDocumentsUnavailable, b.JobNumber, b.Status)
	}

	doNumber := b.MBLNo
	if doNumber == "" {
		doNumber = fmt.Sprintf("DO-%d", b.JobNumber)
	}

	issue := now.With(issuedAt).BeginningOfDay()
	validUntil := now.With(issue.AddDate(0, 0, doValidityDays)).EndOfDay()

	return DeliveryOrder{
		Company:       s.company,
		DONumber:      doNumber,
		JobNumber:     b.JobNumber,
		IssueDate:     issue,
		ValidUntil:    validUntil,
		Consignee:     b.Consignee,
		Shipper:       b.Shipper,
		HBLNo:         b.HBLNo,
		MBLNo:         b.MBLNo,
		POL:           b.POL,
		POD:           b.POD,
		ContainerSize: b.ContainerSize,
		ShippingLine:  b.ShippingLine,
		CHA:           b.CHA,
		IGMFiled:      b.IGMFiled,
		Description:   b.Description,
		ETA:           b.ETA,
	}, nil
}

// BuildFreightCertificate assembles a freight certificate for a booked
// shipment. The freight amount is the sell rate the customer was billed.
func (s *Service) BuildFreightCertificate(b bookingModel.Booking, issuedAt time.Time) (FreightCertificate, error) {
	if !b.Status.CanIssueDocuments() {
		return FreightCertificate{}, fmt.Errorf("%w: job %d is %s", ErrDocumentsUnavailable, b.JobNumber, b.Status)
	}

	return FreightCertificate{
		Company:           s.company,
		CertificateNumber: fmt.Sprintf("FC-%d", b.JobNumber),
		JobNumber:         b.JobNumber,
		IssueDate:         now.With(issuedAt).BeginningOfDay(),
		Consignee:         b.Consignee,
		Shipper:           b.Shipper,
		HBLNo:             b.HBLNo,
		MBLNo:             b.MBLNo,
		POL:               b.POL,
		POD:               b.POD,
		ContainerSize:     b.ContainerSize,
		FreightAmount:     b.SellRate,
		ETD:               b.ETD,
		ETA:               b.ETA,
	}, nil
}
