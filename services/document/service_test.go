package document

import (
	"errors"
	"testing"
	"time"

	bookingModel "freightdesk/models/booking"
)

func testBooking(status bookingModel.BookingStatus) bookingModel.Booking {
	return bookingModel.Booking{
		ID:            1,
		JobNumber:     1001,
		Consignee:     "Gulf Traders LLC",
		Shipper:       "Chennai Exports Pvt Ltd",
		HBLNo:         "HBL-4411",
		MBLNo:         "MBL-9001",
		POL:           "Chennai",
		POD:           "Dubai",
		ContainerSize: "40HC",
		SellRate:      1200,
		Status:        status,
	}
}

func TestBuildDeliveryOrder(t *testing.T) {
	svc := NewService(CompanyProfile{Name: "Harbour Freight Lines"})
	issuedAt := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)

	order, err := svc.BuildDeliveryOrder(testBooking(bookingModel.BookingStatusBooked), issuedAt)
	if err != nil {
		t.Fatalf("BuildDeliveryOrder: %v", err)
	}
	if order.DONumber != "MBL-9001" {
		t.Errorf("DO number = %q, want the MBL number", order.DONumber)
	}
	if order.Company.Name != "Harbour Freight Lines" {
		t.Errorf("company = %q", order.Company.Name)
	}
	if !order.IssueDate.Equal(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("issue date not at start of day: %v", order.IssueDate)
	}
	if order.ValidUntil.Before(order.IssueDate.AddDate(0, 0, 7)) {
		t.Errorf("valid until %v, want at least 7 days after issue", order.ValidUntil)
	}
}

func TestBuildDeliveryOrderFallbackNumber(t *testing.T) {
	svc := NewService(CompanyProfile{})

	b := testBooking(bookingModel.BookingStatusInTransit)
	b.MBLNo = ""
	order, err := svc.BuildDeliveryOrder(b, time.Now())
	if err != nil {
		t.Fatalf("BuildDeliveryOrder: %v", err)
	}
	if order.DONumber != "DO-1001" {
		t.Errorf("DO number = %q, want DO-1001", order.DONumber)
	}
}

func TestDocumentsRefusedBeforeBooked(t *testing.T) {
	svc := NewService(CompanyProfile{})

	for _, status := range []bookingModel.BookingStatus{
		bookingModel.BookingStatusNominated,
		bookingModel.BookingStatusCancelled,
	} {
		if _, err := svc.BuildDeliveryOrder(testBooking(status), time.Now()); !errors.Is(err, ErrDocumentsUnavailable) {
			t.Errorf("delivery order for %s err = %v, want ErrDocumentsUnavailable", status, err)
		}
		if _, err := svc.BuildFreightCertificate(testBooking(status), time.Now()); !errors.Is(err, ErrDocumentsUnavailable) {
			t.Errorf("freight certificate for %s err = %v, want ErrDocumentsUnavailable", status, err)
		}
	}
}

func TestBuildFreightCertificate(t *testing.T) {
	svc := NewService(CompanyProfile{Name: "Harbour Freight Lines"})

	certificate, err := svc.BuildFreightCertificate(testBooking(bookingModel.BookingStatusDelivered), time.Now())
	if err != nil {
		t.Fatalf("BuildFreightCertificate: %v", err)
	}
	if certificate.CertificateNumber != "FC-1001" {
		t.Errorf("certificate number = %q, want FC-1001", certificate.CertificateNumber)
	}
	if certificate.FreightAmount != 1200 {
		t.Errorf("freight amount = %v, want the sell rate", certificate.FreightAmount)
	}
}
