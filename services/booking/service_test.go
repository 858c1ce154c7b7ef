package booking

import (
	"errors"
	"testing"

	bookingModel "freightdesk/models/booking"
	bookingTypes "freightdesk/types/booking"
)

type fakeRepo struct {
	bookings map[int]bookingModel.Booking
	events   map[uint][]bookingModel.BookingStatusEvent
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings: make(map[int]bookingModel.Booking),
		events:   make(map[uint][]bookingModel.BookingStatusEvent),
		nextID:   1,
	}
}

func (r *fakeRepo) Create(b *bookingModel.Booking) error {
	if _, exists := r.bookings[b.JobNumber]; exists {
		return ErrDuplicateJobNumber
	}
	b.ID = r.nextID
	r.nextID++
	r.bookings[b.JobNumber] = *b
	return nil
}

func (r *fakeRepo) GetByJobNumber(jobNumber int) (bookingModel.Booking, error) {
	b, ok := r.bookings[jobNumber]
	if !ok {
		return bookingModel.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeRepo) List() ([]bookingModel.Booking, error) {
	out := make([]bookingModel.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeRepo) Update(b *bookingModel.Booking) error {
	if _, ok := r.bookings[b.JobNumber]; !ok {
		return ErrBookingNotFound
	}
	r.bookings[b.JobNumber] = *b
	return nil
}

func (r *fakeRepo) Delete(jobNumber int) error {
	if _, ok := r.bookings[jobNumber]; !ok {
		return ErrBookingNotFound
	}
	delete(r.bookings, jobNumber)
	return nil
}

func (r *fakeRepo) MaxJobNumber() (int, error) {
	max := 0
	for jobNumber := range r.bookings {
		if jobNumber > max {
			max = jobNumber
		}
	}
	return max, nil
}

func (r *fakeRepo) UpdateStatus(b *bookingModel.Booking, event *bookingModel.BookingStatusEvent) error {
	if _, ok := r.bookings[b.JobNumber]; !ok {
		return ErrBookingNotFound
	}
	r.bookings[b.JobNumber] = *b
	r.events[b.ID] = append(r.events[b.ID], *event)
	return nil
}

func (r *fakeRepo) StatusHistory(bookingID uint) ([]bookingModel.BookingStatusEvent, error) {
	return r.events[bookingID], nil
}

func createRequest() bookingTypes.BookingCreateRequest {
	return bookingTypes.BookingCreateRequest{
		NominationDate: "2026-08-01",
		Consignee:      "Gulf Traders LLC",
		Shipper:        "Chennai Exports Pvt Ltd",
		HBLNo:          "HBL-4411",
		MBLNo:          "MBL-9001",
		POL:            "Chennai",
		POD:            "Dubai",
		ContainerSize:  "40HC",
		ShippingLine:   "MSC",
		BuyRate:        950,
		SellRate:       1200,
		ETD:            "2026-08-10",
		ETA:            "2026-08-22",
	}
}

func TestCreateAssignsFirstJobNumber(t *testing.T) {
	svc := NewService(newFakeRepo())

	b, err := svc.Create(createRequest(), "asha@example.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.JobNumber != 1001 {
		t.Errorf("job number = %d, want 1001", b.JobNumber)
	}
	if b.Status != bookingModel.BookingStatusNominated {
		t.Errorf("status = %s, want nominated", b.Status)
	}
	if b.NominationDate == nil || b.NominationDate.Day() != 1 {
		t.Errorf("nomination date not parsed: %v", b.NominationDate)
	}

	got, err := svc.Get(1001)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.POL != "Chennai" || got.POD != "Dubai" {
		t.Errorf("route = %s -> %s, want Chennai -> Dubai", got.POL, got.POD)
	}
}

func TestCreateIncrementsJobNumber(t *testing.T) {
	svc := NewService(newFakeRepo())

	first, err := svc.Create(createRequest(), "asha@example.com")
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	second, err := svc.Create(createRequest(), "asha@example.com")
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if second.JobNumber != first.JobNumber+1 {
		t.Errorf("job numbers %d, %d, want consecutive", first.JobNumber, second.JobNumber)
	}
}

func TestCreateDuplicateJobNumber(t *testing.T) {
	svc := NewService(newFakeRepo())

	req := createRequest()
	req.JobNumber = 2001
	if _, err := svc.Create(req, "asha@example.com"); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := svc.Create(req, "asha@example.com"); !errors.Is(err, ErrDuplicateJobNumber) {
		t.Fatalf("err = %v, want ErrDuplicateJobNumber", err)
	}
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc := NewService(newFakeRepo())

	req := createRequest()
	req.ETA = "not a date"
	if _, err := svc.Create(req, "asha@example.com"); err == nil {
		t.Fatal("expected error for unparseable eta")
	}
}

func TestUpdateLeavesOtherBookingsAlone(t *testing.T) {
	svc := NewService(newFakeRepo())

	first, err := svc.Create(createRequest(), "asha@example.com")
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	second, err := svc.Create(createRequest(), "asha@example.com")
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}

	update := bookingTypes.BookingUpdateRequest{
		NominationDate: "2026-08-01",
		Consignee:      "Gulf Traders LLC",
		Shipper:        "Chennai Exports Pvt Ltd",
		POL:            "Chennai",
		POD:            "Singapore",
	}
	updated, err := svc.Update(first.JobNumber, update, "ravi@example.com")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.POD != "Singapore" {
		t.Errorf("pod = %q, want Singapore", updated.POD)
	}
	if updated.UpdatedBy != "ravi@example.com" {
		t.Errorf("updated_by = %q", updated.UpdatedBy)
	}

	untouched, err := svc.Get(second.JobNumber)
	if err != nil {
		t.Fatalf("Get second: %v", err)
	}
	if untouched.POD != "Dubai" {
		t.Errorf("unrelated booking changed: pod = %q", untouched.POD)
	}
}

func TestDeleteMissingBooking(t *testing.T) {
	svc := NewService(newFakeRepo())

	b, err := svc.Create(createRequest(), "asha@example.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(b.JobNumber); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(b.JobNumber); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("second Delete err = %v, want ErrBookingNotFound", err)
	}
}

func TestUpdateStatusWalksLifecycle(t *testing.T) {
	svc := NewService(newFakeRepo())

	b, err := svc.Create(createRequest(), "asha@example.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	steps := []bookingModel.BookingStatus{
		bookingModel.BookingStatusBooked,
		bookingModel.BookingStatusInTransit,
		bookingModel.BookingStatusArrived,
		bookingModel.BookingStatusDelivered,
		bookingModel.BookingStatusClosed,
	}
	for _, target := range steps {
		if _, err := svc.UpdateStatus(b.JobNumber, target, "ops@example.com"); err != nil {
			t.Fatalf("UpdateStatus to %s: %v", target, err)
		}
	}

	history, err := svc.StatusHistory(b.JobNumber)
	if err != nil {
		t.Fatalf("StatusHistory: %v", err)
	}
	if len(history) != len(steps) {
		t.Fatalf("history has %d events, want %d", len(history), len(steps))
	}
	if history[0].FromStatus != bookingModel.BookingStatusNominated {
		t.Errorf("first event from %s, want nominated", history[0].FromStatus)
	}
}

func TestUpdateStatusRejectsSkipsAndUnknowns(t *testing.T) {
	svc := NewService(newFakeRepo())

	b, err := svc.Create(createRequest(), "asha@example.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.UpdateStatus(b.JobNumber, bookingModel.BookingStatusDelivered, "ops@example.com"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("nominated -> delivered err = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.UpdateStatus(b.JobNumber, "teleported", "ops@example.com"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("unknown status err = %v, want ErrUnknownStatus", err)
	}

	if _, err := svc.UpdateStatus(b.JobNumber, bookingModel.BookingStatusCancelled, "ops@example.com"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.UpdateStatus(b.JobNumber, bookingModel.BookingStatusBooked, "ops@example.com"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("cancelled -> booked err = %v, want ErrInvalidTransition", err)
	}
}

func TestNextJobNumber(t *testing.T) {
	svc := NewService(newFakeRepo())

	next, err := svc.NextJobNumber()
	if err != nil {
		t.Fatalf("NextJobNumber: %v", err)
	}
	if next != 1001 {
		t.Errorf("empty register next = %d, want 1001", next)
	}

	req := createRequest()
	req.JobNumber = 4500
	if _, err := svc.Create(req, "asha@example.com"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	next, err = svc.NextJobNumber()
	if err != nil {
		t.Fatalf("NextJobNumber: %v", err)
	}
	if next != 4501 {
		t.Errorf("next = %d, want 4501", next)
	}
}
