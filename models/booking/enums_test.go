package booking

import "testing"

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusNominated, BookingStatusBooked, true},
		{BookingStatusNominated, BookingStatusCancelled, true},
		{BookingStatusNominated, BookingStatusInTransit, false},
		{BookingStatusBooked, BookingStatusInTransit, true},
		{BookingStatusBooked, BookingStatusCancelled, true},
		{BookingStatusBooked, BookingStatusDelivered, false},
		{BookingStatusInTransit, BookingStatusArrived, true},
		{BookingStatusInTransit, BookingStatusCancelled, false},
		{BookingStatusArrived, BookingStatusDelivered, true},
		{BookingStatusDelivered, BookingStatusClosed, true},
		{BookingStatusClosed, BookingStatusNominated, false},
		{BookingStatusCancelled, BookingStatusBooked, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, status := range GetAllBookingStatuses() {
		terminal := status == BookingStatusClosed || status == BookingStatusCancelled
		if status.IsTerminal() != terminal {
			t.Errorf("%s IsTerminal = %v, want %v", status, status.IsTerminal(), terminal)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, status := range GetAllBookingStatuses() {
		if !status.IsValid() {
			t.Errorf("%s should be valid", status)
		}
	}
	if BookingStatus("teleported").IsValid() {
		t.Error("made-up status should not be valid")
	}
}

func TestCanIssueDocuments(t *testing.T) {
	if BookingStatusNominated.CanIssueDocuments() {
		t.Error("nominated bookings must not issue documents")
	}
	if BookingStatusCancelled.CanIssueDocuments() {
		t.Error("cancelled bookings must not issue documents")
	}
	for _, status := range []BookingStatus{BookingStatusBooked, BookingStatusInTransit, BookingStatusArrived, BookingStatusDelivered, BookingStatusClosed} {
		if !status.CanIssueDocuments() {
			t.Errorf("%s bookings should issue documents", status)
		}
	}
}
