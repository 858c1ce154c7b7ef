package booking

// BookingStatus is the shipment lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusNominated BookingStatus = "nominated"
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusInTransit BookingStatus = "in_transit"
	BookingStatusArrived   BookingStatus = "arrived"
	BookingStatusDelivered BookingStatus = "delivered"
	BookingStatusClosed    BookingStatus = "closed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// transitions holds the allowed target states per source state. closed and
// cancelled are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusNominated: {BookingStatusBooked, BookingStatusCancelled},
	BookingStatusBooked:    {BookingStatusInTransit, BookingStatusCancelled},
	BookingStatusInTransit: {BookingStatusArrived},
	BookingStatusArrived:   {BookingStatusDelivered},
	BookingStatusDelivered: {BookingStatusClosed},
	BookingStatusClosed:    {},
	BookingStatusCancelled: {},
}

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	_, ok := transitions[bs]
	return ok
}

// IsTerminal returns true if no further status change is allowed.
func (bs BookingStatus) IsTerminal() bool {
	return len(transitions[bs]) == 0 && bs.IsValid()
}

// CanTransitionTo reports whether moving to the target state is allowed.
func (bs BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, next := range transitions[bs] {
		if next == target {
			return true
		}
	}
	return false
}

// CanIssueDocuments returns true once the shipment is firm enough for a
// delivery order or freight certificate to be printed.
func (bs BookingStatus) CanIssueDocuments() bool {
	switch bs {
	case BookingStatusBooked, BookingStatusInTransit, BookingStatusArrived, BookingStatusDelivered, BookingStatusClosed:
		return true
	default:
		return false
	}
}

// GetAllBookingStatuses returns all valid booking statuses.
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusNominated,
		BookingStatusBooked,
		BookingStatusInTransit,
		BookingStatusArrived,
		BookingStatusDelivered,
		BookingStatusClosed,
		BookingStatusCancelled,
	}
}
