package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	default:
		return false
	}
}

// IsActive reports whether a booking in this status occupies its date range.
// Rejected bookings never block other bookings.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo enforces the booking lifecycle: only a pending booking may
// move, and only to confirmed or rejected. Confirmed and rejected are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	if s != StatusPending {
		return false
	}
	return next == StatusConfirmed || next == StatusRejected
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
