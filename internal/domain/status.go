package domain

// Status is the application pipeline stage. The set is fixed; the client
// never enforces progression order.
type Status string

const (
	StatusApplied       Status = "Applied"
	StatusScreening     Status = "Screening"
	StatusInterviewHR   Status = "Interview HR"
	StatusInterviewUser Status = "Interview User"
	StatusTechnicalTest Status = "Technical Test"
	StatusOffer         Status = "Offer"
	StatusRejected      Status = "Rejected"
)

// Statuses lists every stage in expected progression order.
var Statuses = []Status{
	StatusApplied,
	StatusScreening,
	StatusInterviewHR,
	StatusInterviewUser,
	StatusTechnicalTest,
	StatusOffer,
	StatusRejected,
}

// Class buckets statuses for display coloring.
type Class int

const (
	ClassNeutral Class = iota
	ClassEarly
	ClassInProgress
	ClassPositive
	ClassNegative
)

// Class maps a status to its display class. Unrecognized values (the
// server may grow the set before the client does) fall back to neutral.
func (s Status) Class() Class {
	switch s {
	case StatusApplied, StatusScreening:
		return ClassEarly
	case StatusInterviewHR, StatusInterviewUser, StatusTechnicalTest:
		return ClassInProgress
	case StatusOffer:
		return ClassPositive
	case StatusRejected:
		return ClassNegative
	default:
		return ClassNeutral
	}
}
