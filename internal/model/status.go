package model

// TransactionStatus is the lifecycle state shared by Penukaran and Payment.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusSuccess   TransactionStatus = "success"
	StatusCancelled TransactionStatus = "cancelled"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusCancelled:
		return true
	}
	return false
}

// Final reports whether no further transition is allowed out of s.
func (s TransactionStatus) Final() bool {
	return s == StatusSuccess || s == StatusCancelled
}

// ReportStatus is the review state of a Pelaporan.
type ReportStatus string

const (
	ReportSent      ReportStatus = "sent"
	ReportReviewed  ReportStatus = "reviewed"
	ReportCompleted ReportStatus = "completed"
	ReportRejected  ReportStatus = "rejected"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportSent, ReportReviewed, ReportCompleted, ReportRejected:
		return true
	}
	return false
}
