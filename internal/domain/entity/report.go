package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportKind is the fixed vocabulary of business-metric categories the query
// interpreter can produce.
type ReportKind string

const (
	ReportKindSales        ReportKind = "sales"
	ReportKindUserActivity ReportKind = "user_activity"
	ReportKindInventory    ReportKind = "inventory"
	ReportKindRevenue      ReportKind = "revenue"
	ReportKindNone         ReportKind = "none"
)

// DateRange is an inclusive start/end pair extracted from a report question.
// A zero range means "no filter requested".
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether no range was extracted.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// MonthlyRevenue is a pre-computed revenue snapshot for one calendar month.
type MonthlyRevenue struct {
	ID     uuid.UUID       `json:"id"`
	Month  time.Time       `json:"month"` // First day of the month.
	Amount decimal.Decimal `json:"amount"`
}
