package models

// Source record kinds, used for dropped-record reporting and metric labels.
const (
	RecordKindOrder      = "order"
	RecordKindPayment    = "payment"
	RecordKindAdjustment = "adjustment"
)

type Pagination struct {
	Limit  uint64
	Offset uint64
}

const (
	DefaultPageLimit uint64 = 20
	MaxPageLimit     uint64 = 100
)

func NewPagination(limit, offset uint64) Pagination {
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return Pagination{Limit: limit, Offset: offset}
}
