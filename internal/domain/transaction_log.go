package domain

import "time"

type TransactionLogStatus string

const (
	TransactionLogProcessed TransactionLogStatus = "processed"
	TransactionLogFailed    TransactionLogStatus = "failed"
)

// TransactionLog journals one consumed batch record and its outcome.
type TransactionLog struct {
	ID        int64                `json:"id"`
	Code      string               `json:"code"`
	RawRecord string               `json:"raw_record"`
	Status    TransactionLogStatus `json:"status"`
	Detail    string               `json:"detail,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

type TransactionLogRepository interface {
	Create(log *TransactionLog) error
	FindAll(limit, offset int) ([]*TransactionLog, error)
}

// MarketRepository persists market snapshots. Load reports absence with a
// false second return instead of an error.
type MarketRepository interface {
	Load() (*Market, bool, error)
	Save(market *Market) error
}
