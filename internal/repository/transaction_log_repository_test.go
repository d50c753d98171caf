package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vapor/internal/domain"
)

func TestTransactionLogCreate(t *testing.T) {
	repo := NewTransactionLogRepository(newTestDB(t), testLogger())

	log := &domain.TransactionLog{
		Code:      "06",
		RawRecord: "06 buyer01         BS 000010.00",
		Status:    domain.TransactionLogProcessed,
	}
	require.NoError(t, repo.Create(log))

	assert.NotZero(t, log.ID)
	assert.False(t, log.CreatedAt.IsZero())
}

func TestTransactionLogFindAll(t *testing.T) {
	repo := NewTransactionLogRepository(newTestDB(t), testLogger())

	records := []*domain.TransactionLog{
		{Code: "00", RawRecord: "00 ...", Status: domain.TransactionLogProcessed},
		{Code: "99", RawRecord: "garbage", Status: domain.TransactionLogFailed, Detail: "geçersiz işlem kaydı"},
		{Code: "10", RawRecord: "10 ...", Status: domain.TransactionLogProcessed},
	}
	for _, record := range records {
		require.NoError(t, repo.Create(record))
	}

	logs, err := repo.FindAll(2, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "00", logs[0].Code)
	assert.Equal(t, "99", logs[1].Code)
	assert.Equal(t, domain.TransactionLogFailed, logs[1].Status)
	assert.Equal(t, "geçersiz işlem kaydı", logs[1].Detail)

	logs, err = repo.FindAll(10, 2)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "10", logs[0].Code)
}
