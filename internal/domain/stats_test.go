package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsCloseDay(t *testing.T) {
	stats := NewStats()

	stats.AddRevenue(5000)
	stats.AddRevenue(2500)
	stats.AddRefunded(1000)

	snap := stats.CloseDay()

	assert.Equal(t, int64(6500), snap.Profit)
	assert.Equal(t, int64(7500), snap.Revenue)
	assert.Equal(t, int64(1000), snap.Refunded)
	assert.Equal(t, int64(6500), snap.DailyProfit)
	assert.Equal(t, int64(7500), snap.DailyRevenue)
	assert.Equal(t, int64(1000), snap.DailyRefunded)

	// Daily figures reset, lifetime figures carry over.
	next := stats.CloseDay()
	assert.Equal(t, int64(6500), next.Profit)
	assert.Equal(t, int64(7500), next.Revenue)
	assert.Equal(t, int64(0), next.DailyRevenue)
	assert.Equal(t, int64(0), next.DailyProfit)
}

func TestRestoreStatsFrom(t *testing.T) {
	restored := RestoreStatsFrom(StatsSnapshot{
		Profit:   1200,
		Revenue:  3400,
		Refunded: 2200,
	})

	snap := restored.Snapshot()
	assert.Equal(t, int64(1200), snap.Profit)
	assert.Equal(t, int64(3400), snap.Revenue)
	assert.Equal(t, int64(2200), snap.Refunded)
}
