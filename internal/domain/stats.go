package domain

import "sync"

// StatsSnapshot carries the ledger values, all in minor currency units.
type StatsSnapshot struct {
	Profit        int64
	Revenue       int64
	Refunded      int64
	DailyProfit   int64
	DailyRevenue  int64
	DailyRefunded int64
}

// Stats accumulates lifetime and per-day revenue, refund and profit
// figures for the market.
type Stats struct {
	mutex sync.RWMutex

	profit   int64
	revenue  int64
	refunded int64

	dailyProfit   int64
	dailyRevenue  int64
	dailyRefunded int64
}

func NewStats() *Stats {
	return &Stats{}
}

func RestoreStatsFrom(snap StatsSnapshot) *Stats {
	return &Stats{
		profit:        snap.Profit,
		revenue:       snap.Revenue,
		refunded:      snap.Refunded,
		dailyProfit:   snap.DailyProfit,
		dailyRevenue:  snap.DailyRevenue,
		dailyRefunded: snap.DailyRefunded,
	}
}

func (s *Stats) AddRevenue(amount int64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.dailyRevenue += amount
	s.revenue += amount
}

func (s *Stats) AddRefunded(amount int64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.dailyRefunded += amount
	s.refunded += amount
}

func (s *Stats) Snapshot() StatsSnapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return StatsSnapshot{
		Profit:        s.profit,
		Revenue:       s.revenue,
		Refunded:      s.refunded,
		DailyProfit:   s.dailyProfit,
		DailyRevenue:  s.dailyRevenue,
		DailyRefunded: s.dailyRefunded,
	}
}

// CloseDay folds the day's net into the lifetime profit, returns the
// resulting snapshot and resets the daily figures.
func (s *Stats) CloseDay() StatsSnapshot {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.dailyProfit = s.dailyRevenue - s.dailyRefunded
	s.profit += s.dailyProfit

	snap := StatsSnapshot{
		Profit:        s.profit,
		Revenue:       s.revenue,
		Refunded:      s.refunded,
		DailyProfit:   s.dailyProfit,
		DailyRevenue:  s.dailyRevenue,
		DailyRefunded: s.dailyRefunded,
	}

	s.dailyProfit = 0
	s.dailyRevenue = 0
	s.dailyRefunded = 0

	return snap
}
