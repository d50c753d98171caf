package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vapor_records_processed_total",
			Help: "İşlenen toplu kayıt sayısı",
		},
		[]string{"type", "status"},
	)

	RecordWarningsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vapor_record_warnings_total",
			Help: "Kayıt işlenirken üretilen uyarı sayısı",
		},
	)

	MarketUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vapor_market_users",
			Help: "Pazardaki kayıtlı kullanıcı sayısı",
		},
	)

	AuctionSaleActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vapor_auction_sale_active",
			Help: "Mezat indirimi etkin mi (1 etkin, 0 değil)",
		},
	)
)
