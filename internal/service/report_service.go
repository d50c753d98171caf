package service

import (
	"encoding/json"
	"fmt"
	"os"

	"vapor/internal/domain"
	"vapor/pkg/logger"
)

// The games and listings arrays appear exactly for the role-capable users,
// empty or not, so the keys are carried as pointers and only nil is omitted.
type userReport struct {
	Username string            `json:"username"`
	Type     string            `json:"type"`
	Balance  int64             `json:"balance"`
	Games    *[]domain.Game    `json:"games,omitempty"`
	Listings *[]domain.Listing `json:"listings,omitempty"`
}

type ReportService interface {
	ExportUsersJSON(market *domain.Market, path string) error
	WriteStats(market *domain.Market, path string) error
}

type reportService struct {
	logger logger.Logger
}

func NewReportService(logger logger.Logger) ReportService {
	return &reportService{logger: logger}
}

func (s *reportService) ExportUsersJSON(market *domain.Market, path string) error {
	reports := make([]userReport, 0, len(market.Users()))
	for _, user := range market.Users() {
		report := userReport{
			Username: user.Username(),
			Type:     string(user.Type()),
			Balance:  user.Credit(),
		}
		if user.Type().IsBuyer() {
			games := user.Buyer().Inventory().Entries()
			report.Games = &games
		}
		if user.Type().IsSeller() {
			listings := user.Seller().StoreFront().Entries()
			report.Listings = &listings
		}
		reports = append(reports, report)
	}

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("kullanıcı raporu oluşturulamadı: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		s.logger.Error("Kullanıcı raporu yazılamadı", map[string]interface{}{"path": path, "error": err.Error()})
		return fmt.Errorf("kullanıcı raporu yazılamadı: %w", err)
	}

	s.logger.Info("Kullanıcı raporu yazıldı", map[string]interface{}{"path": path, "users": len(reports)})
	return nil
}

func (s *reportService) WriteStats(market *domain.Market, path string) error {
	snap := market.Stats().CloseDay()

	content := fmt.Sprintf(
		"%.2f\n%.2f\n%.2f\n%.2f\n%.2f\n%.2f\n",
		currency(snap.Profit),
		currency(snap.Revenue),
		currency(snap.Refunded),
		currency(snap.DailyProfit),
		currency(snap.DailyRevenue),
		currency(snap.DailyRefunded),
	)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		s.logger.Error("İstatistik raporu yazılamadı", map[string]interface{}{"path": path, "error": err.Error()})
		return fmt.Errorf("istatistik raporu yazılamadı: %w", err)
	}

	s.logger.Info("İstatistik raporu yazıldı", map[string]interface{}{"path": path})
	return nil
}

func currency(minor int64) float64 {
	return float64(minor) / 100
}
