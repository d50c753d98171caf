package main

import (
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"vapor/internal/domain"
	"vapor/pkg/factory"
)

func main() {
	appFactory, err := factory.NewFactory()
	if err != nil {
		fmt.Printf("Factory oluşturulamadı: %v\n", err)
		os.Exit(1)
	}

	log := appFactory.GetLogger()
	cfg := appFactory.GetConfig()
	db := appFactory.GetDB()

	defer db.Close()

	log.Info("Uygulama başlatılıyor", map[string]interface{}{"env": cfg.AppEnv})

	if err := appFactory.GetMigrationService().RunMigrations(); err != nil {
		log.Fatal("Migrationlar uygulanamadı", map[string]interface{}{"error": err.Error()})
	}

	marketRepository := appFactory.GetMarketRepository()

	if len(os.Args) > 1 {
		seeded, err := appFactory.GetSeedService().BuildMarket(os.Args[1])
		if err != nil {
			log.Fatal("Pazar kurulumu başarısız", map[string]interface{}{"path": os.Args[1], "error": err.Error()})
		}
		if err := marketRepository.Save(seeded); err != nil {
			log.Fatal("Kurulan pazar kaydedilemedi", map[string]interface{}{"error": err.Error()})
		}
	}

	market, found, err := marketRepository.Load()
	if err != nil {
		log.Fatal("Pazar yüklenemedi", map[string]interface{}{"error": err.Error()})
	}
	if !found {
		log.Info("Kayıtlı pazar bulunamadı, boş pazar ile başlanıyor", map[string]interface{}{})
		market = domain.NewMarket()
	}

	result, err := appFactory.GetBatchService().ProcessFile(cfg.Market.TransactionsFile, market)
	if err != nil {
		log.Fatal("Günlük işlem dosyası işlenemedi", map[string]interface{}{"path": cfg.Market.TransactionsFile, "error": err.Error()})
	}

	log.Info("Gün sonu kapanışı yapılıyor", map[string]interface{}{
		"processed": result.Processed,
		"failed":    result.Failed,
		"warnings":  result.Warnings,
	})
	market.EndDay()

	reportService := appFactory.GetReportService()
	if err := reportService.ExportUsersJSON(market, cfg.Market.UsersJSONFile); err != nil {
		log.Error("Kullanıcı raporu oluşturulamadı", map[string]interface{}{"error": err.Error()})
	}
	if err := reportService.WriteStats(market, cfg.Market.StatsFile); err != nil {
		log.Error("İstatistik raporu oluşturulamadı", map[string]interface{}{"error": err.Error()})
	}

	if err := marketRepository.Save(market); err != nil {
		log.Fatal("Pazar kaydedilemedi", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Gün başarıyla tamamlandı", map[string]interface{}{})
}
