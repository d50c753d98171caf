package factory

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"vapor/internal/config"
	"vapor/internal/database"
	"vapor/internal/domain"
	"vapor/internal/repository"
	"vapor/internal/service"
	"vapor/pkg/logger"
)

type Factory interface {
	GetLogger() logger.Logger
	GetReporter() logger.Reporter
	GetConfig() *config.Config
	GetDB() *sql.DB
	GetMigrationService() *database.MigrationService

	GetMarketRepository() domain.MarketRepository
	GetTransactionLogRepository() domain.TransactionLogRepository

	GetBatchService() service.BatchService
	GetReportService() service.ReportService
	GetSeedService() service.SeedService
}

type AppFactory struct {
	config           *config.Config
	logger           logger.Logger
	reporter         logger.Reporter
	db               *sql.DB
	migrationService *database.MigrationService

	marketRepository         domain.MarketRepository
	transactionLogRepository domain.TransactionLogRepository

	batchService  service.BatchService
	reportService service.ReportService
	seedService   service.SeedService
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı test edilemedi: %w", err)
	}

	factory := &AppFactory{
		config:           cfg,
		logger:           log,
		reporter:         logger.NewReporter(log),
		db:               db,
		migrationService: database.NewMigrationService(db, log),
	}

	factory.initRepositories()
	factory.initServices()

	return factory, nil
}

func openDatabase(cfg *config.Config) (*sql.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite3":
		db, err := sql.Open("sqlite3", cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("veritabanı bağlantısı kurulamadı: %w", err)
		}
		return db, nil
	case "postgres":
		connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.SSLMode)

		db, err := sql.Open("postgres", connStr)
		if err != nil {
			return nil, fmt.Errorf("veritabanı bağlantısı kurulamadı: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("desteklenmeyen veritabanı sürücüsü: %s", cfg.Database.Driver)
	}
}

func (f *AppFactory) initRepositories() {
	f.marketRepository = repository.NewMarketRepository(f.db, f.logger)
	f.transactionLogRepository = repository.NewTransactionLogRepository(f.db, f.logger)
}

func (f *AppFactory) initServices() {
	f.batchService = service.NewBatchService(f.logger, f.reporter, f.transactionLogRepository)
	f.reportService = service.NewReportService(f.logger)
	f.seedService = service.NewSeedService(f.logger)
}

func (f *AppFactory) GetLogger() logger.Logger {
	return f.logger
}

func (f *AppFactory) GetReporter() logger.Reporter {
	return f.reporter
}

func (f *AppFactory) GetConfig() *config.Config {
	return f.config
}

func (f *AppFactory) GetDB() *sql.DB {
	return f.db
}

func (f *AppFactory) GetMigrationService() *database.MigrationService {
	return f.migrationService
}

func (f *AppFactory) GetMarketRepository() domain.MarketRepository {
	return f.marketRepository
}

func (f *AppFactory) GetTransactionLogRepository() domain.TransactionLogRepository {
	return f.transactionLogRepository
}

func (f *AppFactory) GetBatchService() service.BatchService {
	return f.batchService
}

func (f *AppFactory) GetReportService() service.ReportService {
	return f.reportService
}

func (f *AppFactory) GetSeedService() service.SeedService {
	return f.seedService
}
