package database

import (
	"database/sql"
	"fmt"
	"time"

	"vapor/pkg/logger"
)

type Migration struct {
	ID        int64
	Name      string
	AppliedAt time.Time
}

type MigrationService struct {
	db     *sql.DB
	logger logger.Logger
}

func NewMigrationService(db *sql.DB, logger logger.Logger) *MigrationService {
	return &MigrationService{
		db:     db,
		logger: logger,
	}
}

func (m *MigrationService) InitMigrationTable() error {
	query := `
    CREATE TABLE IF NOT EXISTS migrations (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL UNIQUE,
        applied_at TIMESTAMP NOT NULL
    )
    `

	_, err := m.db.Exec(query)
	if err != nil {
		m.logger.Error("Migration tablosu oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return err
	}

	return nil
}

func (m *MigrationService) IsMigrationApplied(name string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM migrations WHERE name = $1"
	err := m.db.QueryRow(query, name).Scan(&count)
	if err != nil {
		m.logger.Error("Migration durumu kontrol edilemedi", map[string]interface{}{"name": name, "error": err.Error()})
		return false, err
	}

	return count > 0, nil
}

func (m *MigrationService) RecordMigration(name string) error {
	query := "INSERT INTO migrations (name, applied_at) VALUES ($1, $2)"
	_, err := m.db.Exec(query, name, time.Now())
	if err != nil {
		m.logger.Error("Migration kaydedilemedi", map[string]interface{}{"name": name, "error": err.Error()})
		return err
	}

	return nil
}

func (m *MigrationService) ApplyMigration(name string, migrationFunc func(*sql.DB) error) error {
	applied, err := m.IsMigrationApplied(name)
	if err != nil {
		return err
	}

	if applied {
		m.logger.Info("Migration zaten uygulanmış", map[string]interface{}{"name": name})
		return nil
	}

	m.logger.Info("Migration uygulanıyor", map[string]interface{}{"name": name})

	if err := migrationFunc(m.db); err != nil {
		m.logger.Error("Migration uygulanamadı", map[string]interface{}{"name": name, "error": err.Error()})
		return err
	}

	if err := m.RecordMigration(name); err != nil {
		return err
	}

	m.logger.Info("Migration başarıyla uygulandı", map[string]interface{}{"name": name})
	return nil
}

func (m *MigrationService) RunMigrations() error {
	m.logger.Info("Migrationlar başlatılıyor", map[string]interface{}{})

	if err := m.InitMigrationTable(); err != nil {
		return fmt.Errorf("migration tablosu oluşturulamadı: %w", err)
	}

	migrations := []struct {
		name string
		fn   func(*sql.DB) error
	}{
		{"create_users_table", createUsersTable},
		{"create_inventories_table", createInventoriesTable},
		{"create_storefronts_table", createStorefrontsTable},
		{"create_market_state_table", createMarketStateTable},
		{"create_market_stats_table", createMarketStatsTable},
		{"create_transaction_logs_table", createTransactionLogsTable},
	}

	for _, migration := range migrations {
		if err := m.ApplyMigration(migration.name, migration.fn); err != nil {
			return fmt.Errorf("%s migration'ı uygulanamadı: %w", migration.name, err)
		}
	}

	m.logger.Info("Tüm migrationlar tamamlandı", map[string]interface{}{})
	return nil
}

func createUsersTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS users (
        username TEXT PRIMARY KEY,
        user_type TEXT NOT NULL,
        credit INTEGER NOT NULL,
        daily_allowance INTEGER NOT NULL
    )
    `

	_, err := db.Exec(query)
	return err
}

func createInventoriesTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS inventories (
        username TEXT NOT NULL,
        game_name TEXT NOT NULL,
        PRIMARY KEY (username, game_name)
    )
    `

	_, err := db.Exec(query)
	return err
}

func createStorefrontsTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS storefronts (
        username TEXT NOT NULL,
        game_name TEXT NOT NULL,
        price INTEGER NOT NULL,
        discount REAL NOT NULL,
        PRIMARY KEY (username, game_name)
    )
    `

	_, err := db.Exec(query)
	return err
}

func createMarketStateTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS market_state (
        id INTEGER PRIMARY KEY CHECK (id = 1),
        sale_activated INTEGER NOT NULL,
        saved_at TIMESTAMP NOT NULL
    )
    `

	_, err := db.Exec(query)
	return err
}

func createMarketStatsTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS market_stats (
        id INTEGER PRIMARY KEY CHECK (id = 1),
        profit INTEGER NOT NULL,
        revenue INTEGER NOT NULL,
        refunded INTEGER NOT NULL,
        daily_profit INTEGER NOT NULL,
        daily_revenue INTEGER NOT NULL,
        daily_refunded INTEGER NOT NULL
    )
    `

	_, err := db.Exec(query)
	return err
}

func createTransactionLogsTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS transaction_logs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        code TEXT NOT NULL,
        raw_record TEXT NOT NULL,
        status TEXT NOT NULL,
        detail TEXT,
        created_at TIMESTAMP NOT NULL
    )
    `

	_, err := db.Exec(query)
	return err
}
