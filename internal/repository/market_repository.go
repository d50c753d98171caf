package repository

import (
	"database/sql"
	"fmt"
	"time"

	"vapor/internal/domain"
	"vapor/pkg/logger"
)

type marketRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewMarketRepository(db *sql.DB, logger logger.Logger) domain.MarketRepository {
	return &marketRepository{
		db:     db,
		logger: logger,
	}
}

func (r *marketRepository) Load() (*domain.Market, bool, error) {
	var saleActivated bool
	err := r.db.QueryRow("SELECT sale_activated FROM market_state WHERE id = 1").Scan(&saleActivated)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("Pazar durumu okunamadı", map[string]interface{}{"error": err.Error()})
		return nil, false, fmt.Errorf("pazar durumu okunamadı: %w", err)
	}

	market := domain.NewMarket()
	market.SetAuctionSale(saleActivated)

	if err := r.loadUsers(market); err != nil {
		return nil, false, err
	}
	if err := r.loadInventories(market); err != nil {
		return nil, false, err
	}
	if err := r.loadStorefronts(market); err != nil {
		return nil, false, err
	}
	if err := r.loadStats(market); err != nil {
		return nil, false, err
	}

	r.logger.Info("Pazar veritabanından yüklendi", map[string]interface{}{"users": len(market.Users())})
	return market, true, nil
}

func (r *marketRepository) loadUsers(market *domain.Market) error {
	rows, err := r.db.Query("SELECT username, user_type, credit, daily_allowance FROM users ORDER BY username")
	if err != nil {
		r.logger.Error("Kullanıcılar okunamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("kullanıcılar okunamadı: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var username, typeCode string
		var credit, allowance int64
		if err := rows.Scan(&username, &typeCode, &credit, &allowance); err != nil {
			return fmt.Errorf("kullanıcı satırı okunamadı: %w", err)
		}

		userType, ok := domain.ParseUserType(typeCode)
		if !ok {
			return fmt.Errorf("bilinmeyen kullanıcı tipi: %s", typeCode)
		}

		user := domain.NewUser(username, credit, userType)
		user.RestoreDailyAllowance(allowance)
		if err := market.ForceAddUser(user); err != nil {
			return err
		}
	}

	return rows.Err()
}

func (r *marketRepository) loadInventories(market *domain.Market) error {
	rows, err := r.db.Query("SELECT username, game_name FROM inventories ORDER BY username, game_name")
	if err != nil {
		r.logger.Error("Envanterler okunamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("envanterler okunamadı: %w", err)
	}
	defer rows.Close()

	touched := make(map[string]*domain.Inventory)
	for rows.Next() {
		var username, gameName string
		if err := rows.Scan(&username, &gameName); err != nil {
			return fmt.Errorf("envanter satırı okunamadı: %w", err)
		}

		buyer, err := market.GetBuyer(username)
		if err != nil {
			return err
		}
		if err := buyer.Buyer().Inventory().AddGame(domain.Game{Name: gameName}); err != nil {
			return err
		}
		touched[username] = buyer.Buyer().Inventory()
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, inventory := range touched {
		inventory.EndDay()
	}
	return nil
}

func (r *marketRepository) loadStorefronts(market *domain.Market) error {
	rows, err := r.db.Query("SELECT username, game_name, price, discount FROM storefronts ORDER BY username, game_name")
	if err != nil {
		r.logger.Error("Vitrinler okunamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("vitrinler okunamadı: %w", err)
	}
	defer rows.Close()

	touched := make(map[string]*domain.StoreFront)
	for rows.Next() {
		var username, gameName string
		var price int64
		var discount float64
		if err := rows.Scan(&username, &gameName, &price, &discount); err != nil {
			return fmt.Errorf("vitrin satırı okunamadı: %w", err)
		}

		seller, err := market.GetSeller(username)
		if err != nil {
			return err
		}
		listing := domain.NewListing(domain.Game{Name: gameName}, price, discount)
		if err := seller.Seller().StoreFront().AddListing(listing); err != nil {
			return err
		}
		touched[username] = seller.Seller().StoreFront()
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, storeFront := range touched {
		storeFront.EndDay()
	}
	return nil
}

func (r *marketRepository) loadStats(market *domain.Market) error {
	var snap domain.StatsSnapshot
	err := r.db.QueryRow(
		"SELECT profit, revenue, refunded, daily_profit, daily_revenue, daily_refunded FROM market_stats WHERE id = 1",
	).Scan(&snap.Profit, &snap.Revenue, &snap.Refunded, &snap.DailyProfit, &snap.DailyRevenue, &snap.DailyRefunded)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		r.logger.Error("Pazar istatistikleri okunamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("pazar istatistikleri okunamadı: %w", err)
	}

	market.RestoreStats(domain.RestoreStatsFrom(snap))
	return nil
}

func (r *marketRepository) Save(market *domain.Market) error {
	tx, err := r.db.Begin()
	if err != nil {
		r.logger.Error("Kayıt işlemi başlatılamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("kayıt işlemi başlatılamadı: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"users", "inventories", "storefronts", "market_state", "market_stats"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("%s tablosu temizlenemedi: %w", table, err)
		}
	}

	for _, user := range market.Users() {
		_, err := tx.Exec(
			"INSERT INTO users (username, user_type, credit, daily_allowance) VALUES ($1, $2, $3, $4)",
			user.Username(), string(user.Type()), user.Credit(), user.DailyAllowance(),
		)
		if err != nil {
			return fmt.Errorf("kullanıcı kaydedilemedi: %w", err)
		}

		if user.Type().IsBuyer() {
			for _, game := range user.Buyer().Inventory().Entries() {
				_, err := tx.Exec(
					"INSERT INTO inventories (username, game_name) VALUES ($1, $2)",
					user.Username(), game.Name,
				)
				if err != nil {
					return fmt.Errorf("envanter kaydedilemedi: %w", err)
				}
			}
		}

		if user.Type().IsSeller() {
			for _, listing := range user.Seller().StoreFront().Entries() {
				_, err := tx.Exec(
					"INSERT INTO storefronts (username, game_name, price, discount) VALUES ($1, $2, $3, $4)",
					user.Username(), listing.Game.Name, listing.Price, listing.Discount,
				)
				if err != nil {
					return fmt.Errorf("vitrin kaydedilemedi: %w", err)
				}
			}
		}
	}

	_, err = tx.Exec(
		"INSERT INTO market_state (id, sale_activated, saved_at) VALUES (1, $1, $2)",
		market.AuctionSale(), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("pazar durumu kaydedilemedi: %w", err)
	}

	snap := market.Stats().Snapshot()
	_, err = tx.Exec(
		"INSERT INTO market_stats (id, profit, revenue, refunded, daily_profit, daily_revenue, daily_refunded) VALUES (1, $1, $2, $3, $4, $5, $6)",
		snap.Profit, snap.Revenue, snap.Refunded, snap.DailyProfit, snap.DailyRevenue, snap.DailyRefunded,
	)
	if err != nil {
		return fmt.Errorf("pazar istatistikleri kaydedilemedi: %w", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Kayıt işlemi tamamlanamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("kayıt işlemi tamamlanamadı: %w", err)
	}

	r.logger.Info("Pazar veritabanına kaydedildi", map[string]interface{}{"users": len(market.Users())})
	return nil
}
