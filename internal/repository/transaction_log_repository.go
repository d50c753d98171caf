package repository

import (
	"database/sql"
	"fmt"
	"time"

	"vapor/internal/domain"
	"vapor/pkg/logger"
)

type transactionLogRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewTransactionLogRepository(db *sql.DB, logger logger.Logger) domain.TransactionLogRepository {
	return &transactionLogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *transactionLogRepository) Create(log *domain.TransactionLog) error {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	result, err := r.db.Exec(
		"INSERT INTO transaction_logs (code, raw_record, status, detail, created_at) VALUES ($1, $2, $3, $4, $5)",
		log.Code, log.RawRecord, string(log.Status), log.Detail, log.CreatedAt,
	)
	if err != nil {
		r.logger.Error("İşlem kaydı oluşturulamadı", map[string]interface{}{"code": log.Code, "error": err.Error()})
		return fmt.Errorf("işlem kaydı oluşturulamadı: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("işlem kaydı kimliği alınamadı: %w", err)
	}
	log.ID = id

	return nil
}

func (r *transactionLogRepository) FindAll(limit, offset int) ([]*domain.TransactionLog, error) {
	rows, err := r.db.Query(
		"SELECT id, code, raw_record, status, detail, created_at FROM transaction_logs ORDER BY id LIMIT $1 OFFSET $2",
		limit, offset,
	)
	if err != nil {
		r.logger.Error("İşlem kayıtları okunamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("işlem kayıtları okunamadı: %w", err)
	}
	defer rows.Close()

	var logs []*domain.TransactionLog
	for rows.Next() {
		var log domain.TransactionLog
		var status string
		var detail sql.NullString
		if err := rows.Scan(&log.ID, &log.Code, &log.RawRecord, &status, &detail, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("işlem kaydı satırı okunamadı: %w", err)
		}
		log.Status = domain.TransactionLogStatus(status)
		log.Detail = detail.String
		logs = append(logs, &log)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
