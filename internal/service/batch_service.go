package service

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"vapor/internal/domain"
	"vapor/internal/transaction"
	"vapor/pkg/logger"
	"vapor/pkg/metrics"
)

// BatchResult, bir toplu işlem dosyasının işlenme özetini taşır.
type BatchResult struct {
	Processed int
	Failed    int
	Warnings  int
}

type BatchService interface {
	ProcessFile(path string, market *domain.Market) (BatchResult, error)
	ProcessReader(reader io.Reader, market *domain.Market) (BatchResult, error)
}

type batchService struct {
	logger   logger.Logger
	reporter logger.Reporter
	txLogs   domain.TransactionLogRepository
}

func NewBatchService(logger logger.Logger, reporter logger.Reporter, txLogs domain.TransactionLogRepository) BatchService {
	return &batchService{
		logger:   logger,
		reporter: reporter,
		txLogs:   txLogs,
	}
}

func (s *batchService) ProcessFile(path string, market *domain.Market) (BatchResult, error) {
	file, err := os.Open(path)
	if err != nil {
		s.logger.Error("İşlem dosyası açılamadı", map[string]interface{}{"path": path, "error": err.Error()})
		return BatchResult{}, fmt.Errorf("işlem dosyası açılamadı: %w", err)
	}
	defer file.Close()

	return s.ProcessReader(file, market)
}

func (s *batchService) ProcessReader(reader io.Reader, market *domain.Market) (BatchResult, error) {
	var result BatchResult
	reporter := &countingReporter{next: s.reporter, warnings: &result.Warnings}
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		result.Processed++
		if err := s.processRecord(line, market, reporter); err != nil {
			result.Failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("işlem dosyası okunamadı: %w", err)
	}

	metrics.MarketUsers.Set(float64(len(market.Users())))
	if market.AuctionSale() {
		metrics.AuctionSaleActive.Set(1)
	} else {
		metrics.AuctionSaleActive.Set(0)
	}

	s.logger.Info("Toplu işlem tamamlandı", map[string]interface{}{
		"processed": result.Processed,
		"failed":    result.Failed,
	})
	return result, nil
}

func (s *batchService) processRecord(line string, market *domain.Market, reporter logger.Reporter) error {
	tx, err := transaction.Parse(line)
	if err != nil {
		reporter.Report(logger.ReportError, "["+line+"]", err.Error())
		metrics.RecordsProcessedTotal.WithLabelValues("UNKNOWN", string(domain.TransactionLogFailed)).Inc()
		s.journal(recordCode(line), line, domain.TransactionLogFailed, err.Error())
		return err
	}

	if err := tx.Execute(market, reporter); err != nil {
		reporter.Report(logger.ReportError, tx.Context(), err.Error())
		metrics.RecordsProcessedTotal.WithLabelValues(tx.Type().String(), string(domain.TransactionLogFailed)).Inc()
		s.journal(recordCode(line), line, domain.TransactionLogFailed, err.Error())
		return err
	}

	metrics.RecordsProcessedTotal.WithLabelValues(tx.Type().String(), string(domain.TransactionLogProcessed)).Inc()
	s.journal(recordCode(line), line, domain.TransactionLogProcessed, "")
	return nil
}

func (s *batchService) journal(code, raw string, status domain.TransactionLogStatus, detail string) {
	if s.txLogs == nil {
		return
	}

	log := &domain.TransactionLog{
		Code:      code,
		RawRecord: raw,
		Status:    status,
		Detail:    detail,
	}
	if err := s.txLogs.Create(log); err != nil {
		s.logger.Warn("İşlem günlüğü yazılamadı", map[string]interface{}{"code": code, "error": err.Error()})
	}
}

func recordCode(line string) string {
	if len(line) < 2 {
		return ""
	}
	return line[:2]
}

// countingReporter, uyarıları sayarak raporları asıl raporlayıcıya iletir.
type countingReporter struct {
	next     logger.Reporter
	warnings *int
}

func (c *countingReporter) Report(kind logger.ReportKind, context, message string) {
	if kind == logger.ReportWarning {
		*c.warnings++
		metrics.RecordWarningsTotal.Inc()
	}
	c.next.Report(kind, context, message)
}
