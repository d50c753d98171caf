package transaction

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vapor/internal/domain"
	"vapor/pkg/logger"
)

// fakeReporter captures reports for assertions instead of logging them.
type fakeReporter struct {
	errors   []string
	warnings []string
}

func (r *fakeReporter) Report(kind logger.ReportKind, context, message string) {
	entry := context + " " + message
	if kind == logger.ReportWarning {
		r.warnings = append(r.warnings, entry)
		return
	}
	r.errors = append(r.errors, entry)
}

func userField(name string) string {
	return fmt.Sprintf("%-15s", name)
}

func gameField(name string) string {
	return fmt.Sprintf("%-25s", name)
}

func creditField(minor int64) string {
	return fmt.Sprintf("%09.2f", float64(minor)/100)
}

func priceField(minor int64) string {
	return fmt.Sprintf("%06.2f", float64(minor)/100)
}

func discountField(percent float64) string {
	return fmt.Sprintf("%05.2f", percent)
}

func record(parts ...string) string {
	return strings.Join(parts, " ")
}

func mustExecute(t *testing.T, market *domain.Market, reporter logger.Reporter, raw string) {
	t.Helper()

	tx, err := Parse(raw)
	require.NoError(t, err)
	require.NoError(t, tx.Execute(market, reporter))
}

func executeErr(t *testing.T, market *domain.Market, reporter logger.Reporter, raw string) error {
	t.Helper()

	tx, err := Parse(raw)
	require.NoError(t, err)
	return tx.Execute(market, reporter)
}
