package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vapor/internal/domain"
)

func exportMarket(t *testing.T) *domain.Market {
	t.Helper()

	market := domain.NewMarket()

	admin := domain.NewUser("admin01", 5000, domain.UserTypeAdmin)
	require.NoError(t, admin.Buyer().Inventory().AddGame(domain.Game{Name: "Celeste"}))
	admin.Buyer().Inventory().EndDay()

	buyer := domain.NewUser("buyer01", 12000, domain.UserTypeBuyer)
	require.NoError(t, buyer.Buyer().Inventory().AddGame(domain.Game{Name: "Hades"}))
	require.NoError(t, buyer.Buyer().Inventory().AddGame(domain.Game{Name: "Stardew Valley"}))
	buyer.Buyer().Inventory().EndDay()

	full := domain.NewUser("full01", 250000, domain.UserTypeFull)
	require.NoError(t, full.Buyer().Inventory().AddGame(domain.Game{Name: "Celeste"}))
	full.Buyer().Inventory().EndDay()
	require.NoError(t, full.Seller().List(domain.NewListing(domain.Game{Name: "Outer Wilds"}, 2499, 0)))
	full.Seller().StoreFront().EndDay()

	seller := domain.NewUser("seller01", 0, domain.UserTypeSeller)
	require.NoError(t, seller.Seller().List(domain.NewListing(domain.Game{Name: "Hades"}, 1999, 10.5)))
	seller.Seller().StoreFront().EndDay()

	for _, user := range []*domain.User{seller, full, buyer, admin} {
		require.NoError(t, market.ForceAddUser(user))
	}

	return market
}

func TestExportUsersJSON(t *testing.T) {
	market := exportMarket(t)
	path := filepath.Join(t.TempDir(), "users.json")

	svc := NewReportService(testLogger())
	require.NoError(t, svc.ExportUsersJSON(market, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "users_export", data)
}

func TestWriteStats(t *testing.T) {
	market := domain.NewMarket()
	market.Stats().AddRevenue(7500)
	market.Stats().AddRefunded(1000)

	path := filepath.Join(t.TempDir(), "stats.txt")

	svc := NewReportService(testLogger())
	require.NoError(t, svc.WriteStats(market, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "65.00\n75.00\n10.00\n65.00\n75.00\n10.00\n", string(data))

	// A second day with no trade keeps the lifetime figures.
	require.NoError(t, svc.WriteStats(market, path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "65.00\n75.00\n10.00\n0.00\n0.00\n0.00\n", string(data))
}
