package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vapor/internal/domain"
)

func seedUserLine(typeCode, username string, credit int64) string {
	return fmt.Sprintf("%s%-15s%08d", typeCode, username, credit)
}

func seedGameLine(name string) string {
	return fmt.Sprintf("%-25s", name)
}

func seedListingLine(name string, discount float64, price int64) string {
	return fmt.Sprintf("%-25s%05.2f%05d", name, discount, price)
}

func writeSeedFile(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))

	return path
}

func TestBuildMarket(t *testing.T) {
	path := writeSeedFile(t,
		seedUserLine("FS", "full01", 25000),
		"2",
		seedGameLine("Celeste"),
		seedGameLine("Hades"),
		"1",
		seedListingLine("Outer Wilds", 10.5, 2499),
		seedUserLine("SS", "seller01", 0),
		"1",
		seedListingLine("Hades", 0, 1999),
		seedUserLine("BS", "buyer01", 1000),
		"0",
	)

	svc := NewSeedService(testLogger())
	market, err := svc.BuildMarket(path)
	require.NoError(t, err)

	require.Len(t, market.Users(), 3)

	full, err := market.GetUser("full01")
	require.NoError(t, err)
	assert.Equal(t, domain.UserTypeFull, full.Type())
	assert.Equal(t, int64(25000), full.Credit())

	// Seeded catalogues are committed, not pending.
	_, err = full.Buyer().Inventory().Get("Celeste")
	assert.NoError(t, err)
	_, err = full.Buyer().Inventory().Get("Hades")
	assert.NoError(t, err)

	listing, err := full.Seller().Listing("Outer Wilds")
	require.NoError(t, err)
	assert.Equal(t, int64(2499), listing.Price)
	assert.Equal(t, 10.5, listing.Discount)

	seller, err := market.GetUser("seller01")
	require.NoError(t, err)
	listing, err = seller.Seller().Listing("Hades")
	require.NoError(t, err)
	assert.Equal(t, int64(1999), listing.Price)

	buyer, err := market.GetUser("buyer01")
	require.NoError(t, err)
	assert.Empty(t, buyer.Buyer().Inventory().Entries())
}

func TestBuildMarketAdminReadsGamesAndListings(t *testing.T) {
	path := writeSeedFile(t,
		seedUserLine("AA", "admin01", 50000),
		"1",
		seedGameLine("Celeste"),
		"1",
		seedListingLine("Hades", 0, 1999),
	)

	svc := NewSeedService(testLogger())
	market, err := svc.BuildMarket(path)
	require.NoError(t, err)

	admin, err := market.GetUser("admin01")
	require.NoError(t, err)
	assert.True(t, admin.Buyer().Inventory().Contains("Celeste"))
	assert.True(t, admin.Seller().StoreFront().Contains("Hades"))
}

func TestBuildMarketRejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"bad user header", []string{"XX kim bu"}},
		{"bad count", []string{seedUserLine("BS", "buyer01", 0), "iki"}},
		{"bad game record", []string{seedUserLine("BS", "buyer01", 0), "1", " kısa"}},
		{"listing with trailing garbage", []string{
			seedUserLine("SS", "seller01", 0), "1",
			seedListingLine("Hades", 0, 1999) + "X",
		}},
		{"truncated block", []string{seedUserLine("BS", "buyer01", 0), "2", seedGameLine("Celeste")}},
		{"duplicate user", []string{
			seedUserLine("BS", "buyer01", 0), "0",
			seedUserLine("BS", "buyer01", 0), "0",
		}},
		{"duplicate game", []string{
			seedUserLine("BS", "buyer01", 0), "2",
			seedGameLine("Celeste"), seedGameLine("Celeste"),
		}},
	}

	svc := NewSeedService(testLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSeedFile(t, tt.lines...)

			_, err := svc.BuildMarket(path)
			assert.ErrorIs(t, err, ErrInvalidSeedRecord)
		})
	}
}

func TestBuildMarketMissingFile(t *testing.T) {
	svc := NewSeedService(testLogger())

	_, err := svc.BuildMarket(filepath.Join(t.TempDir(), "yok.txt"))
	assert.Error(t, err)
}
