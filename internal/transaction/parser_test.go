package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vapor/internal/domain"
)

func TestParseLogin(t *testing.T) {
	raw := record("00", userField("admin01"), "AA", creditField(1000))

	tx, err := Parse(raw)
	require.NoError(t, err)

	login, ok := tx.(*LoginTransaction)
	require.True(t, ok)
	assert.Equal(t, TypeLogin, login.Type())
	assert.Equal(t, "admin01", login.userID1)
	assert.Equal(t, domain.UserTypeAdmin, login.userType)
	assert.Equal(t, int64(1000), login.credit)
	assert.Equal(t, "LOGIN: ("+raw+")", login.Context())
}

func TestParseSell(t *testing.T) {
	raw := record("03", gameField("Hades"), userField("seller01"), discountField(10), priceField(1999))

	tx, err := Parse(raw)
	require.NoError(t, err)

	sell, ok := tx.(*SellTransaction)
	require.True(t, ok)
	assert.Equal(t, "Hades", sell.gameID)
	assert.Equal(t, "seller01", sell.userID1)
	assert.Equal(t, 10.0, sell.discount)
	assert.Equal(t, int64(1999), sell.price)
}

func TestParseBuy(t *testing.T) {
	raw := record("04", gameField("Hades"), userField("seller01"), userField("buyer01"))

	tx, err := Parse(raw)
	require.NoError(t, err)

	buy, ok := tx.(*BuyTransaction)
	require.True(t, ok)
	assert.Equal(t, "Hades", buy.gameID)
	assert.Equal(t, "seller01", buy.userID1)
	assert.Equal(t, "buyer01", buy.userID2)
}

func TestParseRefund(t *testing.T) {
	raw := record("05", userField("buyer01"), userField("seller01"), creditField(2500))

	tx, err := Parse(raw)
	require.NoError(t, err)

	refund, ok := tx.(*RefundTransaction)
	require.True(t, ok)
	assert.Equal(t, "buyer01", refund.userID1)
	assert.Equal(t, "seller01", refund.userID2)
	assert.Equal(t, int64(2500), refund.credit)
}

func TestParseRemoveBlankTarget(t *testing.T) {
	// The trailing user field of a remove record may be all spaces.
	raw := record("08", gameField("Hades"), userField("seller01"), userField(""))

	tx, err := Parse(raw)
	require.NoError(t, err)

	remove, ok := tx.(*RemoveTransaction)
	require.True(t, ok)
	assert.Equal(t, "seller01", remove.userID1)
	assert.Equal(t, "", remove.userID2)
}

func TestParseAllCodes(t *testing.T) {
	tests := []struct {
		raw  string
		want Type
	}{
		{record("00", userField("u1"), "BS", creditField(0)), TypeLogin},
		{record("01", userField("u1"), "BS", creditField(0)), TypeCreate},
		{record("02", userField("u1"), "BS", creditField(0)), TypeDelete},
		{record("03", gameField("g1"), userField("u1"), discountField(0), priceField(0)), TypeSell},
		{record("04", gameField("g1"), userField("u1"), userField("u2")), TypeBuy},
		{record("05", userField("u1"), userField("u2"), creditField(0)), TypeRefund},
		{record("06", userField("u1"), "BS", creditField(0)), TypeAddCredit},
		{record("07", userField("u1"), "AA", creditField(0)), TypeAuctionSale},
		{record("08", gameField("g1"), userField("u1"), userField("")), TypeRemove},
		{record("09", gameField("g1"), userField("u1"), userField("u2")), TypeGift},
		{record("10", userField("u1"), "BS", creditField(0)), TypeLogout},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			tx, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tx.Type())
		})
	}
}

func TestParseDecodesMinorUnits(t *testing.T) {
	tests := []struct {
		field string
		want  int64
	}{
		{"000010.00", 1000},
		{"000000.05", 5},
		{"999999.99", 99999999},
		{"000000.00", 0},
	}

	for _, tt := range tests {
		tx, err := Parse(record("06", userField("u1"), "BS", tt.field))
		require.NoError(t, err)
		assert.Equal(t, tt.want, tx.(*AddCreditTransaction).credit, tt.field)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"no code", "xx"},
		{"single digit code", "0"},
		{"unknown code", record("99", userField("u1"), "BS", creditField(0))},
		{"short username", record("00", "u1", "BS", creditField(0))},
		{"unknown user type", record("00", userField("u1"), "ZZ", creditField(0))},
		{"credit too narrow", record("00", userField("u1"), "BS", "010.00")},
		{"trailing garbage", record("00", userField("u1"), "BS", creditField(0)) + "x"},
		{"username starts with space", record("00", " "+userField("u1")[:14], "BS", creditField(0))},
		{"missing fields", record("03", gameField("g1"), userField("u1"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}
