package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTypeCapabilities(t *testing.T) {
	tests := []struct {
		userType UserType
		isBuyer  bool
		isSeller bool
		admin    bool
	}{
		{UserTypeBuyer, true, false, false},
		{UserTypeSeller, false, true, false},
		{UserTypeFull, true, true, false},
		{UserTypeAdmin, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.userType.String(), func(t *testing.T) {
			assert.Equal(t, tt.isBuyer, tt.userType.IsBuyer())
			assert.Equal(t, tt.isSeller, tt.userType.IsSeller())
			assert.Equal(t, tt.admin, tt.userType.IsPrivileged())

			user := NewUser("someone", 0, tt.userType)
			assert.Equal(t, tt.isBuyer, user.Buyer() != nil)
			assert.Equal(t, tt.isSeller, user.Seller() != nil)
		})
	}
}

func TestAddCreditAccumulates(t *testing.T) {
	user := NewUser("buyer01", 0, UserTypeBuyer)

	credited, err := user.AddCredit(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), credited)

	credited, err = user.AddCredit(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), credited)

	assert.Equal(t, int64(2000), user.Credit())
	assert.Equal(t, MaxDailyCredit-2000, user.DailyAllowance())
}

func TestAddCreditDailyLimit(t *testing.T) {
	user := NewUser("buyer01", 1000, UserTypeBuyer)

	_, err := user.AddCredit(60000)
	require.NoError(t, err)
	_, err = user.AddCredit(20000)
	require.NoError(t, err)

	_, err = user.AddCredit(50000)
	assert.ErrorIs(t, err, ErrDailyLimitExceeded)

	assert.Equal(t, int64(81000), user.Credit())
	assert.Equal(t, int64(20000), user.DailyAllowance())

	user.EndDay()
	assert.Equal(t, MaxDailyCredit, user.DailyAllowance())
}

func TestForceAddCreditClampsAtMax(t *testing.T) {
	user := NewUser("seller01", MaxCredit-500, UserTypeSeller)

	credited := user.ForceAddCredit(2000)

	assert.Equal(t, int64(500), credited)
	assert.Equal(t, MaxCredit, user.Credit())
}

func TestChargeInsufficientFunds(t *testing.T) {
	user := NewUser("buyer01", 300, UserTypeBuyer)

	err := user.Charge(500)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(300), user.Credit())

	require.NoError(t, user.Charge(300))
	assert.Equal(t, int64(0), user.Credit())
}

func TestSalePrice(t *testing.T) {
	listing := NewListing(Game{Name: "Hades"}, 1000, 10)

	assert.Equal(t, int64(1000), listing.SalePrice(false))
	assert.Equal(t, int64(900), listing.SalePrice(true))

	// The discounted amount is truncated, not rounded.
	odd := NewListing(Game{Name: "Celeste"}, 999, 33.33)
	assert.Equal(t, int64(999-332), odd.SalePrice(true))
}

func TestBuyRejectsOwnedCopyBeforeCharging(t *testing.T) {
	user := NewUser("buyer01", 5000, UserTypeBuyer)

	require.NoError(t, user.Buyer().Inventory().AddGame(Game{Name: "Hades"}))

	listing := NewListing(Game{Name: "Hades"}, 1000, 0)
	err := user.Buyer().Buy(listing, false)

	assert.ErrorIs(t, err, ErrDuplicateCopy)
	assert.Equal(t, int64(5000), user.Credit())
}

func TestBuyChargesSalePrice(t *testing.T) {
	user := NewUser("buyer01", 10000, UserTypeBuyer)

	listing := NewListing(Game{Name: "Hades"}, 1000, 10)
	require.NoError(t, user.Buyer().Buy(listing, true))

	assert.Equal(t, int64(9100), user.Credit())
	assert.True(t, user.Buyer().Inventory().Contains("Hades"))
}

func TestSellCreditsSalePrice(t *testing.T) {
	user := NewUser("seller01", 10000, UserTypeSeller)

	listing := NewListing(Game{Name: "Hades"}, 1000, 10)
	credited := user.Seller().Sell(listing, true)

	assert.Equal(t, int64(900), credited)
	assert.Equal(t, int64(10900), user.Credit())
}
