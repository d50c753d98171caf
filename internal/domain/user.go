package domain

import "fmt"

const (
	// MaxCredit is the lifetime balance cap in minor currency units.
	MaxCredit int64 = 99_999_999
	// MaxDailyCredit is the per-day top-up allowance in minor currency units.
	MaxDailyCredit int64 = 100_000
)

type UserType string

const (
	UserTypeBuyer  UserType = "BS"
	UserTypeSeller UserType = "SS"
	UserTypeFull   UserType = "FS"
	UserTypeAdmin  UserType = "AA"
)

var userTypeNames = map[UserType]string{
	UserTypeBuyer:  "BUYER",
	UserTypeSeller: "SELLER",
	UserTypeFull:   "FULL",
	UserTypeAdmin:  "ADMIN",
}

func ParseUserType(code string) (UserType, bool) {
	t := UserType(code)
	_, ok := userTypeNames[t]
	return t, ok
}

func (t UserType) String() string {
	if name, ok := userTypeNames[t]; ok {
		return name
	}
	return string(t)
}

func (t UserType) IsBuyer() bool {
	return t == UserTypeBuyer || t == UserTypeFull || t == UserTypeAdmin
}

func (t UserType) IsSeller() bool {
	return t == UserTypeSeller || t == UserTypeFull || t == UserTypeAdmin
}

func (t UserType) IsPrivileged() bool {
	return t == UserTypeAdmin
}

// User couples an identity with a credit ledger and the role capabilities
// its type grants. Capabilities are delegate components, not subclasses: a
// buyer-capable user carries a BuyerComponent owning an Inventory, a
// seller-capable user a SellerComponent owning a StoreFront.
type User struct {
	username       string
	userType       UserType
	credit         int64
	dailyAllowance int64

	buyer  *BuyerComponent
	seller *SellerComponent
}

func NewUser(username string, credit int64, userType UserType) *User {
	u := &User{
		username:       username,
		userType:       userType,
		credit:         credit,
		dailyAllowance: MaxDailyCredit,
	}

	if userType.IsBuyer() {
		u.buyer = newBuyerComponent(u)
	}
	if userType.IsSeller() {
		u.seller = newSellerComponent(u)
	}

	return u
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Type() UserType {
	return u.userType
}

func (u *User) Credit() int64 {
	return u.credit
}

func (u *User) DailyAllowance() int64 {
	return u.dailyAllowance
}

// Buyer returns the purchase capability, nil for non-buyer types.
func (u *User) Buyer() *BuyerComponent {
	return u.buyer
}

// Seller returns the sale capability, nil for non-seller types.
func (u *User) Seller() *SellerComponent {
	return u.seller
}

// ForceAddCredit credits the balance clamped to MaxCredit. It never fails;
// the caller compares the returned amount against the requested one.
func (u *User) ForceAddCredit(amount int64) int64 {
	space := MaxCredit - u.credit

	if amount > space {
		amount = space
	}

	u.credit += amount

	return amount
}

// AddCredit credits the balance subject to the daily allowance. The balance
// is untouched when the requested amount exceeds what remains today.
func (u *User) AddCredit(amount int64) (int64, error) {
	if amount > u.dailyAllowance {
		return 0, fmt.Errorf("%w: istenen %d, kalan %d", ErrDailyLimitExceeded, amount, u.dailyAllowance)
	}

	credited := u.ForceAddCredit(amount)
	u.dailyAllowance -= credited

	return credited, nil
}

// Charge deducts price from the balance; no partial deduction on failure.
func (u *User) Charge(price int64) error {
	if price > u.credit {
		return fmt.Errorf("%w: gereken %d, mevcut %d", ErrInsufficientFunds, price, u.credit)
	}

	u.credit -= price

	return nil
}

// RestoreDailyAllowance reinstates a persisted allowance on snapshot load.
func (u *User) RestoreDailyAllowance(remaining int64) {
	u.dailyAllowance = remaining
}

// EndDay resets the daily top-up allowance.
func (u *User) EndDay() {
	u.dailyAllowance = MaxDailyCredit
}

// BuyerComponent encapsulates purchase behaviour shared by all
// buyer-capable user types.
type BuyerComponent struct {
	user      *User
	inventory *Inventory
}

func newBuyerComponent(user *User) *BuyerComponent {
	return &BuyerComponent{
		user:      user,
		inventory: NewInventory(),
	}
}

func (b *BuyerComponent) Inventory() *Inventory {
	return b.inventory
}

// Buy charges the user the listing's sale price and places the game in the
// pending inventory. Ownership is checked before charging so a rejected
// purchase leaves the balance untouched.
func (b *BuyerComponent) Buy(listing Listing, auctionSale bool) error {
	gameID := listing.Game.Name

	if b.inventory.Contains(gameID) {
		return fmt.Errorf("%w: %s", ErrDuplicateCopy, gameID)
	}

	if err := b.user.Charge(listing.SalePrice(auctionSale)); err != nil {
		return err
	}

	return b.inventory.AddGame(listing.Game)
}

// CreditRefund credits a refund up to the lifetime cap and returns the
// amount actually issued.
func (b *BuyerComponent) CreditRefund(amount int64) int64 {
	return b.user.ForceAddCredit(amount)
}

// SellerComponent encapsulates sale behaviour shared by all seller-capable
// user types.
type SellerComponent struct {
	user       *User
	storeFront *StoreFront
}

func newSellerComponent(user *User) *SellerComponent {
	return &SellerComponent{
		user:       user,
		storeFront: NewStoreFront(),
	}
}

func (s *SellerComponent) StoreFront() *StoreFront {
	return s.storeFront
}

func (s *SellerComponent) List(listing Listing) error {
	return s.storeFront.AddListing(listing)
}

func (s *SellerComponent) Listing(gameID string) (Listing, error) {
	return s.storeFront.Get(gameID)
}

// Sell credits the seller the sale price, clamped to the lifetime cap, and
// returns the amount actually credited.
func (s *SellerComponent) Sell(listing Listing, auctionSale bool) int64 {
	return s.user.ForceAddCredit(listing.SalePrice(auctionSale))
}

// ChargeRefund deducts a refund from the seller; fails without effect on
// insufficient funds.
func (s *SellerComponent) ChargeRefund(amount int64) error {
	return s.user.Charge(amount)
}
