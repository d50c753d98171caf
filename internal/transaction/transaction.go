package transaction

import (
	"fmt"

	"vapor/internal/domain"
	"vapor/pkg/logger"
)

// Type is the numeric command code carried in a record's first field.
type Type int

const (
	TypeLogin       Type = 0
	TypeCreate      Type = 1
	TypeDelete      Type = 2
	TypeSell        Type = 3
	TypeBuy         Type = 4
	TypeRefund      Type = 5
	TypeAddCredit   Type = 6
	TypeAuctionSale Type = 7
	TypeRemove      Type = 8
	TypeGift        Type = 9
	TypeLogout      Type = 10
)

var typeNames = map[Type]string{
	TypeLogin:       "LOGIN",
	TypeCreate:      "CREATE",
	TypeDelete:      "DELETE",
	TypeSell:        "SELL",
	TypeBuy:         "BUY",
	TypeRefund:      "REFUND",
	TypeAddCredit:   "ADD_CREDIT",
	TypeAuctionSale: "AUCTION_SALE",
	TypeRemove:      "REMOVE",
	TypeGift:        "GIFT",
	TypeLogout:      "LOGOUT",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE(%d)", int(t))
}

// typeSpec couples a code's grammar with its command constructor, keeping
// the code → layout → construction dispatch in one table.
type typeSpec struct {
	txType   Type
	sequence *sequence
	build    func(base base) Transaction
}

var typeTable = map[int]typeSpec{
	0:  {TypeLogin, sequenceXUTC, func(b base) Transaction { return &LoginTransaction{base: b} }},
	1:  {TypeCreate, sequenceXUTC, func(b base) Transaction { return &CreateTransaction{base: b} }},
	2:  {TypeDelete, sequenceXUTC, func(b base) Transaction { return &DeleteTransaction{base: b} }},
	3:  {TypeSell, sequenceXISDP, func(b base) Transaction { return &SellTransaction{base: b} }},
	4:  {TypeBuy, sequenceXISU, func(b base) Transaction { return &BuyTransaction{base: b} }},
	5:  {TypeRefund, sequenceXUSC, func(b base) Transaction { return &RefundTransaction{base: b} }},
	6:  {TypeAddCredit, sequenceXUTC, func(b base) Transaction { return &AddCreditTransaction{base: b} }},
	7:  {TypeAuctionSale, sequenceXUTC, func(b base) Transaction { return &AuctionSaleTransaction{base: b} }},
	8:  {TypeRemove, sequenceXIUS, func(b base) Transaction { return &RemoveTransaction{base: b} }},
	9:  {TypeGift, sequenceXISU, func(b base) Transaction { return &GiftTransaction{base: b} }},
	10: {TypeLogout, sequenceXUTC, func(b base) Transaction { return &LogoutTransaction{base: b} }},
}

// Transaction applies one parsed record to the market. Execute returns a
// rule-violation error without partial effects on failure; non-fatal
// anomalies are emitted through the reporter.
type Transaction interface {
	Type() Type
	Context() string
	Execute(market *domain.Market, reporter logger.Reporter) error
}

// base carries the decoded record fields shared by every command.
type base struct {
	txType Type
	raw    string

	userID1  string
	userID2  string
	userType domain.UserType
	credit   int64

	gameID   string
	price    int64
	discount float64
}

func (b *base) Type() Type {
	return b.txType
}

// Context identifies the command and the raw record for reporting.
func (b *base) Context() string {
	return b.txType.String() + ": (" + b.raw + ")"
}

func (b *base) warn(reporter logger.Reporter, message string) {
	reporter.Report(logger.ReportWarning, b.Context(), message)
}

// warnMaxBalance compares the intended credit delta against the amount
// actually issued and warns when the lifetime cap clamped it.
func (b *base) warnMaxBalance(reporter logger.Reporter, intended, credited int64) {
	if credited != intended {
		b.warn(reporter, fmt.Sprintf(
			"İstenen tutar maksimum bakiyeyi aşıyor. %.2f yerine %.2f eklendi.",
			float64(intended)/100.0, float64(credited)/100.0))
	}
}

// Desync warnings flag record fields that disagree with the system's
// authoritative state; the system always wins.
func (b *base) warnDesync(reporter logger.Reporter, field, expected, actual string) {
	if expected != actual {
		b.warn(reporter, fmt.Sprintf(
			"Olası veri uyuşmazlığı: kullanıcı %s (%s) kayıttaki değerle (%s) eşleşmiyor.",
			field, expected, actual))
	}
}

func (b *base) warnUsernameDesync(reporter logger.Reporter, user *domain.User) {
	b.warnDesync(reporter, "adı", user.Username(), b.userID1)
}

func (b *base) warnUserTypeDesync(reporter logger.Reporter, user *domain.User) {
	b.warnDesync(reporter, "tipi", user.Type().String(), b.userType.String())
}

func (b *base) warnUserCreditDesync(reporter logger.Reporter, user *domain.User) {
	if user.Credit() != b.credit {
		b.warnDesync(reporter,
			"bakiyesi",
			fmt.Sprintf("%.2f", float64(user.Credit())/100.0),
			fmt.Sprintf("%.2f", float64(b.credit)/100.0))
	}
}
