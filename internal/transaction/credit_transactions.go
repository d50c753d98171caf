package transaction

import (
	"fmt"

	"vapor/internal/domain"
	"vapor/pkg/logger"
)

// AddCreditTransaction tops up the resolved target's balance subject to
// the daily allowance.
type AddCreditTransaction struct {
	base
}

func (t *AddCreditTransaction) Execute(market *domain.Market, reporter logger.Reporter) error {
	target, err := market.ResolveTarget(t.userID1)
	if err != nil {
		return err
	}

	credited, err := target.AddCredit(t.credit)
	if err != nil {
		return err
	}

	t.warnMaxBalance(reporter, t.credit, credited)
	t.warnUsernameDesync(reporter, target)
	t.warnUserTypeDesync(reporter, target)

	return nil
}

// AuctionSaleTransaction toggles the market-wide sale flag; requires a
// privileged session.
type AuctionSaleTransaction struct {
	base
}

func (t *AuctionSaleTransaction) Execute(market *domain.Market, reporter logger.Reporter) error {
	if err := market.ToggleAuctionSale(); err != nil {
		return err
	}

	user := market.ActiveUser()
	t.warnUsernameDesync(reporter, user)
	t.warnUserTypeDesync(reporter, user)
	t.warnUserCreditDesync(reporter, user)

	return nil
}

// RefundTransaction moves credit from a seller back to a buyer; requires a
// privileged session. The seller charge fails without effect on
// insufficient funds, the buyer credit is clamped to the lifetime cap.
type RefundTransaction struct {
	base
}

func (t *RefundTransaction) Execute(market *domain.Market, reporter logger.Reporter) error {
	if !market.IsPrivileged() {
		return domain.ErrUnauthorized
	}

	buyer, err := market.GetBuyer(t.userID1)
	if err != nil {
		return err
	}

	seller, err := market.GetSeller(t.userID2)
	if err != nil {
		return err
	}

	if buyer == seller {
		return fmt.Errorf("%w: %s", domain.ErrSelfRefund, t.userID1)
	}

	if err := seller.Seller().ChargeRefund(t.credit); err != nil {
		return err
	}

	credited := buyer.Buyer().CreditRefund(t.credit)
	t.warnMaxBalance(reporter, t.credit, credited)

	market.Stats().AddRefunded(t.credit)

	return nil
}
