package transaction

import (
	"fmt"

	"vapor/internal/domain"
	"vapor/pkg/logger"
)

// SellTransaction creates a pending listing under the active seller's
// storefront. A game the active user already owns or already lists is
// rejected.
type SellTransaction struct {
	base
}

func (t *SellTransaction) Execute(market *domain.Market, reporter logger.Reporter) error {
	active := market.ActiveUser()
	if active == nil {
		return domain.ErrNoActiveSession
	}

	if !active.Type().IsSeller() {
		return fmt.Errorf("%w: %s", domain.ErrNotSeller, active.Username())
	}

	// A full-standard or admin seller may not list a game sitting in their
	// own inventory.
	if active.Type().IsBuyer() && active.Buyer().Inventory().Contains(t.gameID) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCopy, t.gameID)
	}

	listing := domain.NewListing(domain.Game{Name: t.gameID}, t.price, t.discount)
	if err := active.Seller().List(listing); err != nil {
		return err
	}

	market.RegisterEndOfDay(active.Seller().StoreFront())

	t.warnUsernameDesync(reporter, active)

	return nil
}

// BuyTransaction purchases a committed listing from the named seller for
// the active buyer. The buyer is charged the sale price, the seller is
// credited the same amount clamped to the lifetime cap, and the game lands
// in the buyer's pending inventory.
type BuyTransaction struct {
	base
}

func (t *BuyTransaction) Execute(market *domain.Market, reporter logger.Reporter) error {
	active := market.ActiveUser()
	if active == nil {
		return domain.ErrNoActiveSession
	}

	if !active.Type().IsBuyer() {
		return fmt.Errorf("%w: %s", domain.ErrNotBuyer, active.Username())
	}

	// A seller may not buy a game they themselves currently list.
	if active.Type().IsSeller() && active.Seller().StoreFront().Contains(t.gameID) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCopy, t.gameID)
	}

	seller, err := market.GetSeller(t.userID1)
	if err != nil {
		return err
	}

	listing, err := seller.Seller().Listing(t.gameID)
	if err != nil {
		return err
	}

	auctionSale := market.AuctionSale()

	if err := active.Buyer().Buy(listing, auctionSale); err != nil {
		return err
	}

	credited := seller.Seller().Sell(listing, auctionSale)
	t.warnMaxBalance(reporter, listing.SalePrice(auctionSale), credited)

	market.RegisterEndOfDay(active.Buyer().Inventory())
	market.Stats().AddRevenue(listing.Price)

	t.warnDesync(reporter, "adı", active.Username(), t.userID2)

	return nil
}

// RemoveTransaction removes a game from the resolved target: from the
// inventory when the target is buyer-capable, falling back to the
// storefront when the game is absent and the target also sells.
type RemoveTransaction struct {
	base
}

func (t *RemoveTransaction) Execute(market *domain.Market, reporter logger.Reporter) error {
	target, err := market.ResolveTarget(t.userID2)
	if err != nil {
		return err
	}

	targetType := target.Type()

	if targetType.IsBuyer() {
		if _, err := target.Buyer().Inventory().Remove(t.gameID); err != nil {
			if !targetType.IsSeller() {
				return err
			}
			if _, err := target.Seller().StoreFront().Remove(t.gameID); err != nil {
				return err
			}
		}
	} else {
		if _, err := target.Seller().StoreFront().Remove(t.gameID); err != nil {
			return err
		}
	}

	t.warnUsernameDesync(reporter, market.ActiveUser())

	return nil
}

// GiftTransaction moves a game from the resolved owner to a buyer-capable
// recipient's pending inventory. The owner side tries the inventory first,
// then the storefront. Gifting to oneself succeeds without effect.
type GiftTransaction struct {
	base
}

func (t *GiftTransaction) Execute(market *domain.Market, reporter logger.Reporter) error {
	owner, err := market.ResolveTarget(t.userID1)
	if err != nil {
		return err
	}

	recipient, err := market.GetBuyer(t.userID2)
	if err != nil {
		return err
	}

	if owner == recipient {
		return nil
	}

	if recipient.Type().IsSeller() && recipient.Seller().StoreFront().Contains(t.gameID) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCopy, t.gameID)
	}

	if recipient.Buyer().Inventory().Contains(t.gameID) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCopy, t.gameID)
	}

	var game domain.Game
	removed := false

	if owner.Type().IsBuyer() {
		if g, err := owner.Buyer().Inventory().Remove(t.gameID); err == nil {
			game = g
			removed = true
		}
	}

	if !removed {
		if !owner.Type().IsSeller() {
			return fmt.Errorf("%w: %s", domain.ErrGameNotFound, t.gameID)
		}

		listing, err := owner.Seller().StoreFront().Remove(t.gameID)
		if err != nil {
			return err
		}

		game = listing.Game
	}

	if err := recipient.Buyer().Inventory().AddGame(game); err != nil {
		return err
	}

	market.RegisterEndOfDay(recipient.Buyer().Inventory())

	t.warnUsernameDesync(reporter, owner)

	return nil
}
