package domain

// Game is identified by its name; an immutable value.
type Game struct {
	Name string `json:"name"`
}

// Listing is a seller's offer: base price in minor currency units and a
// percentage discount applied during an auction sale. Immutable once
// created; re-listing requires removal first.
type Listing struct {
	Game     Game    `json:"game"`
	Price    int64   `json:"price"`
	Discount float64 `json:"discount"`
}

func NewListing(game Game, price int64, discount float64) Listing {
	return Listing{Game: game, Price: price, Discount: discount}
}

// SalePrice is the amount charged for a purchase: the base price, less the
// listing discount while an auction sale is active.
func (l Listing) SalePrice(auctionSale bool) int64 {
	if !auctionSale {
		return l.Price
	}

	discount := int64(float64(l.Price) * (l.Discount / 100.0))

	return l.Price - discount
}
