package domain

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type ShoppingCartItem struct {
	Product         Product         `json:"product"`
	Quantity        int             `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
}

func (i ShoppingCartItem) ProductID() int {
	return i.Product.ID
}

// LineTotal is price * quantity, less the discount percentage.
func (i ShoppingCartItem) LineTotal() decimal.Decimal {
	subTotal := i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
	discount := subTotal.Mul(i.DiscountPercent).Div(hundred)
	return subTotal.Sub(discount)
}

func (i ShoppingCartItem) MarshalJSON() ([]byte, error) {
	type item ShoppingCartItem
	return json.Marshal(struct {
		item
		LineTotal decimal.Decimal `json:"lineTotal"`
	}{item(i), i.LineTotal()})
}

// ShoppingCart is rebuilt from shopping_cart rows on every read and is keyed
// by product id.
type ShoppingCart struct {
	UserID int                      `json:"-"`
	Items  map[int]ShoppingCartItem `json:"items"`
}

func NewShoppingCart(userID int) *ShoppingCart {
	return &ShoppingCart{UserID: userID, Items: make(map[int]ShoppingCartItem)}
}

func (c *ShoppingCart) Add(item ShoppingCartItem) {
	c.Items[item.ProductID()] = item
}

func (c *ShoppingCart) Contains(productID int) bool {
	_, ok := c.Items[productID]
	return ok
}

func (c *ShoppingCart) Get(productID int) (ShoppingCartItem, bool) {
	item, ok := c.Items[productID]
	return item, ok
}

func (c *ShoppingCart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c *ShoppingCart) MarshalJSON() ([]byte, error) {
	items := c.Items
	if items == nil {
		items = map[int]ShoppingCartItem{}
	}
	return json.Marshal(struct {
		Items map[int]ShoppingCartItem `json:"items"`
		Total decimal.Decimal          `json:"total"`
	}{items, c.Total()})
}

// ShoppingCartRepository persists one row per (user, product). AddItem must
// be atomic: concurrent adds of the same product converge on the summed
// quantity.
type ShoppingCartRepository interface {
	GetByUserID(ctx context.Context, userID int) (*ShoppingCart, error)
	AddItem(ctx context.Context, userID, productID int) error
	UpdateQuantity(ctx context.Context, userID, productID, quantity int) error
	ClearCart(ctx context.Context, userID int) error
}
