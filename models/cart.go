package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const PlaceholderImage = "https://placehold.co/200x200/3B82F6/FFFFFF/png?text=JASIT"

// SurchargeRate is the flat tax (Pajak) added on top of the subtotal when a
// cart is shown or checked out. It is never stored.
var SurchargeRate = decimal.RequireFromString("0.11")

// MaxLineQuantity caps the quantity of a single line. Larger amounts
// saturate to it.
const MaxLineQuantity = 999

var ErrInvalidCartItem = errors.New("invalid cart item")

// CartItem is what a catalog view hands to the cart. Build it with
// NewCartItem so the aggregate never sees malformed input.
type CartItem struct {
	ItemID      string
	DisplayName string
	UnitPrice   decimal.Decimal
	ImageRef    string
}

func NewCartItem(id, name string, price decimal.Decimal, image string) (CartItem, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" || name == "" || price.IsNegative() {
		return CartItem{}, ErrInvalidCartItem
	}
	if strings.TrimSpace(image) == "" {
		image = PlaceholderImage
	}
	return CartItem{ItemID: id, DisplayName: name, UnitPrice: price, ImageRef: image}, nil
}

func ProductCartItem(p *Product) (CartItem, error) {
	return NewCartItem(p.ID, p.Name, p.Price, p.ImageURL)
}

type CartLine struct {
	ItemID      string          `json:"item_id"`
	DisplayName string          `json:"display_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ImageRef    string          `json:"image_ref"`
	Quantity    int             `json:"quantity"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type CartTotals struct {
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type CartSummary struct {
	TotalItems int             `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// CartReader is the read-only view of a cart handed to display code.
type CartReader interface {
	Lines() []CartLine
	Totals() CartTotals
	Summary() CartSummary
	Len() int
	IsEmpty() bool
}

// Cart is the selection of one shopping session. Lines keep first-add order
// and there is at most one line per ItemID. A Cart is not safe for
// concurrent use; the session that owns it serializes access.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(itemID string) int {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// AddItem appends a new line or bumps the quantity of the existing one.
// The unit price of an existing line is kept as captured on first add.
func (c *Cart) AddItem(item CartItem, quantity int) {
	quantity = clampQuantity(quantity)
	if i := c.indexOf(item.ItemID); i >= 0 {
		if quantity > MaxLineQuantity-c.lines[i].Quantity {
			c.lines[i].Quantity = MaxLineQuantity
		} else {
			c.lines[i].Quantity += quantity
		}
		return
	}
	image := item.ImageRef
	if image == "" {
		image = PlaceholderImage
	}
	c.lines = append(c.lines, CartLine{
		ItemID:      item.ItemID,
		DisplayName: item.DisplayName,
		UnitPrice:   item.UnitPrice,
		ImageRef:    image,
		Quantity:    quantity,
	})
}

func (c *Cart) RemoveItem(itemID string) {
	i := c.indexOf(itemID)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// SetQuantity replaces the quantity of a line. Zero or less removes it.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	if i := c.indexOf(itemID); i >= 0 {
		c.lines[i].Quantity = clampQuantity(quantity)
	}
}

func clampQuantity(quantity int) int {
	switch {
	case quantity < 1:
		return 1
	case quantity > MaxLineQuantity:
		return MaxLineQuantity
	}
	return quantity
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the lines in display order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Totals() CartTotals {
	totals := CartTotals{TotalPrice: decimal.Zero}
	for _, l := range c.lines {
		totals.TotalItems += l.Quantity
		totals.TotalPrice = totals.TotalPrice.Add(l.LineTotal())
	}
	return totals
}

func (c *Cart) Summary() CartSummary {
	return Summarize(c.Totals())
}

func Summarize(t CartTotals) CartSummary {
	tax := t.TotalPrice.Mul(SurchargeRate)
	return CartSummary{
		TotalItems: t.TotalItems,
		Subtotal:   t.TotalPrice,
		Tax:        tax,
		GrandTotal: t.TotalPrice.Add(tax),
	}
}
