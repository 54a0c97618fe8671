package services

import (
	"context"

	"jasit-store/models"
	"jasit-store/utils"
)

type ProductLookup interface {
	Get(ctx context.Context, id string) (*models.Product, error)
}

// CartService connects the catalog to the session cart. Catalog reads
// happen before the session is locked.
type CartService struct {
	products ProductLookup
}

func NewCartService(products ProductLookup) *CartService {
	return &CartService{products: products}
}

func (s *CartService) View(sess *Session) models.CartView {
	var view models.CartView
	sess.View(func(cart models.CartReader) {
		view = BuildCartView(cart)
	})
	return view
}

// AddProduct captures the current catalog price of productID and adds it to
// the cart.
func (s *CartService) AddProduct(ctx context.Context, sess *Session, productID string, quantity int) (models.CartView, error) {
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return models.CartView{}, err
	}

	item, err := models.ProductCartItem(product)
	if err != nil {
		return models.CartView{}, utils.InvalidInput("Produk tidak dapat ditambahkan ke keranjang")
	}

	var view models.CartView
	sess.Update(func(cart *models.Cart) {
		cart.AddItem(item, quantity)
		view = BuildCartView(cart)
	})
	return view, nil
}

func (s *CartService) SetQuantity(sess *Session, itemID string, quantity int) models.CartView {
	var view models.CartView
	sess.Update(func(cart *models.Cart) {
		cart.SetQuantity(itemID, quantity)
		view = BuildCartView(cart)
	})
	return view
}

func (s *CartService) Remove(sess *Session, itemID string) models.CartView {
	var view models.CartView
	sess.Update(func(cart *models.Cart) {
		cart.RemoveItem(itemID)
		view = BuildCartView(cart)
	})
	return view
}

func (s *CartService) Clear(sess *Session) models.CartView {
	var view models.CartView
	sess.Update(func(cart *models.Cart) {
		cart.Clear()
		view = BuildCartView(cart)
	})
	return view
}

func BuildCartView(cart models.CartReader) models.CartView {
	return cartView(cart.Lines(), cart.Summary())
}

func cartView(lines []models.CartLine, summary models.CartSummary) models.CartView {
	view := models.CartView{
		Lines:   make([]models.CartLineView, 0, len(lines)),
		Summary: summary,
		Formatted: models.FormattedTotal{
			Subtotal:   utils.FormatRupiah(summary.Subtotal),
			Tax:        utils.FormatRupiah(summary.Tax),
			GrandTotal: utils.FormatRupiah(summary.GrandTotal),
		},
	}
	for _, l := range lines {
		total := l.LineTotal()
		view.Lines = append(view.Lines, models.CartLineView{
			CartLine:           l,
			LineTotal:          total.String(),
			UnitPriceFormatted: utils.FormatRupiah(l.UnitPrice),
			LineTotalFormatted: utils.FormatRupiah(total),
		})
	}
	return view
}
