package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jasit-store/libs"
	"jasit-store/models"
	"jasit-store/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileReader interface {
	GetUserWithProfile(ctx context.Context, userID int) (*models.UserWithProfile, error)
}

type CheckoutService struct {
	profiles ProfileReader
	mailer   libs.Mailer
	log      *zap.Logger
	now      func() time.Time
}

// NewCheckoutService builds the checkout flow. mailer may be nil, in which
// case no confirmation mail is sent.
func NewCheckoutService(profiles ProfileReader, mailer libs.Mailer, log *zap.Logger) *CheckoutService {
	return &CheckoutService{profiles: profiles, mailer: mailer, log: log, now: time.Now}
}

func emptyCart() error {
	return utils.Conflict("Keranjang belanja kosong")
}

// Preview returns the cart summary and a contact form prefilled from the
// signed-in user's profile. principal may be nil.
func (s *CheckoutService) Preview(ctx context.Context, sess *Session, principal *models.Principal) (*models.CheckoutPreview, error) {
	var (
		view  models.CartView
		empty bool
	)
	sess.View(func(cart models.CartReader) {
		empty = cart.IsEmpty()
		view = BuildCartView(cart)
	})
	if empty {
		return nil, emptyCart()
	}

	preview := &models.CheckoutPreview{Cart: view}
	if principal == nil {
		return preview, nil
	}

	preview.Form.Email = principal.Email
	profile, err := s.profiles.GetUserWithProfile(ctx, principal.UserID)
	if err != nil {
		if !errors.Is(err, utils.ErrNotFound) {
			s.log.Warn("checkout prefill failed", zap.Int("user_id", principal.UserID), zap.Error(err))
		}
		return preview, nil
	}
	preview.Form = models.CheckoutForm{
		Name:    profile.FullName,
		Email:   profile.Email,
		Phone:   profile.Phone,
		Company: profile.Company,
		Address: profile.Address,
	}
	return preview, nil
}

// Checkout snapshots the cart, clears it and confirms. Nothing is persisted.
func (s *CheckoutService) Checkout(ctx context.Context, sess *Session, req models.CheckoutRequest) (*models.CheckoutConfirmation, error) {
	contact := models.CheckoutRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Company: strings.TrimSpace(req.Company),
		Address: strings.TrimSpace(req.Address),
		Notes:   strings.TrimSpace(req.Notes),
	}
	if contact.Name == "" || contact.Email == "" || contact.Phone == "" || contact.Address == "" {
		return nil, utils.InvalidInput("Mohon lengkapi data pemesanan")
	}

	var (
		lines   []models.CartLine
		summary models.CartSummary
		empty   bool
	)
	sess.Update(func(cart *models.Cart) {
		if cart.IsEmpty() {
			empty = true
			return
		}
		lines = cart.Lines()
		summary = cart.Summary()
		cart.Clear()
	})
	if empty {
		return nil, emptyCart()
	}

	placedAt := s.now()
	confirmation := &models.CheckoutConfirmation{
		Reference: orderReference(placedAt),
		Contact:   contact,
		Lines:     lines,
		Summary:   summary,
		PlacedAt:  placedAt,
	}

	s.log.Info("checkout placed",
		zap.String("reference", confirmation.Reference),
		zap.String("session_id", sess.ID),
		zap.Int("total_items", summary.TotalItems),
		zap.String("grand_total", summary.GrandTotal.String()),
	)

	if s.mailer != nil {
		if err := s.mailer.SendCheckoutConfirmation(ctx, confirmation); err != nil {
			s.log.Warn("checkout confirmation mail failed",
				zap.String("reference", confirmation.Reference), zap.Error(err))
		}
	}
	return confirmation, nil
}

func orderReference(t time.Time) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("JASIT-%d-%s", t.Unix(), strings.ToUpper(token[:6]))
}
