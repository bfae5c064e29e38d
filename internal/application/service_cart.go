package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/petitpas/storefront/internal/domain"
	"github.com/petitpas/storefront/internal/ports"
)

// AddToCart turns an add-to-cart intent into a consistent remote cart,
// hiding the create-vs-update distinction from callers.
//
// With no remembered handle, a new cart is created with the single line.
// With a handle, the line is added to that cart; if the add fails for any
// reason (expired or deleted cart, malformed handle) a brand-new cart is
// created with just this line and the stale handle is discarded, not
// repaired. Lines living in the abandoned cart are accepted data loss.
//
// Handle writes are fenced by a per-session sequence number so an older
// completion arriving late can never overwrite a fresher remembered handle.
func (s *Service) AddToCart(ctx context.Context, sessionID string, req AddToCartRequest) (domain.Cart, error) {
	if req.VariantID == "" {
		return domain.Cart{}, fmt.Errorf("%w: variant_id must not be empty", domain.ErrInvalidInput)
	}
	if req.Quantity <= 0 {
		return domain.Cart{}, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}

	record, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load session: %w", err)
	}

	seq, err := s.sessions.NextCartSeq(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("issue cart sequence: %w", err)
	}

	var cart domain.Cart
	if record.CartID != "" {
		cart, err = s.gateway.AddCartLines(ctx, record.CartID, req.VariantID, req.Quantity)
		if err != nil {
			s.logger.Warn("add to remembered cart failed, creating new cart",
				"operation", "add_to_cart",
				"cart_id", record.CartID,
				"error", err.Error(),
			)
			cart, err = s.gateway.CreateCart(ctx, req.VariantID, req.Quantity)
		}
	} else {
		cart, err = s.gateway.CreateCart(ctx, req.VariantID, req.Quantity)
	}
	if err != nil {
		return domain.Cart{}, err
	}

	stored, err := s.sessions.SetCartIfLatest(ctx, sessionID, cart.ID, seq, s.cfg.SessionTTL)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("remember cart handle: %w", err)
	}
	if !stored {
		s.logger.Info("stale cart completion ignored",
			"operation", "add_to_cart",
			"cart_id", cart.ID,
			"seq", seq,
		)
	}

	s.publishEvent(ctx, "cart.line_added", map[string]any{
		"cart_id":    cart.ID,
		"variant_id": req.VariantID,
		"quantity":   req.Quantity,
		"added_at":   s.nowFn(),
	}, sessionID)

	return cart, nil
}

// Cart fetches the remembered remote cart. A missing or expired handle is
// reported as not found and dropped so the next add starts fresh. A gateway
// outage keeps the handle; the cart may still exist.
func (s *Service) Cart(ctx context.Context, sessionID string) (domain.Cart, error) {
	record, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load session: %w", err)
	}
	if record.CartID == "" {
		return domain.Cart{}, domain.ErrNotFound
	}

	cart, err := s.gateway.GetCart(ctx, record.CartID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = s.sessions.ClearCart(ctx, sessionID)
		}
		return domain.Cart{}, err
	}
	return cart, nil
}

// RemoveCartLines removes lines from the remembered cart.
func (s *Service) RemoveCartLines(ctx context.Context, sessionID string, req RemoveCartLinesRequest) (domain.Cart, error) {
	if len(req.LineIDs) == 0 {
		return domain.Cart{}, fmt.Errorf("%w: line_ids must not be empty", domain.ErrInvalidInput)
	}
	record, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load session: %w", err)
	}
	if record.CartID == "" {
		return domain.Cart{}, domain.ErrNotFound
	}
	return s.gateway.RemoveCartLines(ctx, record.CartID, req.LineIDs)
}

// UpdateCartLines changes line quantities on the remembered cart.
func (s *Service) UpdateCartLines(ctx context.Context, sessionID string, req UpdateCartLinesRequest) (domain.Cart, error) {
	if len(req.Lines) == 0 {
		return domain.Cart{}, fmt.Errorf("%w: lines must not be empty", domain.ErrInvalidInput)
	}
	record, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load session: %w", err)
	}
	if record.CartID == "" {
		return domain.Cart{}, domain.ErrNotFound
	}

	updates := make([]ports.CartLineUpdate, 0, len(req.Lines))
	for _, line := range req.Lines {
		if line.Quantity < 0 {
			return domain.Cart{}, fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
		}
		updates = append(updates, ports.CartLineUpdate{LineID: line.LineID, Quantity: line.Quantity})
	}
	return s.gateway.UpdateCartLines(ctx, record.CartID, updates)
}

// CheckoutURL resolves the gateway's hosted checkout for the remembered cart.
func (s *Service) CheckoutURL(ctx context.Context, sessionID string) (string, error) {
	record, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if record.CartID == "" {
		return "", domain.ErrNotFound
	}
	return s.gateway.CheckoutURL(ctx, record.CartID)
}
