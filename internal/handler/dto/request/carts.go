package request

import (
	"cart-recovery/internal/domain/cart"
	"cart-recovery/internal/usecase/commands"
)

type TrackCartItem struct {
	ProductID int64  `json:"product_id" binding:"required,gt=0"`
	Name      string `json:"name" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// TrackCartRequest is one activity ping from the cart-tracking collaborator.
type TrackCartRequest struct {
	Token      string          `json:"token" binding:"required"`
	Email      string          `json:"email" binding:"omitempty,email"`
	Items      []TrackCartItem `json:"items"`
	TotalCents int64           `json:"total_cents" binding:"gte=0"`
	Currency   string          `json:"currency" binding:"required,len=3"`
}

func (r TrackCartRequest) ToParams() commands.TrackCartParams {
	items := make(cart.Items, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, cart.Item{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
		})
	}
	return commands.TrackCartParams{
		Token:      r.Token,
		Email:      r.Email,
		Items:      items,
		TotalCents: r.TotalCents,
		Currency:   r.Currency,
	}
}
