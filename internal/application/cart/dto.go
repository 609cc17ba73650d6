package cart

import (
	"github.com/h2ogo/backend/internal/domain/cart"
	"github.com/shopspring/decimal"
)

// CartItemDTO is one persisted cart line as returned to clients
type CartItemDTO struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	UnitPrice string `json:"price"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// CartDTO is the full cart view
type CartDTO struct {
	CartItems []CartItemDTO `json:"cartItems"`
	Total     string        `json:"total"`
	ItemCount int           `json:"itemCount"`
}

// ToCartItemDTO converts a cart item to its DTO
func ToCartItemDTO(item *cart.CartItem) CartItemDTO {
	return CartItemDTO{
		ID:        item.ID.String(),
		ProductID: item.ProductID.String(),
		Title:     item.Title,
		UnitPrice: item.UnitPrice.StringFixed(2),
		ImageURL:  item.ImageURL,
		Quantity:  item.Quantity,
		Subtotal:  item.Subtotal().StringFixed(2),
	}
}

// ToCartDTO converts persisted cart lines to the full cart view
func ToCartDTO(items []cart.CartItem) CartDTO {
	dto := CartDTO{CartItems: make([]CartItemDTO, 0, len(items))}
	total := decimal.Zero
	for i := range items {
		dto.CartItems = append(dto.CartItems, ToCartItemDTO(&items[i]))
		dto.ItemCount += items[i].Quantity
		total = total.Add(items[i].Subtotal())
	}
	dto.Total = total.StringFixed(2)
	return dto
}
