package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cartapp "github.com/h2ogo/backend/internal/application/cart"
	"github.com/h2ogo/backend/internal/domain/cart"
	"github.com/h2ogo/backend/internal/interfaces/http/dto"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	BaseHandler
	reconciler *cartapp.ReconcilerService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(reconciler *cartapp.ReconcilerService) *CartHandler {
	return &CartHandler{
		reconciler: reconciler,
	}
}

// CartLineRequest is one proposed cart line
type CartLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartRequest is the full proposed cart. An empty or omitted
// cartItems list empties the cart.
type UpdateCartRequest struct {
	CartItems []CartLineRequest `json:"cartItems"`
}

// Get returns the authenticated user's persisted cart
func (h *CartHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.reconciler.Fetch(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update validates the proposed cart against the catalog and replaces
// the persisted cart with the validated copy
func (h *CartHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	proposed := make([]cart.ProposedLine, 0, len(req.CartItems))
	for i, line := range req.CartItems {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			h.ErrorWithCode(c, dto.ErrCodeInvalidInput,
				fmt.Sprintf("Item %d has an invalid product id", i))
			return
		}
		proposed = append(proposed, cart.ProposedLine{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	result, err := h.reconciler.Reconcile(c.Request.Context(), userID, proposed)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Clear empties the authenticated user's cart
func (h *CartHandler) Clear(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.reconciler.Clear(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMessage(c, "Cart cleared successfully", cartapp.ToCartDTO(nil))
}
