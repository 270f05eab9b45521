package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/vastrastudio/vastra-backend/catalog"
	"github.com/vastrastudio/vastra-backend/models"
	"github.com/vastrastudio/vastra-backend/utils"
)

// CartHandler lists the cart contents.
func (s *Server) CartHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cart, err := s.Sessions.Cart(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, nil, "Failed to load cart", http.StatusInternalServerError)
		return
	}

	total := 0
	for _, line := range cart {
		total += line.Item.Price
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": cart, "total": total})
}

// AddToCartHandler adds a garment line with an optional color variant.
func (s *Server) AddToCartHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Add To Cart API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		ItemID string `json:"itemId"`
		Color  string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	item, ok := catalog.ItemByID(req.ItemID)
	if !ok {
		utils.RespondError(w, &logMessageBuilder, "Unknown garment", http.StatusNotFound)
		return
	}

	var color *models.ColorSwatch
	if req.Color != "" {
		for _, c := range catalog.ColorsFor(item) {
			if strings.EqualFold(c.Name, req.Color) {
				swatch := c
				color = &swatch
				break
			}
		}
	}

	line, err := s.Sessions.AddToCart(r.Context(), userID, item, color)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to add to cart: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Added %s as line %s", item.ID, line.CartID))
	utils.RespondJSON(w, http.StatusCreated, line)
}

// RemoveFromCartHandler deletes one cart line.
func (s *Server) RemoveFromCartHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Remove From Cart API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		CartID string `json:"cartId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CartID == "" {
		utils.RespondError(w, &logMessageBuilder, "cartId is required", http.StatusBadRequest)
		return
	}

	if err := s.Sessions.RemoveFromCart(r.Context(), userID, req.CartID); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to remove cart line", http.StatusInternalServerError)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Removed line %s", req.CartID))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Removed"})
}

// ClearCartHandler empties the cart.
func (s *Server) ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := s.Sessions.ClearCart(r.Context(), userID); err != nil {
		utils.RespondError(w, nil, "Failed to clear cart", http.StatusInternalServerError)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}
