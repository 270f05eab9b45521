package models

// CartItem is created on add-to-cart and lives until the cart is cleared.
type CartItem struct {
	CartID string       `bson:"cart_id" json:"cartId"`
	Item   ClothingItem `bson:"item" json:"item"`
	Color  *ColorSwatch `bson:"color,omitempty" json:"color,omitempty"`
}
