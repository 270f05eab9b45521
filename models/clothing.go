package models

// ColorSwatch is a finite palette value referenced by name, never mutated.
type ColorSwatch struct {
	Name   string `bson:"name" json:"name"`
	Hex    string `bson:"hex" json:"hex"`
	Prompt string `bson:"prompt" json:"prompt"` // text handed to the synthesis prompt
}

// ClothingItem is immutable catalog reference data.
type ClothingItem struct {
	ID              string        `bson:"_id" json:"id"`
	Name            string        `bson:"name" json:"name"`
	Category        string        `bson:"category" json:"category"`
	Price           int           `bson:"price" json:"price"` // rupees
	Gender          Gender        `bson:"gender" json:"gender"`
	ImageURL        string        `bson:"image_url" json:"imageUrl"`
	Description     string        `bson:"description" json:"description"`
	SuitableShapes  []BodyShape   `bson:"suitable_shapes" json:"suitableShapes"`
	AvailableColors []ColorSwatch `bson:"available_colors,omitempty" json:"availableColors,omitempty"`
}

// SuitsShape reports whether the item is cut for the given silhouette.
func (c ClothingItem) SuitsShape(shape BodyShape) bool {
	for _, s := range c.SuitableShapes {
		if s == shape {
			return true
		}
	}
	return false
}
