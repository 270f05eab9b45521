package models

import "time"

// SavedLook is a closet entry. The clothing item and analysis are snapshots
// taken at save time; later catalog or analysis changes must not alter them.
type SavedLook struct {
	ID            string        `bson:"_id" json:"id"`
	ClothingItem  ClothingItem  `bson:"clothing_item" json:"clothingItem"`
	ResultImage   string        `bson:"result_image" json:"resultImage"` // stored object key
	Timestamp     time.Time     `bson:"timestamp" json:"timestamp"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Tags          []string      `bson:"tags,omitempty" json:"tags,omitempty"`
	Analysis      *BodyAnalysis `bson:"analysis,omitempty" json:"analysis,omitempty"`
	Angle         CameraAngle   `bson:"angle,omitempty" json:"angle,omitempty"`
	SelectedColor *ColorSwatch  `bson:"selected_color,omitempty" json:"selectedColor,omitempty"`
}

// TryOnSession is a history entry, appended automatically whenever a
// front-angle try-on succeeds with an analysis present.
type TryOnSession struct {
	ID            string         `bson:"_id" json:"id"`
	ClothingItems []ClothingItem `bson:"clothing_items" json:"clothingItems"`
	ResultImage   string         `bson:"result_image" json:"resultImage"`
	Analysis      BodyAnalysis   `bson:"analysis" json:"analysis"`
	Timestamp     time.Time      `bson:"timestamp" json:"timestamp"`
}
