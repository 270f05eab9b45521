package models

// BodyShape is one of the six silhouettes the analysis service reports.
type BodyShape string

const (
	ShapeHourglass        BodyShape = "Hourglass"
	ShapePear             BodyShape = "Pear"
	ShapeRectangle        BodyShape = "Rectangle"
	ShapeInvertedTriangle BodyShape = "Inverted Triangle"
	ShapeApple            BodyShape = "Apple"
	ShapeAthletic         BodyShape = "Athletic"
)

// BodyShapes lists every silhouette the analysis service may return.
var BodyShapes = []BodyShape{
	ShapeHourglass,
	ShapePear,
	ShapeRectangle,
	ShapeInvertedTriangle,
	ShapeApple,
	ShapeAthletic,
}

// SkinTones is the descriptive palette used in analysis results.
var SkinTones = []string{"Fair", "Light", "Medium", "Wheatish", "Dusky", "Deep"}

// BodyAnalysis is the AI-derived portrait analysis. At most one is active
// per session; a re-analysis replaces it wholesale.
type BodyAnalysis struct {
	Gender           Gender    `bson:"gender" json:"gender"`
	SkinTone         string    `bson:"skin_tone" json:"skinTone"`
	BodyShape        BodyShape `bson:"body_shape" json:"bodyShape"`
	DetectedFeatures []string  `bson:"detected_features" json:"detectedFeatures"`
}
