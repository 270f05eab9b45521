package catalog

import "github.com/vastrastudio/vastra-backend/models"

// Items is the curated garment database. Entries are reference data and are
// never mutated; try-on and closet flows copy what they need.
var Items = []models.ClothingItem{
	// Female: silk sarees
	{
		ID:              "fs-1",
		Name:            "Royal Banarasi Silk",
		Category:        "Silk saree",
		Price:           24500,
		Gender:          models.GenderFemale,
		ImageURL:        "https://i.pinimg.com/1200x/2f/ee/47/2fee473e70109de73f0e58968385e723.jpg",
		Description:     "A masterpiece of Banarasi weaving with heavy Zari work and floral motifs.",
		SuitableShapes:  []models.BodyShape{models.ShapeHourglass, models.ShapeRectangle, models.ShapeInvertedTriangle},
		AvailableColors: []models.ColorSwatch{EthnicColors[0], EthnicColors[1], EthnicColors[2]},
	},
	{
		ID:              "fs-2",
		Name:            "Emerald Kanjeevaram",
		Category:        "Silk saree",
		Price:           32000,
		Gender:          models.GenderFemale,
		ImageURL:        "https://i.pinimg.com/1200x/ed/a5/84/eda58417e9b89e112f89f7cc6b2652c4.jpg",
		Description:     "Traditional temple border silk saree from the heart of Kanchipuram.",
		SuitableShapes:  []models.BodyShape{models.ShapeRectangle, models.ShapeAthletic, models.ShapeHourglass},
		AvailableColors: []models.ColorSwatch{EthnicColors[2], EthnicColors[5]},
	},
	{
		ID:              "fs-3",
		Name:            "Midnight Paithani",
		Category:        "Silk saree",
		Price:           19800,
		Gender:          models.GenderFemale,
		ImageURL:        "https://i.pinimg.com/1200x/88/f4/ca/88f4caa9827c815004444185857fd333.jpg",
		Description:     "Features a beautiful peacock motif pallu in vibrant silk threads.",
		SuitableShapes:  []models.BodyShape{models.ShapePear, models.ShapeHourglass, models.ShapeApple},
		AvailableColors: []models.ColorSwatch{EthnicColors[1], EthnicColors[0]},
	},
	{
		ID:             "fs-4",
		Name:           "Ivory Tussar Silk",
		Category:       "Silk saree",
		Price:          15600,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/1200x/e7/5b/5d/e75b5d4797706a55ec03b353197cb6aa.jpg",
		Description:    "Raw silk texture with hand-painted Madhubani art on the border.",
		SuitableShapes: []models.BodyShape{models.ShapeRectangle, models.ShapeInvertedTriangle, models.ShapeAthletic},
	},

	// Female: bridal lehengas
	{
		ID:              "fl-1",
		Name:            "Ruby Velvet Bridal Lehenga",
		Category:        "Bridal lehenga",
		Price:           85000,
		Gender:          models.GenderFemale,
		ImageURL:        "https://i.pinimg.com/736x/5c/8d/c9/5c8dc9b1d55d02b5cef74f3a0575d58e.jpg",
		Description:     "Ultra-luxurious velvet lehenga with heavy Zardosi and crystal work.",
		SuitableShapes:  []models.BodyShape{models.ShapeHourglass, models.ShapePear, models.ShapeRectangle},
		AvailableColors: []models.ColorSwatch{EthnicColors[0], EthnicColors[2]},
	},
	{
		ID:             "fl-2",
		Name:           "Ivory Mirror Work Lehenga",
		Category:       "Bridal lehenga",
		Price:          65000,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/736x/83/61/49/836149b521375bc4cff3cd1d95aca089.jpg",
		Description:    "Contemporary bridal look with thousands of hand-stitched mirrors.",
		SuitableShapes: []models.BodyShape{models.ShapeInvertedTriangle, models.ShapeAthletic, models.ShapeHourglass},
	},
	{
		ID:             "fl-3",
		Name:           "Pastel Rose Silk Lehenga",
		Category:       "Bridal lehenga",
		Price:          72000,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/736x/a1/22/ed/a122eda09bc2139703e490a6c36b6276.jpg",
		Description:    "Soft pink silk with delicate floral embroidery and a sequin dupatta.",
		SuitableShapes: []models.BodyShape{models.ShapePear, models.ShapeApple, models.ShapeRectangle},
	},
	{
		ID:             "fl-4",
		Name:           "Golden Heritage Lehenga",
		Category:       "Bridal lehenga",
		Price:          98000,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/736x/a1/42/7f/a1427f8b93f1a61246ef849f45b1cf03.jpg",
		Description:    "Antique gold Zari on heavy raw silk, designed for a royal wedding.",
		SuitableShapes: []models.BodyShape{models.ShapeHourglass, models.ShapeInvertedTriangle, models.ShapeAthletic},
	},

	// Female: daily wear salwar suits
	{
		ID:             "fw-1",
		Name:           "Peach Cotton Patiala",
		Category:       "Daily wear salwar suits",
		Price:          3500,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/736x/64/c4/8f/64c48f6717b43d613ad707cc44bcca60.jpg",
		Description:    "Comfortable daily wear cotton suit with a vibrant printed dupatta.",
		SuitableShapes: []models.BodyShape{models.ShapeApple, models.ShapePear, models.ShapeRectangle},
	},
	{
		ID:             "fw-2",
		Name:           "Indigo Block Print Suit",
		Category:       "Daily wear salwar suits",
		Price:          2800,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/1200x/ae/ec/33/aeec334db31f37d37f629b1a322413b7.jpg",
		Description:    "Natural indigo dye with traditional Bagru block prints.",
		SuitableShapes: []models.BodyShape{models.ShapeAthletic, models.ShapeRectangle, models.ShapeInvertedTriangle},
	},
	{
		ID:             "fw-3",
		Name:           "Mint Chanderi Straight Suit",
		Category:       "Daily wear salwar suits",
		Price:          5200,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/1200x/7a/74/cf/7a74cf211b9623adbdce8fd995157bfb.jpg",
		Description:    "Elegant straight-cut suit in lightweight Chanderi silk-cotton.",
		SuitableShapes: []models.BodyShape{models.ShapeHourglass, models.ShapeRectangle, models.ShapeAthletic},
	},
	{
		ID:             "fw-4",
		Name:           "Mustard Chikankari Suit",
		Category:       "Daily wear salwar suits",
		Price:          6800,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/736x/f5/38/cc/f538ccc59f943fcf7bfd730918aff1de.jpg",
		Description:    "Hand-embroidered Lucknowi work on fine muslin fabric.",
		SuitableShapes: []models.BodyShape{models.ShapePear, models.ShapeApple, models.ShapeRectangle},
	},

	// Female: Anarkali suits
	{
		ID:             "fa-1",
		Name:           "Ruby Bandhani Anarkali",
		Category:       "Anarkali suits",
		Price:          11200,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/1200x/86/8c/95/868c95d3a4559a25c853f88ff06d91df.jpg",
		Description:    "Traditional red Bandhani print floor-length Anarkali.",
		SuitableShapes: []models.BodyShape{models.ShapeInvertedTriangle, models.ShapePear, models.ShapeHourglass},
	},
	{
		ID:             "fa-2",
		Name:           "Midnight Georgette Anarkali",
		Category:       "Anarkali suits",
		Price:          9500,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/1200x/92/e2/9e/92e29e0148161fa47f3ccc197d35251a.jpg",
		Description:    "Flowy georgette with silver Gota Patti work on the flares.",
		SuitableShapes: []models.BodyShape{models.ShapeApple, models.ShapePear, models.ShapeRectangle},
	},
	{
		ID:             "fa-3",
		Name:           "Forest Green Velvet Anarkali",
		Category:       "Anarkali suits",
		Price:          14500,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/736x/14/58/93/14589328e5df052261012b661f2afadb.jpg",
		Description:    "Heavy velvet Anarkali with intricate Zardosi on the neckline.",
		SuitableShapes: []models.BodyShape{models.ShapeHourglass, models.ShapeRectangle, models.ShapeInvertedTriangle},
	},
	{
		ID:             "fa-4",
		Name:           "Pastel Lilac Net Anarkali",
		Category:       "Anarkali suits",
		Price:          8200,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/736x/79/62/a2/7962a24fd668c8e9f96b30ef6518f71c.jpg",
		Description:    "Ethereal net fabric with delicate sequin and thread embroidery.",
		SuitableShapes: []models.BodyShape{models.ShapePear, models.ShapeAthletic, models.ShapeRectangle},
	},

	// Female: party gowns (Indo-Western)
	{
		ID:             "fg-1",
		Name:           "Champagne Fusion Gown",
		Category:       "Party gowns (Indo-Western)",
		Price:          18500,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/736x/02/a9/32/02a932c97a54c1c0fb68ceb144f83719.jpg",
		Description:    "A contemporary draped gown with an ethnic embroidered belt.",
		SuitableShapes: []models.BodyShape{models.ShapeHourglass, models.ShapeInvertedTriangle, models.ShapeAthletic},
	},
	{
		ID:             "fg-2",
		Name:           "Wine Cape Gown",
		Category:       "Party gowns (Indo-Western)",
		Price:          21000,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/736x/c5/02/56/c502567cd6bcd1d8ad7a95efbf5419f5.jpg",
		Description:    "Floor-length gown with an attached sheer embroidered cape.",
		SuitableShapes: []models.BodyShape{models.ShapeRectangle, models.ShapeApple, models.ShapeHourglass},
	},
	{
		ID:             "fg-3",
		Name:           "Teal Dhoti Style Gown",
		Category:       "Party gowns (Indo-Western)",
		Price:          16800,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/1200x/fe/d6/a9/fed6a9914403b245530659360be76b48.jpg",
		Description:    "Indo-western fusion gown with dhoti-style draping at the bottom.",
		SuitableShapes: []models.BodyShape{models.ShapeAthletic, models.ShapeInvertedTriangle, models.ShapeRectangle},
	},
	{
		ID:             "fg-4",
		Name:           "Rose Gold Sequin Gown",
		Category:       "Party gowns (Indo-Western)",
		Price:          28000,
		Gender:         models.GenderFemale,
		ImageURL:       "https://i.pinimg.com/736x/0c/cb/18/0ccb184446a80eefcbcd216e20c195f3.jpg",
		Description:    "A high-octane party gown with geometric sequin patterns.",
		SuitableShapes: []models.BodyShape{models.ShapeHourglass, models.ShapeRectangle, models.ShapeAthletic},
	},

	// Male: sherwani collection
	{
		ID:             "ms-1",
		Name:           "Midnight Velvet Sherwani",
		Category:       "Sherwani collection",
		Price:          45000,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/91/b7/10/91b710daa6d0f5baf1e4daab048777cd.jpg",
		Description:    "Exquisite bridal sherwani in midnight navy velvet with silver dabka.",
		SuitableShapes: []models.BodyShape{models.ShapeAthletic, models.ShapeInvertedTriangle, models.ShapeRectangle},
	},
	{
		ID:             "ms-2",
		Name:           "Imperial Ivory Sherwani",
		Category:       "Sherwani collection",
		Price:          55000,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/736x/c4/7f/3b/c47f3b7369c0eb8a962f4d8d652fd3af.jpg",
		Description:    "Royal ivory sherwani with tone-on-tone embroidery and antique buttons.",
		SuitableShapes: []models.BodyShape{models.ShapeRectangle, models.ShapeAthletic, models.ShapeHourglass},
	},
	{
		ID:             "ms-3",
		Name:           "Charcoal Bandhgala",
		Category:       "Sherwani collection",
		Price:          38000,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/00/33/fd/0033fddc8af81a66a128ed29265967f0.jpg",
		Description:    "Classic Jodhpuri Bandhgala for formal ethnic events.",
		SuitableShapes: []models.BodyShape{models.ShapeInvertedTriangle, models.ShapeAthletic, models.ShapeRectangle},
	},
	{
		ID:             "ms-4",
		Name:           "Golden Brocade Sherwani",
		Category:       "Sherwani collection",
		Price:          48000,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/8f/5f/02/8f5f02fcc03569c90d72580aebbcec89.jpg",
		Description:    "Woven silk brocade in royal gold with maroon piping.",
		SuitableShapes: []models.BodyShape{models.ShapeAthletic, models.ShapeRectangle, models.ShapeInvertedTriangle},
	},

	// Male: kurta sets
	{
		ID:             "mk-1",
		Name:           "Royal Blue Silk Kurta",
		Category:       "Kurta sets",
		Price:          4200,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/b4/33/b4/b433b421bb24568bb71594ea14e5f2f6.jpg",
		Description:    "Premium silk-blend kurta with churidar pajama.",
		SuitableShapes: []models.BodyShape{models.ShapeRectangle, models.ShapeAthletic, models.ShapeHourglass},
	},
	{
		ID:             "mk-2",
		Name:           "Mint Lucknowi Kurta",
		Category:       "Kurta sets",
		Price:          8900,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/736x/dc/38/69/dc386919777bbf9072a9ac97408fd207.jpg",
		Description:    "Hand-embroidered Lucknowi Chikankari on soft georgette.",
		SuitableShapes: []models.BodyShape{models.ShapeAthletic, models.ShapeRectangle, models.ShapeApple},
	},
	{
		ID:             "mk-3",
		Name:           "Black Textured Silk Kurta",
		Category:       "Kurta sets",
		Price:          5500,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/e7/85/b1/e785b1f0d94c3254fff7fed15662e7ac.jpg",
		Description:    "Modern minimalist black kurta with subtle self-texture.",
		SuitableShapes: []models.BodyShape{models.ShapeInvertedTriangle, models.ShapeRectangle, models.ShapeAthletic},
	},
	{
		ID:             "mk-4",
		Name:           "Peach Cotton Linen Kurta",
		Category:       "Kurta sets",
		Price:          3200,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/ad/c8/71/adc8714618540287f4fc8d2c9f3d5812.jpg",
		Description:    "Breathable cotton linen set for summer festivities.",
		SuitableShapes: []models.BodyShape{models.ShapeRectangle, models.ShapeApple, models.ShapeAthletic},
	},

	// Male: Pathani suits
	{
		ID:             "mp-1",
		Name:           "Classic White Pathani",
		Category:       "Pathani suits",
		Price:          4800,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/736x/51/01/db/5101db3b1883dc8e870bd51a3676f37d.jpg",
		Description:    "Strong-shouldered cotton Pathani suit with pocket detailing.",
		SuitableShapes: []models.BodyShape{models.ShapeInvertedTriangle, models.ShapeAthletic, models.ShapeRectangle},
	},
	{
		ID:             "mp-2",
		Name:           "Olive Green Pathani",
		Category:       "Pathani suits",
		Price:          5200,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/736x/08/ab/24/08ab2445b4c980996f0bca21d9019d21.jpg",
		Description:    "Earthy tone Pathani in thick khadi cotton.",
		SuitableShapes: []models.BodyShape{models.ShapeAthletic, models.ShapeRectangle, models.ShapeHourglass},
	},
	{
		ID:             "mp-3",
		Name:           "Navy Denim Pathani",
		Category:       "Pathani suits",
		Price:          6500,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/65/20/e7/6520e7313a35b451ad17982781a48077.jpg",
		Description:    "Contemporary take with indigo dyed denim-finish cotton.",
		SuitableShapes: []models.BodyShape{models.ShapeInvertedTriangle, models.ShapeRectangle, models.ShapeAthletic},
	},
	{
		ID:             "mp-4",
		Name:           "Rust Linen Pathani",
		Category:       "Pathani suits",
		Price:          5800,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/2c/3e/34/2c3e34df79f77f8c8aa7c7b89984b66a.jpg",
		Description:    "Comfortable linen Pathani in a warm rust orange.",
		SuitableShapes: []models.BodyShape{models.ShapeAthletic, models.ShapeInvertedTriangle, models.ShapeRectangle},
	},

	// Male: Nehru jacket sets
	{
		ID:             "mn-1",
		Name:           "Sunset Saffron Nehru Set",
		Category:       "Nehru jacket sets",
		Price:          12500,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/e3/a1/29/e3a129523842b2ccf58a56536acc537f.jpg",
		Description:    "Saffron kurta with a floral woven Nehru jacket.",
		SuitableShapes: []models.BodyShape{models.ShapeAthletic, models.ShapeInvertedTriangle, models.ShapeRectangle},
	},
	{
		ID:             "mn-2",
		Name:           "Blue Silk Nehru Set",
		Category:       "Nehru jacket sets",
		Price:          10800,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/09/97/e6/0997e664178f46abc925d2ea18ec617f.jpg",
		Description:    "Royal blue raw silk jacket over a white silk kurta.",
		SuitableShapes: []models.BodyShape{models.ShapeRectangle, models.ShapeAthletic, models.ShapeHourglass},
	},
	{
		ID:             "mn-3",
		Name:           "Grey Textured Nehru Set",
		Category:       "Nehru jacket sets",
		Price:          9200,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/69/d1/fe/69d1fe36ea87b2b18c82025da24b42ab.jpg",
		Description:    "Matte grey textured jacket for a sophisticated daytime look.",
		SuitableShapes: []models.BodyShape{models.ShapeAthletic, models.ShapeInvertedTriangle, models.ShapeRectangle},
	},
	{
		ID:             "mn-4",
		Name:           "Emerald Velvet Nehru Set",
		Category:       "Nehru jacket sets",
		Price:          15600,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/736x/cf/23/a0/cf23a0c6fa4f1aa4002005acec4a15f5.jpg",
		Description:    "Deep green velvet jacket with antique gold buttons.",
		SuitableShapes: []models.BodyShape{models.ShapeHourglass, models.ShapeAthletic, models.ShapeInvertedTriangle},
	},

	// Male: dhoti kurta
	{
		ID:             "md-1",
		Name:           "Traditional Bengali Dhoti Set",
		Category:       "Dhoti kurta",
		Price:          7800,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/43/87/56/438756f1afb29c63c93e1d60d81061d3.jpg",
		Description:    "Classic silk-cotton kurta with a pleated white dhoti.",
		SuitableShapes: []models.BodyShape{models.ShapeAthletic, models.ShapeInvertedTriangle, models.ShapeRectangle},
	},
	{
		ID:             "md-2",
		Name:           "South Silk Dhoti Kurta",
		Category:       "Dhoti kurta",
		Price:          11500,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/736x/c5/7f/4c/c57f4c79a236f3fb6224022661591636.jpg",
		Description:    "Pure silk cream kurta with a matching gold border dhoti.",
		SuitableShapes: []models.BodyShape{models.ShapeRectangle, models.ShapeAthletic, models.ShapeHourglass},
	},
	{
		ID:             "md-3",
		Name:           "Red Embroidered Dhoti Set",
		Category:       "Dhoti kurta",
		Price:          9400,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/13/23/ac/1323acc6c3d537349d51b7176cc9e382.jpg",
		Description:    "Vibrant red festive kurta with a contrasting beige dhoti.",
		SuitableShapes: []models.BodyShape{models.ShapeInvertedTriangle, models.ShapeAthletic, models.ShapeRectangle},
	},
	{
		ID:             "md-4",
		Name:           "Pastel Blue Dhoti Kurta",
		Category:       "Dhoti kurta",
		Price:          6200,
		Gender:         models.GenderMale,
		ImageURL:       "https://i.pinimg.com/1200x/cc/b5/71/ccb571c6726787de46634b7582bf91f2.jpg",
		Description:    "Lightweight summer dhoti set in breathable cotton.",
		SuitableShapes: []models.BodyShape{models.ShapeAthletic, models.ShapeRectangle, models.ShapeInvertedTriangle},
	},
}
