package catalog

// Default is the built-in catalog the storefront ships with. Stock and SKUs
// are per color/size pair.
func Default() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Orange Wide Leg",
			PriceCents:  98000,
			Image:       "public/0ed2750ebcfd81fdfe1b5bba6550f2f62aeb8236.png",
			Colors:      []string{"White", "Black"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Description: "This one-piece swimsuit is crafted from jersey featuring an allover micro Monogram motif in relief.",
			Variants: []Variant{
				{ID: "white-xs", Color: "White", Size: "XS", Stock: 5, SKU: "OWL-WHT-XS"},
				{ID: "white-s", Color: "White", Size: "S", Stock: 8, SKU: "OWL-WHT-S"},
				{ID: "white-m", Color: "White", Size: "M", Stock: 12, SKU: "OWL-WHT-M"},
				{ID: "white-l", Color: "White", Size: "L", Stock: 6, SKU: "OWL-WHT-L"},
				{ID: "white-xl", Color: "White", Size: "XL", Stock: 3, SKU: "OWL-WHT-XL"},
				{ID: "black-xs", Color: "Black", Size: "XS", Stock: 4, SKU: "OWL-BLK-XS"},
				{ID: "black-s", Color: "Black", Size: "S", Stock: 7, SKU: "OWL-BLK-S"},
				{ID: "black-m", Color: "Black", Size: "M", Stock: 10, SKU: "OWL-BLK-M"},
				{ID: "black-l", Color: "Black", Size: "L", Stock: 5, SKU: "OWL-BLK-L"},
				{ID: "black-xl", Color: "Black", Size: "XL", Stock: 2, SKU: "OWL-BLK-XL"},
			},
		},
		{
			ID:          2,
			Name:        "Tailored Jacket",
			PriceCents:  184000,
			Image:       "public/d3f535ca1389eb820e66aabae6aac48a9c0666e7.png",
			Colors:      []string{"Blue", "Black"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Description: "This tailored jacket is crafted from premium wool with a modern fit and sophisticated silhouette.",
			Variants: []Variant{
				{ID: "blue-xs", Color: "Blue", Size: "XS", Stock: 3, SKU: "TJ-BLU-XS"},
				{ID: "blue-s", Color: "Blue", Size: "S", Stock: 6, SKU: "TJ-BLU-S"},
				{ID: "blue-m", Color: "Blue", Size: "M", Stock: 8, SKU: "TJ-BLU-M"},
				{ID: "blue-l", Color: "Blue", Size: "L", Stock: 4, SKU: "TJ-BLU-L"},
				{ID: "blue-xl", Color: "Blue", Size: "XL", Stock: 2, SKU: "TJ-BLU-XL"},
				{ID: "black-xs", Color: "Black", Size: "XS", Stock: 5, SKU: "TJ-BLK-XS"},
				{ID: "black-s", Color: "Black", Size: "S", Stock: 9, SKU: "TJ-BLK-S"},
				{ID: "black-m", Color: "Black", Size: "M", Stock: 11, SKU: "TJ-BLK-M"},
				{ID: "black-l", Color: "Black", Size: "L", Stock: 7, SKU: "TJ-BLK-L"},
				{ID: "black-xl", Color: "Black", Size: "XL", Stock: 3, SKU: "TJ-BLK-XL"},
			},
		},
		{
			ID:          3,
			Name:        "Accordion Pleated Dress",
			PriceCents:  98000,
			Image:       "public/92d307966800f906112421cf2a2d71d630964d69.png",
			Colors:      []string{"Red", "Grey"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Description: "Elegant accordion pleated dress with flowing silhouette and timeless design.",
			Variants: []Variant{
				{ID: "red-xs", Color: "Red", Size: "XS", Stock: 4, SKU: "APD-RED-XS"},
				{ID: "red-s", Color: "Red", Size: "S", Stock: 7, SKU: "APD-RED-S"},
				{ID: "red-m", Color: "Red", Size: "M", Stock: 9, SKU: "APD-RED-M"},
				{ID: "red-l", Color: "Red", Size: "L", Stock: 5, SKU: "APD-RED-L"},
				{ID: "red-xl", Color: "Red", Size: "XL", Stock: 2, SKU: "APD-RED-XL"},
				{ID: "grey-xs", Color: "Grey", Size: "XS", Stock: 6, SKU: "APD-GRY-XS"},
				{ID: "grey-s", Color: "Grey", Size: "S", Stock: 8, SKU: "APD-GRY-S"},
				{ID: "grey-m", Color: "Grey", Size: "M", Stock: 10, SKU: "APD-GRY-M"},
				{ID: "grey-l", Color: "Grey", Size: "L", Stock: 6, SKU: "APD-GRY-L"},
				{ID: "grey-xl", Color: "Grey", Size: "XL", Stock: 3, SKU: "APD-GRY-XL"},
			},
		},
		{
			ID:          4,
			Name:        "Green Tassel Scarf",
			PriceCents:  98000,
			Image:       "public/fed16528f23003f0d54e6abdb1787e6b16662980.png",
			Colors:      []string{"White", "Black"},
			Sizes:       []string{"One Size"},
			Description: "Luxurious scarf with elegant tassels and premium fabric.",
			Variants: []Variant{
				{ID: "white-os", Color: "White", Size: "One Size", Stock: 15, SKU: "GTS-WHT-OS"},
				{ID: "black-os", Color: "Black", Size: "One Size", Stock: 12, SKU: "GTS-BLK-OS"},
			},
		},
		{
			ID:          5,
			Name:        "Denim Blue Tshirt",
			PriceCents:  98000,
			Image:       "public/2011e9b4a7b03c2b79c4aebd2f40ab7926720377.png",
			Colors:      []string{"Grey", "Black"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Description: "Comfortable cotton t-shirt with modern fit and premium quality.",
			Variants: []Variant{
				{ID: "grey-xs", Color: "Grey", Size: "XS", Stock: 8, SKU: "DBT-GRY-XS"},
				{ID: "grey-s", Color: "Grey", Size: "S", Stock: 12, SKU: "DBT-GRY-S"},
				{ID: "grey-m", Color: "Grey", Size: "M", Stock: 15, SKU: "DBT-GRY-M"},
				{ID: "grey-l", Color: "Grey", Size: "L", Stock: 10, SKU: "DBT-GRY-L"},
				{ID: "grey-xl", Color: "Grey", Size: "XL", Stock: 6, SKU: "DBT-GRY-XL"},
				{ID: "black-xs", Color: "Black", Size: "XS", Stock: 7, SKU: "DBT-BLK-XS"},
				{ID: "black-s", Color: "Black", Size: "S", Stock: 11, SKU: "DBT-BLK-S"},
				{ID: "black-m", Color: "Black", Size: "M", Stock: 14, SKU: "DBT-BLK-M"},
				{ID: "black-l", Color: "Black", Size: "L", Stock: 9, SKU: "DBT-BLK-L"},
				{ID: "black-xl", Color: "Black", Size: "XL", Stock: 5, SKU: "DBT-BLK-XL"},
			},
		},
		{
			ID:          6,
			Name:        "Long Sleeve Tennis Shirt",
			PriceCents:  98000,
			Image:       "public/f5f95e8ed2c25b6bc010fdcfc3a88a834462323a.png",
			Colors:      []string{"Blue", "Black"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Description: "Athletic long sleeve shirt with moisture-wicking fabric and comfortable fit.",
			Variants: []Variant{
				{ID: "blue-xs", Color: "Blue", Size: "XS", Stock: 6, SKU: "LSTS-BLU-XS"},
				{ID: "blue-s", Color: "Blue", Size: "S", Stock: 9, SKU: "LSTS-BLU-S"},
				{ID: "blue-m", Color: "Blue", Size: "M", Stock: 12, SKU: "LSTS-BLU-M"},
				{ID: "blue-l", Color: "Blue", Size: "L", Stock: 8, SKU: "LSTS-BLU-L"},
				{ID: "blue-xl", Color: "Blue", Size: "XL", Stock: 4, SKU: "LSTS-BLU-XL"},
				{ID: "black-xs", Color: "Black", Size: "XS", Stock: 5, SKU: "LSTS-BLK-XS"},
				{ID: "black-s", Color: "Black", Size: "S", Stock: 10, SKU: "LSTS-BLK-S"},
				{ID: "black-m", Color: "Black", Size: "M", Stock: 13, SKU: "LSTS-BLK-M"},
				{ID: "black-l", Color: "Black", Size: "L", Stock: 7, SKU: "LSTS-BLK-L"},
				{ID: "black-xl", Color: "Black", Size: "XL", Stock: 3, SKU: "LSTS-BLK-XL"},
			},
		},
	}
}
