package models

// ProductSlider is the stored definition of a product-slider component:
// the catalog filter it represents plus its display metadata.
type ProductSlider struct {
	SliderID        string  `json:"slider_id"`
	Brands          []IDRef `json:"brands"`
	Retailers       []IDRef `json:"retailers"`
	Categories      []IDRef `json:"categories"`
	PromotionType   string  `json:"promotion_type,omitempty"`
	SortByField     string  `json:"sort_by_field"`
	SortByOrder     string  `json:"sort_by_order"`
	NumberOfProduct int     `json:"number_of_product"`
	ModuleName      string  `json:"module_name"`
	BrandLogo       string  `json:"brand_logo,omitempty"`
	BackgroundColor string  `json:"background_color,omitempty"`
}

// IDRef is a bare id reference inside a slider definition.
type IDRef struct {
	ID string `json:"id"`
}

// Product is the catalog's product row as forwarded to clients.
type Product struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	Brand     string  `json:"brand,omitempty"`
	Retailer  string  `json:"retailer,omitempty"`
	Price     float64 `json:"price"`
}
