package dto

import "github.com/GregMSThompson/retail-backend/internal/models"

// ProductQuery drives a catalog search. Optional filters stay unset unless
// the source actually constrains them: nil slices and a nil promotion type
// mean "no filter", never "empty filter".
type ProductQuery struct {
	BrandIDs      []string `json:"brand_ids,omitempty"`
	RetailerIDs   []string `json:"retailer_ids,omitempty"`
	CategoryIDs   []string `json:"category_ids,omitempty"`
	PromotionType *string  `json:"promotion_type,omitempty"`
	SortByField   string   `json:"sort_by_field"`
	SortByOrder   string   `json:"sort_by_order"`
	Limit         int      `json:"limit"`
	Page          int      `json:"page"`
}

// ProductPage is one page of catalog results.
type ProductPage struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
}
