package request

type CreateListingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	PricePerDay int64  `json:"price_per_day" binding:"required,gt=0"`
}

type UpdateListingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	PricePerDay int64  `json:"price_per_day" binding:"required,gt=0"`
}
