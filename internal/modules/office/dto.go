package office

type OfficeRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Options     string   `json:"options"`
	Description string   `json:"description"`
	Area        float64  `json:"area" binding:"required"`
	Price       float64  `json:"price" binding:"required"`
	Photos      []string `json:"photos"`
}

type SearchRequest struct {
	MinArea  float64 `json:"minArea"`
	MaxArea  float64 `json:"maxArea"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}
