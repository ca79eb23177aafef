package response_models

type Place struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Kind          string   `json:"kind"`
	AverageRating float64  `json:"average_rating"`
	ReviewCount   int64    `json:"review_count"`
	MapLink       string   `json:"map_link"`
	Author        string   `json:"author"`
	AuthorID      string   `json:"author_id"`
	Images        []string `json:"images"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	CreatedAt     string   `json:"created_at"`
}

type Review struct {
	ID        string `json:"id"`
	PlaceID   string `json:"place_id"`
	AuthorID  string `json:"author_id"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}
