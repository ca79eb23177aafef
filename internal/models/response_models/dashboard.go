package response_models

type TopPlace struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

type DashboardReport struct {
	TotalUsers   int64      `json:"total_users"`
	TotalStaff   int64      `json:"total_staff"`
	TotalPlaces  int64      `json:"total_places"`
	TotalReviews int64      `json:"total_reviews"`
	NewUsers     int64      `json:"new_users"`
	WindowDays   int        `json:"window_days"`
	TopPlaces    []TopPlace `json:"top_places"`
}
