package client

import "time"

type Account struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"created_at"`
}

func (a Account) Created() time.Time {
	return parseTime(a.CreatedAt)
}

type LoginResult struct {
	Token     string `json:"token" validate:"required"`
	Role      string `json:"role" validate:"required"`
	AccountID string `json:"account_id" validate:"required"`
	ExpiresIn int64  `json:"expires_in"`
}

type Place struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
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

func (p Place) Created() time.Time {
	return parseTime(p.CreatedAt)
}

type Review struct {
	ID        string `json:"id" validate:"required"`
	PlaceID   string `json:"place_id"`
	AuthorID  string `json:"author_id"`
	Author    string `json:"author"`
	Rating    int    `json:"rating" validate:"gte=1,lte=5"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// DeleteOutcome is the server's verdict for one id of a bulk delete.
type DeleteOutcome struct {
	ID      string `json:"id" validate:"required"`
	Deleted bool   `json:"deleted"`
	Error   string `json:"error"`
}

type BulkResult struct {
	Requested int             `json:"requested"`
	Deleted   int             `json:"deleted"`
	Failed    int             `json:"failed"`
	Outcomes  []DeleteOutcome `json:"outcomes" validate:"dive"`
}

type PendingAction struct {
	Token       string   `json:"token" validate:"required"`
	Kind        string   `json:"kind" validate:"required"`
	Description string   `json:"description"`
	IDs         []string `json:"ids" validate:"required,min=1"`
	ExpiresAt   string   `json:"expires_at"`
}

type TopPlace struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

type Dashboard struct {
	TotalUsers   int64      `json:"total_users"`
	TotalStaff   int64      `json:"total_staff"`
	TotalPlaces  int64      `json:"total_places"`
	TotalReviews int64      `json:"total_reviews"`
	NewUsers     int64      `json:"new_users"`
	WindowDays   int        `json:"window_days"`
	TopPlaces    []TopPlace `json:"top_places"`
}

// NewPlace is the form for sharing a place.
type NewPlace struct {
	Name        string
	Description string
	Kind        string
	MapLink     string
	Latitude    float64
	Longitude   float64
	Images      []ImageFile
}

type ImageFile struct {
	Name string
	Data []byte
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
