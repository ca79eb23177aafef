package request_models

import (
	"io"
	"mime/multipart"

	"github.com/google/uuid"
)

// CreatePlaceForm is bound from multipart/form-data.
type CreatePlaceForm struct {
	Name        string                  `form:"name" binding:"required,min=2,max=120"`
	Description string                  `form:"description" binding:"max=4000"`
	Kind        string                  `form:"kind"`
	MapLink     string                  `form:"map_link" binding:"omitempty,url"`
	Latitude    float64                 `form:"latitude" binding:"gte=-90,lte=90"`
	Longitude   float64                 `form:"longitude" binding:"gte=-180,lte=180"`
	Images      []*multipart.FileHeader `form:"images"`
}

type ImageUpload struct {
	MimeType string
	Body     io.Reader
}

// CreatePlaceInput is the validated form handed to the place service.
type CreatePlaceInput struct {
	Name        string
	Description string
	Kind        string
	MapLink     string
	Latitude    float64
	Longitude   float64
	Images      []ImageUpload
	AuthorID    uuid.UUID
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"max=2000"`
}
