package controllers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pahunapath/internal/models/request_models"
	"pahunapath/internal/services"
	"pahunapath/pkg/utils"
)

const (
	maxPlaceImages = 10
	maxImageBytes  = 8 << 20
)

type PlacesController struct {
	placeService  services.PlaceServiceInterface
	reviewService services.ReviewServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface, reviewService services.ReviewServiceInterface) *PlacesController {
	return &PlacesController{
		placeService:  placeService,
		reviewService: reviewService,
	}
}

// ListPlaces godoc
// @Summary List places
// @Description Feed of shared places, newest first. Optional kind filter: place, restaurant, hotel
// @Tags Places
// @Produce json
// @Param kind query string false "place | restaurant | hotel"
// @Success 200 {object} utils.APIResponse
// @Router /places [get]
func (p *PlacesController) ListPlaces(c *gin.Context) {
	places, err := p.placeService.ListPlaces(c.Request.Context(), c.Query("kind"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (p *PlacesController) GetPlace(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	place, err := p.placeService.GetPlace(c.Request.Context(), id.String())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}

// CreatePlace godoc
// @Summary Share a place
// @Tags Places
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param kind formData string false "place | restaurant | hotel"
// @Param map_link formData string false "Map link"
// @Param latitude formData number false "Latitude"
// @Param longitude formData number false "Longitude"
// @Param images formData file false "Images (repeatable)"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /places [post]
func (p *PlacesController) CreatePlace(c *gin.Context) {
	var form request_models.CreatePlaceForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, err)
		return
	}
	if len(form.Images) > maxPlaceImages {
		utils.RespondValidation(c, map[string]string{"images": "At most 10 images are allowed"})
		return
	}

	authorID, err := uuid.Parse(callerID(c))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	uploads := make([]request_models.ImageUpload, 0, len(form.Images))
	for _, fh := range form.Images {
		if fh.Size > maxImageBytes {
			utils.RespondValidation(c, map[string]string{"images": "Each image must be 8MB or smaller"})
			return
		}
		upload, closer, err := openUpload(fh)
		if err != nil {
			utils.RespondValidation(c, map[string]string{"images": "Could not read uploaded image"})
			return
		}
		defer closer.Close()
		uploads = append(uploads, upload)
	}

	place, err := p.placeService.CreatePlace(c.Request.Context(), request_models.CreatePlaceInput{
		Name:        form.Name,
		Description: form.Description,
		Kind:        form.Kind,
		MapLink:     form.MapLink,
		Latitude:    form.Latitude,
		Longitude:   form.Longitude,
		Images:      uploads,
		AuthorID:    authorID,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, place, "Place created successfully")
}

func (p *PlacesController) DeletePlace(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := p.placeService.DeletePlace(c.Request.Context(), id, callerID(c), callerRole(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Place deleted successfully")
}

func (p *PlacesController) ListReviews(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reviews, err := p.reviewService.ListReviews(c.Request.Context(), id.String())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

func (p *PlacesController) CreateReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	authorID, err := uuid.Parse(callerID(c))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	review, err := p.reviewService.CreateReview(c.Request.Context(), id.String(), authorID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review added successfully")
}

func (p *PlacesController) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := p.reviewService.DeleteReview(c.Request.Context(), id.String(), callerID(c), callerRole(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Review deleted successfully")
}

// openUpload sniffs the real content type from the first bytes of the file
// rather than trusting the client header.
func openUpload(fh *multipart.FileHeader) (request_models.ImageUpload, io.Closer, error) {
	f, err := fh.Open()
	if err != nil {
		return request_models.ImageUpload{}, nil, err
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		_ = f.Close()
		return request_models.ImageUpload{}, nil, err
	}
	head = head[:n]

	return request_models.ImageUpload{
		MimeType: http.DetectContentType(head),
		Body:     io.MultiReader(bytes.NewReader(head), f),
	}, f, nil
}
