package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"pahunapath/internal/mediastore"
	"pahunapath/pkg/utils"
)

type MediaController struct {
	store mediastore.Store
}

func NewMediaController(store mediastore.Store) *MediaController {
	return &MediaController{store: store}
}

func (m *MediaController) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("path"), "/")

	rc, mimeType, err := m.store.Open(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, mediastore.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Image not found")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, -1, mimeType, rc, map[string]string{
		"Cache-Control": "public, max-age=86400",
	})
}
