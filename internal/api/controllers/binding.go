package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"pahunapath/pkg/utils"
)

// respondBindError turns binding failures into field-level errors when the
// validator can name the fields.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		utils.RespondValidation(c, map[string]string{"body": "Invalid request format"})
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = fe.Field() + " is required"
		case "email":
			fields[name] = fe.Field() + " must be a valid email"
		case "min", "max", "gte", "lte":
			fields[name] = fe.Field() + " is out of range"
		default:
			fields[name] = fe.Field() + " is invalid"
		}
	}
	utils.RespondValidation(c, fields)
}

func callerID(c *gin.Context) string {
	return c.GetString("user_id")
}

func callerRole(c *gin.Context) string {
	return c.GetString("Role")
}

func callerClaims(c *gin.Context) *utils.Claims {
	v, ok := c.Get("claims")
	if !ok {
		return nil
	}
	claims, _ := v.(*utils.Claims)
	return claims
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondValidation(c, map[string]string{name: "Must be a valid id"})
		return uuid.Nil, false
	}
	return id, true
}
