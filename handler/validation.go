package handler

import (
	"errors"
	"net/http"

	"github.com/annazecevic/band-service/domain"
	"github.com/annazecevic/band-service/dto"
	"github.com/annazecevic/band-service/logger"
	"github.com/annazecevic/band-service/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the "genre" tag to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return domain.Genre(fl.Field().String()).IsValid()
	})
}

// pathValidationError answers 422 for a path parameter that failed binding.
func pathValidationError(c *gin.Context, param string, err error) {
	input := c.Param(param)
	item := dto.ValidationErrorItem{
		Loc:   []string{"path", param},
		Input: input,
	}

	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "genre":
		item.Type = "enum"
		item.Msg = domain.GenreChoicesMessage()
	case errors.As(err, &verrs):
		item.Type = "value_error"
		item.Msg = verrs.Error()
	default:
		item.Type = "int_parsing"
		item.Msg = "Input should be a valid integer, unable to parse string as an integer"
	}

	logger.Warn(logger.EventValidationFailure, "Invalid path parameter", logger.Fields(
		"param", param,
		"input", input,
		"type", item.Type,
		"request_id", middleware.GetRequestID(c),
	))
	c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Detail: []dto.ValidationErrorItem{item}})
}

func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "Internal Server Error"})
}
