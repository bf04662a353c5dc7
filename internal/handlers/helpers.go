package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "privfinos/internal/errors"
	"privfinos/internal/logger"
	"privfinos/internal/uuid"
)

// respondData writes the uniform success envelope.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondWithError writes the uniform error envelope. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"success": false,
			"error": gin.H{
				"message": appErr.Message,
				"code":    appErr.Code,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"success": false,
		"error": gin.H{
			"message": apperrors.ErrInternalServer.Message,
			"code":    apperrors.ErrInternalServer.Code,
		},
	})
}

// respondValidationError writes a 400 envelope for malformed input. Binding
// failures from the validator engine carry per-field details.
func respondValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, gin.H{
				"field": fe.Field(),
				"rule":  fe.Tag(),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"message": apperrors.ErrValidation.Message,
				"code":    apperrors.ErrValidation.Code,
				"details": details,
			},
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"message": err.Error(),
			"code":    apperrors.ErrValidation.Code,
		},
	})
}

// pathUUID validates the named path parameter as a UUID. On failure it writes
// the validation envelope and returns ok=false.
func pathUUID(c *gin.Context, param string) (string, bool) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		respondValidationError(c, errors.New("invalid "+param+" parameter"))
		return "", false
	}
	return id, true
}
