package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope every failed request gets. Successful
// responses keep their endpoint-specific shapes.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

func RespondErrorWithDetails(c *gin.Context, code int, message, details string) {
	c.JSON(code, ErrorResponse{Error: message, Details: details})
}

// HandleServiceError maps sentinel errors from the service layer onto HTTP
// statuses. Unrecognized errors are treated as internal.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "Không tìm thấy lộ trình với ID này")
	case errors.Is(err, ErrDestinationNotFound):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("database error: %v", err)
		RespondErrorWithDetails(c, http.StatusInternalServerError, "Đã có lỗi xảy ra", err.Error())
	default:
		log.Printf("unhandled error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Đã có lỗi xảy ra")
	}
}
