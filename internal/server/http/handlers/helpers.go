package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/primedecor/backend/internal/server/http/dto"
)

const internalErrorMessage = "internal server error"

func abortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

// pageParams reads limit/offset query parameters. Out-of-range values are
// clamped downstream, malformed values fall back to defaults.
func pageParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	return limit, offset
}

func badJSON(c *gin.Context) {
	abortError(c, http.StatusBadRequest, "invalid request body")
}
