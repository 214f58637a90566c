package handlers

import (
	"strconv"
	"time"

	"farm_manager/internal/models"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// pathID parses the :id route parameter. It writes the error response and
// returns false when the parameter is not a positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, models.NewValidationError("id", "must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}

// queryID reads an optional positive integer query parameter.
func queryID(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, models.NewValidationError(name, "must be a positive integer")
	}
	value := uint(id)
	return &value, nil
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, models.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

func parseOptionalDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := parseDate(field, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
