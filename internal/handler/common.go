package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// departureTimeLayouts accepts RFC3339 and zone-less ISO-8601, the
// formats clients of the original API already send.
var departureTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func ParseDepartureTime(value string) (time.Time, error) {
	var err error
	for _, layout := range departureTimeLayouts {
		var t time.Time
		t, err = time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
