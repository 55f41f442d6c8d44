package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Kota yang dilayani; dipakai autocomplete pencarian.
var cities = []string{
	"Ahmedabad", "Bangalore", "Chandigarh", "Chennai", "Delhi", "Goa",
	"Hyderabad", "Jaipur", "Kerala", "Kolkata", "Lucknow", "Manali",
	"Mumbai", "Mysore", "Nagpur", "Pune", "Shimla", "Udaipur",
	"Varanasi", "Vishakhapatnam",
}

// GET /api/cities/suggest?query=
func SuggestCities(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	if query == "" {
		c.JSON(http.StatusOK, []string{})
		return
	}

	suggestions := []string{}
	for _, city := range cities {
		if strings.Contains(strings.ToLower(city), query) {
			suggestions = append(suggestions, city)
			if len(suggestions) == 8 {
				break
			}
		}
	}
	c.JSON(http.StatusOK, suggestions)
}
