package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Static showcase data untuk landing page; bukan inventory yang bisa
// di-booking.

type mockDestination struct {
	City  string `json:"city"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

type mockHotel struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

type mockBus struct {
	Operator  string `json:"operator"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
}

var mockDestinations = []mockDestination{
	{"Goa", 4500, "https://source.unsplash.com/featured/?goa,beach"},
	{"Manali", 5200, "https://source.unsplash.com/featured/?manali,mountains"},
	{"Jaipur", 3900, "https://source.unsplash.com/featured/?jaipur,fort"},
	{"Kerala", 4800, "https://source.unsplash.com/featured/?kerala,backwaters"},
	{"Delhi", 3500, "https://source.unsplash.com/featured/?delhi,monument"},
	{"Mumbai", 4100, "https://source.unsplash.com/featured/?mumbai,city"},
}

var mockHotels = map[string][]mockHotel{
	"Goa": {
		{"Goa Beach Resort", 3200, "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=600&q=80"},
		{"Sunset Inn Goa", 2800, "https://images.unsplash.com/photo-1465101046530-73398c7f28ca?auto=format&fit=crop&w=600&q=80"},
	},
	"Manali": {
		{"Manali Mountain Lodge", 4100, "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=600&q=80"},
		{"Snow Valley Resort", 3500, "https://images.unsplash.com/photo-1465101046530-73398c7f28ca?auto=format&fit=crop&w=600&q=80"},
	},
	"Jaipur": {
		{"Jaipur Palace Hotel", 2900, "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=600&q=80"},
		{"Pink City Inn", 2600, "https://images.unsplash.com/photo-1465101046530-73398c7f28ca?auto=format&fit=crop&w=600&q=80"},
	},
	"Delhi": {
		{"Delhi Grand", 3700, "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?auto=format&fit=crop&w=600&q=80"},
		{"Monument View Inn", 3200, "https://images.unsplash.com/photo-1465101178521-c1a9136a3b99?auto=format&fit=crop&w=600&q=80"},
	},
}

var mockBuses = map[string][]mockBus{
	"Goa": {
		{"Goa Express", "08:00", "16:00", 1200, "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?auto=format&fit=crop&w=600&q=80"},
		{"Beachline Travels", "14:00", "22:00", 1100, "https://images.unsplash.com/photo-1465101178521-c1a9136a3b99?auto=format&fit=crop&w=600&q=80"},
	},
	"Manali": {
		{"Himalayan Buses", "07:30", "18:00", 1500, "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?auto=format&fit=crop&w=600&q=80"},
		{"Snow Route", "13:00", "23:00", 1400, "https://images.unsplash.com/photo-1465101178521-c1a9136a3b99?auto=format&fit=crop&w=600&q=80"},
	},
	"Jaipur": {
		{"Royal Rajasthan", "09:00", "17:00", 1000, "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?auto=format&fit=crop&w=600&q=80"},
		{"Pink City Travels", "15:00", "23:00", 950, "https://images.unsplash.com/photo-1465101178521-c1a9136a3b99?auto=format&fit=crop&w=600&q=80"},
	},
	"Delhi": {
		{"Capital Express", "06:00", "14:00", 900, "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?auto=format&fit=crop&w=600&q=80"},
		{"Monumental Travels", "12:00", "20:00", 850, "https://images.unsplash.com/photo-1465101178521-c1a9136a3b99?auto=format&fit=crop&w=600&q=80"},
	},
}

// GET /api/mock/destinations
func GetMockDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destinations": mockDestinations})
}

// GET /api/mock/hotels?city=
func GetMockHotels(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city != "" {
		c.JSON(http.StatusOK, gin.H{"hotels": mockHotels[city]})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": mockHotels})
}

// GET /api/mock/buses?city=
func GetMockBuses(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city != "" {
		c.JSON(http.StatusOK, gin.H{"buses": mockBuses[city]})
		return
	}
	c.JSON(http.StatusOK, gin.H{"buses": mockBuses})
}
