package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"travelgo/internal/domain/models"
	"travelgo/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/services?type=&location=&min_price=&max_price=
func GetServices(c *gin.Context) {
	filter := models.ServiceFilter{
		ServiceType: strings.TrimSpace(c.Query("type")),
		Location:    strings.TrimSpace(c.Query("location")),
	}
	// legacy query param name
	if filter.ServiceType == "" {
		filter.ServiceType = strings.TrimSpace(c.Query("service_type"))
	}

	if v := strings.TrimSpace(c.Query("min_price")); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "min_price tidak valid", err)
			return
		}
		filter.MinPrice = &p
	}
	if v := strings.TrimSpace(c.Query("max_price")); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "max_price tidak valid", err)
			return
		}
		filter.MaxPrice = &p
	}

	services, err := repositories.ServiceRepo{}.List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GET /api/services/:id
func GetServiceByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id service tidak valid", err)
		return
	}

	service, err := repositories.ServiceRepo{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": service})
}
