package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetRates отдаёт снимок курсов валют в JSON
func (h *Handler) GetRates(c *gin.Context) {
	snap, err := h.service.Currency.Rates(c.Request.Context())
	if err != nil {
		logrus.Errorf("Не удалось обновить курсы (ключ rates): %s", err)
		newErrorResponse(c, http.StatusBadGateway, "не удалось получить курс валют")
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"status":           "ok",
		"cached_rates":     h.service.Currency.CachedRates(),
		"cached_locations": h.service.Weather.CachedLocations(),
	})
}
