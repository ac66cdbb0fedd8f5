package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"istanbul_helper_back/pkg/service"
)

// GetWeather отдаёт погоду в точке из query-параметров lat и lon.
// Без параметров берётся точка по умолчанию из конфига.
func (h *Handler) GetWeather(c *gin.Context) {
	latStr, lonStr := c.Query("lat"), c.Query("lon")

	var coord service.Coordinate
	switch {
	case latStr == "" && lonStr == "":
		d, ok := h.service.Weather.DefaultCoordinate()
		if !ok {
			newErrorResponse(c, http.StatusBadRequest, "координаты не заданы, а точка по умолчанию не настроена")
			return
		}
		coord = d
	case latStr == "" || lonStr == "":
		newErrorResponse(c, http.StatusBadRequest, "нужны оба параметра: lat и lon")
		return
	default:
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			newErrorResponse(c, http.StatusBadRequest, "lat и lon должны быть числами")
			return
		}
		coord = service.NewCoordinate(lat, lon)
	}

	snap, err := h.service.Weather.Current(c.Request.Context(), coord)
	if err != nil {
		logrus.Errorf("Не удалось обновить погоду (ключ %s): %s", coord, err)
		newErrorResponse(c, http.StatusBadGateway, "не удалось получить погоду")
		return
	}
	c.JSON(http.StatusOK, snap)
}
