package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"istanbul_helper_back/models"
)

func TestRenderRates(t *testing.T) {
	msg := RenderRates(models.CurrencySnapshot{
		UsdTry:    41.23,
		EurTry:    45.10,
		TryRub:    2.72,
		Base:      "USD",
		UpdatedAt: time.Date(2025, 3, 1, 12, 30, 5, 0, time.UTC),
	})

	assert.Contains(t, msg, "1 USD = 41.23 TRY")
	assert.Contains(t, msg, "1 EUR = 45.10 TRY")
	assert.Contains(t, msg, "1 TRY = 2.72 RUB")
	assert.Contains(t, msg, "12:30:05 UTC")
}

func TestRenderWeather(t *testing.T) {
	msg := RenderWeather(models.WeatherSnapshot{
		LocationName: "Istanbul",
		TempC:        18.456,
		FeelsLikeC:   17.2,
		Description:  "ясно",
	})

	assert.Contains(t, msg, "18.5°C")
	assert.Contains(t, msg, "17.2°C")
	assert.Contains(t, msg, "Ясно")
	assert.Contains(t, msg, "Istanbul")
}

func TestRenderWeatherWithoutName(t *testing.T) {
	msg := RenderWeather(models.WeatherSnapshot{
		TempC:       -3.05,
		FeelsLikeC:  -7.5,
		Description: "лёгкий снег",
	})

	assert.Contains(t, msg, "🌤 Погода:")
	assert.Contains(t, msg, "Лёгкий снег")
}

func TestCapitalizeCyrillic(t *testing.T) {
	assert.Equal(t, "Ясно", capitalize("ясно"))
	assert.Equal(t, "Clear", capitalize("clear"))
	assert.Equal(t, "", capitalize(""))
}
