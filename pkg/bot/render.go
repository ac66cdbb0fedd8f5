package bot

import (
	"fmt"
	"unicode"

	"istanbul_helper_back/models"
)

// RenderRates форматирует снимок курсов в текст сообщения, курсы с двумя знаками
func RenderRates(s models.CurrencySnapshot) string {
	return fmt.Sprintf(
		"💱 Курсы валют (обновлено %s UTC):\n"+
			"1 USD = %.2f TRY\n"+
			"1 EUR = %.2f TRY\n"+
			"1 TRY = %.2f RUB",
		s.UpdatedAt.UTC().Format("15:04:05"), s.UsdTry, s.EurTry, s.TryRub)
}

// RenderWeather форматирует снимок погоды, температура с одним знаком
func RenderWeather(s models.WeatherSnapshot) string {
	header := "🌤 Погода:"
	if s.LocationName != "" {
		header = fmt.Sprintf("🌤 Погода (%s):", s.LocationName)
	}
	return fmt.Sprintf(
		"%s\nТемпература: %.1f°C\nОщущается как: %.1f°C\n%s",
		header, s.TempC, s.FeelsLikeC, capitalize(s.Description))
}

// capitalize поднимает первую букву, в том числе кириллическую
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
