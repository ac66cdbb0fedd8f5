package models

// OpenWeatherResponse — ответ openweathermap. Main и Weather обязательны:
// если их нет, ответ считается битым.
type OpenWeatherResponse struct {
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Name string `json:"name"`
}

// WeatherSnapshot — погода в одной точке для ответа пользователю
type WeatherSnapshot struct {
	LocationName string  `json:"location_name,omitempty"`
	TempC        float64 `json:"temp_c"`
	FeelsLikeC   float64 `json:"feels_like_c"`
	Description  string  `json:"description"`
}
