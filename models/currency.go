package models

import "time"

// ExchangeRateResponse — ответ exchangerate-api на запрос курсов одной базовой валюты
type ExchangeRateResponse struct {
	Result          string             `json:"result"`
	BaseCode        string             `json:"base_code"`
	TimeLastUpdate  string             `json:"time_last_update_utc"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// CurrencySnapshot — собранные курсы для команды /currency. После сборки не меняется.
type CurrencySnapshot struct {
	UsdTry    float64   `json:"usd_try"`
	EurTry    float64   `json:"eur_try"`
	TryRub    float64   `json:"try_rub"`
	Base      string    `json:"base"`
	UpdatedAt time.Time `json:"updated_at"`
}
