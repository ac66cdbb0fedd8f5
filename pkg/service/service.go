package service

import (
	"context"
	"time"

	"istanbul_helper_back/models"
	"istanbul_helper_back/pkg/cache"
	"istanbul_helper_back/pkg/fetcher"
)

type Currency interface {
	Rates(ctx context.Context) (models.CurrencySnapshot, error)
	CachedRates() int
}

type Weather interface {
	Current(ctx context.Context, coord Coordinate) (models.WeatherSnapshot, error)
	DefaultCoordinate() (Coordinate, bool)
	CachedLocations() int
}

type Service struct {
	Currency
	Weather
}

type Config struct {
	TTL      time.Duration
	Currency CurrencyConfig
	Weather  WeatherConfig
}

func NewService(client *fetcher.Client, cfg Config) *Service {
	return &Service{
		Currency: NewCurrencyService(client, cfg.Currency,
			cache.New[string, models.CurrencySnapshot]("currency", cfg.TTL)),
		Weather: NewWeatherService(client, cfg.Weather,
			cache.New[Coordinate, models.WeatherSnapshot]("weather", cfg.TTL)),
	}
}
