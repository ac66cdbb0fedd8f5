package service

import (
	"context"
	"fmt"
	"math"

	"github.com/pkg/errors"

	"istanbul_helper_back/models"
	"istanbul_helper_back/pkg/cache"
	"istanbul_helper_back/pkg/fetcher"
)

// Coordinate — ключ погодного кэша. Сравнивается по значению,
// поэтому одна точка всегда попадает в одну запись.
type Coordinate struct {
	Lat float64
	Lon float64
}

// NewCoordinate округляет координаты до 4 знаков: дрожащая геолокация
// одной и той же точки не должна плодить записи в кэше
func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{Lat: round4(lat), Lon: round4(lon)}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

type WeatherConfig struct {
	BaseURL    string
	APIKey     string
	Lang       string
	DefaultLat float64
	DefaultLon float64
}

type WeatherService struct {
	client *fetcher.Client
	cfg    WeatherConfig
	cache  *cache.Cache[Coordinate, models.WeatherSnapshot]
}

func NewWeatherService(client *fetcher.Client, cfg WeatherConfig, c *cache.Cache[Coordinate, models.WeatherSnapshot]) *WeatherService {
	return &WeatherService{
		client: client,
		cfg:    cfg,
		cache:  c,
	}
}

// Current возвращает погоду в точке, свежую в пределах TTL.
// У каждой точки своя запись в кэше.
func (s *WeatherService) Current(ctx context.Context, coord Coordinate) (models.WeatherSnapshot, error) {
	return s.cache.GetOrRefresh(ctx, coord, func(ctx context.Context) (models.WeatherSnapshot, error) {
		return s.refresh(ctx, coord)
	})
}

// DefaultCoordinate — точка по умолчанию из конфига (Стамбул), если задана
func (s *WeatherService) DefaultCoordinate() (Coordinate, bool) {
	if s.cfg.DefaultLat == 0 && s.cfg.DefaultLon == 0 {
		return Coordinate{}, false
	}
	return NewCoordinate(s.cfg.DefaultLat, s.cfg.DefaultLon), true
}

func (s *WeatherService) CachedLocations() int {
	return s.cache.Len()
}

func (s *WeatherService) refresh(ctx context.Context, coord Coordinate) (models.WeatherSnapshot, error) {
	var (
		snap models.WeatherSnapshot
		resp models.OpenWeatherResponse
	)

	url := fmt.Sprintf("%s/weather?lat=%.4f&lon=%.4f&appid=%s&units=metric&lang=%s",
		s.cfg.BaseURL, coord.Lat, coord.Lon, s.cfg.APIKey, s.cfg.Lang)
	if err := s.client.GetJSON(ctx, "weather:"+coord.String(), url, &resp); err != nil {
		return snap, err
	}

	if resp.Main == nil || len(resp.Weather) == 0 {
		return snap, errors.Errorf("битый ответ погодного API для точки %s", coord)
	}

	return models.WeatherSnapshot{
		LocationName: resp.Name,
		TempC:        resp.Main.Temp,
		FeelsLikeC:   resp.Main.FeelsLike,
		Description:  resp.Weather[0].Description,
	}, nil
}
