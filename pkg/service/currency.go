package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"istanbul_helper_back/models"
	"istanbul_helper_back/pkg/cache"
	"istanbul_helper_back/pkg/fetcher"
)

// ratesKey — единственный ключ валютного кэша
const ratesKey = "rates"

type CurrencyConfig struct {
	BaseURL string
	APIKey  string
}

type CurrencyService struct {
	client *fetcher.Client
	cfg    CurrencyConfig
	cache  *cache.Cache[string, models.CurrencySnapshot]
}

func NewCurrencyService(client *fetcher.Client, cfg CurrencyConfig, c *cache.Cache[string, models.CurrencySnapshot]) *CurrencyService {
	return &CurrencyService{
		client: client,
		cfg:    cfg,
		cache:  c,
	}
}

// Rates возвращает курсы USD→TRY, EUR→TRY и TRY→RUB, свежие в пределах TTL
func (s *CurrencyService) Rates(ctx context.Context) (models.CurrencySnapshot, error) {
	return s.cache.GetOrRefresh(ctx, ratesKey, s.refresh)
}

func (s *CurrencyService) CachedRates() int {
	return s.cache.Len()
}

// refresh делает три независимых запроса, по одному на базовую валюту.
// Если хоть один не удался, снимок не собирается и в кэш ничего не попадает.
func (s *CurrencyService) refresh(ctx context.Context) (models.CurrencySnapshot, error) {
	var snap models.CurrencySnapshot

	usdTry, err := s.rate(ctx, "USD", "TRY")
	if err != nil {
		return snap, err
	}
	eurTry, err := s.rate(ctx, "EUR", "TRY")
	if err != nil {
		return snap, err
	}
	tryRub, err := s.rate(ctx, "TRY", "RUB")
	if err != nil {
		return snap, err
	}

	return models.CurrencySnapshot{
		UsdTry:    usdTry,
		EurTry:    eurTry,
		TryRub:    tryRub,
		Base:      "USD",
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// rate запрашивает курс base→code одним прямым запросом
func (s *CurrencyService) rate(ctx context.Context, base, code string) (float64, error) {
	var resp models.ExchangeRateResponse

	url := fmt.Sprintf("%s/%s/latest/%s", s.cfg.BaseURL, s.cfg.APIKey, base)
	if err := s.client.GetJSON(ctx, "currency:"+base, url, &resp); err != nil {
		return 0, err
	}

	value, ok := resp.ConversionRates[code]
	if !ok || value == 0 {
		return 0, errors.Errorf("в ответе по базе %s нет курса %s", base, code)
	}
	return value, nil
}
