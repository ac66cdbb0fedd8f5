package bot

import (
	"context"

	"github.com/sirupsen/logrus"

	"istanbul_helper_back/pkg/service"
)

const (
	greetText = "Привет, я Стамбульский Помощник! 🕌\n" +
		"💱 /currency — курс валют\n" +
		"🌤 /weather — погода в Стамбуле"
	currencyApology = "Не удалось получить курс валют. Попробуй позже."
	weatherApology  = "Не удалось получить погоду. Попробуй позже."
	askLocationText = "Пришли мне геолокацию, и я покажу погоду в этой точке."
)

// Responder превращает команды пользователя в готовый текст ответа.
// Ошибки сервисов дальше него не уходят: наружу всегда возвращается текст.
type Responder struct {
	svc *service.Service
}

func NewResponder(svc *service.Service) *Responder {
	return &Responder{svc: svc}
}

func (r *Responder) OnGreet() string {
	return greetText
}

func (r *Responder) OnCurrencyRequest(ctx context.Context) string {
	snap, err := r.svc.Currency.Rates(ctx)
	if err != nil {
		logrus.Errorf("Не удалось обновить курсы (ключ rates): %s", err)
		return currencyApology
	}
	return RenderRates(snap)
}

// OnWeatherRequest отвечает погодой в переданной точке либо в точке по
// умолчанию. Если точки нет ни там, ни там, второе значение true: это не
// ошибка, а просьба прислать геолокацию.
func (r *Responder) OnWeatherRequest(ctx context.Context, coord *service.Coordinate) (string, bool) {
	target := coord
	if target == nil {
		d, ok := r.svc.Weather.DefaultCoordinate()
		if !ok {
			return askLocationText, true
		}
		target = &d
	}

	snap, err := r.svc.Weather.Current(ctx, *target)
	if err != nil {
		logrus.Errorf("Не удалось обновить погоду (ключ %s): %s", target, err)
		return weatherApology, false
	}
	return RenderWeather(snap), false
}
