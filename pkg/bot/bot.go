package bot

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v3"

	"istanbul_helper_back/pkg/service"
)

// handlerTimeout покрывает все запросы к внешним API внутри одной команды
const handlerTimeout = 20 * time.Second

// Bot — телеграм-обвязка над Responder: маршрутизация команд,
// клавиатура с кнопкой геолокации и эхо на прочий текст
type Bot struct {
	tg   *tele.Bot
	resp *Responder
}

func New(token string, svc *service.Service) (*Bot, error) {
	tg, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}

	b := &Bot{tg: tg, resp: NewResponder(svc)}

	tg.Handle("/start", b.onStart)
	tg.Handle("/currency", b.onCurrency)
	tg.Handle("/weather", b.onWeather)
	tg.Handle(tele.OnLocation, b.onLocation)
	tg.Handle(tele.OnText, b.onEcho)

	return b, nil
}

func (b *Bot) Start() {
	logrus.Infoln("Бот запущен, ожидаю сообщения")
	b.tg.Start()
}

func (b *Bot) Stop() {
	b.tg.Stop()
}

func (b *Bot) onStart(c tele.Context) error {
	return c.Send(b.resp.OnGreet())
}

func (b *Bot) onCurrency(c tele.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	return c.Send(b.resp.OnCurrencyRequest(ctx))
}

func (b *Bot) onWeather(c tele.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	text, askLocation := b.resp.OnWeatherRequest(ctx, nil)
	if askLocation {
		menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
		menu.Reply(menu.Row(menu.Location("📍 Отправить геолокацию")))
		return c.Send(text, menu)
	}
	return c.Send(text)
}

func (b *Bot) onLocation(c tele.Context) error {
	loc := c.Message().Location
	if loc == nil {
		return c.Send(askLocationText)
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	coord := service.NewCoordinate(float64(loc.Lat), float64(loc.Lng))
	text, _ := b.resp.OnWeatherRequest(ctx, &coord)
	return c.Send(text)
}

// onEcho повторяет любой текст без команды, как и исходный бот
func (b *Bot) onEcho(c tele.Context) error {
	if c.Text() == "" {
		logrus.Warnln("Эхо вызвано без текстового сообщения")
		return nil
	}
	return c.Send(c.Text())
}
