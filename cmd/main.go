package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	istanbul "istanbul_helper_back"
	"istanbul_helper_back/pkg/bot"
	"istanbul_helper_back/pkg/fetcher"
	"istanbul_helper_back/pkg/handler"
	"istanbul_helper_back/pkg/service"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))
	logrus.Infoln("Запуск Стамбульского Помощника")
	if err := godotenv.Load(); err != nil {
		logrus.Infof("Файл .env не загружен: %s \n", err)
	}

	if err := InitConfig(); err != nil {
		logrus.Fatalf("Ошибка (viper) при инициализации конфига .yaml: %s \n", err.Error())
	}
	logrus.Infoln("Конфиг YAML инициализирован")

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	exchangeKey := os.Getenv("EXCHANGE_API_KEY")
	weatherKey := os.Getenv("WEATHER_API_KEY")
	if token == "" || exchangeKey == "" || weatherKey == "" {
		logrus.Fatalln("Отсутствуют обязательные переменные окружения: TELEGRAM_BOT_TOKEN, EXCHANGE_API_KEY, WEATHER_API_KEY")
	}

	services := service.NewService(fetcher.New(), service.Config{
		TTL: viper.GetDuration("cache.ttl"),
		Currency: service.CurrencyConfig{
			BaseURL: viper.GetString("currency.base_url"),
			APIKey:  exchangeKey,
		},
		Weather: service.WeatherConfig{
			BaseURL:    viper.GetString("weather.base_url"),
			APIKey:     weatherKey,
			Lang:       viper.GetString("weather.lang"),
			DefaultLat: viper.GetFloat64("weather.default.lat"),
			DefaultLon: viper.GetFloat64("weather.default.lon"),
		},
	})
	handlers := handler.NewHandler(services)

	tgBot, err := bot.New(token, services)
	if err != nil {
		logrus.Fatalf("Ошибка при создании телеграм-бота: %s \n", err.Error())
	}
	go tgBot.Start()

	srv := new(istanbul.Server)
	go func() {
		if err := srv.Run(viper.GetString("port"), handlers.InitRoute()); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Ошибка при запуске сервера: %s \n", err)
		}
	}()
	logrus.Infoln("HTTP-сервер запущен")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Infoln("Остановка")
	tgBot.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Ошибка при остановке сервера: %s \n", err.Error())
	}
}

func InitConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}
