package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/p4vook/kpoisk-bot/internal/format"
	"github.com/p4vook/kpoisk-bot/internal/handlers"
	"github.com/p4vook/kpoisk-bot/internal/kinopoisk"
	"github.com/p4vook/kpoisk-bot/internal/server"
	"github.com/p4vook/kpoisk-bot/pkg/utils"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const (
	pollTimeout     = 60
	shutdownTimeout = 5 * time.Second
)

var allowedUpdates = []string{"message", "inline_query", "chosen_inline_result"}

func main() {
	// Загружаем конфигурацию
	config, err := utils.LoadConfig()
	if err != nil {
		logrus.Fatalf("Error loading config: %v", err)
	}

	logger := utils.NewLogger(config.LogLevel)
	if err := tgbotapi.SetLogger(logger); err != nil {
		logger.WithError(err).Warn("Error setting bot logger")
	}

	// Открываем сессию API, она живет до завершения процесса
	session := kinopoisk.NewClient(config.APIURL, config.APIToken, config.APITimeout)
	logger.WithField("api_url", session.BaseURL()).Info("API session opened")
	defer func() {
		session.Close()
		logger.Info("API session closed")
	}()

	// Инициализируем бота Telegram
	bot, err := tgbotapi.NewBotAPI(config.TelegramToken)
	if err != nil {
		logger.Fatalf("Error creating bot: %v", err)
	}
	bot.Debug = config.Debug
	logger.Infof("Authorized on account %s", bot.Self.UserName)

	// Создаем основной обработчик
	formatter := format.NewFormatter(config.KinopoiskRoot, config.DescriptionLength)
	search := handlers.NewSearchHandlers(handlers.NewTelegramBotAdapter(bot, logger), formatter, config.TopResultsCount, logger)
	mainHandler := handlers.NewMainHandler(session, search, logger)

	// Обрабатываем сигналы для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.UseWebhook() {
		err = runWebhook(ctx, bot, config, mainHandler, logger)
	} else {
		err = runPolling(ctx, bot, mainHandler, logger)
	}
	if err != nil {
		logger.WithError(err).Error("Bot stopped with error")
		session.Close()
		os.Exit(1)
	}
}

func runPolling(ctx context.Context, bot *tgbotapi.BotAPI, handler *handlers.MainHandler, logger *logrus.Logger) error {
	// getUpdates не работает, пока установлен webhook
	if _, err := bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return err
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	u.AllowedUpdates = allowedUpdates

	updates := bot.GetUpdatesChan(u)
	logger.Info("Bot started in long polling mode. Press Ctrl+C to stop.")

	// Основной цикл обработки сообщений
	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go handler.HandleUpdate(ctx, update)
		case <-ctx.Done():
			logger.Info("Shutting down bot...")
			bot.StopReceivingUpdates()
			return nil
		}
	}
}

func runWebhook(ctx context.Context, bot *tgbotapi.BotAPI, config *utils.Config, handler *handlers.MainHandler, logger *logrus.Logger) error {
	params := make(tgbotapi.Params)
	params.AddNonEmpty("url", config.WebhookURL)
	params.AddNonEmpty("secret_token", config.WebhookSecret)
	if err := params.AddInterface("allowed_updates", allowedUpdates); err != nil {
		return err
	}
	if _, err := bot.MakeRequest("setWebhook", params); err != nil {
		return err
	}
	logger.WithField("url", config.WebhookURL).Info("Webhook registered")

	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := server.New(ctx, config.ListenAddr, config.WebhookSecret, handler, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down webhook server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
