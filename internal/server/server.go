// Package server принимает обновления Telegram через webhook
package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const (
	// SecretHeader - заголовок, в котором Telegram передает секрет webhook
	SecretHeader = "X-Telegram-Bot-Api-Secret-Token"

	WebhookPath = "/webhook"
	HealthPath  = "/healthz"

	readHeaderTimeout = 10 * time.Second
)

// UpdateHandler обрабатывает одно обновление
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

// Server - HTTP-сервер webhook
type Server struct {
	engine  *gin.Engine
	http    *http.Server
	handler UpdateHandler
	secret  string
	logger  logrus.FieldLogger

	// ctx передается обработчикам обновлений, он не зависит от HTTP-запроса
	ctx context.Context
	wg  sync.WaitGroup
}

// New создает сервер на адресе addr. Пустой secret отключает проверку заголовка.
func New(ctx context.Context, addr, secret string, handler UpdateHandler, logger logrus.FieldLogger) *Server {
	s := &Server{
		engine:  gin.New(),
		handler: handler,
		secret:  secret,
		logger:  logger,
		ctx:     ctx,
	}

	s.engine.Use(gin.Recovery(), requestLogger(logger))
	s.engine.POST(WebhookPath, s.handleWebhook)
	s.engine.GET(HealthPath, s.handleHealth)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Handler возвращает http.Handler сервера
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start запускает сервер и блокируется до его остановки
func (s *Server) Start() error {
	s.logger.WithField("addr", s.http.Addr).Info("Starting webhook server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown останавливает прием запросов и ждет завершения начатых обработчиков
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}
	return err
}

// Wait ждет завершения всех запущенных обработчиков обновлений
func (s *Server) Wait() {
	s.wg.Wait()
}

func (s *Server) handleWebhook(c *gin.Context) {
	if s.secret != "" {
		got := c.GetHeader(SecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret token"})
			return
		}
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		s.logger.WithError(err).Warn("Malformed update")
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed update"})
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.handler.HandleUpdate(s.ctx, update)
	}()

	c.Status(http.StatusOK)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
			"client":  c.ClientIP(),
		})

		status := c.Writer.Status()
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("Request failed")
		case status >= http.StatusBadRequest:
			log.Warn("Request rejected")
		default:
			log.Debug("Request served")
		}
	}
}
