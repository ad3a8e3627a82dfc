package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDKey = "requestid"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequestIDMiddleware() fiber.Handler
		LoggerMiddleware() fiber.Handler
		RecoverMiddleware() fiber.Handler
		LimiterMiddleware() fiber.Handler
		MetricsMiddleware() fiber.Handler
	}

	Options struct {
		AllowOrigins    string
		RateLimitMax    int
		RateLimitWindow time.Duration
	}

	middleware struct {
		options Options
		logger  *zap.Logger
	}
)

func NewMiddleware(options Options, logger *zap.Logger) Middleware {
	return &middleware{
		options: options,
		logger:  logger,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	origins := m.options.AllowOrigins
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}

func (m *middleware) RequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: RequestIDKey,
	})
}

// LoggerMiddleware writes one access log entry per request.
func (m *middleware) LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", RequestID(c)),
			zap.String("ip", c.IP()),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			m.logger.Error("request", append(fields, zap.Error(err))...)
		case status >= fiber.StatusBadRequest:
			m.logger.Warn("request", fields...)
		default:
			m.logger.Info("request", fields...)
		}
		return err
	}
}

func (m *middleware) RecoverMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			panicRecoveries.Inc()
			m.logger.Error("panic recovered", zap.Any("panic", e), zap.String("request_id", RequestID(c)))
		},
	})
}

// LimiterMiddleware is a no-op when RateLimitMax is not positive.
func (m *middleware) LimiterMiddleware() fiber.Handler {
	if m.options.RateLimitMax <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	window := m.options.RateLimitWindow
	if window <= 0 {
		window = time.Second
	}
	return limiter.New(limiter.Config{
		Max:        m.options.RateLimitMax,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			rateLimitRejects.Inc()
			return c.SendStatus(fiber.StatusTooManyRequests)
		},
	})
}

// RequestID returns the id assigned by RequestIDMiddleware, or "".
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
