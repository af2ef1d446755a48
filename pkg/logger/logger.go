// Package logger arma el logger estructurado del servicio sobre zerolog.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config parámetros del logger.
type Config struct {
	Env   string // development: consola legible; cualquier otro valor: JSON por stdout
	Level string // trace, debug, info, warn, error; info si viene vacío o desconocido
}

// Logger envuelve zerolog para inyectarse en el arranque del servicio.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger y redirige el logger global de zerolog, de modo que
// las librerías que escriben por log.Logger salgan por el mismo destino.
func New(cfg Config) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	zl := zerolog.New(os.Stdout)
	if cfg.Env == "development" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}
	zl = zl.Level(levelFrom(cfg.Level)).With().Timestamp().Logger()

	log.Logger = zl
	return &Logger{zl: zl}
}

func levelFrom(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Eventos delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context { return l.zl.With() }
