// Package logging выдаёт настроенные логгеры logrus по имени компонента.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const (
	EnvLevel  = "STOREFRONT_LOG_LEVEL"
	EnvFormat = "STOREFRONT_LOG_FORMAT"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
	output    io.Writer = os.Stderr
)

// NewLogger возвращает логгер компонента. Для одного компонента создаётся один логгер.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, ok := loggers[component]; ok {
		return logger
	}

	logger := logrus.New()
	logger.SetOutput(output)

	level, err := logrus.ParseLevel(envOr(EnvLevel, "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(formatter(os.Getenv(EnvFormat)))

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// formatter выбирает формат. Без явной настройки в терминал пишется текст, иначе JSON.
func formatter(format string) logrus.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return &logrus.JSONFormatter{}
	case "text":
		return &logrus.TextFormatter{FullTimestamp: true}
	}
	if f, ok := output.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return &logrus.TextFormatter{FullTimestamp: true}
	}
	return &logrus.JSONFormatter{}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// SetOutput перенаправляет все логгеры, включая уже созданные.
func SetOutput(w io.Writer) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	output = w
	for _, l := range loggers {
		l.Logger.SetOutput(w)
	}
}

// Reset забывает созданные логгеры. Нужен тестам, меняющим окружение.
func Reset() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	loggers = make(map[string]*logrus.Entry)
}
