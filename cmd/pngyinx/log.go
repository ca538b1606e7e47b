package main

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func configureLogger(l *logrus.Logger, w io.Writer, level string) {
	l.Formatter = &logrus.TextFormatter{TimestampFormat: time.RFC3339Nano, FullTimestamp: true}
	l.Out = w
	switch strings.ToLower(level) {
	case "debug":
		l.SetLevel(logrus.DebugLevel)
	case "info":
		l.SetLevel(logrus.InfoLevel)
	case "error":
		l.SetLevel(logrus.ErrorLevel)
	default:
		l.SetLevel(logrus.WarnLevel)
	}
}
