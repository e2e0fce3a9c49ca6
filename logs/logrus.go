package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// FormatterType selects how logrus renders entries
type FormatterType string

const (
	FormatterTypePrefixed FormatterType = "prefixed"
	FormatterTypeText     FormatterType = "text"
	FormatterTypeJson     FormatterType = "json"
)

// NewFormatter returns the logrus formatter for the type. Unknown
// types fall back to the prefixed text formatter
func NewFormatter(formatter FormatterType) logrus.Formatter {
	switch formatter {
	case FormatterTypeText:
		return &logrus.TextFormatter{}
	case FormatterTypeJson:
		return &logrus.JSONFormatter{}
	}

	return &prefixed.TextFormatter{FullTimestamp: true}
}

// LogrusLoggerProperties are the properties used to
// create a Logrus logger
type LogrusLoggerProperties struct {
	// Prefix is added to all the entries of the logger
	Prefix string

	// Level is the minimum level of the entries that are written
	Level logrus.Level

	// Output is where the entries are written, os.Stderr if nil
	Output io.Writer

	// Formatter used to render the entries
	Formatter FormatterType
}

// Logrus is an implementation of Logger that uses logrus
type Logrus struct {
	prefix string
	logger *logrus.Logger
}

// NewLogrus creates a new Logrus logger
func NewLogrus(props LogrusLoggerProperties) *Logrus {
	logger := logrus.New()
	logger.SetLevel(props.Level)
	logger.SetFormatter(NewFormatter(props.Formatter))

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	return &Logrus{prefix: props.Prefix, logger: logger}
}

type logrusFields logrus.Fields

func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

func (l *Logrus) log(ctx context.Context, level logrus.Level, msg string, loggable Loggable) {
	if !l.logger.IsLevelEnabled(level) {
		return
	}

	fields := make(logrusFields)
	if loggable != nil {
		loggable.Log(fields)
	}

	if traceID := GetTraceID(ctx); traceID != 0 {
		fields.Add(string(ContextKeyTraceID), traceID)
	}

	// the prefixed formatter renders this field before the message
	if l.prefix != "" {
		fields.Add("prefix", l.prefix)
	}

	l.logger.WithFields(logrus.Fields(fields)).Log(level, msg)
}

// Debug implementation of Logger for Logrus
func (l *Logrus) Debug(ctx context.Context, msg string, loggable Loggable) {
	l.log(ctx, logrus.DebugLevel, msg, loggable)
}

// Info implementation of Logger for Logrus
func (l *Logrus) Info(ctx context.Context, msg string, loggable Loggable) {
	l.log(ctx, logrus.InfoLevel, msg, loggable)
}

// Warn implementation of Logger for Logrus
func (l *Logrus) Warn(ctx context.Context, msg string, loggable Loggable) {
	l.log(ctx, logrus.WarnLevel, msg, loggable)
}

// Error implementation of Logger for Logrus
func (l *Logrus) Error(ctx context.Context, msg string, loggable Loggable) {
	l.log(ctx, logrus.ErrorLevel, msg, loggable)
}
