package logs

import "context"

// Fields is the set of key value pairs attached to a log entry
type Fields interface {
	// Add sets the value of a field
	Add(key string, value interface{})
}

// Loggable is implemented by types that know how to
// describe themselves as log fields
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a Loggable that adds all the pairs in the
// map to the fields of the entry
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for key, value := range f {
		fields.Add(key, value)
	}
}

// Logger is the logging interface used across the project. The
// context is used to extract values that are common to all the
// entries of an operation, like the trace id
type Logger interface {
	Debug(ctx context.Context, msg string, loggable Loggable)
	Info(ctx context.Context, msg string, loggable Loggable)
	Warn(ctx context.Context, msg string, loggable Loggable)
	Error(ctx context.Context, msg string, loggable Loggable)
}

type contextKey string

// ContextKeyTraceID is the key used to keep the trace id
// of an operation in a context
const ContextKeyTraceID contextKey = "trace_id"

// WithTraceID returns a copy of ctx that carries traceID
func WithTraceID(ctx context.Context, traceID int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

// GetTraceID returns the trace id kept in the context, or 0
// if the context does not have one
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	if traceID, ok := ctx.Value(ContextKeyTraceID).(int64); ok {
		return traceID
	}

	return 0
}
