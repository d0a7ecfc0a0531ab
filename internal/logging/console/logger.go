// Package console implements a small key=value logger for hosts that embed
// the curriculum module without bringing their own logging stack. Entries are
// a timestamp, a severity label, the message, and sorted fields.
package console

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-curriculum/internal/logging"
	"github.com/goliatone/go-curriculum/pkg/interfaces"
)

// Level represents the severity attached to a log entry.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelLabels = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// String renders the severity label used in console output.
func (l Level) String() string {
	if int(l) < len(levelLabels) {
		return levelLabels[l]
	}
	return "INFO"
}

// Options configures the console logger provider. Zero values fall back to
// stdout, the wall clock, and a DEBUG floor.
type Options struct {
	Writer   io.Writer
	TimeFunc func() time.Time
	MinLevel *Level
}

type provider struct {
	mu    sync.Mutex
	out   io.Writer
	clock func() time.Time
	floor Level
}

// NewProvider constructs a console-backed logger provider satisfying the
// curriculum logging interfaces.
func NewProvider(opts Options) interfaces.LoggerProvider {
	p := &provider{
		out:   opts.Writer,
		clock: opts.TimeFunc,
		floor: LevelDebug,
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.clock == nil {
		p.clock = time.Now
	}
	if opts.MinLevel != nil {
		p.floor = *opts.MinLevel
	}
	return p
}

func (p *provider) GetLogger(name string) interfaces.Logger {
	return &entryLogger{
		sink:   p,
		fields: map[string]any{"logger": name},
	}
}

func (p *provider) write(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	// Best effort: diagnostics must never cascade into the caller.
	_, _ = io.WriteString(p.out, line+"\n")
}

type entryLogger struct {
	sink   *provider
	fields map[string]any
	ctx    context.Context
}

var (
	_ interfaces.Logger       = (*entryLogger)(nil)
	_ interfaces.FieldsLogger = (*entryLogger)(nil)
)

func (l *entryLogger) Trace(msg string, args ...any) { l.emit(LevelTrace, msg, args) }
func (l *entryLogger) Debug(msg string, args ...any) { l.emit(LevelDebug, msg, args) }
func (l *entryLogger) Info(msg string, args ...any)  { l.emit(LevelInfo, msg, args) }
func (l *entryLogger) Warn(msg string, args ...any)  { l.emit(LevelWarn, msg, args) }
func (l *entryLogger) Error(msg string, args ...any) { l.emit(LevelError, msg, args) }
func (l *entryLogger) Fatal(msg string, args ...any) { l.emit(LevelFatal, msg, args) }

func (l *entryLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	merged := make(map[string]any, len(l.fields)+len(fields))
	maps.Copy(merged, l.fields)
	maps.Copy(merged, fields)
	return &entryLogger{sink: l.sink, fields: merged, ctx: l.ctx}
}

func (l *entryLogger) WithContext(ctx context.Context) interfaces.Logger {
	return &entryLogger{sink: l.sink, fields: maps.Clone(l.fields), ctx: ctx}
}

func (l *entryLogger) emit(level Level, msg string, args []any) {
	if l.sink == nil || level < l.sink.floor {
		return
	}

	fields := maps.Clone(l.fields)
	if fields == nil {
		fields = map[string]any{}
	}
	maps.Copy(fields, logging.ContextFields(l.ctx))
	mergeArgs(fields, args)

	l.sink.write(render(l.sink.clock().UTC(), level, msg, fields))
}

// mergeArgs folds variadic key/value pairs into fields. A trailing value
// without a key, or a non-string key, is kept under a positional name so no
// data is dropped.
func mergeArgs(fields map[string]any, args []any) {
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			fields[positional(i)] = args[i]
			return
		}
		if key, ok := args[i].(string); ok && key != "" {
			fields[key] = args[i+1]
			continue
		}
		fields[positional(i)] = args[i+1]
	}
}

func positional(i int) string {
	return "field_" + strconv.Itoa(i/2)
}

func render(ts time.Time, level Level, msg string, fields map[string]any) string {
	var b strings.Builder
	b.Grow(64 + len(msg) + len(fields)*16)
	b.WriteString(ts.Format(time.RFC3339Nano))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(renderValue(fields[key]))
	}
	return b.String()
}

func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return quote(v)
	case time.Time:
		return quote(v.UTC().Format(time.RFC3339Nano))
	case *time.Time:
		if v == nil {
			return "null"
		}
		return quote(v.UTC().Format(time.RFC3339Nano))
	case error:
		return quote(v.Error())
	case fmt.Stringer:
		return quote(v.String())
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	default:
		return quote(fmt.Sprint(v))
	}
}

// quote wraps values containing whitespace, control characters, or '=' so
// entries stay machine-splittable on spaces.
func quote(value string) string {
	if value == "" {
		return `""`
	}
	for _, r := range value {
		if r <= 0x20 || r == '=' {
			return strconv.Quote(value)
		}
	}
	return value
}
