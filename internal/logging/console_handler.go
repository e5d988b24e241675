package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// consoleHandler renders records as "HH:MM:SS LEVEL message key=value ...".
// Colors are enabled only when the writer is a terminal.
type consoleHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Leveler
	color  bool
	attrs  []slog.Attr
	groups []string
}

func newConsoleHandler(writer io.Writer, level slog.Leveler) *consoleHandler {
	color := false
	if file, ok := writer.(*os.File); ok {
		color = isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}
	return &consoleHandler{
		mu:     &sync.Mutex{},
		writer: writer,
		level:  level,
		color:  color,
	}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder

	if h.color {
		b.WriteString(ansiDim)
	}
	b.WriteString(record.Time.Format("15:04:05"))
	if h.color {
		b.WriteString(ansiReset)
	}
	b.WriteByte(' ')

	level := record.Level.String()
	if h.color {
		b.WriteString(levelColor(record.Level))
		b.WriteString(level)
		b.WriteString(ansiReset)
	} else {
		b.WriteString(level)
	}
	b.WriteByte(' ')
	b.WriteString(record.Message)

	for _, attr := range h.attrs {
		h.appendAttr(&b, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(&b, attr)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, b.String())
	return err
}

func (h *consoleHandler) appendAttr(b *strings.Builder, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}
	b.WriteByte(' ')
	if h.color {
		b.WriteString(ansiDim)
	}
	b.WriteString(key)
	b.WriteByte('=')
	if h.color {
		b.WriteString(ansiReset)
	}
	b.WriteString(fmt.Sprintf("%v", attr.Value.Resolve().Any()))
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return ansiRed
	case level >= slog.LevelWarn:
		return ansiYellow
	default:
		return ansiBlue
	}
}
