package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// PrettyHandler is a slog.Handler producing short, colored, human-readable lines.
// Record attributes are printed beneath the message, one "key: value" line each.
type PrettyHandler struct {
	w      io.Writer
	mu     *sync.Mutex
	r      *lipgloss.Renderer
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		w:     w,
		mu:    &sync.Mutex{},
		r:     newRenderer(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, rec slog.Record) error {
	msg := rec.Message
	color := infoColor

	switch {
	case rec.Level >= slog.LevelError:
		msg = errorIcon + " " + msg
		color = errorColor
	case rec.Level >= slog.LevelWarn:
		msg = warnIcon + " " + msg
		color = warnColor
	}

	var b strings.Builder
	writeStyled(&b, h.r.NewStyle().Foreground(color), strings.Split(msg, "\n"))

	details := make([]string, 0, len(h.attrs)+rec.NumAttrs())
	for _, attr := range h.attrs {
		details = appendAttr(details, nil, attr)
	}
	rec.Attrs(func(attr slog.Attr) bool {
		details = appendAttr(details, h.groups, attr)
		return true
	})
	writeStyled(&b, h.r.NewStyle().Foreground(detailColor), details)

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	// Attributes added now belong to the groups opened so far.
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, nest(h.groups, attr))
	}
	return &clone
}

// WithGroup returns a new Handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

// nest wraps attr in the given groups, so pre-bound attributes keep the
// qualification they had when they were added.
func nest(groups []string, attr slog.Attr) slog.Attr {
	for i := len(groups) - 1; i >= 0; i-- {
		attr = slog.Attr{Key: groups[i], Value: slog.GroupValue(attr)}
	}
	return attr
}

func appendAttr(lines []string, groups []string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return lines
	}
	if attr.Value.Kind() == slog.KindGroup {
		inner := groups
		if attr.Key != "" {
			inner = append(append([]string(nil), groups...), attr.Key)
		}
		for _, member := range attr.Value.Group() {
			lines = appendAttr(lines, inner, member)
		}
		return lines
	}

	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	return append(lines, fmt.Sprintf("  %s: %s", key, attr.Value))
}

// writeStyled renders each line on its own so the style never pads a block.
func writeStyled(b *strings.Builder, st lipgloss.Style, lines []string) {
	for _, line := range lines {
		b.WriteString(st.Render(line))
		b.WriteByte('\n')
	}
}
