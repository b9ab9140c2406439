package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/ktxload/internal/ui/output"
	"go.trai.ch/ktxload/internal/ui/style"
)

// band is how records at or above min render.
type band struct {
	min    slog.Level
	marker string
	color  lipgloss.Color
}

// bands run from the most to the least severe.
var bands = []band{
	{min: slog.LevelError, marker: style.Cross, color: style.Red},
	{min: slog.LevelWarn, marker: style.Warning, color: style.Yellow},
	{min: slog.LevelInfo, color: style.Slate},
}

var debugBand = band{color: style.Iris}

func bandFor(level slog.Level) band {
	for _, b := range bands {
		if level >= b.min {
			return b
		}
	}
	return debugBand
}

// PrettyHandler is a slog.Handler that writes human-readable, colored lines.
// Continuation lines of a multi-line record hang under the first line's text.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	attrs  string
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
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record, one styled line per message line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	b := bandFor(r.Level)

	var text strings.Builder
	text.WriteString(r.Message)
	text.WriteString(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		text.WriteString(h.formatAttr(attr))
		return true
	})

	var lead, hang string
	if b.marker != "" {
		lead = b.marker + " "
		hang = strings.Repeat(" ", utf8.RuneCountInString(lead))
	}
	color := termenv.RGBColor(string(b.color))

	var buf strings.Builder
	for i, line := range strings.Split(text.String(), "\n") {
		switch {
		case i == 0:
			line = lead + line
		case line != "":
			line = hang + line
		}
		buf.WriteString(h.out.String(line).Foreground(color).String())
		buf.WriteByte('\n')
	}

	_, err := h.out.WriteString(buf.String())
	return err
}

// WithAttrs returns a handler that appends attrs to every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	for _, attr := range attrs {
		c.attrs += h.formatAttr(attr)
	}
	return &c
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.prefix += name + "."
	return &c
}

func (h *PrettyHandler) formatAttr(attr slog.Attr) string {
	return " " + h.prefix + attr.Key + "=" + attr.Value.String()
}
