package slogpretty

import (
	"context"
	"encoding/json"
	"io"
	stdLog "log"
	"log/slog"

	"github.com/fatih/color"
)

type PrettyHandlerOptions struct {
	SlogOpts *slog.HandlerOptions
}

type PrettyHandler struct {
	slog.Handler
	l      *stdLog.Logger
	attrs  []slog.Attr
	groups []string
}

func (opts PrettyHandlerOptions) NewPrettyHandler(out io.Writer) *PrettyHandler {
	h := &PrettyHandler{
		Handler: slog.NewJSONHandler(out, opts.SlogOpts),
		l:       stdLog.New(out, "", 0),
	}

	return h
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	fields := make(map[string]interface{}, r.NumAttrs()+len(h.attrs))

	for _, a := range h.attrs {
		putAttr(fields, a)
	}

	target := fields
	if r.NumAttrs() > 0 {
		for _, g := range h.groups {
			target = subGroup(target, g)
		}
	}

	r.Attrs(func(a slog.Attr) bool {
		putAttr(target, a)
		return true
	})

	var b []byte
	var err error

	if len(fields) > 0 {
		b, err = json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
	}

	timeStr := r.Time.Format("[15:04:05.000]")
	msg := color.CyanString(r.Message)

	h.l.Println(
		timeStr,
		level,
		msg,
		color.WhiteString(string(b)),
	)

	return nil
}

// WithAttrs nests attrs under the currently open groups.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	nested := slog.Attr{}
	for i := len(h.groups) - 1; i >= 0; i-- {
		if i == len(h.groups)-1 {
			nested = slog.Attr{Key: h.groups[i], Value: slog.GroupValue(attrs...)}
			continue
		}
		nested = slog.Attr{Key: h.groups[i], Value: slog.GroupValue(nested)}
	}

	added := attrs
	if len(h.groups) > 0 {
		added = []slog.Attr{nested}
	}

	return &PrettyHandler{
		Handler: h.Handler.WithAttrs(attrs),
		l:       h.l,
		attrs:   append(append([]slog.Attr{}, h.attrs...), added...),
		groups:  h.groups,
	}
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &PrettyHandler{
		Handler: h.Handler.WithGroup(name),
		l:       h.l,
		attrs:   h.attrs,
		groups:  append(append([]string{}, h.groups...), name),
	}
}

// putAttr stores a into fields, merging groups into nested maps.
func putAttr(fields map[string]interface{}, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() != slog.KindGroup {
		fields[a.Key] = a.Value.Any()
		return
	}

	target := fields
	if a.Key != "" {
		target = subGroup(fields, a.Key)
	}

	for _, ga := range a.Value.Group() {
		putAttr(target, ga)
	}
}

func subGroup(fields map[string]interface{}, key string) map[string]interface{} {
	if sub, ok := fields[key].(map[string]interface{}); ok {
		return sub
	}

	sub := make(map[string]interface{})
	fields[key] = sub

	return sub
}
