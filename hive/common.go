package hive

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"lesiw.io/wowbox/wow64"
)

type prettyError interface {
	Error() string
	Pretty() string
}

func prettyPrintError(w io.Writer, err error) {
	if pe, ok := err.(prettyError); ok {
		_, _ = io.WriteString(w, pe.Pretty())
	} else {
		_, _ = io.WriteString(w, err.Error())
	}
	_, _ = io.WriteString(w, "\n")
}

// probeError decorates wow64 failures with the raw platform code so scripts
// can match on it without parsing the system message.
type probeError struct {
	cmd string
	err error
}

func (e *probeError) Error() string { return e.cmd + ": " + e.err.Error() }
func (e *probeError) Unwrap() error { return e.err }

func (e *probeError) Pretty() string {
	if code, ok := wow64.Code(e.err); ok {
		return fmt.Sprintf("%s (code %d)", e.Error(), code)
	}
	return e.Error()
}

func debugLogger(w io.Writer, enabled bool) *slog.Logger {
	if !enabled {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func errAttrs(err error) []any {
	if err == nil {
		return nil
	}
	attrs := []any{slog.String("err", err.Error())}
	if code, ok := wow64.Code(err); ok {
		attrs = append(attrs, slog.Uint64("code", uint64(code)))
	}
	if errors.Is(err, errors.ErrUnsupported) {
		attrs = append(attrs, slog.Bool("unsupported", true))
	}
	return attrs
}
