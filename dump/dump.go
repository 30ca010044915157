// Package dump renders buffers and strings for diagnostics.
//
// A [Sink] is a pure consumer: nothing it produces feeds back into the
// buffers it is shown.
package dump

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/BeatGlow/rawcolor"
)

// Sink renders diagnostics.
type Sink interface {
	// Bytes renders p, starting a new row every stride bytes. A stride of
	// zero or less renders a single row.
	Bytes(label string, p []byte, stride int) error

	// String renders s.
	String(label, s string) error
}

// Discard is a Sink that renders nothing.
var Discard Sink = discard{}

type discard struct{}

func (discard) Bytes(string, []byte, int) error { return nil }
func (discard) String(string, string) error     { return nil }

// Rows formats p as rows of tab separated hex bytes, stride bytes per row.
func Rows(p []byte, stride int) []string {
	if stride <= 0 || stride > len(p) {
		stride = len(p)
	}
	var rows []string
	for len(p) > 0 {
		n := min(stride, len(p))
		cells := make([]string, n)
		for i, v := range p[:n] {
			cells[i] = fmt.Sprintf("%02x", v)
		}
		rows = append(rows, strings.Join(cells, "\t"))
		p = p[n:]
	}
	return rows
}

// HexSink writes hex dumps to a writer.
type HexSink struct {
	w     io.Writer
	label *color.Color
}

// NewHex returns a sink writing to w. Labels are colored when useColor is set
// and the terminal supports it.
func NewHex(w io.Writer, useColor bool) *HexSink {
	label := color.New(color.FgCyan, color.Bold)
	if !useColor {
		label.DisableColor()
	}
	return &HexSink{w: w, label: label}
}

func (s *HexSink) Bytes(label string, p []byte, stride int) error {
	if _, err := s.label.Fprintf(s.w, "%s (%d bytes)\n", strings.ToUpper(label), len(p)); err != nil {
		return err
	}
	for _, row := range Rows(p, stride) {
		if _, err := fmt.Fprintln(s.w, row); err != nil {
			return err
		}
	}
	return nil
}

func (s *HexSink) String(label, v string) error {
	if _, err := s.label.Fprintf(s.w, "%s (%d bytes)\n", strings.ToUpper(label), len(v)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.w, v)
	return err
}

// LogSink writes dumps as debug entries to a logger.
type LogSink struct {
	// Logger to write to; the package logger is used if nil.
	Logger *zap.Logger
}

func (s LogSink) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return rawcolor.Logger()
}

func (s LogSink) Bytes(label string, p []byte, stride int) error {
	s.logger().Debug(label,
		zap.Int("size", len(p)),
		zap.Int("stride", stride),
		zap.String("hex", hex.EncodeToString(p)))
	return nil
}

func (s LogSink) String(label, v string) error {
	s.logger().Debug(label, zap.String("value", v))
	return nil
}
