// SPDX-License-Identifier: MIT

package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvtext/generator"
)

// ErrNoWriter indicates a sink without a destination.
var ErrNoWriter = errors.New("sink: nil writer")

// TextSink accepts generated text.
type TextSink interface {
	WriteText(kind generator.Kind, text string) error
}

// TableSink accepts report data for display.
type TableSink interface {
	WriteReport(r *Report) error
}

// FileTextSink writes each text to its own file in Dir.
type FileTextSink struct {
	Dir  string
	Name string
}

// Path returns the file a text of the given model is written to.
func (f FileTextSink) Path(kind generator.Kind) string {
	return filepath.Join(f.Dir, fmt.Sprintf("%s(model%d).txt", f.Name, int(kind)))
}

// WriteText creates Dir if needed and writes text as UTF-8.
func (f FileTextSink) WriteText(kind generator.Kind, text string) error {
	if f.Dir != "" {
		if err := os.MkdirAll(f.Dir, 0o755); err != nil {
			return fmt.Errorf("sink: create %s: %w", f.Dir, err)
		}
	}
	if err := os.WriteFile(f.Path(kind), []byte(text), 0o644); err != nil {
		return fmt.Errorf("sink: write text: %w", err)
	}
	return nil
}

// WriterTextSink writes each text followed by a newline.
type WriterTextSink struct {
	W io.Writer
}

// WriteText implements TextSink.
func (w WriterTextSink) WriteText(_ generator.Kind, text string) error {
	if w.W == nil {
		return ErrNoWriter
	}
	_, err := io.WriteString(w.W, text+"\n")
	return err
}
