// Package export renders pages to static HTML, either into a local
// directory or an S3 bucket.
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/doeixd/dom"
	"github.com/doeixd/dom/pkg/render"
)

// Options configure an Exporter.
type Options struct {
	// Pretty enables indented HTML output.
	Pretty bool

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Exporter renders page trees into complete HTML documents.
type Exporter struct {
	renderer *render.Renderer
	logger   *slog.Logger
}

// New creates an Exporter.
func New(opts Options) *Exporter {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		renderer: render.New(render.Config{Pretty: opts.Pretty}),
		logger:   logger,
	}
}

// Render produces the full HTML document for every page, keyed by page
// name. Nil roots are skipped.
func (x *Exporter) Render(pages map[string]*dom.Element) map[string][]byte {
	out := make(map[string][]byte, len(pages))
	for name, root := range pages {
		if root == nil {
			continue
		}
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>%s</title></head><body>", name)
		x.renderer.Write(&buf, root) // bytes.Buffer writes cannot fail
		buf.WriteString("</body></html>\n")
		out[name] = buf.Bytes()
	}
	return out
}

// WriteDir renders every page into dir as <name>.html, creating dir if
// needed.
func (x *Exporter) WriteDir(dir string, pages map[string]*dom.Element) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for name, body := range x.Render(pages) {
		path := filepath.Join(dir, name+".html")
		if err := os.WriteFile(path, body, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		x.logger.Info("exported page", "page", name, "path", path, "bytes", len(body))
	}
	return nil
}
