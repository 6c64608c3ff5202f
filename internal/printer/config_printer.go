package printer

import (
	"fmt"
	"io"

	"github.com/clawdesk/clawconf/internal/cmd/output"
	"github.com/clawdesk/clawconf/internal/config"
)

var (
	_ output.Printer[config.Config] = (*ConfigPrinter)(nil)
	_ output.Printer[PathResult]    = (*PathPrinter)(nil)
	_ output.Printer[ExistsResult]  = (*ExistsPrinter)(nil)
)

// ConfigPrinter writes the document exactly as it would be saved.
type ConfigPrinter struct {
	hooks[config.Config]
}

// Item writes the encoded document.
func (p *ConfigPrinter) Item(w io.Writer, cfg config.Config) error {
	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// PathResult is a file location, e.g. the config file or a new backup.
type PathResult struct {
	Path string `json:"path" yaml:"path"`
}

// PathPrinter writes a bare path so text output can be used in scripts.
type PathPrinter struct {
	hooks[PathResult]
}

// Item writes the path.
func (p *PathPrinter) Item(w io.Writer, result PathResult) error {
	_, _ = fmt.Fprintln(w, result.Path)
	return nil
}

// ExistsResult reports whether the config file is present.
type ExistsResult struct {
	Path   string `json:"path"   yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
}

// ExistsPrinter handles text output for ExistsResult.
type ExistsPrinter struct {
	hooks[ExistsResult]
}

// Item writes whether the file exists.
func (p *ExistsPrinter) Item(w io.Writer, result ExistsResult) error {
	if result.Exists {
		_, _ = fmt.Fprintf(w, "Config file exists: %s\n", result.Path)
		return nil
	}

	_, _ = fmt.Fprintf(w, "Config file not found: %s\n", result.Path)
	return nil
}
