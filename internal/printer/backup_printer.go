package printer

import (
	"fmt"
	"io"
	"time"

	"github.com/clawdesk/clawconf/internal/cmd/output"
	"github.com/clawdesk/clawconf/internal/config"
)

var _ output.Printer[config.BackupInfo] = (*BackupPrinter)(nil)

// BackupPrinter handles text output for backup files.
type BackupPrinter struct {
	hooks[config.BackupInfo]
}

// Item writes a backup's path, size and modification time.
func (p *BackupPrinter) Item(w io.Writer, b config.BackupInfo) error {
	_, _ = fmt.Fprintf(w, "  %s  %d bytes  %s\n", b.Path, b.Size, b.ModTime.UTC().Format(time.RFC3339))
	return nil
}
