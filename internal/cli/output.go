package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vvka-141/qpath/internal/tui"
	"github.com/vvka-141/qpath/pkg/qpath"
)

// entryJSON is the wire shape of one EntryMetadata record.
type entryJSON struct {
	Level        int       `json:"level"`
	Name         string    `json:"name"`
	RelativePath string    `json:"relative_path"`
	AbsolutePath string    `json:"absolute_path"`
	IsDir        bool      `json:"is_dir"`
	Size         int64     `json:"size"`
	Mode         string    `json:"mode"`
	ModTime      time.Time `json:"mod_time"`
}

func toEntryJSON(m *qpath.EntryMetadata) entryJSON {
	return entryJSON{
		Level:        m.Level,
		Name:         m.Name,
		RelativePath: m.RelativePath,
		AbsolutePath: m.AbsolutePath,
		IsDir:        m.IsDir(),
		Size:         m.Size(),
		Mode:         m.Mode().String(),
		ModTime:      m.ModTime().UTC(),
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// painterFor styles output only when w is an interactive terminal.
func painterFor(w io.Writer) tui.Painter {
	return tui.NewPainter(tui.IsStyled(w))
}

func entryKind(m *qpath.EntryMetadata) string {
	switch {
	case m.IsDir():
		return "directory"
	case m.IsRegular():
		return "file"
	default:
		return "other"
	}
}

// treeLine renders one scan record indented by level. Directories get a
// trailing slash, files their human-readable size.
func treeLine(p tui.Painter, m *qpath.EntryMetadata) string {
	indent := strings.Repeat("  ", m.Level)
	if m.IsDir() {
		return indent + p.Render(tui.DirStyle, m.Name+"/")
	}
	return indent + p.Render(tui.FileStyle, m.Name) + "  " + p.Render(tui.SizeStyle, humanize.Bytes(uint64(m.Size())))
}
