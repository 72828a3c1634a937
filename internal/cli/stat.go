package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vvka-141/qpath/internal/config"
	"github.com/vvka-141/qpath/internal/tui"
)

var statCmd = &cobra.Command{
	Use:   "stat <path>",
	Short: "Show metadata for a single path",
	Long: `Show metadata for exactly the given path.

Examples:
  # Human-readable
  qpath stat ./notes.txt

  # As JSON
  qpath stat ./notes.txt -o json`,
	Args: RequirePath,
	RunE: runStat,
}

func init() {
	rootCmd.AddCommand(statCmd)
}

func runStat(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	meta, err := newEntry(cmd, args[0]).Stat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output == config.OutputJSON {
		return writeJSON(out, toEntryJSON(meta))
	}

	p := painterFor(out)
	name := meta.Name
	if meta.IsDir() {
		name = p.Render(tui.DirStyle, name)
	}
	fmt.Fprintf(out, "path:     %s\n", meta.AbsolutePath)
	fmt.Fprintf(out, "name:     %s\n", name)
	fmt.Fprintf(out, "type:     %s\n", entryKind(meta))
	fmt.Fprintf(out, "size:     %s (%d bytes)\n", humanize.Bytes(uint64(meta.Size())), meta.Size())
	fmt.Fprintf(out, "mode:     %s\n", meta.Mode())
	fmt.Fprintf(out, "modified: %s\n", meta.ModTime().Format(time.RFC3339))
	return nil
}
