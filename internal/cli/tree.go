package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vvka-141/qpath/internal/config"
	"github.com/vvka-141/qpath/internal/tui"
	"github.com/vvka-141/qpath/pkg/qpath"
)

var treeCmd = &cobra.Command{
	Use:   "tree <path>",
	Short: "List every entry beneath a directory in pre-order",
	Long: `List every entry beneath a directory, depth first. A directory is
printed before its contents; siblings keep the order the filesystem lists
them in and are not sorted.

The scan is all-or-nothing: the first stat or listing failure aborts it
and nothing is printed.

Examples:
  # Indented listing
  qpath tree ./project

  # Flat JSON with level and relative path per entry
  qpath tree ./project -o json`,
	Args: RequirePath,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

type treeJSON struct {
	ScanID    string      `json:"scan_id"`
	Root      string      `json:"root"`
	Count     int         `json:"count"`
	TotalSize int64       `json:"total_size"`
	Entries   []entryJSON `json:"entries"`
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	scanID := uuid.New().String()
	logger := newLogger(cmd)
	entry := qpath.New(args[0], qpath.WithLogger(logger))
	logger.Verbose("scan %s: %s", scanID, entry.Path())

	stats, err := entry.ReadStats()
	if err != nil {
		return err
	}

	var total int64
	for i := range stats {
		if !stats[i].IsDir() {
			total += stats[i].Size()
		}
	}

	out := cmd.OutOrStdout()
	if cfg.Output == config.OutputJSON {
		result := treeJSON{
			ScanID:    scanID,
			Root:      entry.Path(),
			Count:     len(stats),
			TotalSize: total,
			Entries:   make([]entryJSON, 0, len(stats)),
		}
		for i := range stats {
			result.Entries = append(result.Entries, toEntryJSON(&stats[i]))
		}
		return writeJSON(out, result)
	}

	p := painterFor(out)
	for i := range stats {
		fmt.Fprintln(out, treeLine(p, &stats[i]))
	}
	fmt.Fprintln(out, p.Render(tui.SizeStyle, fmt.Sprintf("%d entries, %s", len(stats), humanize.Bytes(uint64(total)))))
	return nil
}
