package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/qpath/internal/config"
	"github.com/vvka-141/qpath/internal/tui"
)

var mkdirpCmd = &cobra.Command{
	Use:   "mkdirp <path>",
	Short: "Create a directory and every missing parent",
	Long: `Create every missing directory along the path (mkdir -p).

Existing segments are left alone, so running the command twice is a no-op
the second time. A segment that exists but is not a directory is an error.

Examples:
  # Default mode from qpath.yaml (0755 if unset)
  qpath mkdirp /tmp/x/a/b/c

  # Explicit mode
  qpath mkdirp /tmp/x/a/b/c --mode 0700`,
	Args: RequirePath,
	RunE: runMkdirp,
}

func init() {
	rootCmd.AddCommand(mkdirpCmd)
	mkdirpCmd.Flags().StringP("mode", "m", "", "Permission bits in octal (default from qpath.yaml, else 0755)")
}

type mkdirpJSON struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
}

func runMkdirp(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	mode, err := config.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	entry, err := newEntry(cmd, args[0]).MkdirpMode(mode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output == config.OutputJSON {
		return writeJSON(out, mkdirpJSON{Path: entry.Path(), Mode: fmt.Sprintf("%04o", uint32(mode))})
	}
	fmt.Fprintln(out, painterFor(out).Render(tui.SuccessStyle, entry.Path()))
	return nil
}
