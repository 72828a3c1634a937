package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/qpath/internal/config"
	"github.com/vvka-141/qpath/internal/tui"
)

var existsCmd = &cobra.Command{
	Use:   "exists <path>",
	Short: "Report whether a path exists",
	Long: `Print true or false. A missing path is not an error; a path that
cannot be checked (for example permission denied on a parent) is.`,
	Args: RequirePath,
	RunE: runExists,
}

func init() {
	rootCmd.AddCommand(existsCmd)
}

type existsJSON struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

func runExists(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	entry := newEntry(cmd, args[0])
	ok, err := entry.Exists()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output == config.OutputJSON {
		return writeJSON(out, existsJSON{Path: entry.Path(), Exists: ok})
	}
	style := tui.ErrorStyle
	if ok {
		style = tui.SuccessStyle
	}
	fmt.Fprintln(out, painterFor(out).Render(style, fmt.Sprintf("%t", ok)))
	return nil
}
