package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/qpath/pkg/qpath"
)

// RequirePath validates that exactly one path argument is provided.
// Returns a usage error with an example if missing or too many.
func RequirePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <path>

Usage: %s

Example:
  %s /tmp/x`, qpath.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", qpath.ErrUsage, len(args))
	}
	return nil
}
