package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&ExpandCmd{})
}

// ExpandCmd implements the expand command: it prints the pattern-expanded
// text without storing anything.
type ExpandCmd struct{}

func (c *ExpandCmd) Name() string      { return "expand" }
func (c *ExpandCmd) Aliases() []string { return nil }
func (c *ExpandCmd) Synopsis() string  { return "Expand a pattern prefix to full text" }
func (c *ExpandCmd) Usage() string     { return "todo expand <text...>" }
func (c *ExpandCmd) NeedsStores() bool { return true }

func (c *ExpandCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ExpandCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: text required")
		return exitcode.UserError
	}
	text := strings.Join(args, " ")
	fmt.Fprintln(out, svc.ExpandText(text))
	return exitcode.Success
}
