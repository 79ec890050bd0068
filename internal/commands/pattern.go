package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&PatternCmd{})
}

// PatternCmd implements the pattern command and its subcommands:
// add, remove, list and find.
type PatternCmd struct{}

func (c *PatternCmd) Name() string      { return "pattern" }
func (c *PatternCmd) Aliases() []string { return nil }
func (c *PatternCmd) Synopsis() string  { return "Manage expansion patterns" }
func (c *PatternCmd) Usage() string {
	return "todo pattern add <prefix> <text...> | remove <prefix> | list | find <partial>"
}
func (c *PatternCmd) NeedsStores() bool { return true }

func (c *PatternCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PatternCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(errOut, "error: pattern subcommand required\nusage: %s\n", c.Usage())
		return exitcode.UserError
	}

	sub := args[0]
	rest := args[1:]

	switch sub {
	case "add":
		return c.runAdd(cfg, svc, rest, out, errOut)
	case "remove", "rm":
		return c.runRemove(cfg, svc, rest, out, errOut)
	case "list", "ls":
		return c.runList(svc, rest, out, errOut)
	case "find":
		return c.runFind(svc, rest, out, errOut)
	}

	fmt.Fprintf(errOut, "error: unknown pattern subcommand: %s\nusage: %s\n", sub, c.Usage())
	return exitcode.UserError
}

func (c *PatternCmd) runAdd(cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: prefix and text required")
		return exitcode.UserError
	}
	prefix := args[0]
	text := strings.Join(args[1:], " ")

	if err := svc.AddPattern(prefix, text); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Added pattern: '%s' -> '%s'\n", prefix, text)
	}
	return exitcode.Success
}

func (c *PatternCmd) runRemove(cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: prefix required")
		return exitcode.UserError
	}
	prefix := args[0]

	removed, err := svc.RemovePattern(prefix)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StorageError
	}
	if !removed {
		fmt.Fprintf(errOut, "Error: Pattern '%s' not found.\n", prefix)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Removed pattern: '%s'\n", prefix)
	}
	return exitcode.Success
}

func (c *PatternCmd) runList(svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	output.FormatPatterns(out, svc.ListPatterns())
	return exitcode.Success
}

func (c *PatternCmd) runFind(svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: partial prefix required")
		return exitcode.UserError
	}

	matches := svc.FindMatchingPatterns(args[0])
	if len(matches) == 0 {
		fmt.Fprintln(out, "No matching patterns.")
		return exitcode.Success
	}
	for _, p := range matches {
		output.FormatPattern(out, p)
	}
	return exitcode.Success
}
