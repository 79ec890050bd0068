package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/schema"
	"todo/internal/service"
)

func init() {
	Register(&DoctorCmd{})
}

// DoctorCmd validates both store files against their schemas. The normal
// load path silently treats corrupt files as empty, so this is the only
// way to find out a file is broken before data gets overwritten.
type DoctorCmd struct{}

func (c *DoctorCmd) Name() string      { return "doctor" }
func (c *DoctorCmd) Aliases() []string { return nil }
func (c *DoctorCmd) Synopsis() string  { return "Validate the store files" }
func (c *DoctorCmd) Usage() string     { return "todo doctor" }
func (c *DoctorCmd) NeedsStores() bool { return false }

func (c *DoctorCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoctorCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ok := checkFile(out, "items", cfg.TodoFile, schema.ValidateItems)
	if !checkFile(out, "patterns", cfg.PatternFile, schema.ValidatePatterns) {
		ok = false
	}
	if !ok {
		return exitcode.UserError
	}
	return exitcode.Success
}

func checkFile(out io.Writer, label, path string, validate func([]byte) error) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(out, "%s %s: missing (will start empty)\n", label, path)
			return true
		}
		fmt.Fprintf(out, "%s %s: unreadable: %v\n", label, path, err)
		return false
	}
	if err := validate(data); err != nil {
		fmt.Fprintf(out, "%s %s: invalid: %v\n", label, path, err)
		return false
	}
	fmt.Fprintf(out, "%s %s: ok\n", label, path)
	return true
}
