package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&WatchCmd{})
}

// debounceWindow coalesces editor save bursts into one reprint.
const debounceWindow = 100 * time.Millisecond

// WatchCmd reprints the item list whenever either store file changes on
// disk, until interrupted.
type WatchCmd struct{}

func (c *WatchCmd) Name() string      { return "watch" }
func (c *WatchCmd) Aliases() []string { return nil }
func (c *WatchCmd) Synopsis() string  { return "Reprint the list on file changes" }
func (c *WatchCmd) Usage() string     { return "todo watch" }
func (c *WatchCmd) NeedsStores() bool { return true }

func (c *WatchCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WatchCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StorageError
	}
	defer watcher.Close()

	todoPath := filepath.Clean(cfg.TodoFile)
	patternPath := filepath.Clean(cfg.PatternFile)

	// Watch the parent directories: editors replace files rather than
	// write them in place, which drops direct file watches.
	dirs := map[string]bool{
		filepath.Dir(todoPath):    true,
		filepath.Dir(patternPath): true,
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			fmt.Fprintf(errOut, "error: watch %s: %v\n", dir, err)
			return exitcode.StorageError
		}
	}

	output.FormatItems(out, svc.ListItems(service.FilterAll))

	var pending bool
	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return exitcode.Success
		case ev, ok := <-watcher.Events:
			if !ok {
				return exitcode.Success
			}
			name := filepath.Clean(ev.Name)
			if name != todoPath && name != patternPath {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			pending = true
			debounce = time.After(debounceWindow)
		case <-debounce:
			if !pending {
				continue
			}
			pending = false
			if r, ok := svc.(service.Reloader); ok {
				r.Reload()
			}
			fmt.Fprintln(out)
			output.FormatItems(out, svc.ListItems(service.FilterAll))
		case err, ok := <-watcher.Errors:
			if !ok {
				return exitcode.Success
			}
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
	}
}
