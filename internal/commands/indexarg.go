package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrIndexRequired is returned when an index-taking command gets no argument.
var ErrIndexRequired = errors.New("index required")

// ParseIndexArg parses the single 1-based index argument of complete,
// uncomplete and remove. The returned index is still 1-based; callers
// convert before talking to the store.
func ParseIndexArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrIndexRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid index: %s", args[0])
	}
	return n, nil
}
