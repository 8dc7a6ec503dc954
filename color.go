// dirtree - print the contents of a directory as a tree.
//
// License: MIT.
// See the file LICENSE.

package dirtree

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// UseColor decides whether to color output for a color mode.
// In auto mode, color is used when out is a terminal and NO_COLOR is not set.
func UseColor(mode string, out *os.File) (bool, error) {
	switch mode {
	case ColorAlways:
		return true, nil

	case ColorNever:
		return false, nil

	case ColorAuto, "":
		if os.Getenv(NoColorEnv) != "" {
			return false, nil
		}

		return term.IsTerminal(int(out.Fd())), nil
	}

	return false, fmt.Errorf("unknown color mode: %q", mode)
}
