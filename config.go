// dirtree - print the contents of a directory as a tree.
//
// License: MIT.
// See the file LICENSE.

package dirtree

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	ConfigFileName = "config.json"
	MaxPathLength  = 4096
	Version        = "0.1.0"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"

	DefaultColor = ColorAuto

	AllEnv       = "DIRTREE_ALL"
	ColorEnv     = "DIRTREE_COLOR"
	GitIgnoreEnv = "DIRTREE_GITIGNORE"
	NoColorEnv   = "NO_COLOR"
	OptsEnv      = "DIRTREE_OPTS"
)

var (
	DefaultConfigFile = filepath.Join(xdg.ConfigHome, "dirtree", ConfigFileName)
)
