// dirtree - print the contents of a directory as a tree.
//
// License: MIT.
// See the file LICENSE.

package main

import (
	"bufio"
	"fmt"
	"os"

	"dbohdan.com/dirtree"
	"dbohdan.com/dirtree/git"
	"dbohdan.com/dirtree/tree"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/anmitsu/go-shlex"
)

type CLI struct {
	All        bool             `short:"a" env:"${AllEnv}" help:"Show hidden entries (${env})"`
	Color      string           `env:"${ColorEnv}" enum:"always,auto,never" default:"${DefaultColor}" help:"Color directory names: always, auto, or never (${env})"`
	ConfigFile kong.ConfigFlag  `name:"config" placeholder:"FILE" help:"Load defaults from a JSON file (default: ${DefaultConfigFile})"`
	GitIgnore  bool             `name:"gitignore" env:"${GitIgnoreEnv}" help:"Omit entries matched by .gitignore files (${env})"`
	Ignore     []string         `short:"I" sep:"none" placeholder:"PATTERN" help:"Omit entries matching a .gitignore-style pattern (repeatable)"`
	Verbose    bool             `short:"v" hidden:"" help:"Print debugging information"`
	Version    kong.VersionFlag `short:"V" help:"Print version number and exit"`

	Dir string `arg:"" optional:"" default:"." help:"Directory to list"`
}

// Config holds the resolved configuration for a run.
type Config struct {
	Color         bool
	GitIgnore     bool
	Ignore        []string
	MaxPathLength int
	Root          string
	ShowHidden    bool
	Verbose       bool
}

// printRepr prints a detailed representation of a Go value to stderr for debugging.
func printRepr(value any) {
	valueRepr := repr.String(
		value,
		repr.Indent("\t"),
		repr.OmitEmpty(false),
	)
	fmt.Fprintf(os.Stderr, "%s\n\n", valueRepr)
}

func (cli *CLI) Run(config *Config) error {
	logger := dirtree.NewLogger(os.Stderr, config.Verbose)

	opts := tree.Options{
		Logger:        logger,
		MaxPathLength: config.MaxPathLength,
		ShowHidden:    config.ShowHidden,
	}

	if config.GitIgnore || len(config.Ignore) > 0 {
		// Without a directory there is nothing to match. The build reports it.
		if info, err := os.Stat(config.Root); err == nil && info.IsDir() {
			matcher, err := git.IgnoreMatcher(config.Root, config.GitIgnore, config.Ignore)
			if err != nil {
				return err
			}

			opts.Ignore = matcher
		}
	}

	root, counts := tree.BuildTree(config.Root, opts)
	defer tree.Free(root)

	logger.Debug("built tree", "root", config.Root, "dirs", counts.Dirs, "files", counts.Files)

	if err := dirtree.CheckRoot(config.Root, root); err != nil {
		return err
	}

	var printerOpts []tree.PrinterOption
	if config.Color {
		printerOpts = append(printerOpts, tree.WithStyle(tree.DirStyle(os.Stdout)))
	}

	out := bufio.NewWriter(os.Stdout)

	if err := tree.NewPrinter(out, printerOpts...).PrintTree(root); err != nil {
		return fmt.Errorf("failed to print tree: %v", err)
	}

	fmt.Fprintf(out, "\n%s\n", dirtree.Summary(counts))

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to print tree: %v", err)
	}

	return nil
}

// initConfig initializes the Config struct based on CLI arguments and environment variables.
func initConfig(cli *CLI) (*Config, error) {
	color, err := dirtree.UseColor(cli.Color, os.Stdout)
	if err != nil {
		return nil, err
	}

	config := Config{
		Color:         color,
		GitIgnore:     cli.GitIgnore,
		Ignore:        cli.Ignore,
		MaxPathLength: dirtree.MaxPathLength,
		Root:          dirtree.TrimRoot(cli.Dir),
		ShowHidden:    cli.All,
		Verbose:       cli.Verbose,
	}

	return &config, nil
}

// defaultArgs returns the arguments from the options environment variable.
func defaultArgs() ([]string, error) {
	opts := os.Getenv(dirtree.OptsEnv)
	if opts == "" {
		return nil, nil
	}

	args, err := shlex.Split(opts, true)
	if err != nil {
		return nil, fmt.Errorf("failed to split %s: %v", dirtree.OptsEnv, err)
	}

	return args, nil
}

func main() {
	var cli CLI

	parser := kong.Must(&cli,
		kong.Name("dirtree"),
		kong.Description("Print the contents of a directory as a tree."),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Configuration(kong.JSON, dirtree.DefaultConfigFile),
		kong.Exit(func(code int) {
			if code != 0 {
				code = 2
			}

			os.Exit(code)
		}),
		kong.Vars{
			"DefaultColor":      dirtree.DefaultColor,
			"DefaultConfigFile": dirtree.DefaultConfigFile,
			"version":           dirtree.Version,

			"AllEnv":       dirtree.AllEnv,
			"ColorEnv":     dirtree.ColorEnv,
			"GitIgnoreEnv": dirtree.GitIgnoreEnv,
		},
	)

	args, err := defaultArgs()
	if err != nil {
		dirtree.ExitWithError("%v", err)
	}
	args = append(args, os.Args[1:]...)

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
	}

	config, err := initConfig(&cli)
	if err != nil {
		dirtree.ExitWithError("%v", err)
	}
	if config.Verbose {
		printRepr(cli)
		printRepr(config)
	}

	if err := ctx.Run(config); err != nil {
		dirtree.ExitWithError("%v", err)
	}
}
