package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// layoutFlags holds extract-layout overrides.
type layoutFlags struct {
	source string
	pageID string
	output string
}

// buildFlags holds build options.
type buildFlags struct {
	workers int
}

// cliFlags bundles all parsed flag groups.
type cliFlags struct {
	common commonFlags
	layout layoutFlags
	build  buildFlags
}

// parseFlags parses the flags of a subcommand. Unknown subcommands get the
// common flag set so --help still works.
func parseFlags(cmd string, args []string) (*cliFlags, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.StringVarP(&flags.common.config, "config", "c", "", "config file path (default: built-in configuration)")
	fs.BoolVarP(&flags.common.quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&flags.common.verbose, "verbose", "v", false, "log debug detail")

	switch cmd {
	case "extract-layout":
		fs.StringVar(&flags.layout.source, "source", "", "exported page to extract the layout from (default: from config)")
		fs.StringVar(&flags.layout.pageID, "page-id", "", "page identifier of the source page (default: from config)")
		fs.StringVar(&flags.layout.output, "output", "", "layout template output path (default: from config)")
	case "build":
		fs.IntVarP(&flags.build.workers, "workers", "w", 0, "pages built concurrently (default: 1, env WIX2SITE_WORKERS)")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if flags.common.quiet && flags.common.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrInvalidFlags)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlags, fs.Arg(0))
	}
	return flags, nil
}
