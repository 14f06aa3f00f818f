package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// A local .env file supplies WIX2SITE_* overrides; absence is fine.
	_ = godotenv.Load()

	env := DefaultEnv()

	cmd, args := splitCommand(os.Args)
	flags, err := parseFlags(cmd, args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		os.Exit(ExitUsage)
	}

	env.SetupLogger(flags.common.verbose, flags.common.quiet)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	warnUnknownEnvVars(env.Stderr)

	if err := run(cmd, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// splitCommand separates the subcommand from its arguments.
func splitCommand(args []string) (string, []string) {
	if len(args) < 2 {
		return "", nil
	}
	return args[1], args[2:]
}

// run dispatches the subcommand.
func run(cmd string, flags *cliFlags, env *Environment) error {
	switch cmd {
	case "extract-layout":
		return runExtractLayout(flags, env)
	case "extract-pages":
		return runExtractPages(flags, env)
	case "build":
		return runBuild(flags, env)
	case "check":
		return runCheck(flags, env)
	case "version":
		fmt.Fprintf(env.Stdout, "wix2site %s\n", Version)
		return nil
	case "", "help", "-h", "--help":
		printUsage(env.Stdout)
		return nil
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}
