package main

import (
	"errors"
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/sinclairtarget/resultseq"
	"github.com/sinclairtarget/resultseq/internal/fileseq"
	"github.com/sinclairtarget/resultseq/internal/format"
	"github.com/sinclairtarget/resultseq/internal/pretty"
)

var Commit = "unknown"
var Version = "unknown"

type command struct {
	flagSet     *flag.FlagSet
	run         func(args []string) error
	description string
}

// Main examines the args and delegates to the specified subcommand.
//
// If no subcommand was specified, we default to the "count" subcommand.
func main() {
	subcommands := map[string]command{ // Available subcommands
		"count": countCmd(),
		"cat":   catCmd(),
	}

	// --- Handle top-level flags ---
	mainFlagSet := flag.NewFlagSet("slurp", flag.ExitOnError)

	versionFlag := mainFlagSet.Bool("version", false, "Print version and exit")
	verboseFlag := mainFlagSet.Bool("v", false, "Enables debug logging")

	mainFlagSet.Usage = func() {
		fmt.Println("Usage: slurp [-v] [subcommand] [subcommand options...]")
		fmt.Println("slurp reads files in bulk, failing fast or failing slow")

		fmt.Println()
		fmt.Println("Top-level options:")
		mainFlagSet.PrintDefaults()

		fmt.Println()
		fmt.Println("Subcommands:")

		helpSubcommands := []string{"count", "cat"}
		for _, name := range helpSubcommands {
			cmd := subcommands[name]

			fmt.Printf("  %s\n", name)
			fmt.Printf("\t%s\n", cmd.description)
		}
	}

	// Look for the index of the first arg not intended as a top-level flag.
	// We handle this manually so that specifying the default subcommand is
	// optional even when providing subcommand flags.
	subcmdIndex := 1
loop:
	for subcmdIndex < len(os.Args) {
		switch os.Args[subcmdIndex] {
		case "-version", "--version", "-v", "--v", "-h", "--help":
			subcmdIndex += 1
		default:
			break loop
		}
	}

	mainFlagSet.Parse(os.Args[1:subcmdIndex])

	if *versionFlag {
		fmt.Printf("%s %s\n", Version, Commit)
		return
	}

	if *verboseFlag {
		configureLogging(slog.LevelDebug)
		logger().Debug("log level set to DEBUG")
	} else {
		configureLogging(slog.LevelInfo)
	}

	pretty.SetColorEnabled(pretty.AllowDynamic(os.Stdout))

	args := os.Args[subcmdIndex:]

	// --- Handle subcommands ---
	cmd := subcommands["count"] // Default to "count"
	if len(args) > 0 {
		first := args[0]
		if subcommand, ok := subcommands[first]; ok {
			cmd = subcommand
			args = args[1:]
		}
	}

	cmd.flagSet.Parse(args)
	subargs := cmd.flagSet.Args()

	if err := cmd.run(subargs); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// -v- Subcommand definitions ------------------------------------------------

func countCmd() command {
	flagSet := flag.NewFlagSet("slurp count", flag.ExitOnError)

	useCsv := flagSet.Bool("csv", false, "Output as csv")
	keepGoing := flagSet.Bool(
		"k",
		false,
		"Keep going after a read error and report every error",
	)
	recurse := flagSet.Bool("r", false, "Descend into subdirectories")
	linesMode := flagSet.Bool("l", false, "Sort by line count")
	wordsMode := flagSet.Bool("w", false, "Sort by word count")
	limit := flagSet.Int("n", 10, "Limit rows in table (set to 0 for no limit)")

	description := "Print out a table of line, word, and byte counts per file"

	flagSet.Usage = func() {
		fmt.Println(strings.TrimSpace(`
Usage: slurp count [options...] [paths...]
		`))
		fmt.Println(description)
		fmt.Println()
		flagSet.PrintDefaults()
	}

	return command{
		flagSet:     flagSet,
		description: description,
		run: func(args []string) error {
			if !isOnlyOne(*linesMode, *wordsMode) {
				return errors.New("all sort flags are mutually exclusive")
			}

			if *limit < 0 {
				return errors.New("-n flag must be a positive integer")
			}

			mode := byBytes
			if *linesMode {
				mode = byLines
			} else if *wordsMode {
				mode = byWords
			}

			return count(args, mode, *useCsv, *keepGoing, *recurse, *limit)
		},
	}
}

func catCmd() command {
	flagSet := flag.NewFlagSet("slurp cat", flag.ExitOnError)

	keepGoing := flagSet.Bool(
		"k",
		false,
		"Keep going after a read error and report every error",
	)
	recurse := flagSet.Bool("r", false, "Descend into subdirectories")

	description := "Concatenate file contents to stdout"

	flagSet.Usage = func() {
		fmt.Println(strings.TrimSpace(`
Usage: slurp cat [options...] [paths...]
		`))
		fmt.Println(description)
		fmt.Println()
		flagSet.PrintDefaults()
	}

	return command{
		flagSet:     flagSet,
		description: description,
		run: func(args []string) error {
			return cat(args, *keepGoing, *recurse)
		},
	}
}

// -^--------------------------------------------------------------------------

func configureLogging(level slog.Level) {
	handler := slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{
			Level: level,
		},
	)
	logger := slog.New(handler)
	slog.SetDefault(logger)
}

// Used to check mutual exclusion.
func isOnlyOne(flags ...bool) bool {
	var foundOne bool
	for _, f := range flags {
		if f {
			if foundOne {
				return false
			}

			foundOne = true
		}
	}

	return true
}

// Resolves the path arguments to a sequence of files to read. With no
// arguments we read the files under the working directory.
func sourcePaths(args []string, recurse bool) iter.Seq2[string, error] {
	if len(args) > 0 {
		return resultseq.WithoutErrors(slices.Values(args))
	}

	if recurse {
		return fileseq.Walk(".")
	}

	return fileseq.Paths(".")
}

// Applies the chosen failure policy to a sequence of file reads.
//
// By default the first error wins and comes back as is. When keepGoing is
// set, every file is attempted and every error is printed to stderr before
// we give up.
func collectFiles(
	files iter.Seq2[fileseq.File, error],
	keepGoing bool,
) ([]fileseq.File, error) {
	if !keepGoing {
		return resultseq.Collect(files)
	}

	collected, err := resultseq.CollectAll(files)
	if err == nil {
		return collected, nil
	}

	var multi *resultseq.MultiError
	if !errors.As(err, &multi) {
		return nil, err
	}

	for readErr := range multi.All() {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", pretty.Red(), readErr, pretty.Reset())
	}

	return nil, fmt.Errorf(
		"could not read %d %s",
		multi.Len(),
		format.Plural("file", multi.Len()),
	)
}
