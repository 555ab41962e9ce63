package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/sinclairtarget/resultseq/internal/fileseq"
	"github.com/sinclairtarget/resultseq/internal/format"
	"github.com/sinclairtarget/resultseq/internal/pretty"
)

const tableWidth = 72

type countMode int

const (
	byBytes countMode = iota
	byLines
	byWords
)

type fileCount struct {
	path  string
	lines int
	words int
	size  int
}

// The "count" subcommand tallies line, word, and byte counts for each file
// read and prints a summary table to stdout.
func count(
	paths []string,
	mode countMode,
	useCsv bool,
	keepGoing bool,
	recurse bool,
	limit int,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"count\": %w", err)
		}
	}()

	logger().Debug(
		"called count()",
		"paths",
		paths,
		"mode",
		mode,
		"useCsv",
		useCsv,
		"keepGoing",
		keepGoing,
		"recurse",
		recurse,
		"limit",
		limit,
	)

	start := time.Now()

	files, err := collectFiles(
		fileseq.ReadFiles(sourcePaths(paths, recurse)),
		keepGoing,
	)
	if err != nil {
		return err
	}

	counts := make([]fileCount, 0, len(files))
	for _, f := range files {
		counts = append(counts, fileCount{
			path:  f.Path,
			lines: bytes.Count(f.Data, []byte("\n")),
			words: len(bytes.Fields(f.Data)),
			size:  len(f.Data),
		})
	}

	slices.SortFunc(counts, func(a, b fileCount) int {
		switch mode {
		case byLines:
			return b.lines - a.lines
		case byWords:
			return b.words - a.words
		default:
			return b.size - a.size
		}
	})

	numFilteredOut := 0
	if limit > 0 && limit < len(counts) {
		numFilteredOut = len(counts) - limit
		counts = counts[:limit]
	}

	if useCsv {
		err := writeCsv(counts)
		if err != nil {
			return err
		}
	} else {
		writeTable(counts, numFilteredOut)
	}

	elapsed := time.Now().Sub(start)
	logger().Debug("finished count", "duration_ms", elapsed.Milliseconds())

	return nil
}

func toRecord(c fileCount) []string {
	return []string{
		c.path,
		strconv.Itoa(c.lines),
		strconv.Itoa(c.words),
		strconv.Itoa(c.size),
	}
}

func writeCsv(counts []fileCount) error {
	w := csv.NewWriter(os.Stdout)

	w.Write([]string{"path", "lines", "words", "bytes"})

	for _, c := range counts {
		if err := w.Write(toRecord(c)); err != nil {
			return fmt.Errorf("error writing CSV record to stdout: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("error flushing CSV writer: %w", err)
	}

	return nil
}

func writeTable(counts []fileCount, numFilteredOut int) {
	if len(counts) == 0 {
		return
	}

	pathWidth := tableWidth - 32

	var build strings.Builder
	for _ = range tableWidth - 2 {
		build.WriteRune('─')
	}
	rule := build.String()

	// -- Write header --
	fmt.Printf("┌%s┐\n", rule)
	fmt.Printf(
		"│%-*s %9s %9s %9s│\n",
		pathWidth,
		"Path",
		"Lines",
		"Words",
		"Bytes",
	)
	fmt.Printf("├%s┤\n", rule)

	// -- Write table rows --
	var totalLines, totalWords, totalSize int
	for _, c := range counts {
		fmt.Printf(
			"│%-*s %9s %9s %9s│\n",
			pathWidth,
			format.Abbrev(c.path, pathWidth),
			format.Number(c.lines),
			format.Number(c.words),
			format.Number(c.size),
		)

		totalLines += c.lines
		totalWords += c.words
		totalSize += c.size
	}

	if numFilteredOut > 0 {
		msg := fmt.Sprintf("...%s more...", format.Number(numFilteredOut))
		fmt.Printf("│%s%-*s%s│\n", pretty.Dim(), tableWidth-2, msg, pretty.Reset())
	}

	// The total only adds up when every row is shown.
	if numFilteredOut == 0 && len(counts) > 1 {
		fmt.Printf("├%s┤\n", rule)
		fmt.Printf(
			"│%-*s %s%9s %9s %9s%s│\n",
			pathWidth,
			"Total",
			pretty.Green(),
			format.Number(totalLines),
			format.Number(totalWords),
			format.Number(totalSize),
			pretty.Reset(),
		)
	}

	fmt.Printf("└%s┘\n", rule)
}
