package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sinclairtarget/resultseq/internal/fileseq"
)

// The "cat" subcommand concatenates the contents of every file read to
// stdout. Nothing is written until every read has succeeded.
func cat(paths []string, keepGoing bool, recurse bool) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"cat\": %w", err)
		}
	}()

	logger().Debug(
		"called cat()",
		"paths",
		paths,
		"keepGoing",
		keepGoing,
		"recurse",
		recurse,
	)

	files, err := collectFiles(
		fileseq.ReadFiles(sourcePaths(paths, recurse)),
		keepGoing,
	)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	for _, f := range files {
		_, err = w.Write(f.Data)
		if err != nil {
			return err
		}
	}

	err = w.Flush()
	if err != nil {
		return err
	}

	return nil
}
