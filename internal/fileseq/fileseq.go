/*
* Reading files from disk as fallible sequences.
 */
package fileseq

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// A File is one file's contents, read whole.
type File struct {
	Path string
	Data []byte
}

// Paths returns a single-use iterator over the paths of the files directly
// under dir. Directories are skipped. If dir itself cannot be listed, the
// sequence is a single errored element.
func Paths(dir string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		logger().Debug("listing directory", "path", dir)

		entries, err := os.ReadDir(dir)
		if err != nil {
			yield("", fmt.Errorf("could not list directory: %w", err))
			return
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			if !yield(filepath.Join(dir, entry.Name()), nil) {
				return
			}
		}
	}
}

// Walk returns a single-use iterator over the paths of every file under
// dir, recursively. A problem during the walk surfaces as an errored
// element rather than ending the walk, so a fail slow consumer can keep
// going.
func Walk(dir string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		logger().Debug("walking directory", "path", dir)

		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if !yield("", err) {
					return fs.SkipAll
				}

				return nil
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				return fs.SkipAll
			}

			return nil
		})
	}
}

// ReadFiles maps a sequence of paths to a sequence of whole-file contents.
// An errored element passes through untouched; a path that cannot be read
// becomes an errored element.
func ReadFiles(paths iter.Seq2[string, error]) iter.Seq2[File, error] {
	return func(yield func(File, error) bool) {
		for path, err := range paths {
			if err != nil {
				if !yield(File{}, err) {
					return
				}

				continue
			}

			data, err := os.ReadFile(path)
			if err != nil {
				if !yield(File{}, err) {
					return
				}

				continue
			}

			if !yield(File{Path: path, Data: data}, nil) {
				return
			}
		}
	}
}
