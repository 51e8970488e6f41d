// Package enum discovers the text files a check run reads.
package enum

import "context"

// File is a text file found by an Enumerator.
type File struct {
	Path    string
	Content string
}

// Enumerator discovers text to check from a source.
type Enumerator interface {
	// Enumerate yields each text file to callback. Callbacks may run
	// concurrently.
	Enumerate(ctx context.Context, callback func(File) error) error
}

// Config for enumeration.
type Config struct {
	// Root is the starting path for enumeration, a directory or a file.
	Root string

	// IncludeHidden includes hidden files/directories (starting with .).
	IncludeHidden bool

	// MaxFileSize is the maximum file size to process (0 = no limit).
	MaxFileSize int64

	// FollowSymlinks follows symbolic links to files.
	FollowSymlinks bool

	// Extensions limits the walk to these file extensions, e.g. ".md".
	// Empty means every text file.
	Extensions []string
}
