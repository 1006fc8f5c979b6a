package driven

import "context"

// FileDiscovery finds regular files beneath a root directory.
type FileDiscovery interface {
	// Discover returns the paths of all regular files beneath root
	// whose extension matches one of extensions, case-insensitively.
	// Extensions are given without a leading dot.
	Discover(ctx context.Context, root string, extensions []string) ([]string, error)
}

// FileReader reads a file's full text.
type FileReader interface {
	// ReadText returns the complete contents of the file at path.
	ReadText(ctx context.Context, path string) (string, error)
}

// SnippetWriter writes snippet bodies to the target directory.
type SnippetWriter interface {
	// WriteOverwrite creates or truncates the file at path. Used for
	// active snippets, whose re-extraction always refreshes the file.
	WriteOverwrite(ctx context.Context, path, content string) error

	// WriteExclusive creates the file at path, failing with
	// domain.ErrAlreadyExists when it is already present. Used for
	// inactive snippets, which must never clobber an existing file.
	WriteExclusive(ctx context.Context, path, content string) error
}
