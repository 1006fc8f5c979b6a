package domain

// Settings holds the tool configuration. Defaults reproduce the
// original C++/LaTeX workflow; a config file or flags may override
// them for other languages.
type Settings struct {
	// Marker is the word in the tag tokens, e.g. "SNIPPET" in
	// "// SNIPPET:BEGIN {name}".
	Marker string

	// SourceExtensions are the file extensions scanned for tagged
	// regions. Matched case-insensitively, without leading dot.
	SourceExtensions []string

	// DocumentExtensions are the file extensions scanned for inclusion
	// references.
	DocumentExtensions []string

	// SnippetExtension is the extension of materialised snippet files,
	// both for discovery in the target directory and for written files.
	SnippetExtension string

	// Colour enables styled report output when stdout is a terminal.
	Colour bool
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Marker:             "SNIPPET",
		SourceExtensions:   []string{"cpp", "h"},
		DocumentExtensions: []string{"tex"},
		SnippetExtension:   "cpp",
		Colour:             true,
	}
}
