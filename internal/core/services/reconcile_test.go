package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snipper-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/snipper-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/snipper-cli/internal/core/domain"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driving"
	"github.com/custodia-labs/snipper-cli/internal/scanners/inclusion"
	"github.com/custodia-labs/snipper-cli/internal/scanners/materialized"
	"github.com/custodia-labs/snipper-cli/internal/scanners/tag"
)

// newTestReconciler wires a reconciler over the real filesystem
// connector with default settings.
func newTestReconciler() *ReconcileService {
	settings := domain.DefaultSettings()
	connector := filesystem.New()
	return NewReconcileService(
		connector,
		connector,
		tag.New(settings.Marker),
		inclusion.New(settings.SnippetExtension),
		materialized.New(settings.SnippetExtension),
		settings,
		func() driven.SnippetStore { return memory.NewSnippetStore() },
	)
}

// newTestRoots creates the three directories for a run.
func newTestRoots(t *testing.T) driving.RunOptions {
	t.Helper()
	return driving.RunOptions{
		SourceRoot:   t.TempDir(),
		DocumentRoot: t.TempDir(),
		TargetDir:    t.TempDir(),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestReconcileService_Run_AllThreeOrigins(t *testing.T) {
	reconciler := newTestReconciler()
	opts := newTestRoots(t)

	writeFile(t, filepath.Join(opts.SourceRoot, "main.cpp"),
		"// SNIPPET:BEGIN {foo}\nbody of foo\n// SNIPPET:END {foo}\n")
	writeFile(t, filepath.Join(opts.DocumentRoot, "thesis.tex"),
		`\lstinputlisting{snippets/foo.cpp}`)

	result, err := reconciler.Run(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, result.Snippets, 1)
	assert.NotEmpty(t, result.RunID)
	assert.Empty(t, result.Diagnostics)

	snip := result.Snippets[0]
	assert.Equal(t, "foo", snip.Name)
	assert.True(t, snip.FoundInSource)
	assert.True(t, snip.FoundInDocument)
	assert.False(t, snip.Materialized)
	assert.True(t, snip.Active)
	require.NotNil(t, snip.Content)
	assert.Equal(t, "\nbody of foo\n", *snip.Content)
	assert.Equal(t, filepath.Join(opts.SourceRoot, "main.cpp"), snip.SourceFile)
}

func TestReconcileService_Run_MismatchedTags(t *testing.T) {
	reconciler := newTestReconciler()
	opts := newTestRoots(t)

	writeFile(t, filepath.Join(opts.SourceRoot, "bad.cpp"),
		"// SNIPPET:BEGIN {bar}\nbody\n// SNIPPET:END {baz}\n")

	result, err := reconciler.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, result.Snippets, "mismatched region must not produce a record")

	require.Len(t, result.Diagnostics, 1)
	diag := result.Diagnostics[0]
	assert.Equal(t, domain.SeverityError, diag.Severity)
	assert.Contains(t, diag.Message, "bar")
	assert.Contains(t, diag.Message, "baz")
}

func TestReconcileService_Run_MaterializedOnly(t *testing.T) {
	reconciler := newTestReconciler()
	opts := newTestRoots(t)

	writeFile(t, filepath.Join(opts.TargetDir, "qux.cpp"), "stale body")

	result, err := reconciler.Run(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, result.Snippets, 1)

	snip := result.Snippets[0]
	assert.Equal(t, "qux", snip.Name)
	assert.True(t, snip.Materialized)
	assert.False(t, snip.FoundInSource)
	assert.Nil(t, snip.Content, "materialised sighting never supplies content")
}

func TestReconcileService_Run_DuplicateDefinition(t *testing.T) {
	reconciler := newTestReconciler()
	opts := newTestRoots(t)

	writeFile(t, filepath.Join(opts.SourceRoot, "a.cpp"),
		"// SNIPPET:BEGIN {dup}\nfrom a\n// SNIPPET:END {dup}\n")
	writeFile(t, filepath.Join(opts.SourceRoot, "b.cpp"),
		"// !SNIPPET:BEGIN {dup}\nfrom b\n// !SNIPPET:END {dup}\n")

	result, err := reconciler.Run(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, result.Snippets, 1)

	// Content keeps the first definition, but the inactive duplicate
	// still merges into the flag set.
	snip := result.Snippets[0]
	require.NotNil(t, snip.Content)
	assert.Equal(t, "\nfrom a\n", *snip.Content)
	assert.Equal(t, filepath.Join(opts.SourceRoot, "a.cpp"), snip.SourceFile)
	assert.False(t, snip.Active)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, domain.SeverityWarning, result.Diagnostics[0].Severity)
	assert.Contains(t, result.Diagnostics[0].Message, "dup")
	assert.Contains(t, result.Diagnostics[0].Message, "flags still merge")
}

func TestReconcileService_Run_InactiveOverridesActive(t *testing.T) {
	reconciler := newTestReconciler()
	opts := newTestRoots(t)

	writeFile(t, filepath.Join(opts.SourceRoot, "both.cpp"),
		"// SNIPPET:BEGIN {s}\nnew\n// SNIPPET:END {s}\n"+
			"// !SNIPPET:BEGIN {s}\nold\n// !SNIPPET:END {s}\n")

	result, err := reconciler.Run(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, result.Snippets, 1)
	assert.False(t, result.Snippets[0].Active)
	assert.True(t, result.Snippets[0].FoundInSource)
}

func TestReconcileService_Run_SortedOutput(t *testing.T) {
	reconciler := newTestReconciler()
	opts := newTestRoots(t)

	writeFile(t, filepath.Join(opts.DocumentRoot, "doc.tex"), strings.Join([]string{
		`\lstinputlisting{c.cpp}`,
		`\lstinputlisting{a.cpp}`,
		`\lstinputlisting{b.cpp}`,
	}, "\n"))

	result, err := reconciler.Run(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, result.Snippets, 3)
	assert.Equal(t, "a", result.Snippets[0].Name)
	assert.Equal(t, "b", result.Snippets[1].Name)
	assert.Equal(t, "c", result.Snippets[2].Name)
}

func TestReconcileService_Run_Idempotent(t *testing.T) {
	reconciler := newTestReconciler()
	opts := newTestRoots(t)

	writeFile(t, filepath.Join(opts.SourceRoot, "main.cpp"),
		"// SNIPPET:BEGIN {foo}\nbody\n// SNIPPET:END {foo}\n")
	writeFile(t, filepath.Join(opts.DocumentRoot, "doc.tex"),
		`\lstinputlisting{foo.cpp}`)

	first, err := reconciler.Run(context.Background(), opts)
	require.NoError(t, err)
	second, err := reconciler.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first.Snippets, second.Snippets)
	assert.Equal(t, first.Diagnostics, second.Diagnostics)
}

func TestReconcileService_Status_UnknownRun(t *testing.T) {
	reconciler := newTestReconciler()

	status, err := reconciler.Status(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, status.Running)
}

func TestValidateRoots(t *testing.T) {
	exists := t.TempDir()
	isDir := func(path string) bool { return path == exists }

	t.Run("all valid", func(t *testing.T) {
		errs := ValidateRoots(driving.RunOptions{
			SourceRoot: exists, TargetDir: exists, DocumentRoot: exists,
		}, isDir)
		assert.Empty(t, errs)
	})

	t.Run("one error per offending argument", func(t *testing.T) {
		errs := ValidateRoots(driving.RunOptions{
			SourceRoot: "/does/not/exist", TargetDir: exists, DocumentRoot: "",
		}, isDir)
		require.Len(t, errs, 2)
		for _, err := range errs {
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		}
	})
}
