package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snipper-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/snipper-cli/internal/core/domain"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driving"
)

func newTestExtractor() *ExtractService {
	return NewExtractService(filesystem.New(), "cpp")
}

func strptr(s string) *string { return &s }

func TestExtractService_Extract_ActiveOverwrites(t *testing.T) {
	extractor := newTestExtractor()
	targetDir := t.TempDir()
	ctx := context.Background()

	// Pre-existing stale file must be refreshed.
	writeFile(t, filepath.Join(targetDir, "foo.cpp"), "stale")

	snippets := []domain.Snippet{{
		Name:          "foo",
		Content:       strptr("fresh body"),
		FoundInSource: true,
		Active:        true,
	}}

	report, err := extractor.Extract(ctx, snippets, targetDir)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, driving.ExtractWritten, report.Outcomes[0].Status)

	data, err := os.ReadFile(filepath.Join(targetDir, "foo.cpp"))
	require.NoError(t, err)
	assert.Equal(t, "fresh body", string(data))
}

func TestExtractService_Extract_ActiveIsIdempotent(t *testing.T) {
	extractor := newTestExtractor()
	targetDir := t.TempDir()
	ctx := context.Background()

	snippets := []domain.Snippet{{
		Name:          "foo",
		Content:       strptr("body"),
		FoundInSource: true,
		Active:        true,
	}}

	for i := 0; i < 2; i++ {
		report, err := extractor.Extract(ctx, snippets, targetDir)
		require.NoError(t, err)
		assert.Equal(t, driving.ExtractWritten, report.Outcomes[0].Status)
	}

	data, err := os.ReadFile(filepath.Join(targetDir, "foo.cpp"))
	require.NoError(t, err)
	assert.Equal(t, "body", string(data))
}

func TestExtractService_Extract_InactiveCreateOnly(t *testing.T) {
	ctx := context.Background()

	t.Run("writes when absent", func(t *testing.T) {
		extractor := newTestExtractor()
		targetDir := t.TempDir()

		snippets := []domain.Snippet{{
			Name:          "qux",
			Content:       strptr("inactive body"),
			FoundInSource: true,
			Active:        false,
		}}

		report, err := extractor.Extract(ctx, snippets, targetDir)
		require.NoError(t, err)
		assert.Equal(t, driving.ExtractWritten, report.Outcomes[0].Status)
	})

	t.Run("keeps existing file", func(t *testing.T) {
		extractor := newTestExtractor()
		targetDir := t.TempDir()
		writeFile(t, filepath.Join(targetDir, "qux.cpp"), "previous extraction")

		snippets := []domain.Snippet{{
			Name:          "qux",
			Content:       strptr("new body"),
			FoundInSource: true,
			Active:        false,
		}}

		report, err := extractor.Extract(ctx, snippets, targetDir)
		require.NoError(t, err)
		require.Len(t, report.Outcomes, 1)
		assert.Equal(t, driving.ExtractInactiveKept, report.Outcomes[0].Status)
		assert.ErrorIs(t, report.Outcomes[0].Err, domain.ErrInactiveNotOverwritten)

		// Informational, not an error.
		require.Len(t, report.Diagnostics, 1)
		assert.Equal(t, domain.SeverityInfo, report.Diagnostics[0].Severity)

		data, err := os.ReadFile(filepath.Join(targetDir, "qux.cpp"))
		require.NoError(t, err)
		assert.Equal(t, "previous extraction", string(data))
	})
}

func TestExtractService_Extract_NoSourceRegion(t *testing.T) {
	extractor := newTestExtractor()
	targetDir := t.TempDir()

	snippets := []domain.Snippet{{
		Name:            "ghost",
		FoundInDocument: true,
	}}

	report, err := extractor.Extract(context.Background(), snippets, targetDir)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, driving.ExtractNoSource, report.Outcomes[0].Status)
	assert.ErrorIs(t, report.Outcomes[0].Err, domain.ErrNoSourceRegion)

	entries, err := os.ReadDir(targetDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing may be written for a source-less snippet")
}

func TestExtractService_Extract_ContentlessWritesEmptyFile(t *testing.T) {
	extractor := newTestExtractor()
	targetDir := t.TempDir()

	snippets := []domain.Snippet{{
		Name:          "hollow",
		FoundInSource: true,
		Active:        true,
	}}

	report, err := extractor.Extract(context.Background(), snippets, targetDir)
	require.NoError(t, err)
	assert.Equal(t, driving.ExtractWritten, report.Outcomes[0].Status)

	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, domain.SeverityWarning, report.Diagnostics[0].Severity)

	data, err := os.ReadFile(filepath.Join(targetDir, "hollow.cpp"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestExtractService_Extract_FailureDoesNotAbortSiblings(t *testing.T) {
	extractor := newTestExtractor()
	targetDir := t.TempDir()

	// First snippet is inactive with a pre-existing file, second is
	// healthy; the second must still be written.
	writeFile(t, filepath.Join(targetDir, "blocked.cpp"), "keep me")

	snippets := []domain.Snippet{
		{Name: "blocked", Content: strptr("x"), FoundInSource: true, Active: false},
		{Name: "healthy", Content: strptr("y"), FoundInSource: true, Active: true},
	}

	report, err := extractor.Extract(context.Background(), snippets, targetDir)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, driving.ExtractInactiveKept, report.Outcomes[0].Status)
	assert.Equal(t, driving.ExtractWritten, report.Outcomes[1].Status)

	data, err := os.ReadFile(filepath.Join(targetDir, "healthy.cpp"))
	require.NoError(t, err)
	assert.Equal(t, "y", string(data))
}
