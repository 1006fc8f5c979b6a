package materialized

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snipper-cli/internal/core/domain"
)

func TestIdentifier_Identify(t *testing.T) {
	identifier := New("cpp")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain file", "snippets/binary_search.cpp", "binary_search"},
		{"uppercase extension", "snippets/binary_search.CPP", "binary_search"},
		{"no directory", "binary_search.cpp", "binary_search"},
		{"other extension kept", "snippets/notes.txt", "notes.txt"},
		{"dot in name", "snippets/v2.1_search.cpp", "v2.1_search"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := identifier.Identify(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentifier_Identify_Errors(t *testing.T) {
	identifier := New("cpp")

	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"trailing separator", "snippets/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := identifier.Identify(tt.path)
			require.Error(t, err)

			var extractErr *domain.NameExtractionError
			assert.ErrorAs(t, err, &extractErr)
		})
	}
}
