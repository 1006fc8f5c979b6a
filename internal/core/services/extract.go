package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/snipper-cli/internal/core/domain"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driving"
	"github.com/custodia-labs/snipper-cli/internal/logger"
)

// Ensure ExtractService implements the interface.
var _ driving.Extractor = (*ExtractService)(nil)

// ExtractService writes the reconciled snippet set to the target
// directory. Active snippets overwrite unconditionally; inactive
// snippets are create-only. One snippet's failure never aborts the
// phase.
type ExtractService struct {
	writer    driven.SnippetWriter
	extension string
}

// NewExtractService creates a new extract service. extension is the
// snippet file extension without the leading dot.
func NewExtractService(writer driven.SnippetWriter, extension string) *ExtractService {
	return &ExtractService{
		writer:    writer,
		extension: extension,
	}
}

// Extract applies the write policy to each snippet in order.
func (e *ExtractService) Extract(ctx context.Context, snippets []domain.Snippet, targetDir string) (*driving.ExtractReport, error) {
	report := &driving.ExtractReport{}

	logger.Section("Extract")

	for _, snip := range snippets {
		outcome := e.extractOne(ctx, snip, targetDir, &report.Diagnostics)
		report.Outcomes = append(report.Outcomes, outcome)
	}
	return report, nil
}

func (e *ExtractService) extractOne(
	ctx context.Context,
	snip domain.Snippet,
	targetDir string,
	diags *[]domain.Diagnostic,
) driving.ExtractOutcome {
	if !snip.FoundInSource {
		msg := fmt.Sprintf("cannot extract %q: %v", snip.Name, domain.ErrNoSourceRegion)
		logger.Warn("%s", msg)
		*diags = append(*diags, domain.ErrorDiag(msg))
		return driving.ExtractOutcome{
			Name:   snip.Name,
			Status: driving.ExtractNoSource,
			Err:    domain.ErrNoSourceRegion,
		}
	}

	path := filepath.Join(targetDir, snip.Name+"."+e.extension)

	var content string
	if snip.Content != nil {
		content = *snip.Content
	} else {
		msg := fmt.Sprintf("snippet %q has no body; writing an empty file", snip.Name)
		logger.Warn("%s", msg)
		*diags = append(*diags, domain.WarningDiag(msg))
	}

	var err error
	if snip.Active {
		err = e.writer.WriteOverwrite(ctx, path, content)
	} else {
		err = e.writer.WriteExclusive(ctx, path, content)
		if errors.Is(err, domain.ErrAlreadyExists) {
			msg := fmt.Sprintf("%q: %v", snip.Name, domain.ErrInactiveNotOverwritten)
			logger.Info("%s", msg)
			*diags = append(*diags, domain.InfoDiag(msg))
			return driving.ExtractOutcome{
				Name:   snip.Name,
				Path:   path,
				Status: driving.ExtractInactiveKept,
				Err:    domain.ErrInactiveNotOverwritten,
			}
		}
	}
	if err != nil {
		msg := fmt.Sprintf("extract %q: %v", snip.Name, err)
		logger.Warn("%s", msg)
		*diags = append(*diags, domain.ErrorDiag(msg))
		return driving.ExtractOutcome{
			Name:   snip.Name,
			Path:   path,
			Status: driving.ExtractFailed,
			Err:    err,
		}
	}

	logger.Debug("Wrote %s", path)
	return driving.ExtractOutcome{
		Name:   snip.Name,
		Path:   path,
		Status: driving.ExtractWritten,
	}
}
