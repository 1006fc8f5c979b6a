package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/snipper-cli/internal/core/domain"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driving"
	"github.com/custodia-labs/snipper-cli/internal/logger"
)

// Ensure ReconcileService implements the interface.
var _ driving.Reconciler = (*ReconcileService)(nil)

// ReconcileService coordinates one reconciliation pass: discover files
// under the three roots, run the three scanners and merge everything
// into the snippet store.
//
// Scanner order is fixed (tags, then inclusions, then materialised
// files) but the store's precedence rules make the final flag set
// order-independent, so the order is an implementation detail, not a
// contract.
type ReconcileService struct {
	discovery    driven.FileDiscovery
	reader       driven.FileReader
	tags         driven.TagScanner
	inclusions   driven.InclusionScanner
	materialized driven.MaterializedIdentifier
	settings     domain.Settings

	newStore func() driven.SnippetStore

	// Status tracking
	mu         sync.RWMutex
	activeRuns map[string]*driving.RunStatus
}

// NewReconcileService creates a new reconcile service. newStore is
// called once per run; each pass gets a fresh store.
func NewReconcileService(
	discovery driven.FileDiscovery,
	reader driven.FileReader,
	tags driven.TagScanner,
	inclusions driven.InclusionScanner,
	materialized driven.MaterializedIdentifier,
	settings domain.Settings,
	newStore func() driven.SnippetStore,
) *ReconcileService {
	return &ReconcileService{
		discovery:    discovery,
		reader:       reader,
		tags:         tags,
		inclusions:   inclusions,
		materialized: materialized,
		settings:     settings,
		newStore:     newStore,
		activeRuns:   make(map[string]*driving.RunStatus),
	}
}

// Run performs one complete reconciliation pass.
func (r *ReconcileService) Run(ctx context.Context, opts driving.RunOptions) (*driving.RunResult, error) {
	runID := uuid.New().String()
	status := &driving.RunStatus{RunID: runID, Running: true}
	r.setStatus(runID, status)
	defer r.clearStatus(runID)

	store := r.newStore()
	var diags []domain.Diagnostic

	logger.Section("Reconcile " + runID)

	// Pass 1: tagged regions in source files.
	logger.Info("Scanning source files under %s", opts.SourceRoot)
	sourceFiles, err := r.discovery.Discover(ctx, opts.SourceRoot, r.settings.SourceExtensions)
	if err != nil {
		return nil, fmt.Errorf("discover source files: %w", err)
	}
	for _, file := range sourceFiles {
		text, err := r.reader.ReadText(ctx, file)
		if err != nil {
			diags = append(diags, domain.ErrorDiag(err.Error()))
			status.DiagnosticCount++
			continue
		}
		status.FilesScanned++

		fragments, scanErrs := r.tags.Scan(file, text)
		for _, scanErr := range scanErrs {
			logger.Warn("%v", scanErr)
			diags = append(diags, domain.ErrorDiag(scanErr.Error()))
			status.DiagnosticCount++
		}
		for _, frag := range fragments {
			logger.Debug("Region %q (active=%t) in %s", frag.Name, frag.Active, frag.File)
			duplicate, err := store.UpsertTagged(ctx, frag)
			if err != nil {
				return nil, fmt.Errorf("upsert tagged %q: %w", frag.Name, err)
			}
			if duplicate {
				diags = append(diags, domain.WarningDiag(fmt.Sprintf(
					"snippet %q defined more than once; content and source file keep the first definition, flags still merge from %s",
					frag.Name, frag.File)))
				status.DiagnosticCount++
			}
			status.RegionsFound++
		}
	}

	// Pass 2: inclusion references in document files.
	logger.Info("Scanning document files under %s", opts.DocumentRoot)
	docFiles, err := r.discovery.Discover(ctx, opts.DocumentRoot, r.settings.DocumentExtensions)
	if err != nil {
		return nil, fmt.Errorf("discover document files: %w", err)
	}
	for _, file := range docFiles {
		text, err := r.reader.ReadText(ctx, file)
		if err != nil {
			diags = append(diags, domain.ErrorDiag(err.Error()))
			status.DiagnosticCount++
			continue
		}
		status.FilesScanned++

		for _, name := range r.inclusions.Scan(text) {
			logger.Debug("Inclusion %q in %s", name, file)
			if err := store.UpsertInclusion(ctx, name); err != nil {
				return nil, fmt.Errorf("upsert inclusion %q: %w", name, err)
			}
		}
	}

	// Pass 3: materialised files in the target directory.
	logger.Info("Scanning snippet files under %s", opts.TargetDir)
	snippetFiles, err := r.discovery.Discover(ctx, opts.TargetDir, []string{r.settings.SnippetExtension})
	if err != nil {
		return nil, fmt.Errorf("discover snippet files: %w", err)
	}
	for _, file := range snippetFiles {
		status.FilesScanned++

		name, err := r.materialized.Identify(file)
		if err != nil {
			logger.Warn("%v", err)
			diags = append(diags, domain.WarningDiag(err.Error()))
			status.DiagnosticCount++
			continue
		}
		logger.Debug("Materialised file for %q: %s", name, file)
		if err := store.UpsertMaterialized(ctx, name); err != nil {
			return nil, fmt.Errorf("upsert materialised %q: %w", name, err)
		}
	}

	snippets, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}

	logger.Info("Reconciled %d snippets from %d files, %d diagnostics",
		len(snippets), status.FilesScanned, status.DiagnosticCount)
	status.Running = false

	return &driving.RunResult{
		RunID:        runID,
		Snippets:     snippets,
		Diagnostics:  diags,
		FilesScanned: status.FilesScanned,
	}, nil
}

// Status returns progress for a run ID.
func (r *ReconcileService) Status(_ context.Context, runID string) (*driving.RunStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if status, ok := r.activeRuns[runID]; ok {
		// Return a copy to avoid race conditions
		copied := *status
		return &copied, nil
	}
	return &driving.RunStatus{RunID: runID, Running: false}, nil
}

// ValidateRoots checks that every configured directory exists before
// any scanning begins. It returns one error per offending argument.
func ValidateRoots(opts driving.RunOptions, isDir func(string) bool) []error {
	var errs []error
	check := func(label, path string) {
		if path == "" || !isDir(filepath.Clean(path)) {
			errs = append(errs, fmt.Errorf("%w: invalid %s directory %q", domain.ErrInvalidInput, label, path))
		}
	}
	check("source", opts.SourceRoot)
	check("target", opts.TargetDir)
	check("document", opts.DocumentRoot)
	return errs
}

// setStatus records the status for a run.
func (r *ReconcileService) setStatus(runID string, status *driving.RunStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activeRuns[runID] = status
}

// clearStatus removes the status for a run.
func (r *ReconcileService) clearStatus(runID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.activeRuns, runID)
}
