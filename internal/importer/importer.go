// Package importer runs the fetch, extract, back up, append and report stages of a dictionary import.
package importer

import (
	"context"
	"log/slog"

	"github.com/at-ishikawa/flypysync/internal/userdict"
)

// ImportResult tracks what an import did.
type ImportResult struct {
	Imported       int
	Malformed      int
	BackupCreated  bool
	DictionaryPath string
	BackupPath     string
}

type Options struct {
	DictionaryPath string
	BackupPath     string
	SectionLabel   string
}

// Importer appends the rows of a remote page to the local user dictionary.
type Importer struct {
	fetcher   Fetcher
	extractor userdict.Extractor
	reporter  Reporter
	options   Options
	state     State
}

func NewImporter(fetcher Fetcher, extractor userdict.Extractor, reporter Reporter, options Options) *Importer {
	if options.SectionLabel == "" {
		options.SectionLabel = userdict.DefaultSectionLabel
	}
	return &Importer{
		fetcher:   fetcher,
		extractor: extractor,
		reporter:  reporter,
		options:   options,
		state:     StateStart,
	}
}

// State returns the stage the last run reached.
func (imp *Importer) State() State {
	return imp.state
}

func (imp *Importer) transition(next State) {
	slog.Default().Debug("import state", "from", imp.state, "to", next)
	imp.state = next
}

func (imp *Importer) fail(err error) error {
	stage := imp.state
	imp.transition(StateFailed)
	return &StageError{State: stage, Err: err}
}

// Import fetches url and appends the entries found there.
// Nothing on disk is touched when the fetch fails.
func (imp *Importer) Import(ctx context.Context, url string) (*ImportResult, error) {
	imp.state = StateStart
	result := &ImportResult{
		DictionaryPath: imp.options.DictionaryPath,
		BackupPath:     imp.options.BackupPath,
	}

	imp.transition(StateFetching)
	body, err := imp.fetcher.Fetch(ctx, url)
	if err != nil {
		return result, imp.fail(err)
	}

	imp.transition(StateExtracting)
	extracted := imp.extractor.Extract(body)
	result.Malformed = extracted.Malformed
	slog.Default().Debug("extracted rows",
		"matched", extracted.Matched,
		"entries", len(extracted.Entries),
		"malformed", extracted.Malformed)

	imp.transition(StateBackingUp)
	created, err := userdict.EnsureBackup(imp.options.DictionaryPath, imp.options.BackupPath)
	if err != nil {
		return result, imp.fail(err)
	}
	result.BackupCreated = created
	if created {
		slog.Default().Info("created backup", "path", imp.options.BackupPath)
	}

	imp.transition(StateWriting)
	count, err := userdict.Append(imp.options.DictionaryPath, imp.options.SectionLabel, extracted.Entries)
	if err != nil {
		return result, imp.fail(err)
	}
	result.Imported = count

	imp.transition(StateReporting)
	imp.reporter.Report(extracted.Entries)
	imp.reporter.ReportMalformed(extracted.Malformed)

	imp.transition(StateDone)
	return result, nil
}
