// Package batch walks a corpus tree, runs the discovery pipeline per file,
// and merges per-file results into a global aggregate. Files are processed
// strictly sequentially; the merge law (higher count wins per surface form)
// is the only cross-file coupling.
package batch

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/xinci/pkg/xinci"
	"github.com/cognicore/xinci/pkg/xinci/corpus"
	"github.com/cognicore/xinci/pkg/xinci/discover"
	"github.com/cognicore/xinci/pkg/xinci/export"
	"github.com/cognicore/xinci/pkg/xinci/store"
)

// DefaultOutputDir is the conventional name of the discovery output
// directory, created alongside the input.
const DefaultOutputDir = "discovered"

// fallbackSubject is the subject assigned to files sitting directly under
// the batch root.
const fallbackSubject = "general"

// SubjectStats tracks per-subdirectory discovery statistics.
type SubjectStats struct {
	Files int // files that yielded at least one term
	Terms int // terms discovered across those files
}

// Report summarizes one run.
type Report struct {
	RunID      string
	Root       string
	StartedAt  time.Time
	TotalFiles int // corpus files processed, including zero-discovery ones
	Aggregate  discover.Result
	Subjects   map[string]SubjectStats
}

// Runner owns the orchestration state for discovery runs.
type Runner struct {
	engine  *xinci.Engine
	outDir  string // output directory name, DefaultOutputDir if empty
	archive store.Store
	entropy io.Reader
	logf    func(format string, args ...any)
}

// Options configures a Runner.
type Options struct {
	Engine    *xinci.Engine
	OutputDir string      // directory name for outputs, default "discovered"
	Archive   store.Store // optional discovery archive
	// Logf receives progress and recoverable-error diagnostics;
	// defaults to log.Printf.
	Logf func(format string, args ...any)
}

// NewRunner creates a Runner.
func NewRunner(opts Options) *Runner {
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = DefaultOutputDir
	}
	logf := opts.Logf
	if logf == nil {
		logf = log.Printf
	}
	return &Runner{
		engine:  opts.Engine,
		outDir:  outDir,
		archive: opts.Archive,
		entropy: ulid.Monotonic(rand.Reader, 0),
		logf:    logf,
	}
}

func (r *Runner) newRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), r.entropy).String()
}

// ProcessFile runs single-file mode: extract one corpus file and write its
// outputs into the output directory alongside the input.
func (r *Runner) ProcessFile(ctx context.Context, path string) (Report, error) {
	report := Report{
		RunID:     r.newRunID(),
		Root:      path,
		StartedAt: time.Now(),
		Subjects:  make(map[string]SubjectStats),
	}

	result, err := r.engine.ExtractFile(path)
	if err != nil {
		// Extraction failure is per-file recoverable even when the run has
		// only one file: report zero discoveries instead of aborting.
		r.logf("skipping %s: %v", path, err)
	}
	report.TotalFiles = 1
	report.Aggregate = result

	if len(result.Candidates) == 0 {
		r.logf("no new terms in %s", path)
		return report, nil
	}

	outDir := filepath.Join(filepath.Dir(path), r.outDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return report, fmt.Errorf("create output dir %s: %w", outDir, err)
	}
	if err := r.writeFileOutputs(outDir, path, result); err != nil {
		return report, err
	}

	r.recordRun(ctx, report)
	return report, nil
}

// ProcessDir runs batch mode: recursively walk root, extract every
// recognized corpus file, write per-file outputs, and emit the merged
// aggregate. Per-file failures are logged and leave the batch running.
func (r *Runner) ProcessDir(ctx context.Context, root string) (Report, error) {
	report := Report{
		RunID:     r.newRunID(),
		Root:      root,
		StartedAt: time.Now(),
		Subjects:  make(map[string]SubjectStats),
	}

	outDir := filepath.Join(root, r.outDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return report, fmt.Errorf("create output dir %s: %w", outDir, err)
	}

	aggregate := make(map[string]discover.Candidate)
	rootBase := filepath.Base(root)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), ".") || d.Name() == r.outDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if corpus.DetectFormat(path) == corpus.FormatUnknown {
			return nil
		}

		report.TotalFiles++
		r.logf("processing %s", path)

		result, extractErr := r.engine.ExtractFile(path)
		if extractErr != nil {
			// Extraction failures reduce coverage, they do not abort the run.
			r.logf("skipping %s: %v", path, extractErr)
		}

		subject := filepath.Base(filepath.Dir(path))
		if subject == rootBase || subject == "." {
			subject = fallbackSubject
		}

		if len(result.Candidates) == 0 {
			// Processed with zero discoveries; keep the subject visible.
			if _, ok := report.Subjects[subject]; !ok {
				report.Subjects[subject] = SubjectStats{}
			}
			return nil
		}

		if writeErr := r.writeFileOutputs(outDir, path, result); writeErr != nil {
			// An unwritable per-file result is excluded from the aggregate.
			r.logf("output failed for %s: %v", path, writeErr)
			return nil
		}

		stats := report.Subjects[subject]
		stats.Files++
		stats.Terms += len(result.Candidates)
		report.Subjects[subject] = stats

		discover.Merge(aggregate, result.ByTerm())
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("walk %s: %w", root, err)
	}

	report.Aggregate = discover.Ranked(aggregate)

	jsonPath := filepath.Join(outDir, "all_discovered.json")
	txtPath := filepath.Join(outDir, "all_discovered.txt")
	if err := export.WriteFiles(report.Aggregate, jsonPath, txtPath); err != nil {
		return report, err
	}

	r.recordRun(ctx, report)
	return report, nil
}

// writeFileOutputs writes one file's lexicon JSON and ranked list into
// outDir, named after the input's base name.
func (r *Runner) writeFileOutputs(outDir, inputPath string, result discover.Result) error {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	jsonPath := filepath.Join(outDir, base+"_terms.json")
	txtPath := filepath.Join(outDir, base+"_terms.txt")
	return export.WriteFiles(result, jsonPath, txtPath)
}

// recordRun persists the run and its aggregate into the archive, when one
// is configured. Archive failures are diagnostics, not run failures.
func (r *Runner) recordRun(ctx context.Context, report Report) {
	if r.archive == nil {
		return
	}

	run := store.Run{
		ID:         report.RunID,
		Root:       report.Root,
		StartedAt:  report.StartedAt,
		Files:      report.TotalFiles,
		TermsFound: len(report.Aggregate.Candidates),
	}
	if err := r.archive.SaveRun(ctx, run); err != nil {
		r.logf("archive run failed: %v", err)
		return
	}

	terms := make([]store.Term, len(report.Aggregate.Candidates))
	for i, c := range report.Aggregate.Candidates {
		terms[i] = store.Term{
			Surface:  c.Term,
			Count:    c.Count,
			Cohesion: c.Cohesion,
			Freedom:  c.Freedom,
		}
	}
	if err := r.archive.AddTerms(ctx, report.RunID, terms); err != nil {
		r.logf("archive terms failed: %v", err)
	}
}

// Summary renders the human-readable end-of-run summary.
func (r Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s\n", r.RunID)
	fmt.Fprintf(&b, "total files: %d\n", r.TotalFiles)
	fmt.Fprintf(&b, "unique terms discovered: %d\n", len(r.Aggregate.Candidates))

	if len(r.Subjects) == 0 {
		return b.String()
	}

	b.WriteString("by subject:\n")
	subjects := make([]string, 0, len(r.Subjects))
	for s := range r.Subjects {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	for _, s := range subjects {
		stats := r.Subjects[s]
		fmt.Fprintf(&b, "- %s: %d files, %d terms\n", s, stats.Files, stats.Terms)
	}
	return b.String()
}
