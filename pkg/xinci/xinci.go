// Package xinci is the facade of the statistical new-term discovery engine.
// It wires corpus extraction, n-gram statistics, scoring and filtering into
// a per-file pipeline; batch orchestration lives in pkg/xinci/batch.
package xinci

import (
	"fmt"

	"github.com/cognicore/xinci/pkg/xinci/config"
	"github.com/cognicore/xinci/pkg/xinci/corpus"
	"github.com/cognicore/xinci/pkg/xinci/discover"
	"github.com/cognicore/xinci/pkg/xinci/knownwords"
	"github.com/cognicore/xinci/pkg/xinci/ngram"
)

// Engine runs the discovery pipeline over single corpus files. The known
// set and configuration are read-only for the engine's lifetime, so one
// Engine may serve any number of files, sequentially or not.
type Engine struct {
	cfg   config.Config
	known *knownwords.Set
}

// Options configures an Engine.
type Options struct {
	Config config.Config
	Known  *knownwords.Set
}

// New creates an Engine. A nil known set behaves as empty.
func New(opts Options) *Engine {
	known := opts.Known
	if known == nil {
		known = knownwords.NewSet()
	}
	return &Engine{cfg: opts.Config, known: known}
}

// Config returns the engine's thresholds.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// ExtractText runs the pipeline over already-extracted text.
func (e *Engine) ExtractText(text string) discover.Result {
	sentences := corpus.Sentences(text)
	if len(sentences) == 0 {
		return discover.Result{}
	}
	table := ngram.Build(sentences, e.cfg.MaxWordLen)
	return discover.Extract(table, e.known, e.cfg)
}

// ExtractFile loads one corpus file and runs the pipeline over it. An
// extraction failure is returned as an error together with an empty result,
// so batch callers can record the file as processed with zero discoveries.
func (e *Engine) ExtractFile(path string) (discover.Result, error) {
	text, err := corpus.Load(path)
	if err != nil {
		return discover.Result{}, fmt.Errorf("extract %s: %w", path, err)
	}
	return e.ExtractText(text), nil
}
