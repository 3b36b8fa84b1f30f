// Command xinci discovers previously-unknown multi-character terms in raw
// text corpora. It takes one positional argument, a corpus file or a
// directory tree, and writes discovered terms in the shared lexicon schema
// plus a flat ranked list.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/xinci/pkg/xinci"
	"github.com/cognicore/xinci/pkg/xinci/batch"
	"github.com/cognicore/xinci/pkg/xinci/config"
	"github.com/cognicore/xinci/pkg/xinci/knownwords"
	"github.com/cognicore/xinci/pkg/xinci/store"
	"github.com/cognicore/xinci/pkg/xinci/store/sqlite"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <file-or-directory>\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "  single file: extract terms from one corpus file")
	fmt.Fprintln(os.Stderr, "  directory:   batch-extract recursively with per-subject summary")
	flag.PrintDefaults()
}

func main() {
	var (
		configPath  = flag.String("config", "", "YAML threshold config (optional)")
		dictRoot    = flag.String("dicts", ".", "Root directory of known-term lexicon sources")
		outDirName  = flag.String("out", batch.DefaultOutputDir, "Output directory name")
		archivePath = flag.String("archive", "", "SQLite discovery archive (optional)")
		minCount    = flag.Int("min-count", 0, "Override min_count")
		minPMI      = flag.Float64("min-pmi", 0, "Override min_pmi")
		minEntropy  = flag.Float64("min-entropy", 0, "Override min_entropy")
		maxWordLen  = flag.Int("max-word-len", 0, "Override max_word_len")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	target := flag.Arg(0)

	info, err := os.Stat(target)
	if err != nil {
		log.Fatalf("path does not exist: %v", err)
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal("failed to load config: ", err)
		}
	}
	if *minCount > 0 {
		cfg.MinCount = *minCount
	}
	if *minPMI > 0 {
		cfg.MinPMI = *minPMI
	}
	if *minEntropy > 0 {
		cfg.MinEntropy = *minEntropy
	}
	if *maxWordLen > 0 {
		cfg.MaxWordLen = *maxWordLen
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	known, loadReport, err := knownwords.Load(*dictRoot)
	if err != nil {
		log.Fatal("failed to load known terms: ", err)
	}
	log.Printf("loaded %d known terms from %d lexicon sources (%d skipped)",
		known.Len(), len(loadReport.Files), loadReport.SkippedCount())
	for _, f := range loadReport.Files {
		if f.Skipped {
			log.Printf("skipped lexicon source %s: %s", f.Path, f.Reason)
		}
	}

	ctx := context.Background()

	var archive store.Store
	if *archivePath != "" {
		archive, err = sqlite.Open(ctx, *archivePath)
		if err != nil {
			log.Fatal("failed to open archive: ", err)
		}
		defer archive.Close()
	}

	engine := xinci.New(xinci.Options{Config: cfg, Known: known})
	runner := batch.NewRunner(batch.Options{
		Engine:    engine,
		OutputDir: *outDirName,
		Archive:   archive,
	})

	var report batch.Report
	if info.IsDir() {
		report, err = runner.ProcessDir(ctx, target)
	} else {
		report, err = runner.ProcessFile(ctx, target)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(report.Summary())
}
