package xinci

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cognicore/xinci/pkg/xinci/config"
	"github.com/cognicore/xinci/pkg/xinci/knownwords"
)

// quantumCorpus gives 量子 four occurrences with varied neighbors on both
// sides, so it clears a relaxed cohesion floor and the default entropy
// floor while every other multi-gram stays below the count floor.
const quantumCorpus = "我们研究量子计算。他们应用量子通信。大家学习量子物理。探索量子世界"

func relaxedConfig() config.Config {
	return config.Config{MinCount: 3, MinPMI: 2.0, MinEntropy: 0.8, MaxWordLen: 4}
}

func TestExtractTextFindsRepeatedTerm(t *testing.T) {
	engine := New(Options{Config: relaxedConfig()})

	result := engine.ExtractText(quantumCorpus)
	if len(result.Candidates) != 1 || result.Candidates[0].Term != "量子" {
		t.Fatalf("ExtractText = %+v, want exactly 量子", result.Candidates)
	}

	c := result.Candidates[0]
	if c.Count != 4 {
		t.Errorf("count = %d, want 4", c.Count)
	}
	if c.Cohesion < 2.0 {
		t.Errorf("cohesion = %f, want >= 2.0", c.Cohesion)
	}
	if c.Freedom < 0.8 {
		t.Errorf("freedom = %f, want >= 0.8", c.Freedom)
	}
}

func TestExtractTextRespectsKnownSet(t *testing.T) {
	engine := New(Options{
		Config: relaxedConfig(),
		Known:  knownwords.NewSet("量子"),
	})

	result := engine.ExtractText(quantumCorpus)
	if len(result.Candidates) != 0 {
		t.Errorf("known term rediscovered: %+v", result.Candidates)
	}
}

func TestExtractTextNoIdeographs(t *testing.T) {
	engine := New(Options{Config: relaxedConfig()})

	result := engine.ExtractText("plain english text, no CJK at all")
	if len(result.Candidates) != 0 {
		t.Errorf("non-CJK text produced candidates: %+v", result.Candidates)
	}
}

func TestExtractFileIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte(quantumCorpus), 0o644); err != nil {
		t.Fatal(err)
	}

	engine := New(Options{Config: relaxedConfig()})
	first, err := engine.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	second, err := engine.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the same file produced different results")
	}
}

func TestExtractFileUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte(quantumCorpus), 0o644); err != nil {
		t.Fatal(err)
	}

	engine := New(Options{Config: relaxedConfig()})
	result, err := engine.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if len(result.Candidates) != 0 {
		t.Errorf("unknown format should yield no text, got %+v", result.Candidates)
	}
}

func TestExtractFileExtractionFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	engine := New(Options{Config: relaxedConfig()})
	result, err := engine.ExtractFile(path)
	if err == nil {
		t.Fatal("ExtractFile accepted a malformed PDF")
	}
	if len(result.Candidates) != 0 {
		t.Errorf("failed extraction carries candidates: %+v", result.Candidates)
	}
}
