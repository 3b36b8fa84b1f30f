// Package corpus extracts plain UTF-8 text from source files. Plain text,
// PDF and zipped-HTML e-book archives are supported; new formats slot in as
// additional cases of Load. Extraction failures are reported as errors so
// callers can treat a failed file as empty and keep going.
package corpus

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
)

// Format identifies a supported source file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatPlainText
	FormatPDF
	FormatEpub
)

// DetectFormat maps a file path to its format by extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FormatPlainText
	case ".pdf":
		return FormatPDF
	case ".epub":
		return FormatEpub
	default:
		return FormatUnknown
	}
}

// Load returns the extracted plain text of the file at path. Unknown
// formats yield empty text and no error; format-specific failures are
// returned as errors and should be treated as empty content by batch
// callers.
func Load(path string) (string, error) {
	switch DetectFormat(path) {
	case FormatPlainText:
		return loadPlainText(path)
	case FormatPDF:
		return loadPDF(path)
	case FormatEpub:
		return loadEpub(path)
	default:
		return "", nil
	}
}

func loadPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	// Invalid bytes are dropped rather than failing the file.
	return strings.ToValidUTF8(string(data), ""), nil
}

func loadPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("extract pdf text %s: %w", path, err)
	}
	return buf.String(), nil
}

// loadEpub treats the archive as a zip of HTML-family members and
// concatenates their tag-stripped text in archive-listing order.
func loadEpub(path string) (string, error) {
	z, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open epub %s: %w", path, err)
	}
	defer z.Close()

	var parts []string
	for _, member := range z.File {
		if !isHTMLMember(member.Name) {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			return "", fmt.Errorf("open epub member %s: %w", member.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read epub member %s: %w", member.Name, err)
		}
		markup := strings.ToValidUTF8(string(data), "")
		parts = append(parts, stripHTML(markup))
	}
	return strings.Join(parts, "\n"), nil
}

func isHTMLMember(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".html") ||
		strings.HasSuffix(lower, ".xhtml") ||
		strings.HasSuffix(lower, ".htm")
}

// stripHTML collects the text nodes of an HTML document.
func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to the raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
