package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Reader turns a claim document into raw text. PDF parsing is delegated to
// MuPDF via go-fitz; plain-text documents are read as-is.
type Reader struct{}

// NewReader creates a new document reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadText extracts the full text of the document at path. The file
// extension decides the parser: .pdf goes through MuPDF, everything else is
// treated as UTF-8 text.
func (r *Reader) ReadText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return r.readPDF(path)
	default:
		return r.readTXT(path)
	}
}

// readPDF extracts text from every page and concatenates it in page order.
func (r *Reader) readPDF(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read PDF: %w", err)
	}

	doc, err := fitz.NewFromMemory(raw)
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for page := 0; page < doc.NumPage(); page++ {
		text, err := doc.Text(page)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", page+1, err)
		}
		b.WriteString(text)
	}

	return b.String(), nil
}

func (r *Reader) readTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read TXT: %w", err)
	}
	return string(data), nil
}

// ListDocuments returns the processable documents in dir: all *.pdf followed
// by all *.txt, each group sorted by name. Other files are ignored.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var pdfs, txts []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf":
			pdfs = append(pdfs, path)
		case ".txt":
			txts = append(txts, path)
		}
	}

	sort.Strings(pdfs)
	sort.Strings(txts)

	return append(pdfs, txts...), nil
}
