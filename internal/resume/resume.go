// Package resume reads the candidate's resume as plain text.
package resume

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotFound = errors.New("resume file not found")
	ErrParse    = errors.New("resume could not be parsed")
)

// Source turns a resume file into text.
type Source interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

const parseTimeout = 30 * time.Second

// Reader extracts PDF resumes with the eino PDF parser and reads any other
// extension as plain text.
type Reader struct {
	parser *pdf.PDFParser
}

func NewReader(ctx context.Context) (*Reader, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false, // whole document as one text
	})
	if err != nil {
		return nil, fmt.Errorf("create pdf parser: %w", err)
	}
	return &Reader{parser: p}, nil
}

func (r *Reader) ExtractText(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: open %s: %v", ErrParse, path, err)
	}
	defer f.Close()

	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		data, err := io.ReadAll(f)
		if err != nil {
			return "", fmt.Errorf("%w: read %s: %v", ErrParse, path, err)
		}
		return string(data), nil
	}

	ctx, cancel := context.WithTimeout(ctx, parseTimeout)
	defer cancel()

	start := time.Now()
	docs, err := r.parser.Parse(ctx, f, einoParser.WithURI(path))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("%w: %s: no documents", ErrParse, path)
	}

	var sb strings.Builder
	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(doc.Content)
	}
	log.Info().Str("path", path).Int("chars", sb.Len()).Dur("took", time.Since(start)).Msg("📄 Resume parsed")
	return sb.String(), nil
}
