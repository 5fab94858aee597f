package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/ziadkadry99/scholarpage/internal/content"
)

// Generator turns a content file into the page on disk.
type Generator struct {
	ContentPath string
	OutputPath  string
	Assembler   *Assembler
}

// NewGenerator creates a Generator for the given input and output paths.
func NewGenerator(contentPath, outputPath string) *Generator {
	return &Generator{
		ContentPath: contentPath,
		OutputPath:  outputPath,
		Assembler:   NewAssembler(),
	}
}

// Generate loads the content, renders the page and replaces the output file
// in one step. Returns the number of bytes written. On any error the
// previous output file is left as it was.
func (g *Generator) Generate() (int, error) {
	log := zap.S()

	c, err := content.Load(g.ContentPath)
	if err != nil {
		return 0, err
	}
	log.Debugw("content loaded",
		"path", g.ContentPath,
		"publications", len(c.Publications),
		"experience", len(c.ResearchExperience),
		"honors", len(c.Honors),
		"leadership", len(c.Leadership),
	)

	doc, err := g.Assembler.Assemble(c)
	if err != nil {
		return 0, fmt.Errorf("assembling page: %w", err)
	}

	if dir := filepath.Dir(g.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := atomic.WriteFile(g.OutputPath, strings.NewReader(doc)); err != nil {
		return 0, fmt.Errorf("writing %s: %w", g.OutputPath, err)
	}
	log.Debugw("page written", "path", g.OutputPath, "bytes", len(doc))
	return len(doc), nil
}
