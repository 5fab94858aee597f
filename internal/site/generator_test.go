package site

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/scholarpage/internal/content"
)

func writeContent(t *testing.T, dir, doc string) string {
	t.Helper()
	path := filepath.Join(dir, "content.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	contentPath := writeContent(t, dir, content.TemplateWith(content.TemplateOptions{
		Name: "Jane Doe", NameZH: "简", Email: "jane@example.edu",
	}))
	outPath := filepath.Join(dir, "public", "index.html")

	gen := NewGenerator(contentPath, outPath)
	gen.Assembler.Now = frozenClock(1700000000)

	n, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if n != len(data) {
		t.Errorf("Generate reported %d bytes, file has %d", n, len(data))
	}
	page := string(data)
	if !strings.Contains(page, `lang-en">Jane Doe<`) {
		t.Error("generated page should carry the name")
	}
	if !strings.Contains(page, "jane@example.edu") {
		t.Error("generated page should carry the email")
	}
	if !strings.Contains(page, "?v=1700000000") {
		t.Error("version token missing")
	}
}

func TestGenerateMissingInput(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "index.html")

	_, err := NewGenerator(filepath.Join(dir, "content.yaml"), outPath).Generate()
	var missing *content.MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingInputError", err)
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("no output should be written")
	}
}

func TestGenerateKeepsPreviousOutputOnError(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "index.html")
	if err := os.WriteFile(outPath, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "name: [unclosed"},
		{"missing field", "name:\n  en: A\n  zh: B\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentPath := writeContent(t, dir, tt.doc)
			if _, err := NewGenerator(contentPath, outPath).Generate(); err == nil {
				t.Fatal("expected error")
			}
			data, err := os.ReadFile(outPath)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != "previous" {
				t.Errorf("output changed to %q", data)
			}
		})
	}
}

func TestGenerateMarkdown(t *testing.T) {
	dir := t.TempDir()
	doc := strings.Replace(content.Template(), "your research vision.", "your **research** vision.", 1)
	contentPath := writeContent(t, dir, doc)
	outPath := filepath.Join(dir, "index.html")

	gen := NewGenerator(contentPath, outPath)
	gen.Assembler.Markdown = true
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "**research**") {
		t.Error("markdown should have been converted")
	}
	if !strings.Contains(string(data), "your <strong>research</strong> vision.") {
		t.Error("converted markup missing")
	}
}
