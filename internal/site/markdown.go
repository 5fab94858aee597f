package site

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/scholarpage/internal/content"
)

// newMarkdown returns the converter used when markdown paragraphs are
// enabled. Raw HTML is kept so existing inline links keep working.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// markdownInline converts one paragraph body and drops the <p> wrapper the
// builders add themselves.
func markdownInline(md goldmark.Markdown, src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}

func markdownLines(md goldmark.Markdown, lines []string) ([]string, error) {
	out := make([]string, len(lines))
	for i, l := range lines {
		converted, err := markdownInline(md, l)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}

func markdownLocaleLines(md goldmark.Markdown, ll content.LocaleLines, field string) (content.LocaleLines, error) {
	en, err := markdownLines(md, ll.EN)
	if err != nil {
		return content.LocaleLines{}, fmt.Errorf("converting %s.en: %w", field, err)
	}
	zh, err := markdownLines(md, ll.ZH)
	if err != nil {
		return content.LocaleLines{}, fmt.Errorf("converting %s.zh: %w", field, err)
	}
	return content.LocaleLines{EN: en, ZH: zh}, nil
}
