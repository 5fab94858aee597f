package site

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/scholarpage/internal/content"
)

const secretDigest = "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b"

func frozenClock(sec int64) func() time.Time {
	return func() time.Time { return time.Unix(sec, 0) }
}

func sampleContent() *content.SiteContent {
	return &content.SiteContent{
		Name:        content.Pair("Jane Doe", "简"),
		Affiliation: content.LocaleLines{EN: []string{"B.Eng. Student", "Example University"}, ZH: []string{"本科生", "示例大学"}},
		Tagline:     content.Pair("Robots.", "机器人。"),
		Stats: []content.StatItem{
			{Value: "3.9", Unit: strPtr("/4.0"), Label: content.Pair("GPA", "GPA")},
		},
		Email:    "jane@example.edu",
		Password: strPtr("secret"),
		Links: []content.LinkItem{
			{Icon: content.IconEmail, URL: "mailto:jane@example.edu", Label: content.Plain("Email")},
			{Icon: content.IconCV, URL: "assets/CV.pdf", Label: content.Pair("CV", "简历"), Protected: boolPtr(true)},
		},
		Research: content.LocaleLines{EN: []string{"I study robots."}, ZH: []string{"我研究机器人。"}},
		Publications: []content.Publication{{
			Title: "A Paper", Authors: "<b>Jane Doe</b>", Venue: "Conf 2025", Thumbnail: "assets/p.png",
			Links: []content.PubLink{{Label: "arXiv", URL: "https://arxiv.org/abs/1"}},
		}},
		Honors:         []content.HonorItem{{Name: content.Plain("Award"), Note: content.Plain("Top"), Year: "2024"}},
		Leadership:     []content.LeadershipItem{{Role: content.Pair("Lead", "负责人"), Date: "2023", Desc: content.Pair("Led.", "领导。")}},
		SocialPractice: content.Pair("Volunteered.", "志愿。"),
		LastUpdated:    content.Pair("Last updated: 2025", "最后更新：2025"),
	}
}

func TestPasswordHash(t *testing.T) {
	tests := []struct {
		name string
		pw   *string
		want string
	}{
		{"absent", nil, ""},
		{"empty", strPtr(""), ""},
		{"secret", strPtr("secret"), secretDigest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PasswordHash(tt.pw); got != tt.want {
				t.Errorf("PasswordHash = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionToken(t *testing.T) {
	if got := VersionToken(time.Unix(1700000000, 0)); got != "1700000000" {
		t.Errorf("VersionToken = %q", got)
	}
}

func TestAssembleEndToEnd(t *testing.T) {
	a := NewAssembler()
	a.Now = frozenClock(1700000000)

	doc, err := a.Assemble(sampleContent())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Error("document should start with the doctype")
	}
	if !strings.Contains(doc, `lang-en">Jane Doe<`) {
		t.Error("english name missing")
	}
	if c := strings.Count(doc, `class="stat"`); c != 1 {
		t.Errorf("stat entries = %d, want 1", c)
	}
	if strings.Contains(doc, "stat-divider") {
		t.Error("a single stat must have no divider")
	}
	if !strings.Contains(doc, `window.__pwHash="`+secretDigest+`"`) {
		t.Error("password digest missing")
	}
	if strings.Contains(doc, "secret") {
		t.Error("plaintext password leaked into the page")
	}
	if !strings.Contains(doc, "style.css?v=1700000000") || !strings.Contains(doc, "main.js?v=1700000000") {
		t.Error("cache-busting token missing")
	}
	if !strings.Contains(doc, "<title>Jane Doe | Example University</title>") {
		t.Error("title should combine name and last affiliation line")
	}
	if !strings.Contains(doc, "B.Eng. Student<br>Example University") {
		t.Error("affiliation lines should be joined with <br>")
	}
	if !strings.Contains(doc, "<b>Jane Doe</b>") {
		t.Error("inline markup in authors should pass through")
	}
}

func TestAssembleNoPassword(t *testing.T) {
	for _, pw := range []*string{nil, strPtr("")} {
		c := sampleContent()
		c.Password = pw
		a := &Assembler{Now: frozenClock(1)}
		doc, err := a.Assemble(c)
		if err != nil {
			t.Fatalf("Assemble: %v", err)
		}
		if !strings.Contains(doc, `window.__pwHash="";`) {
			t.Error("unset password should produce an empty token")
		}
	}
}

func TestAssembleDeterministic(t *testing.T) {
	a := &Assembler{Now: frozenClock(1700000000)}
	first, err := a.Assemble(sampleContent())
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Assemble(sampleContent())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("same content and clock should give identical output")
	}

	b := &Assembler{Now: frozenClock(1800000000)}
	later, err := b.Assemble(sampleContent())
	if err != nil {
		t.Fatal(err)
	}
	if later == first {
		t.Fatal("different build time should change the version token")
	}
	if strings.ReplaceAll(later, "1800000000", "1700000000") != first {
		t.Error("output should differ only in the version token")
	}
}

func TestAssembleEmptySections(t *testing.T) {
	c := sampleContent()
	c.Stats = nil
	c.Links = nil
	c.Publications = nil
	c.ResearchExperience = nil
	c.Honors = nil
	c.Leadership = nil

	doc, err := (&Assembler{Now: frozenClock(1)}).Assemble(c)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	for _, container := range []string{`class="hero-stats"`, `class="icon-row"`, `id="publications"`, `id="resexp"`, `id="honors"`, `id="experience"`} {
		if !strings.Contains(doc, container) {
			t.Errorf("container %s should always be emitted", container)
		}
	}
	if !strings.Contains(doc, "Volunteered.") {
		t.Error("social practice should render without leadership items")
	}
}

func TestAssembleEscapesAttributes(t *testing.T) {
	c := sampleContent()
	c.Name = content.Pair(`Jane "JD" Doe`, "简")
	doc, err := (&Assembler{Now: frozenClock(1)}).Assemble(c)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(doc, `alt="Jane "JD" Doe"`) {
		t.Error("attribute values must be escaped")
	}
}

func TestAssembleInvalid(t *testing.T) {
	c := sampleContent()
	c.Affiliation.EN = nil

	doc, err := (&Assembler{Now: frozenClock(1)}).Assemble(c)
	if doc != "" {
		t.Error("no output expected on error")
	}
	var mf *content.MissingFieldError
	if !errors.As(err, &mf) {
		t.Fatalf("error = %v, want MissingFieldError", err)
	}
	if mf.Field != "affiliation.en[0]" {
		t.Errorf("field = %q", mf.Field)
	}

	c = sampleContent()
	c.Publications[0].Links = nil
	if _, err := (&Assembler{Now: frozenClock(1)}).Assemble(c); !errors.As(err, &mf) {
		t.Fatalf("publication without links: error = %v", err)
	}
}

func TestAssembleEmptyChineseAffiliation(t *testing.T) {
	c := sampleContent()
	c.Affiliation.ZH = nil
	doc, err := (&Assembler{Now: frozenClock(1)}).Assemble(c)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if !strings.Contains(doc, `<p class="hero-affiliation lang-zh"></p>`) {
		t.Error("empty zh affiliation should render an empty line")
	}
}

func TestAssembleMarkdown(t *testing.T) {
	c := sampleContent()
	c.Research = content.LocaleLines{EN: []string{"I like **robots** and ~~bugs~~."}, ZH: []string{"*机器人*"}}
	c.ResearchExperience = []content.ResearchExperience{{
		Role:    content.Plain("RA"),
		Org:     content.Organization{Name: "Lab", URL: "https://lab.example", Affiliation: content.Plain("Dept")},
		Advisor: content.Plain("Prof"),
		Date:    "2024",
		Details: content.LocaleLines{EN: []string{"Wrote `code`"}, ZH: []string{"写了代码"}},
	}}

	plain, err := (&Assembler{Now: frozenClock(1)}).Assemble(c)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(plain, "**robots**") {
		t.Error("markdown should be left alone when disabled")
	}

	doc, err := (&Assembler{Now: frozenClock(1), Markdown: true}).Assemble(c)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<p>I like <strong>robots</strong> and <del>bugs</del>.</p>",
		"<p><em>机器人</em></p>",
		"<li>Wrote <code>code</code></li>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q", want)
		}
	}
	if c.Research.EN[0] != "I like **robots** and ~~bugs~~." {
		t.Error("content must not be mutated")
	}
}

func TestMarkdownInlineKeepsHTML(t *testing.T) {
	md := newMarkdown()
	got, err := markdownInline(md, `See <a href="https://x.example">this</a>.`)
	if err != nil {
		t.Fatal(err)
	}
	if got != `See <a href="https://x.example">this</a>.` {
		t.Errorf("markdownInline = %q", got)
	}
}
