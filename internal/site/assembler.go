package site

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/ziadkadry99/scholarpage/internal/content"
)

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// Assembler stitches the section fragments into the page skeleton.
type Assembler struct {
	// Now supplies the build time for the cache-busting token.
	Now func() time.Time

	// Markdown converts research paragraphs and experience bullets from
	// markdown before they are placed in the page.
	Markdown bool

	md goldmark.Markdown
}

// NewAssembler returns an Assembler using the wall clock.
func NewAssembler() *Assembler {
	return &Assembler{Now: time.Now}
}

// pageData holds the values interpolated into pageTemplate. Fragments built
// from content are trusted markup; values placed in attributes stay strings
// so the template escapes them.
type pageData struct {
	Title         string
	Description   string
	Keywords      string
	OGTitle       string
	OGDescription string
	PhotoAlt      string

	NameEN        template.HTML
	NameZH        template.HTML
	AffiliationEN template.HTML
	AffiliationZH template.HTML
	TaglineEN     template.HTML
	TaglineZH     template.HTML
	Email         template.HTML
	LastUpdated   template.HTML

	Stats              template.HTML
	Links              template.HTML
	Research           template.HTML
	Publications       template.HTML
	ResearchExperience template.HTML
	Honors             template.HTML
	Leadership         template.HTML

	PasswordHash string
	Version      string
}

// PasswordHash returns the hex SHA-256 digest of pw, or "" when pw is unset
// or empty. The digest is checked by the page script in the browser, so it
// only hides links from casual visitors. Anyone can read it from the page
// source and bypass or brute-force the prompt; it is not access control.
func PasswordHash(pw *string) string {
	if pw == nil || *pw == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(*pw))
	return hex.EncodeToString(sum[:])
}

// VersionToken is the cache-busting query value for the page's stylesheet
// and script. Second granularity is enough to beat stale caches.
func VersionToken(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

// Assemble renders the complete document for c. Content that fails
// validation produces an error and no output.
func (a *Assembler) Assemble(c *content.SiteContent) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	research := c.Research
	exps := c.ResearchExperience
	if a.Markdown {
		var err error
		if research, exps, err = a.convertMarkdown(c); err != nil {
			return "", err
		}
	}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	affilEN := c.Affiliation.EN
	nameEN, nameZH := c.Name.English(), c.Name.Chinese()
	first, last := affilEN[0], affilEN[len(affilEN)-1]

	data := pageData{
		Title:         fmt.Sprintf("%s | %s", nameEN, last),
		Description:   fmt.Sprintf("%s (%s) — %s, %s", nameEN, nameZH, first, last),
		Keywords:      fmt.Sprintf("%s, %s, %s, computer science, embodied intelligence, robotics", nameEN, nameZH, last),
		OGTitle:       fmt.Sprintf("%s | %s", nameEN, last),
		OGDescription: fmt.Sprintf("%s at %s", first, last),
		PhotoAlt:      nameEN,

		NameEN:        template.HTML(nameEN),
		NameZH:        template.HTML(nameZH),
		AffiliationEN: template.HTML(strings.Join(c.Affiliation.EN, "<br>")),
		AffiliationZH: template.HTML(strings.Join(c.Affiliation.ZH, "<br>")),
		TaglineEN:     template.HTML(c.Tagline.English()),
		TaglineZH:     template.HTML(c.Tagline.Chinese()),
		Email:         template.HTML(c.Email),
		LastUpdated:   template.HTML(Bilingual(c.LastUpdated)),

		Stats:              template.HTML(BuildStats(c.Stats)),
		Links:              template.HTML(BuildLinks(c.Links)),
		Research:           template.HTML(BuildResearch(research)),
		Publications:       template.HTML(BuildPublications(c.Publications)),
		ResearchExperience: template.HTML(BuildResearchExperience(exps)),
		Honors:             template.HTML(BuildHonors(c.Honors)),
		Leadership:         template.HTML(BuildLeadership(c.Leadership, c.SocialPractice)),

		PasswordHash: PasswordHash(c.Password),
		Version:      VersionToken(now()),
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}
	return buf.String(), nil
}

func (a *Assembler) convertMarkdown(c *content.SiteContent) (content.LocaleLines, []content.ResearchExperience, error) {
	if a.md == nil {
		a.md = newMarkdown()
	}
	research, err := markdownLocaleLines(a.md, c.Research, "research")
	if err != nil {
		return content.LocaleLines{}, nil, err
	}
	exps := make([]content.ResearchExperience, len(c.ResearchExperience))
	for i, e := range c.ResearchExperience {
		details, err := markdownLocaleLines(a.md, e.Details, fmt.Sprintf("research_experience[%d].details", i))
		if err != nil {
			return content.LocaleLines{}, nil, err
		}
		e.Details = details
		exps[i] = e
	}
	return research, exps, nil
}
