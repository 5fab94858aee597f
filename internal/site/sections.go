package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/ziadkadry99/scholarpage/internal/content"
)

// altTextLimit caps the publication title copied into the thumbnail's alt
// attribute.
const altTextLimit = 20

// indent returns the leading whitespace for the given nesting depth of the
// page skeleton.
func indent(depth int) string {
	return strings.Repeat("    ", depth)
}

// BuildStats renders the hero stat row with a divider between entries.
func BuildStats(stats []content.StatItem) string {
	var parts []string
	for i, s := range stats {
		if i > 0 {
			parts = append(parts, indent(6)+`<div class="stat-divider"></div>`)
		}
		unit := ""
		if s.Unit != nil && *s.Unit != "" {
			unit = fmt.Sprintf(`<span class="stat-unit">%s</span>`, *s.Unit)
		}
		parts = append(parts, fmt.Sprintf(
			"%s<div class=\"stat\">\n"+
				"%s<span class=\"stat-value\">%s%s</span>\n"+
				"%s<span class=\"stat-label\">%s</span>\n"+
				"%s</div>",
			indent(6),
			indent(7), s.Value, unit,
			indent(7), Bilingual(s.Label),
			indent(6)))
	}
	return strings.Join(parts, "\n")
}

// BuildLinks renders the hero icon row.
func BuildLinks(links []content.LinkItem) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		target := ""
		if !strings.HasPrefix(l.URL, "mailto:") {
			target = ` target="_blank" rel="noopener"`
		}
		protected := ""
		if l.IsProtected() {
			protected = " data-protected"
		}
		title := ""
		if l.Title != nil {
			title = *l.Title
		}
		parts = append(parts, fmt.Sprintf(
			"%s<a href=\"%s\"%s%s title=\"%s\">\n"+
				"%s%s\n"+
				"%s<span>%s</span>\n"+
				"%s</a>",
			indent(6), l.URL, target, protected, title,
			indent(7), iconSVG(l.Icon),
			indent(7), Bilingual(l.Label),
			indent(6)))
	}
	return strings.Join(parts, "\n")
}

// BuildResearch renders the research statement, one block per locale.
func BuildResearch(research content.LocaleLines) string {
	return fmt.Sprintf(
		"%s<div class=\"research-content %s\">\n"+
			"%s%s\n"+
			"%s</div>\n"+
			"%s<div class=\"research-content %s\">\n"+
			"%s%s\n"+
			"%s</div>",
		indent(3), classEN,
		indent(4), wrapEach("p", research.EN, indent(4)),
		indent(3),
		indent(3), classZH,
		indent(4), wrapEach("p", research.ZH, indent(4)),
		indent(3))
}

// BuildPublications renders the publication list. Every item carries both
// the thumbnail and a hidden placeholder that the client reveals when the
// image fails to load.
func BuildPublications(pubs []content.Publication) string {
	items := make([]string, 0, len(pubs))
	for _, p := range pubs {
		linkRow := make([]string, 0, len(p.Links))
		for _, l := range p.Links {
			linkRow = append(linkRow, fmt.Sprintf(`<a href="%s" class="pub-link" target="_blank" rel="noopener">%s</a>`, l.URL, l.Label))
		}
		titleURL := ""
		if len(p.Links) > 0 {
			titleURL = p.Links[0].URL
		}
		equal := ""
		if p.EqualContribution != nil && *p.EqualContribution != "" {
			equal = fmt.Sprintf("\n%s<p class=\"pub-equal\">%s</p>", indent(6), *p.EqualContribution)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s<div class=\"pub-item\">\n", indent(4))
		fmt.Fprintf(&b, "%s<div class=\"pub-thumb\">\n", indent(5))
		fmt.Fprintf(&b, "%s<img src=\"%s\" alt=\"%s\" onerror=\"this.style.display='none'; this.parentElement.classList.add('thumb-placeholder-active');\">\n",
			indent(6), p.Thumbnail, html.EscapeString(truncateRunes(p.Title, altTextLimit)))
		fmt.Fprintf(&b, "%s<div class=\"thumb-placeholder\">\n", indent(6))
		fmt.Fprintf(&b, "%s<svg viewBox=\"0 0 160 100\" xmlns=\"http://www.w3.org/2000/svg\">\n", indent(7))
		fmt.Fprintf(&b, "%s<rect width=\"160\" height=\"100\" fill=\"#e9ecef\" rx=\"4\"/>\n", indent(8))
		fmt.Fprintf(&b, "%s<text x=\"80\" y=\"50\" text-anchor=\"middle\" dominant-baseline=\"middle\" fill=\"#adb5bd\" font-size=\"12\" font-family=\"Inter, sans-serif\">Paper</text>\n", indent(8))
		fmt.Fprintf(&b, "%s</svg>\n", indent(7))
		fmt.Fprintf(&b, "%s</div>\n", indent(6))
		fmt.Fprintf(&b, "%s</div>\n", indent(5))
		fmt.Fprintf(&b, "%s<div class=\"pub-details\">\n", indent(5))
		fmt.Fprintf(&b, "%s<h3 class=\"pub-title\">\n", indent(6))
		fmt.Fprintf(&b, "%s<a href=\"%s\" target=\"_blank\" rel=\"noopener\">%s</a>\n", indent(7), titleURL, p.Title)
		fmt.Fprintf(&b, "%s</h3>\n", indent(6))
		fmt.Fprintf(&b, "%s<p class=\"pub-authors\">%s</p>%s\n", indent(6), p.Authors, equal)
		fmt.Fprintf(&b, "%s<p class=\"pub-venue\">%s</p>\n", indent(6), p.Venue)
		fmt.Fprintf(&b, "%s<div class=\"pub-links\">\n", indent(6))
		fmt.Fprintf(&b, "%s%s\n", indent(7), strings.Join(linkRow, "\n"+indent(7)))
		fmt.Fprintf(&b, "%s</div>\n", indent(6))
		fmt.Fprintf(&b, "%s</div>\n", indent(5))
		fmt.Fprintf(&b, "%s</div>", indent(4))
		items = append(items, b.String())
	}
	return strings.Join(items, "\n")
}

// BuildResearchExperience renders research positions. Both detail lists are
// always emitted so switching locale never needs a re-render.
func BuildResearchExperience(exps []content.ResearchExperience) string {
	items := make([]string, 0, len(exps))
	for _, e := range exps {
		var b strings.Builder
		fmt.Fprintf(&b, "%s<div class=\"resexp-item\">\n", indent(4))
		fmt.Fprintf(&b, "%s<div class=\"resexp-header\">\n", indent(5))
		fmt.Fprintf(&b, "%s<div>\n", indent(6))
		fmt.Fprintf(&b, "%s<h3 class=\"resexp-role\">%s</h3>\n", indent(7), Bilingual(e.Role))
		fmt.Fprintf(&b, "%s<p class=\"resexp-org\"><a href=\"%s\" target=\"_blank\" rel=\"noopener\">%s</a>, %s</p>\n",
			indent(7), e.Org.URL, e.Org.Name, Bilingual(e.Org.Affiliation))
		fmt.Fprintf(&b, "%s<p class=\"resexp-advisor\">%s</p>\n", indent(7), Bilingual(e.Advisor))
		fmt.Fprintf(&b, "%s</div>\n", indent(6))
		fmt.Fprintf(&b, "%s<span class=\"resexp-date\">%s</span>\n", indent(6), e.Date)
		fmt.Fprintf(&b, "%s</div>\n", indent(5))
		fmt.Fprintf(&b, "%s<ul class=\"resexp-details %s\">\n", indent(5), classEN)
		fmt.Fprintf(&b, "%s%s\n", indent(6), wrapEach("li", e.Details.EN, indent(6)))
		fmt.Fprintf(&b, "%s</ul>\n", indent(5))
		fmt.Fprintf(&b, "%s<ul class=\"resexp-details %s\">\n", indent(5), classZH)
		fmt.Fprintf(&b, "%s%s\n", indent(6), wrapEach("li", e.Details.ZH, indent(6)))
		fmt.Fprintf(&b, "%s</ul>\n", indent(5))
		fmt.Fprintf(&b, "%s</div>", indent(4))
		items = append(items, b.String())
	}
	return strings.Join(items, "\n")
}

// BuildHonors renders one list entry per honor.
func BuildHonors(honors []content.HonorItem) string {
	items := make([]string, 0, len(honors))
	for _, h := range honors {
		items = append(items, fmt.Sprintf(
			"%s<li>\n"+
				"%s<span class=\"honor-name\">%s</span>\n"+
				"%s<span class=\"honor-note\">%s</span>\n"+
				"%s<span class=\"honor-year\">%s</span>\n"+
				"%s</li>",
			indent(4),
			indent(5), Bilingual(h.Name),
			indent(5), Bilingual(h.Note),
			indent(5), h.Year,
			indent(4)))
	}
	return strings.Join(items, "\n")
}

// BuildLeadership renders the leadership roles as one category followed by
// the fixed social practice category. The social practice record is never
// part of the leadership list.
func BuildLeadership(leaders []content.LeadershipItem, socialPractice content.BilingualText) string {
	items := make([]string, 0, len(leaders))
	for _, l := range leaders {
		items = append(items, fmt.Sprintf(
			"%s<div class=\"exp-item\">\n"+
				"%s<div class=\"exp-header\">\n"+
				"%s<span class=\"exp-role\">%s</span>\n"+
				"%s<span class=\"exp-date\">%s</span>\n"+
				"%s</div>\n"+
				"%s%s\n"+
				"%s</div>",
			indent(4),
			indent(5),
			indent(6), Bilingual(l.Role),
			indent(6), l.Date,
			indent(5),
			indent(5), BilingualBlock("p", "exp-desc", l.Desc),
			indent(4)))
	}

	return fmt.Sprintf(
		"%s<div class=\"exp-category\">\n"+
			"%s\n"+
			"%s</div>\n\n"+
			"%s<div class=\"exp-category\">\n"+
			"%s<h3 class=\"exp-heading\"><span class=\"%s\">Social Practice</span><span class=\"%s\">社会实践</span></h3>\n"+
			"%s<div class=\"exp-item\">\n"+
			"%s%s\n"+
			"%s</div>\n"+
			"%s</div>",
		indent(3),
		strings.Join(items, "\n"),
		indent(3),
		indent(3),
		indent(4), classEN, classZH,
		indent(4),
		indent(5), BilingualBlock("p", "exp-desc", socialPractice),
		indent(4),
		indent(3))
}

// wrapEach wraps every entry in <tag> and joins them with a newline plus sep.
func wrapEach(tag string, entries []string, sep string) string {
	wrapped := make([]string, len(entries))
	for i, e := range entries {
		wrapped[i] = fmt.Sprintf("<%s>%s</%s>", tag, e, tag)
	}
	return strings.Join(wrapped, "\n"+sep)
}

// truncateRunes returns at most n characters of s.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
