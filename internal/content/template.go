package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Placeholder values in the skeleton that the init wizard can fill in.
const (
	PlaceholderName   = "Your Name"
	PlaceholderNameZH = "你的中文名"
	PlaceholderEmail  = "your@email.edu"
)

// skeleton is a blank content document covering the full schema.
const skeleton = `# ============================================================
# Profile content. Edit this file, then run: scholarpage build
# ============================================================

# -- Personal info --
name:
  en: "Your Name"
  zh: "你的中文名"

affiliation:
  en:
    - "Year & Degree"           # e.g. "3rd Year Undergraduate"
    - "Department"              # e.g. "Department of Computer Science"
    - "University"              # e.g. "Tsinghua University"
  zh:
    - "年级与学位"
    - "院系"
    - "大学"

tagline:
  en: "One-sentence research description. HTML links allowed."
  zh: "一句话研究简介，支持HTML链接。"

# -- Headline numbers (unit is optional) --
stats:
  - value: "0.00"
    unit: "/4.0"
    label: { en: "GPA", zh: "GPA" }
  - value: "Top X%"
    unit: " (rank/total)"
    label: { en: "Rank", zh: "排名" }

# -- Contact --
email: "your@email.edu"

# Links marked "protected: true" ask for this password in the browser.
# Only a SHA-256 digest is published, and the check runs client-side, so
# treat it as a deterrent, not access control. Leave empty to disable.
password: ""

links:
  # icons: email, github, cv, transcript, wechat
  - icon: "email"
    url: "mailto:your@email.edu"
    label: "Email"
  - icon: "github"
    url: "https://github.com/yourusername"
    label: "GitHub"
  - icon: "cv"
    url: "assets/CV.pdf"
    label: "CV"
    protected: true
  - icon: "transcript"
    url: "assets/Transcript.pdf"
    label: { en: "Transcript", zh: "成绩单" }
    protected: true
  - icon: "wechat"
    url: "assets/wechat-qr.jpg"
    label: { en: "WeChat", zh: "微信" }
    protected: true

# -- Research statement, one entry per paragraph (HTML allowed) --
research:
  en:
    - "Paragraph 1: your research vision."
    - "Paragraph 2: current work."
    - "Paragraph 3: future direction."
  zh:
    - "段落1：研究愿景。"
    - "段落2：当前工作。"
    - "段落3：未来方向。"

# -- Publications (English only). The first link is the title link. --
publications:
  - title: "Paper Title"
    authors: "Author1*, Author2*, <strong>Your Name</strong>, Advisor"
    equal_contribution: "* Equal Contribution"   # optional
    venue: "Conference/Journal, Year"
    thumbnail: "assets/paper-thumb.jpg"
    links:
      - label: "arXiv"
        url: "https://arxiv.org/abs/XXXX.XXXXX"
      - label: "Project Page"
        url: "https://project-url.github.io/"
      - label: "Code"
        url: "https://github.com/org/repo"

# -- Research experience --
research_experience:
  - role: { en: "Student Researcher", zh: "本科生研究员" }
    org:
      name: "Lab Name"
      url: "https://lab-url.edu/"
      affiliation: { en: "Department, University", zh: "院系，大学" }
    advisor:
      en: "Advised by <a href=\"\" >Prof. Name</a>"
      zh: "导师：<a href=\"\" >某教授</a>"
    date: "20XX – Present"
    details:
      en:
        - "What you explored or built."
        - "Another contribution."
      zh:
        - "你探索或构建了什么。"
        - "另一项贡献。"

# -- Honors & awards --
honors:
  - name: { en: "Award Name", zh: "奖项名称" }
    note: { en: "Context for international readers", zh: "中文备注" }
    year: "20XX"

# -- Leadership & service --
leadership:
  - role: { en: "Role, Organization", zh: "职务，组织" }
    date: "20XX – 20XX"
    desc: { en: "What you did.", zh: "你做了什么。" }

social_practice:
  en: "Summary of social practice activities."
  zh: "社会实践活动总结。"

# -- Footer --
last_updated: { en: "Last updated: Month Year", zh: "最后更新：XXXX年X月" }
`

// TemplateOptions personalizes the skeleton. Empty values keep the
// placeholder.
type TemplateOptions struct {
	Name   string
	NameZH string
	Email  string
}

// Template returns the blank content document.
func Template() string {
	return skeleton
}

// TemplateWith returns the skeleton with the given personal details filled in.
func TemplateWith(opts TemplateOptions) string {
	var pairs []string
	if opts.Name != "" {
		pairs = append(pairs, PlaceholderName, opts.Name)
	}
	if opts.NameZH != "" {
		pairs = append(pairs, PlaceholderNameZH, opts.NameZH)
	}
	if opts.Email != "" {
		pairs = append(pairs, PlaceholderEmail, opts.Email)
	}
	if len(pairs) == 0 {
		return skeleton
	}
	return strings.NewReplacer(pairs...).Replace(skeleton)
}

// WriteTemplate writes doc to path. An existing file is left untouched
// unless overwrite is set.
func WriteTemplate(path, doc string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := atomic.WriteFile(path, strings.NewReader(doc)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
