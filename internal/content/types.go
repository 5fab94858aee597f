package content

// BilingualText is either a plain scalar shared by both locales or a pair of
// English and Chinese renderings.
type BilingualText struct {
	EN string
	ZH string

	// Plain holds the scalar form. It is only meaningful when IsPair is false.
	Plain string

	pair bool
}

// Pair builds a two-locale value.
func Pair(en, zh string) BilingualText {
	return BilingualText{EN: en, ZH: zh, pair: true}
}

// Plain builds a locale-invariant value.
func Plain(s string) BilingualText {
	return BilingualText{Plain: s}
}

// IsPair reports whether the value carries separate en/zh renderings.
func (b BilingualText) IsPair() bool { return b.pair }

// English returns the English rendering, or the scalar for plain values.
func (b BilingualText) English() string {
	if b.pair {
		return b.EN
	}
	return b.Plain
}

// Chinese returns the Chinese rendering, or the scalar for plain values.
func (b BilingualText) Chinese() string {
	if b.pair {
		return b.ZH
	}
	return b.Plain
}

// LocaleLines is a per-locale ordered list of strings (affiliation lines,
// research paragraphs, experience bullets).
type LocaleLines struct {
	EN []string `yaml:"en"`
	ZH []string `yaml:"zh"`
}

// StatItem is one headline number in the hero block, e.g. a GPA.
type StatItem struct {
	Value string        `yaml:"value"`
	Unit  *string       `yaml:"unit"`
	Label BilingualText `yaml:"label"`
}

// Known link icon names.
const (
	IconEmail      = "email"
	IconGitHub     = "github"
	IconCV         = "cv"
	IconTranscript = "transcript"
	IconWeChat     = "wechat"
)

// LinkItem is a contact or document link in the hero icon row.
type LinkItem struct {
	Icon      string        `yaml:"icon"`
	URL       string        `yaml:"url"`
	Label     BilingualText `yaml:"label"`
	Title     *string       `yaml:"title"`
	Protected *bool         `yaml:"protected"`
}

// IsProtected reports whether the link is flagged for the client-side
// password prompt.
func (l LinkItem) IsProtected() bool {
	return l.Protected != nil && *l.Protected
}

// PubLink is one labelled link under a publication.
type PubLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Publication is a paper entry. Links[0] is the title's target.
type Publication struct {
	Title             string    `yaml:"title"`
	Authors           string    `yaml:"authors"`
	Venue             string    `yaml:"venue"`
	Thumbnail         string    `yaml:"thumbnail"`
	EqualContribution *string   `yaml:"equal_contribution"`
	Links             []PubLink `yaml:"links"`
}

// Organization is the lab or group a research position was held at.
type Organization struct {
	Name        string        `yaml:"name"`
	URL         string        `yaml:"url"`
	Affiliation BilingualText `yaml:"affiliation"`
}

// ResearchExperience is one research position.
type ResearchExperience struct {
	Role    BilingualText `yaml:"role"`
	Org     Organization  `yaml:"org"`
	Advisor BilingualText `yaml:"advisor"`
	Date    string        `yaml:"date"`
	Details LocaleLines   `yaml:"details"`
}

// HonorItem is an award line.
type HonorItem struct {
	Name BilingualText `yaml:"name"`
	Note BilingualText `yaml:"note"`
	Year string        `yaml:"year"`
}

// LeadershipItem is a leadership or service role.
type LeadershipItem struct {
	Role BilingualText `yaml:"role"`
	Date string        `yaml:"date"`
	Desc BilingualText `yaml:"desc"`
}

// SiteContent is the root of content.yaml and the full input of the page
// assembler. It is read once and never mutated.
type SiteContent struct {
	Name               BilingualText        `yaml:"name"`
	Affiliation        LocaleLines          `yaml:"affiliation"`
	Tagline            BilingualText        `yaml:"tagline"`
	Stats              []StatItem           `yaml:"stats"`
	Email              string               `yaml:"email"`
	Password           *string              `yaml:"password"`
	Links              []LinkItem           `yaml:"links"`
	Research           LocaleLines          `yaml:"research"`
	Publications       []Publication        `yaml:"publications"`
	ResearchExperience []ResearchExperience `yaml:"research_experience"`
	Honors             []HonorItem          `yaml:"honors"`
	Leadership         []LeadershipItem     `yaml:"leadership"`
	SocialPractice     BilingualText        `yaml:"social_practice"`
	LastUpdated        BilingualText        `yaml:"last_updated"`
}
