package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a scalar or an {en, zh} mapping.
func (b *BilingualText) UnmarshalYAML(n *yaml.Node) error {
	n = resolve(n)
	switch n.Kind {
	case yaml.ScalarNode:
		if isNull(n) {
			*b = Plain("")
			return nil
		}
		*b = Plain(n.Value)
		return nil
	case yaml.MappingNode:
		var pair struct {
			EN string `yaml:"en"`
			ZH string `yaml:"zh"`
		}
		if err := n.Decode(&pair); err != nil {
			return err
		}
		*b = Pair(pair.EN, pair.ZH)
		return nil
	default:
		return fmt.Errorf("line %d: expected text or an en/zh mapping", n.Line)
	}
}

// Load reads and validates the content file at path.
func Load(path string) (*SiteContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingInputError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		var malformed *MalformedInputError
		if errors.As(err, &malformed) {
			malformed.Path = path
		}
		return nil, err
	}
	return c, nil
}

// Parse decodes a content document. Every required key is checked before
// decoding so that a missing field is reported by its path instead of
// silently rendering as empty markup.
func Parse(data []byte) (*SiteContent, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedInputError{Err: err}
	}
	if len(doc.Content) == 0 {
		return nil, &MalformedInputError{Err: errors.New("document is empty")}
	}

	root := doc.Content[0]
	if err := checkFields(root, "", siteSchema); err != nil {
		var missing *MissingFieldError
		if errors.As(err, &missing) {
			return nil, err
		}
		return nil, &MalformedInputError{Err: err}
	}

	var c SiteContent
	if err := root.Decode(&c); err != nil {
		return nil, &MalformedInputError{Err: err}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants the page layout depends on beyond key
// presence: the head metadata indexes the first and last English
// affiliation lines, and every publication title links to its first link.
// The Chinese affiliation may be empty; it is only joined. Validate is also
// run by the assembler so content built in code gets the same guarantees as
// content read from disk.
func (c *SiteContent) Validate() error {
	if len(c.Affiliation.EN) == 0 {
		return &MissingFieldError{Field: "affiliation.en[0]"}
	}
	for i, p := range c.Publications {
		if len(p.Links) == 0 {
			return &MissingFieldError{Field: fmt.Sprintf("publications[%d].links[0]", i)}
		}
	}
	return nil
}
