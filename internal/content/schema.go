package content

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type fieldKind int

const (
	kindScalar    fieldKind = iota
	kindBilingual           // scalar or {en, zh}
	kindPair                // {en, zh} only
	kindLines               // {en: [..], zh: [..]}
	kindMapping
	kindList
)

// field describes one key of the content tree. Children apply to mappings
// and to every item of a list.
type field struct {
	key      string
	kind     fieldKind
	optional bool
	minItems int
	children []field
}

var siteSchema = []field{
	{key: "name", kind: kindPair},
	{key: "affiliation", kind: kindLines},
	{key: "tagline", kind: kindPair},
	{key: "stats", kind: kindList, children: []field{
		{key: "value"},
		{key: "unit", optional: true},
		{key: "label", kind: kindBilingual},
	}},
	{key: "email"},
	{key: "password", optional: true},
	{key: "links", kind: kindList, children: []field{
		{key: "icon"},
		{key: "url"},
		{key: "label", kind: kindBilingual},
		{key: "title", optional: true},
		{key: "protected", optional: true},
	}},
	{key: "research", kind: kindLines},
	{key: "publications", kind: kindList, children: []field{
		{key: "title"},
		{key: "authors"},
		{key: "venue"},
		{key: "thumbnail"},
		{key: "equal_contribution", optional: true},
		{key: "links", kind: kindList, minItems: 1, children: []field{
			{key: "label"},
			{key: "url"},
		}},
	}},
	{key: "research_experience", kind: kindList, children: []field{
		{key: "role", kind: kindBilingual},
		{key: "org", kind: kindMapping, children: []field{
			{key: "name"},
			{key: "url"},
			{key: "affiliation", kind: kindBilingual},
		}},
		{key: "advisor", kind: kindBilingual},
		{key: "date"},
		{key: "details", kind: kindLines},
	}},
	{key: "honors", kind: kindList, children: []field{
		{key: "name", kind: kindBilingual},
		{key: "note", kind: kindBilingual},
		{key: "year"},
	}},
	{key: "leadership", kind: kindList, children: []field{
		{key: "role", kind: kindBilingual},
		{key: "date"},
		{key: "desc", kind: kindPair},
	}},
	{key: "social_practice", kind: kindPair},
	{key: "last_updated", kind: kindBilingual},
}

// checkFields walks a mapping node and reports the first required key that
// is missing. Shape mismatches come back as plain errors.
func checkFields(n *yaml.Node, path string, fields []field) error {
	n = resolve(n)
	if isNull(n) {
		for _, f := range fields {
			if !f.optional {
				return &MissingFieldError{Field: joinPath(path, f.key), Line: n.Line}
			}
		}
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: expected a mapping (line %d)", displayPath(path), n.Line)
	}
	for _, f := range fields {
		child := lookup(n, f.key)
		p := joinPath(path, f.key)
		if child == nil {
			if f.optional {
				continue
			}
			return &MissingFieldError{Field: p, Line: n.Line}
		}
		if err := checkValue(child, p, f); err != nil {
			return err
		}
	}
	return nil
}

func checkValue(n *yaml.Node, path string, f field) error {
	n = resolve(n)
	switch f.kind {
	case kindScalar:
		if n.Kind != yaml.ScalarNode {
			return fmt.Errorf("%s: expected a scalar (line %d)", path, n.Line)
		}
	case kindBilingual:
		if n.Kind == yaml.ScalarNode {
			return nil
		}
		return checkFields(n, path, localeFields(kindScalar))
	case kindPair:
		return checkFields(n, path, localeFields(kindScalar))
	case kindLines:
		return checkFields(n, path, localeFields(kindList))
	case kindMapping:
		return checkFields(n, path, f.children)
	case kindList:
		if isNull(n) {
			if f.minItems > 0 {
				return &MissingFieldError{Field: fmt.Sprintf("%s[0]", path), Line: n.Line}
			}
			return nil
		}
		if n.Kind != yaml.SequenceNode {
			return fmt.Errorf("%s: expected a list (line %d)", path, n.Line)
		}
		if len(n.Content) < f.minItems {
			return &MissingFieldError{Field: fmt.Sprintf("%s[%d]", path, len(n.Content)), Line: n.Line}
		}
		if len(f.children) == 0 {
			return nil
		}
		for i, item := range n.Content {
			if err := checkFields(item, fmt.Sprintf("%s[%d]", path, i), f.children); err != nil {
				return err
			}
		}
	}
	return nil
}

func localeFields(kind fieldKind) []field {
	return []field{{key: "en", kind: kind}, {key: "zh", kind: kind}}
}

// maxMergeDepth bounds merge key chains, which may refer back to the
// mapping that contains them.
const maxMergeDepth = 16

// lookup returns the value for key in mapping n. Keys written in n win over
// keys brought in through "<<" merge entries, which are searched in order.
func lookup(n *yaml.Node, key string) *yaml.Node {
	return lookupDepth(resolve(n), key, 0)
}

func lookupDepth(n *yaml.Node, key string, depth int) *yaml.Node {
	if n.Kind != yaml.MappingNode || depth > maxMergeDepth {
		return nil
	}
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if isMergeKey(k) {
			merges = append(merges, resolve(n.Content[i+1]))
			continue
		}
		if k.Value == key {
			return n.Content[i+1]
		}
	}
	for _, m := range merges {
		sources := []*yaml.Node{m}
		if m.Kind == yaml.SequenceNode {
			sources = m.Content
		}
		for _, src := range sources {
			if v := lookupDepth(resolve(src), key, depth+1); v != nil {
				return v
			}
		}
	}
	return nil
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.Value == "<<" && k.ShortTag() == "!!merge"
}

// resolve follows alias nodes to the anchored node they refer to.
func resolve(n *yaml.Node) *yaml.Node {
	for i := 0; n != nil && n.Kind == yaml.AliasNode && n.Alias != nil && i <= maxMergeDepth; i++ {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func displayPath(path string) string {
	if path == "" {
		return "document root"
	}
	return path
}
