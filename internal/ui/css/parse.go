// Package css parses the small CSS subset used to style the viewer's HUD: .class, #id and bare
// type selectors (optionally comma-separated) with blocks of "key: value;" declarations.
package css

import (
	"fmt"
	"strings"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".panel", "#menu" or "label"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Parse parses a primitive CSS file. No combinators and no @rules; blocks with unsupported
// selectors are skipped. "a, b { ... }" becomes one rule per selector. An unterminated block is
// an error.
func Parse(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{Rules: nil}
	content = stripComments(content)
	for {
		rules, rest, err := parseOneBlock(content)
		if err != nil {
			return sheet, err
		}
		if rules == nil && rest == "" {
			break
		}
		sheet.Rules = append(sheet.Rules, rules...)
		content = rest
	}
	return sheet, nil
}

// MustParse is Parse for embedded stylesheets known to be valid.
func MustParse(content string) *Stylesheet {
	s, err := Parse(content)
	if err != nil {
		panic(err)
	}
	return s
}

func stripComments(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			j := i + 2
			for j+1 < len(s) && !(s[j] == '*' && s[j+1] == '/') {
				j++
			}
			if j+1 < len(s) {
				j += 2
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// parseOneBlock finds the next "selectors { ... }" and returns its rules and the rest of the
// string. Both results are empty when no block is left.
func parseOneBlock(s string) ([]Rule, string, error) {
	open := strings.Index(s, "{")
	if open == -1 {
		if strings.TrimSpace(s) != "" && strings.Contains(s, "}") {
			return nil, "", fmt.Errorf("css: unexpected '}'")
		}
		return nil, "", nil
	}
	close := findMatchingBrace(s, open)
	if close == -1 {
		return nil, "", fmt.Errorf("css: unterminated block after %q", strings.TrimSpace(s[:open]))
	}
	rest := strings.TrimSpace(s[close+1:])
	props := parseDeclarations(strings.TrimSpace(s[open+1 : close]))
	rules := []Rule{}
	for _, sel := range strings.Split(s[:open], ",") {
		sel = strings.TrimSpace(sel)
		if !validSelector(sel) {
			continue
		}
		rules = append(rules, Rule{Selector: sel, Props: props})
	}
	return rules, rest, nil
}

func validSelector(sel string) bool {
	if sel == "" || strings.ContainsAny(sel, " >+~:[") {
		return false
	}
	if sel[0] == '.' || sel[0] == '#' {
		return len(sel) >= 2
	}
	return true
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colon := strings.Index(part, ":")
		if colon == -1 {
			continue
		}
		k := strings.ToLower(strings.TrimSpace(part[:colon]))
		v := strings.TrimSpace(part[colon+1:])
		if k != "" {
			props[k] = v
		}
	}
	return props
}

// Match returns the merged properties of every rule matching a node of the given type, class and
// id. Type rules apply first, then class, then id; within each, later rules win.
func (s *Stylesheet) Match(typ, class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	apply := func(pred func(sel string) bool) {
		for _, rule := range s.Rules {
			if pred(rule.Selector) {
				for k, v := range rule.Props {
					merged[k] = v
				}
			}
		}
	}
	apply(func(sel string) bool { return typ != "" && sel == typ })
	apply(func(sel string) bool { return class != "" && sel == "."+class })
	apply(func(sel string) bool { return id != "" && sel == "#"+id })
	return merged
}

// Merge returns a stylesheet with s's rules followed by o's, so o wins on conflicts.
func (s *Stylesheet) Merge(o *Stylesheet) *Stylesheet {
	out := &Stylesheet{}
	if s != nil {
		out.Rules = append(out.Rules, s.Rules...)
	}
	if o != nil {
		out.Rules = append(out.Rules, o.Rules...)
	}
	return out
}
