package css

import "strings"

// Wrap breaks text into lines no wider than width, splitting at spaces. measure returns the drawn
// width of a line. Existing newlines are kept; a single word wider than width gets its own line.
func Wrap(text string, width float32, measure func(string) float32) string {
	if width <= 0 {
		return text
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if next := line + " " + w; measure(next) <= width {
				line = next
				continue
			}
			out = append(out, line)
			line = w
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
