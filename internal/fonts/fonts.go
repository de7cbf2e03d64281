package fonts

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Extensions we consider as font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd).
// The second entry covers running the binary from cmd/lathe.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. Only .ttf and .otf are included. A missing dir yields no paths.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(p) {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// FindFont searches BaseDirs for a font whose path matches search. See FindFontIn.
func FindFont(search string) (relPath string, fullPath string, err error) {
	return FindFontIn(BaseDirs(), search)
}

// FindFontIn searches dirs for a font file whose path matches the search term.
// search can be a name like "Inter", "Noto Sans", or a partial path like "Inter-Regular".
// An empty search matches any font. Returns the relative path (e.g. "Inter/Inter-Regular.ttf")
// and the first full path that exists, or os.ErrNotExist if none match.
// When multiple files match, prefers one whose path contains "Regular" (e.g. Inter-Regular.ttf).
func FindFontIn(dirs []string, search string) (relPath string, fullPath string, err error) {
	norm := normalizeForMatch(strings.TrimSpace(search))
	var candidates []struct{ rel, full string }
	for _, base := range dirs {
		list, walkErr := ScanDir(base)
		if walkErr != nil || len(list) == 0 {
			continue
		}
		for _, rel := range list {
			if !strings.Contains(normalizeForMatch(rel), norm) {
				continue
			}
			full := path.Join(filepath.ToSlash(base), rel)
			if _, err := os.Stat(full); err == nil {
				candidates = append(candidates, struct{ rel, full string }{rel, full})
			}
		}
	}
	if len(candidates) == 0 {
		return "", "", os.ErrNotExist
	}
	// Prefer path containing "regular" when multiple match
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.rel), "regular") {
			return c.rel, c.full, nil
		}
	}
	return candidates[0].rel, candidates[0].full, nil
}
