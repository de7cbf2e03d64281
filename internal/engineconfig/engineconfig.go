package engineconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ViewerConfigPath is the path to the viewer config file, relative to the process working directory.
const ViewerConfigPath = "config/viewer.json"

// Environment variables that override the config file (loaded after .env).
const (
	EnvFeedback = "LATHE_FEEDBACK"
	EnvRevision = "LATHE_REVISION"
	EnvSpin     = "LATHE_SPIN"
	EnvDebug    = "LATHE_DEBUG"
)

// ViewerPrefs holds viewer preferences (feedback style, lathe revision, overlays). Persisted across runs.
type ViewerPrefs struct {
	Feedback    string  `json:"feedback"`
	Revision    int     `json:"revision"`
	Spin        bool    `json:"spin"`
	SpinRate    float32 `json:"spin_rate"`
	ShowFPS     bool    `json:"show_fps"`
	GridVisible bool    `json:"grid_visible"`
	Debug       bool    `json:"debug,omitempty"`
	Font        string  `json:"font,omitempty"`
	// ModelFile is an optional YAML part definition used instead of the built-in lathe.
	ModelFile string `json:"model_file,omitempty"`
}

// Default returns default viewer preferences (tooltip, latest revision at rest, grid on).
func Default() ViewerPrefs {
	return ViewerPrefs{
		Feedback:    "tooltip",
		Revision:    4,
		Spin:        false,
		SpinRate:    2,
		ShowFPS:     false,
		GridVisible: true,
	}
}

// Load reads viewer preferences from path. If the file is missing, returns Default() and does not
// create a file. Invalid JSON also returns Default(), together with the parse error so the caller
// can report it. Keys absent from the file keep their default values.
func Load(path string) (ViewerPrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// Save writes viewer preferences to path, creating the config directory if needed.
func Save(path string, p ViewerPrefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides p from LATHE_* environment variables. Unset variables are ignored; malformed
// values are skipped and reported together in the returned error.
func ApplyEnv(p ViewerPrefs) (ViewerPrefs, error) {
	var bad []string
	if v, ok := os.LookupEnv(EnvFeedback); ok {
		p.Feedback = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvRevision); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			p.Revision = n
		} else {
			bad = append(bad, EnvRevision+"="+v)
		}
	}
	if v, ok := os.LookupEnv(EnvSpin); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			p.Spin = b
		} else {
			bad = append(bad, EnvSpin+"="+v)
		}
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			p.Debug = b
		} else {
			bad = append(bad, EnvDebug+"="+v)
		}
	}
	if len(bad) > 0 {
		return p, fmt.Errorf("engineconfig: ignored invalid %s", strings.Join(bad, ", "))
	}
	return p, nil
}
