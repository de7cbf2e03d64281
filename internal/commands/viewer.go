package commands

import (
	"flag"
	"fmt"
	"strings"

	"lathe-viewer/internal/engineconfig"
	"lathe-viewer/internal/feedback"
	"lathe-viewer/internal/model"
	"lathe-viewer/internal/scene"
	"lathe-viewer/internal/viewer"
)

// Logger receives command output.
type Logger interface {
	Infof(format string, args ...any)
}

// Session is what the viewer commands read and change. Prefs mirrors every change so that
// "cmd save" persists the current state.
type Session struct {
	Viewer    *viewer.Viewer
	Prefs     *engineconfig.ViewerPrefs
	PrefsPath string
	// Def is the definition on screen; export writes it.
	Def *model.Def
	Log Logger
	// SetGrid and SetFPS switch the floor grid and the FPS counter. Either may be nil.
	SetGrid func(on bool)
	SetFPS  func(on bool)
}

// RegisterViewer adds the viewer commands to r.
func RegisterViewer(r *Registry, s *Session) {
	r.Register("help", "list commands", func(fs *flag.FlagSet) func() error {
		return func() error {
			for _, line := range r.Help() {
				s.Log.Infof("%s", line)
			}
			return nil
		}
	})

	r.Register("feedback", "-mode tooltip|panel", func(fs *flag.FlagSet) func() error {
		mode := fs.String("mode", "", "tooltip or panel")
		return func() error {
			m, err := feedback.ParseMode(*mode)
			if err != nil {
				return err
			}
			s.Viewer.SetFeedback(m)
			s.Prefs.Feedback = m.String()
			s.Log.Infof("feedback: %s", m)
			return nil
		}
	})

	r.Register("spin", "[-on=true|false] [-rate rad/s]; no -on toggles", func(fs *flag.FlagSet) func() error {
		on := fs.Bool("on", true, "turn the lathe on")
		rate := fs.Float64("rate", 0, "spindle speed in rad/s")
		return func() error {
			set := visited(fs)
			if set["rate"] && *rate <= 0 {
				return fmt.Errorf("spin: rate must be positive, got %g", *rate)
			}
			spinning := !s.Viewer.Options().Spin
			if set["on"] {
				spinning = *on
			}
			s.Viewer.SetSpin(spinning, float32(*rate))
			opts := s.Viewer.Options()
			s.Prefs.Spin, s.Prefs.SpinRate = opts.Spin, opts.SpinRate
			s.Log.Infof("spin: %t at %.2f rad/s", opts.Spin, opts.SpinRate)
			return nil
		}
	})

	r.Register("grid", "[-on=true|false]; no -on toggles", toggle("grid", &s.Prefs.GridVisible, s.Log, func(on bool) {
		if s.SetGrid != nil {
			s.SetGrid(on)
		}
	}))

	r.Register("fps", "[-on=true|false]; no -on toggles", toggle("fps", &s.Prefs.ShowFPS, s.Log, func(on bool) {
		if s.SetFPS != nil {
			s.SetFPS(on)
		}
	}))

	r.Register("camera", "restore the start-up view", func(fs *flag.FlagSet) func() error {
		fs.Bool("reset", true, "restore the start-up view")
		return func() error {
			s.Viewer.ResetCamera()
			p := s.Viewer.Camera().Position
			s.Log.Infof("camera: %.1f, %.1f, %.1f", p.X(), p.Y(), p.Z())
			return nil
		}
	})

	r.Register("tab", "-id modelo|componentes|funcionamiento|seguridad", func(fs *flag.FlagSet) func() error {
		id := fs.String("id", "", "tab id")
		return func() error {
			bar := s.Viewer.Tabs()
			tid, err := bar.ParseID(*id)
			if err != nil {
				return err
			}
			if _, err := bar.Select(tid); err != nil {
				return err
			}
			s.Log.Infof("tab: %s", bar.Active().Title)
			return nil
		}
	})

	r.Register("parts", "[label]: list the named parts, or show where one part sits", func(fs *flag.FlagSet) func() error {
		return func() error {
			t := s.Viewer.Tree()
			if fs.NArg() > 0 {
				label := strings.Join(fs.Args(), " ")
				id := t.Find(label)
				if id == scene.None {
					return fmt.Errorf("parts: no part named %q", label)
				}
				s.Log.Infof("%s", strings.Join(t.Path(id), " » "))
				return nil
			}
			n := 0
			for i, end := 0, t.Len(); i < end; i++ {
				id := scene.NodeID(i)
				if t.Label(id) == "" {
					continue
				}
				n++
				s.Log.Infof("  %s", strings.Join(t.Path(id), " » "))
			}
			s.Log.Infof("parts: %d", n)
			return nil
		}
	})

	r.Register("revision", "-n 1..4", func(fs *flag.FlagSet) func() error {
		n := fs.Int("n", int(model.Latest), "lathe revision")
		return func() error {
			rev := model.Revision(*n)
			if rev != rev.Clamp() {
				return fmt.Errorf("revision: %d out of range 1..%d", *n, model.Latest)
			}
			*s.Def = model.Lathe(rev)
			s.Viewer.SetTree(model.BuildLathe(rev))
			s.Prefs.Revision = int(rev)
			s.Prefs.ModelFile = ""
			s.Log.Infof("revision: %s", rev)
			return nil
		}
	})

	r.Register("export", "-path file.yaml", func(fs *flag.FlagSet) func() error {
		path := fs.String("path", "lathe.yaml", "output YAML file")
		return func() error {
			if err := model.SaveFile(*path, *s.Def); err != nil {
				return err
			}
			s.Log.Infof("export: %s", *path)
			return nil
		}
	})

	r.Register("save", "write preferences to the config file", func(fs *flag.FlagSet) func() error {
		return func() error {
			if err := engineconfig.Save(s.PrefsPath, *s.Prefs); err != nil {
				return err
			}
			s.Log.Infof("save: %s", s.PrefsPath)
			return nil
		}
	})
}

// toggle builds an on/off command backed by pref. Without -on the value flips.
func toggle(name string, pref *bool, log Logger, apply func(bool)) Setup {
	return func(fs *flag.FlagSet) func() error {
		on := fs.Bool("on", true, "enable "+name)
		return func() error {
			next := !*pref
			if visited(fs)["on"] {
				next = *on
			}
			*pref = next
			apply(next)
			log.Infof("%s: %t", name, next)
			return nil
		}
	}
}
