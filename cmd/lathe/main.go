package main

import (
	"os"
	"path/filepath"

	"lathe-viewer/internal/commands"
	"lathe-viewer/internal/debug"
	"lathe-viewer/internal/engineconfig"
	"lathe-viewer/internal/env"
	"lathe-viewer/internal/feedback"
	"lathe-viewer/internal/fonts"
	"lathe-viewer/internal/graphics"
	"lathe-viewer/internal/logger"
	"lathe-viewer/internal/render"
	"lathe-viewer/internal/tabs"
	"lathe-viewer/internal/terminal"
	"lathe-viewer/internal/ui"
	"lathe-viewer/internal/viewer"
)

func main() {
	log := logger.New(logger.LogFilePath)
	if err := env.Load(".env"); err != nil {
		log.Warnf(".env: %v", err)
	}
	prefs, err := engineconfig.Load(engineconfig.ViewerConfigPath)
	if err != nil {
		log.Warnf("config: %v; using defaults", err)
	}
	if prefs, err = engineconfig.ApplyEnv(prefs); err != nil {
		log.Warnf("config: %v", err)
	}
	log.SetDebug(prefs.Debug)

	mode, err := feedback.ParseMode(prefs.Feedback)
	if err != nil {
		log.Warnf("config: %v", err)
	}
	def, tree := loadModel(prefs, log)

	opts := viewer.DefaultOptions()
	opts.Feedback = mode
	opts.Spin = prefs.Spin
	if prefs.SpinRate > 0 {
		opts.SpinRate = prefs.SpinRate
	}
	v := viewer.New(tree, tabs.Default(), graphics.DefaultWidth, graphics.DefaultHeight, opts, log)
	log.Infof("viewer: %s, %d named parts", def.Name, len(tree.Labels()))

	assets, ok := env.CheckAssets(env.AssetBaseDirs())
	banner := ""
	if !ok {
		banner = env.AssetsWarning
		log.Warnf("assets: not found in %v", env.AssetBaseDirs())
	}

	renderer := render.New()
	renderer.GridVisible = prefs.GridVisible
	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.ShowHit = prefs.Debug

	reg := commands.NewRegistry()
	commands.RegisterViewer(reg, &commands.Session{
		Viewer:    v,
		Prefs:     &prefs,
		PrefsPath: engineconfig.ViewerConfigPath,
		Def:       &def,
		Log:       log,
		SetGrid:   func(on bool) { renderer.GridVisible = on },
		SetFPS:    dbg.SetShowFPS,
	})
	term := terminal.New(log, reg)
	engine := ui.New()
	hud := ui.NewHUD(engine, banner)
	var input graphics.Input

	// GPU resources need the window, so fonts and styles load on the first frame.
	started := false
	start := func() {
		if ok {
			css := filepath.Join(assets, "ui", "viewer.css")
			if _, err := os.Stat(css); err == nil {
				if err := engine.LoadCSS(css); err != nil {
					log.Warnf("ui: %s: %v", css, err)
				}
			}
		}
		if _, full, err := fonts.FindFont(prefs.Font); err == nil {
			if err := engine.LoadFont(full); err != nil {
				log.Warnf("ui: font %s: %v", full, err)
			}
		} else {
			log.Debugf("ui: %v; using the default font", err)
		}
		term.SetFont(engine.Font())
		dbg.SetFont(engine.Font())
	}

	update := func() {
		if !started {
			start()
			started = true
		}
		term.Update()
		if !term.IsOpen() && graphics.KeyPressed(graphics.KeyReset) {
			v.ResetCamera()
		}
		hud.LayoutTabs(v.Tabs())
		frame := input.Poll(term.IsOpen())
		v.Step(frame)
		dbg.SetHit(v.Hit(), v.Camera(), frame.Width, frame.Height)
	}
	draw := func() {
		if v.Tabs().ShowsModel() {
			renderer.Draw(v.Tree(), v.Camera(), v.Hit().Part)
		}
		hud.Draw(v.Tabs(), v.Feedback(), partInfo(v))
		dbg.Draw()
		term.Draw()
	}
	unload := func() {
		renderer.Unload()
		engine.Unload()
	}
	graphics.Run(update, draw, unload)
}

// partInfo describes the hovered part for the info panel.
func partInfo(v *viewer.Viewer) ui.PartInfo {
	h := v.Hit()
	if !h.Named() {
		return ui.PartInfo{}
	}
	return ui.PartInfo{Label: h.Label, Path: v.Tree().Path(h.Part)}
}
