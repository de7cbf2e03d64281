package main

import (
	"lathe-viewer/internal/engineconfig"
	"lathe-viewer/internal/logger"
	"lathe-viewer/internal/model"
	"lathe-viewer/internal/scene"
)

// loadModel returns the definition and tree to show: the YAML file named in prefs when it loads
// cleanly, otherwise the built-in lathe at the configured revision.
func loadModel(prefs engineconfig.ViewerPrefs, log *logger.Logger) (model.Def, *scene.Tree) {
	if prefs.ModelFile != "" {
		def, err := model.LoadFile(prefs.ModelFile)
		if err == nil {
			var tree *scene.Tree
			if tree, err = model.Build(def); err == nil {
				log.Infof("model: %s from %s", def.Name, prefs.ModelFile)
				return def, tree
			}
		}
		log.Errorf("model: %v; using the built-in lathe", err)
	}
	rev := model.Revision(prefs.Revision)
	if rev != rev.Clamp() {
		log.Warnf("model: revision %d out of range, using %s", prefs.Revision, rev.Clamp())
		rev = rev.Clamp()
	}
	return model.Lathe(rev), model.BuildLathe(rev)
}
