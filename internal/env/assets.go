package env

import "os"

// AssetBaseDirs returns the directories searched for assets, relative to the working directory.
// The second entry covers running the binary from cmd/lathe.
func AssetBaseDirs() []string {
	return []string{"assets", "../../assets"}
}

// AssetsWarning is shown when the viewer runs outside the project tree.
const AssetsWarning = "No se encontró la carpeta assets: ejecute el visor desde la raíz del proyecto (go run ./cmd/lathe)."

// CheckAssets returns the first of dirs that exists as a directory, or ok=false when none does.
// The result is advisory: the viewer starts either way, with built-in fonts and styles.
func CheckAssets(dirs []string) (dir string, ok bool) {
	for _, d := range dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			return d, true
		}
	}
	return "", false
}
