// Package configpaths resolves the candidate configuration file locations
// searched at startup.
package configpaths

import (
	"os"
	"path/filepath"
)

const appDir = "padrelay"

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDir), nil
}

// ConfigCandidatePaths returns config file candidates per format, lowest
// priority first. An explicitly provided path wins over the defaults.
func ConfigCandidatePaths(userConfig string) (jsonPaths, yamlPaths, tomlPaths []string) {
	var dirs []string
	if d, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, d)
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	for _, dir := range dirs {
		jsonPaths = append(jsonPaths, filepath.Join(dir, "padrelay.json"))
		yamlPaths = append(yamlPaths,
			filepath.Join(dir, "padrelay.yaml"),
			filepath.Join(dir, "padrelay.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, "padrelay.toml"))
	}

	if userConfig != "" {
		switch filepath.Ext(userConfig) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userConfig)
		case ".toml":
			tomlPaths = append(tomlPaths, userConfig)
		default:
			jsonPaths = append(jsonPaths, userConfig)
		}
	}
	return jsonPaths, yamlPaths, tomlPaths
}
