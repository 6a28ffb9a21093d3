// Package iofs bootstraps the filesystem locations pupdb relies on:
// config, cache and log directories, plus the default config file.
package iofs

import (
	"os"

	"github.com/privacyui/pupdb/pkg/config"
	"gopkg.in/yaml.v3"
)

// EnsureDirs creates the config, cache and log directories if they
// do not exist yet.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes a default config.yaml, generated from the
// default Config, unless one already exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	out, err := yaml.Marshal(config.New())
	if err != nil {
		return WriteFileError(configPath, err)
	}

	if err := os.WriteFile(configPath, out, 0644); err != nil {
		return WriteFileError(configPath, err)
	}

	return nil
}
