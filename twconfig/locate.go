package twconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Locate when a directory holds no configuration.
var ErrNotFound = errors.New("twconfig: no tailwind configuration found")

// ConfigNames are the file names Locate looks for, in order. Data formats
// come before script configs so a project that ships both is read without
// evaluation.
var ConfigNames = []string{
	"tailwind.config.json",
	"tailwind.config.yaml",
	"tailwind.config.yml",
	"tailwind.config.toml",
	"tailwind.config.js",
	"tailwind.config.cjs",
	"tailwind.config.mjs",
	"tailwind.config.ts",
}

// StylesheetNames are the usual entry stylesheets of v4 CSS-first
// projects. One only counts as a configuration if it imports tailwindcss
// or declares @theme.
var StylesheetNames = []string{
	"app.css",
	"main.css",
	"index.css",
	"tailwind.css",
	"globals.css",
	"src/app.css",
	"src/main.css",
	"src/index.css",
	"src/styles.css",
	"src/tailwind.css",
	"app/globals.css",
	"styles/globals.css",
	"assets/css/main.css",
}

// Locate returns the configuration file for the project rooted at dir.
func Locate(dir string) (string, error) {
	for _, name := range ConfigNames {
		path := filepath.Join(dir, name)
		if isFile(path) {
			return path, nil
		}
	}
	for _, name := range StylesheetNames {
		path := filepath.Join(dir, filepath.FromSlash(name))
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if isTailwindStylesheet(data) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNotFound, dir)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isTailwindStylesheet(data []byte) bool {
	return bytes.Contains(data, []byte(`@import "tailwindcss`)) ||
		bytes.Contains(data, []byte(`@import 'tailwindcss`)) ||
		bytes.Contains(data, []byte("@theme"))
}
