package configutil

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// reads a json5 configuration file, `name` should come with a file
// extension. a sibling `<name>.local.<ext>` file is merged on top of
// the base file when present so checked-in defaults can be overridden
// per machine.
func ReadConfig[T any](name string) (T, error) {
	var out T

	base, err := readInto(name, &out)
	if err != nil {
		return out, err
	}

	dir := filepath.Dir(name)
	stem := filepath.Base(name)
	ext := ""
	if idx := strings.LastIndexByte(stem, '.'); idx >= 0 {
		stem, ext = stem[:idx], stem[idx+1:]
	}
	localPath := filepath.Join(dir, fmt.Sprintf("%s.local.%s", stem, ext))

	var override T
	local, err := readInto(localPath, &override)
	if err != nil {
		return out, err
	}
	if local {
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, fmt.Errorf("merge %s: %w", localPath, err)
		}
		slog.Info("merging config with local overrides", "local", localPath)
	}

	if !base && !local {
		return out, fs.ErrNotExist
	}
	return out, nil
}

func readInto[T any](path string, out *T) (found bool, err error) {
	buf, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(buf) == 0 {
		return false, nil
	}
	err = json5.Unmarshal(buf, out)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// ReadConfig but it walks up the filesystem until the root to find a
// configuration file matching the name.
func ReadRecursively[T any](name string) (T, error) {
	var zero T

	root, err := filepath.Abs("/")
	if err != nil {
		return zero, err
	}
	current, err := os.Getwd()
	if err != nil {
		return zero, err
	}

	for current != root {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if errors.Is(err, fs.ErrNotExist) {
			current = filepath.Join(current, "..")
			continue
		}
		if err != nil {
			return zero, err
		}
		return config, nil
	}

	return zero, fs.ErrNotExist
}
