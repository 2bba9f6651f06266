// Package twconfig locates a Tailwind configuration file and reads the class
// prefix it declares.
package twconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ConfigNames are the recognised config file names, in lookup order
var ConfigNames = []string{
	"tailwind.config.js",
	"tailwind.config.cjs",
	"tailwind.config.mjs",
	"tailwind.config.ts",
	"tailwind.config.cts",
	"tailwind.config.mts",
}

// ErrNotFound is returned by Discover when no ancestor holds a config file
var ErrNotFound = errors.New("tailwind config not found")

// Found is a discovered config file
type Found struct {
	Path string // config file
	Dir  string // directory holding it
}

// Discover walks from path (a file or directory) up through its ancestors and
// returns the first directory containing one of ConfigNames. The walk stops at
// workspaceRoot when it is non-empty and an ancestor of path, otherwise at the
// filesystem root.
func Discover(path, workspaceRoot string) (Found, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Found{}, fmt.Errorf("resolving %s: %w", path, err)
	}

	dir := abs
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	stop := ""
	if workspaceRoot != "" {
		if root, err := filepath.Abs(workspaceRoot); err == nil && isWithin(dir, root) {
			stop = root
		}
	}

	for {
		for _, name := range ConfigNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return Found{Path: candidate, Dir: dir}, nil
			}
		}

		if dir == stop {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return Found{}, fmt.Errorf("%w above %s", ErrNotFound, abs)
}

// isWithin reports whether dir equals root or lies beneath it
func isWithin(dir, root string) bool {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Detection is the outcome of a prefix lookup
type Detection struct {
	ConfigPath string // empty when no config file was found
	Prefix     string
	Strategy   string // name of the strategy that produced Prefix
	Found      bool
}

// Detect discovers the config file governing path and extracts its prefix with
// the first strategy that succeeds. It never fails: every problem degrades to
// a Detection with Found == false. log may be nil.
func Detect(path, workspaceRoot string, log *zap.Logger) Detection {
	if log == nil {
		log = zap.NewNop()
	}

	found, err := Discover(path, workspaceRoot)
	if err != nil {
		log.Debug("no tailwind config", zap.String("path", path), zap.Error(err))
		return Detection{}
	}

	src, err := os.ReadFile(found.Path)
	if err != nil {
		log.Warn("reading tailwind config", zap.String("config", found.Path), zap.Error(err))
		return Detection{ConfigPath: found.Path}
	}

	d := Extract(found.Path, src, log)
	d.ConfigPath = found.Path
	return d
}

// DetectPrefix returns the prefix declared by the config governing path
func DetectPrefix(path, workspaceRoot string) (string, bool) {
	d := Detect(path, workspaceRoot, nil)
	return d.Prefix, d.Found
}

// Extract runs Strategies in order over config source text
func Extract(path string, src []byte, log *zap.Logger) Detection {
	if log == nil {
		log = zap.NewNop()
	}

	for _, s := range Strategies {
		prefix, err := s.Extract(path, src)
		if err != nil {
			log.Debug("prefix strategy failed",
				zap.String("strategy", s.Name),
				zap.String("config", path),
				zap.Error(err))
			continue
		}
		log.Debug("prefix detected",
			zap.String("strategy", s.Name),
			zap.String("config", path),
			zap.String("prefix", prefix))
		return Detection{Prefix: prefix, Strategy: s.Name, Found: true}
	}

	return Detection{}
}
