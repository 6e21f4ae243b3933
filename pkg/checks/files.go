package checks

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/moby/patternmatcher"
)

// MatchFiles returns the regular files under root matching patterns, as
// slash-separated paths relative to root, in lexical order. Patterns use
// .dockerignore syntax: ** crosses directories and a leading ! excludes.
// The .git directory is never searched.
func MatchFiles(root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	pm, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid file pattern")
	}

	var matches []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		ok, err := pm.MatchesOrParentMatches(rel)
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot search %s", root)
	}

	return matches, nil
}

// newest returns the most recent modification time under path and the
// file it belongs to. exists is false when path does not exist.
func newest(path string) (latest time.Time, file string, exists bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, "", false, nil
		}
		return time.Time{}, "", false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}
	if !info.IsDir() {
		return info.ModTime(), path, true, nil
	}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		if fi.ModTime().After(latest) {
			latest = fi.ModTime()
			file = p
		}
		return nil
	})
	if err != nil {
		return time.Time{}, "", true, errors.Wrapf(err, errors.ErrFileAccess, "cannot walk %s", path)
	}
	return latest, file, true, nil
}
