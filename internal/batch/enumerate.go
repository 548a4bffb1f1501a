// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// Enumerate lists files in dir whose base names match the glob pattern,
// returning full paths in lexical order. A missing directory is an error,
// but a pattern that matches nothing returns an empty slice.
func Enumerate(ctx context.Context, fsys afero.Fs, dir, pattern string) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	info, err := fsys.Stat(dir)

	switch {
	case err != nil:
		return nil, errors.Join(ErrDirectoryNotFound, err)
	case !info.IsDir():
		return nil, ErrNotDirectory
	}

	// validate the pattern up front so a bad pattern is not mistaken for an
	// empty match
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, errors.Join(ErrBadPattern, err)
	}

	matches, err := afero.Glob(fsys, filepath.Join(dir, pattern))
	if err != nil {
		return nil, errors.Join(ErrBadPattern, err)
	}

	files := make([]string, 0, len(matches))

	for _, m := range matches {
		info, err := fsys.Stat(m)
		if err != nil {
			return nil, err
		}

		if info.IsDir() {
			continue
		}

		files = append(files, m)
	}

	sort.Strings(files)

	return files, nil
}
