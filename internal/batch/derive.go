// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batch

import (
	"path/filepath"
	"strings"
)

// OutputRule derives an output path from an input path. The zero value is
// invalid: a rule must change at least one path component, otherwise every
// input would derive itself and collide.
type OutputRule struct {
	// Suffix is inserted between the base name and the extension,
	// e.g. "_clip" turns band3.tif into band3_clip.tif.
	Suffix string
	// Directory, when set, replaces the input's directory.
	Directory string
	// Extension, when set, replaces the input's extension. A leading dot is
	// optional.
	Extension string
}

// Validate returns ErrEmptyRule when the rule would be the identity mapping.
func (r OutputRule) Validate() error {
	if r.Suffix == "" && r.Directory == "" && r.Extension == "" {
		return ErrEmptyRule
	}

	return nil
}

// Apply derives the output path for input. It is a pure function: the same
// rule and input always produce the same output.
func (r OutputRule) Apply(input string) string {
	dir := filepath.Dir(input)
	if r.Directory != "" {
		dir = r.Directory
	}

	ext := filepath.Ext(input)
	base := strings.TrimSuffix(filepath.Base(input), ext)

	if r.Extension != "" {
		ext = r.Extension
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
	}

	return filepath.Join(dir, base+r.Suffix+ext)
}

// CheckCollisions verifies that outputs are pairwise distinct and that no
// output overwrites one of the inputs. The inputs and outputs slices are
// parallel: outputs[i] was derived from inputs[i].
func CheckCollisions(inputs, outputs []string) error {
	seen := make(map[string]string, len(outputs))

	for _, in := range inputs {
		seen[in] = in
	}

	for i, out := range outputs {
		if prev, ok := seen[out]; ok {
			return &CollisionError{Output: out, First: prev, Second: inputs[i]}
		}

		seen[out] = inputs[i]
	}

	return nil
}
