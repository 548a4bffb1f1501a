// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectoryNotFound is returned when the input directory does not exist.
	ErrDirectoryNotFound = errors.New("input directory not found")
	// ErrNotDirectory is returned when the input path exists but is not a directory.
	ErrNotDirectory = errors.New("input path is not a directory")
	// ErrBadPattern is returned when the glob pattern is malformed.
	ErrBadPattern = errors.New("malformed glob pattern")
	// ErrScriptExists is returned when the script file already exists and overwrite is not set.
	ErrScriptExists = errors.New("script file already exists, pass overwrite to replace it")
	// ErrPathCollision is returned when two inputs derive the same output path.
	ErrPathCollision = errors.New("derived output path collides")
	// ErrEmptyRule is returned when an output rule would map every input to itself.
	ErrEmptyRule = errors.New("output rule must set at least one of suffix, directory, or extension")
)

// CollisionError reports two input paths that derive the same output path.
type CollisionError struct {
	Output string
	First  string
	Second string
}

// Error implements the error interface for CollisionError.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("inputs %q and %q both derive output %q", e.First, e.Second, e.Output)
}

// Unwrap allows errors.Is checks against ErrPathCollision.
func (e *CollisionError) Unwrap() error {
	return ErrPathCollision
}
