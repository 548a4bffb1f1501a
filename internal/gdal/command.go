// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package gdal

import (
	"errors"
	"strings"
)

var (
	// ErrNoInput is returned when a command is built without an input path.
	ErrNoInput = errors.New("command requires at least one input path")
	// ErrNoOutput is returned when a command is built without an output path.
	ErrNoOutput = errors.New("command requires an output path")
	// ErrOutputIsInput is returned when the output path equals one of the inputs.
	ErrOutputIsInput = errors.New("output path must differ from the input paths")
	// ErrNoExpression is returned when a calc command has no calculation expression.
	ErrNoExpression = errors.New("calc command requires a calculation expression")
	// ErrBadLabel is returned when a calc input label is not a single letter A-Z.
	ErrBadLabel = errors.New("calc input labels must be a single letter A-Z")
)

// Command is one invocation of an external GDAL tool. Implementations
// produce a fully resolved shell command line or fail; they never emit a
// partially substituted template.
type Command interface {
	// Command renders the shell command line for this invocation.
	Command() (string, error)
}

// quoteArg wraps an argument in double quotes when it contains characters
// the shell would otherwise interpret.
func quoteArg(s string) string {
	if !strings.ContainsAny(s, " \t'\"$&|;<>()*?") {
		return s
	}

	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// quoteAll quotes each argument and joins them with single spaces.
func quoteAll(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, a := range args {
		quoted = append(quoted, quoteArg(a))
	}

	return strings.Join(quoted, " ")
}
