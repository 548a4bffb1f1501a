// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// LineEnding selects the line-ending convention of a generated script.
// It is explicit configuration rather than autodetected: the machine that
// generates a script is not necessarily the machine that runs it.
type LineEnding int

const (
	// LineEndingPosix terminates lines with "\n".
	LineEndingPosix LineEnding = iota
	// LineEndingWindows terminates lines with "\r\n".
	LineEndingWindows
)

// ErrUnknownLineEnding is returned when a line-ending name cannot be parsed.
var ErrUnknownLineEnding = errors.New("unknown line ending, expected 'posix' or 'windows'")

// ParseLineEnding parses a line-ending name. The empty string defaults to
// posix.
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(s) {
	case "", "posix":
		return LineEndingPosix, nil
	case "windows", "batch":
		return LineEndingWindows, nil
	default:
		return LineEndingPosix, fmt.Errorf("%w: %q", ErrUnknownLineEnding, s)
	}
}

// String implements the Stringer interface for LineEnding.
func (l LineEnding) String() string {
	if l == LineEndingWindows {
		return "windows"
	}

	return "posix"
}

// Sequence returns the line terminator characters.
func (l LineEnding) Sequence() string {
	if l == LineEndingWindows {
		return "\r\n"
	}

	return "\n"
}

func (l LineEnding) comment(text string) string {
	if l == LineEndingWindows {
		return "REM " + text
	}

	return "# " + text
}

// Script is an ordered sequence of rendered command lines with the metadata
// needed to serialize them. Commands are appended while a batch is built and
// the whole script is rendered in memory before a single write.
type Script struct {
	// Name is the human-readable name of the batch, taken from the plan.
	Name string
	// RunID uniquely identifies one generation run.
	RunID uuid.UUID
	// Ending is the line-ending convention used when rendering.
	Ending LineEnding
	// Commands holds the rendered command lines in execution order.
	Commands []string
}

// NewScript creates an empty script with a fresh run identifier.
func NewScript(name string, ending LineEnding) *Script {
	return &Script{
		Name:   name,
		RunID:  uuid.New(),
		Ending: ending,
	}
}

// Append adds rendered commands to the end of the script.
func (s *Script) Append(cmds ...string) {
	s.Commands = append(s.Commands, cmds...)
}

// Len returns the number of commands in the script.
func (s *Script) Len() int {
	return len(s.Commands)
}

// Render serializes the script: a header identifying the run, then one
// command per line using the configured line ending.
func (s *Script) Render() []byte {
	sb := strings.Builder{}
	eol := s.Ending.Sequence()

	if s.Ending == LineEndingPosix {
		sb.WriteString("#!/bin/sh")
		sb.WriteString(eol)
	}

	sb.WriteString(s.Ending.comment(fmt.Sprintf("generated by rasterbatch run %s at %s",
		s.RunID, time.Now().UTC().Format(time.RFC3339))))
	sb.WriteString(eol)

	if s.Name != "" {
		sb.WriteString(s.Ending.comment(s.Name))
		sb.WriteString(eol)
	}

	for _, cmd := range s.Commands {
		sb.WriteString(cmd)
		sb.WriteString(eol)
	}

	return []byte(sb.String())
}

// Write renders the script and writes it to path in a single call. An
// existing file is an error unless overwrite is set.
func (s *Script) Write(fsys afero.Fs, path string, overwrite bool) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return err
	}

	if exists && !overwrite {
		return fmt.Errorf("%w: %s", ErrScriptExists, path)
	}

	return afero.WriteFile(fsys, path, s.Render(), os.FileMode(0o755))
}
