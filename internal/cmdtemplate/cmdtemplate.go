// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdtemplate renders shell command templates with named placeholders.
//
// A placeholder is written as {name}, where name starts with a letter or
// underscore and continues with letters, digits, or underscores. Rendering is
// a pure function: the same template and substitutions always produce the
// same output. A template is only considered rendered when no placeholder
// syntax remains in the result.
package cmdtemplate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrMissingParameter is returned when a template placeholder has no substitution value.
	ErrMissingParameter = errors.New("template placeholder has no substitution value")
	// ErrUnresolvedPlaceholder is returned when the rendered command still contains placeholder syntax.
	ErrUnresolvedPlaceholder = errors.New("rendered command still contains placeholder syntax")
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Placeholders returns the unique placeholder names in template, in order of
// first appearance.
func Placeholders(template string) []string {
	matches := placeholderRe.FindAllStringSubmatch(template, -1)

	names := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}

		seen[m[1]] = struct{}{}

		names = append(names, m[1])
	}

	return names
}

// Render substitutes every placeholder in template with its value from subs.
// It returns ErrMissingParameter if any placeholder lacks a value, and
// ErrUnresolvedPlaceholder if a substitution value itself introduced
// placeholder syntax into the output.
func Render(template string, subs map[string]string) (string, error) {
	for _, name := range Placeholders(template) {
		if _, ok := subs[name]; !ok {
			return "", fmt.Errorf("%w: {%s}", ErrMissingParameter, name)
		}
	}

	rendered := placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := strings.Trim(match, "{}")
		return subs[name]
	})

	if remaining := placeholderRe.FindString(rendered); remaining != "" {
		return "", fmt.Errorf("%w: %s", ErrUnresolvedPlaceholder, remaining)
	}

	return rendered, nil
}
