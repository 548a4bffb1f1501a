// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config builds batch plans from YAML definitions.
//
// A definition names the target script file, its line-ending convention, and
// an ordered list of typed jobs ("warp", "merge", "calc"). Every definition
// mistake is collected and reported in one pass before any command is
// rendered, so a plan that builds is a plan that renders.
package config
