// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides ANSI color codes and helpers for terminal output.
// Color output is disabled when NO_COLOR is set or stdout is not a terminal,
// and can be forced on with FORCE_COLOR.
package color
