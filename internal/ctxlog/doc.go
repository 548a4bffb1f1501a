// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger built on slog.
//
// The log level is read from an environment variable derived from the
// executable name, e.g. RASTERBATCH_LOG_LEVEL for a binary named
// rasterbatch. The default handler is a pretty console handler that
// formats records in a human-readable way.
package ctxlog
