// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package batch turns a set of raster files into an ordered script of shell
// commands. It enumerates input files against a glob pattern, derives
// non-colliding output paths, and serializes the rendered commands to a
// script file for later execution by a shell.
//
// The package never executes the commands it generates. Any failure during
// enumeration, derivation, or rendering aborts the batch before the script
// file is written, so a script on disk is always complete.
package batch
