// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package gen

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-getter/v2"
)

// ErrGetPlanFile is returned when the plan definition cannot be fetched.
var ErrGetPlanFile = errors.New("failed to get plan definition file")

// getURL retrieves the plan definition. A path that exists locally is read
// directly; anything else is fetched with Hashicorp's go-getter, so plans
// can live in git repositories, object stores, or behind plain HTTP.
func getURL(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrGetPlanFile
	}

	if data, err := os.ReadFile(url); err == nil {
		return data, nil
	}

	tmpDir, err := os.MkdirTemp("", "rasterbatch-getter-*")
	if err != nil {
		return nil, errors.Join(ErrGetPlanFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrGetPlanFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	dst := filepath.Join(tmpDir, "plan.yaml")

	req := &getter.Request{
		Src:     url,
		Dst:     dst,
		Pwd:     wd,
		GetMode: getter.ModeFile,
	}

	if _, err := client.Get(ctx, req); err != nil {
		return nil, errors.Join(ErrGetPlanFile, err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		return nil, errors.Join(ErrGetPlanFile, err)
	}

	return data, nil
}
