// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/rasterbatch/internal/batch"
	"github.com/matt-FFFFFF/rasterbatch/internal/ctxlog"
	"github.com/matt-FFFFFF/rasterbatch/internal/gdal"
	"github.com/spf13/afero"
)

// Job produces the ordered command lines for one definition. Implementations
// either return every command fully rendered or fail; a file that cannot be
// rendered is never silently skipped.
type Job interface {
	// JobName returns the descriptive name from the definition.
	JobName() string
	// Commands enumerates inputs and renders one command line per invocation.
	Commands(ctx context.Context, fsys afero.Fs) ([]string, error)
}

// Plan is a validated batch definition ready to generate a script.
type Plan struct {
	// Name is the human-readable name of the batch.
	Name string
	// Script is the path of the script file to generate.
	Script string
	// Ending is the parsed line-ending convention.
	Ending batch.LineEnding
	// Overwrite permits replacing an existing script file.
	Overwrite bool
	// Jobs holds the jobs in definition order.
	Jobs []Job
}

// Build renders every job in order and assembles the script in memory.
// Any failure aborts the whole batch: no partial script is returned.
func (p *Plan) Build(ctx context.Context, fsys afero.Fs) (*batch.Script, error) {
	script := batch.NewScript(p.Name, p.Ending)

	for _, job := range p.Jobs {
		cmds, err := job.Commands(ctx, fsys)
		if err != nil {
			return nil, fmt.Errorf("job %q: %w", job.JobName(), err)
		}

		ctxlog.Debug(ctx, "job rendered", "job", job.JobName(), "commands", len(cmds))
		script.Append(cmds...)
	}

	return script, nil
}

// perFile enumerates directory/pattern, derives one output per input with
// rule, checks the derived set for collisions, and hands each pair to
// render.
func perFile(
	ctx context.Context,
	fsys afero.Fs,
	dir, pattern string,
	rule batch.OutputRule,
	render func(input, output string) (string, error),
) ([]string, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	inputs, err := batch.Enumerate(ctx, fsys, dir, pattern)
	if err != nil {
		return nil, err
	}

	outputs := make([]string, 0, len(inputs))
	for _, in := range inputs {
		outputs = append(outputs, rule.Apply(in))
	}

	if err := batch.CheckCollisions(inputs, outputs); err != nil {
		return nil, err
	}

	cmds := make([]string, 0, len(inputs))

	for i, in := range inputs {
		cmd, err := render(in, outputs[i])
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", in, err)
		}

		cmds = append(cmds, cmd)
	}

	return cmds, nil
}

type warpJob struct {
	def WarpDefinition
}

func (j *warpJob) JobName() string {
	return j.def.Name
}

func (j *warpJob) Commands(ctx context.Context, fsys afero.Fs) ([]string, error) {
	warp := func(input, output string) (string, error) {
		return gdal.Warp{
			Tool:       j.def.Tool,
			Bounds:     j.def.Bounds,
			TargetSRS:  j.def.TargetSRS,
			Resampling: j.def.Resampling,
			Input:      input,
			Output:     output,
		}.Command()
	}

	if j.def.Input != "" {
		cmd, err := warp(j.def.Input, j.def.Output)
		if err != nil {
			return nil, err
		}

		return []string{cmd}, nil
	}

	rule := batch.OutputRule{Suffix: j.def.OutputSuffix, Directory: j.def.OutputDirectory}

	return perFile(ctx, fsys, j.def.Directory, j.def.Pattern, rule, warp)
}

type mergeJob struct {
	def MergeDefinition
}

func (j *mergeJob) JobName() string {
	return j.def.Name
}

func (j *mergeJob) Commands(ctx context.Context, fsys afero.Fs) ([]string, error) {
	inputs := j.def.Inputs

	if len(inputs) == 0 {
		enumerated, err := batch.Enumerate(ctx, fsys, j.def.Directory, j.def.Pattern)
		if err != nil {
			return nil, err
		}

		inputs = enumerated
	}

	// merging nothing is a definition mistake, not an empty batch
	if len(inputs) == 0 {
		return nil, gdal.ErrNoInput
	}

	cmd, err := gdal.Merge{
		Tool:     j.def.Tool,
		Inputs:   inputs,
		Output:   j.def.Output,
		Separate: j.def.Separate,
		NoData:   j.def.NoData,
	}.Command()
	if err != nil {
		return nil, err
	}

	return []string{cmd}, nil
}

type calcJob struct {
	def CalcDefinition
}

func (j *calcJob) JobName() string {
	return j.def.Name
}

func (j *calcJob) Commands(ctx context.Context, fsys afero.Fs) ([]string, error) {
	if len(j.def.Inputs) > 0 {
		cmd, err := gdal.Calc{
			Tool:       j.def.Tool,
			Inputs:     j.def.Inputs,
			Expression: j.def.Expression,
			Output:     j.def.Output,
			NoData:     j.def.NoData,
			Compress:   j.def.Compress,
		}.Command()
		if err != nil {
			return nil, err
		}

		return []string{cmd}, nil
	}

	rule := batch.OutputRule{Suffix: j.def.OutputSuffix, Directory: j.def.OutputDirectory}

	// per-file mode binds each matched file to the label A
	return perFile(ctx, fsys, j.def.Directory, j.def.Pattern, rule, func(input, output string) (string, error) {
		return gdal.Calc{
			Tool:       j.def.Tool,
			Inputs:     map[string]string{"A": input},
			Expression: j.def.Expression,
			Output:     output,
			NoData:     j.def.NoData,
			Compress:   j.def.Compress,
		}.Command()
	})
}
