// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/rasterbatch/internal/batch"
	"github.com/matt-FFFFFF/rasterbatch/internal/ctxlog"
)

var (
	// ErrYamlUnmarshal is returned when a YAML definition cannot be decoded,
	// please check the syntax and structure of your YAML file.
	ErrYamlUnmarshal = errors.New(
		"failed to decode YAML definition, please check the syntax and structure of your YAML file",
	)
	// ErrNoJobs is returned when a plan defines no jobs.
	ErrNoJobs = errors.New("plan must define at least one job")
	// ErrUnknownJobType is returned when a job type is not one of warp, merge, or calc.
	ErrUnknownJobType = errors.New("unknown job type, expected 'warp', 'merge', or 'calc'")
	// ErrJobModeMissing is returned when a job sets neither explicit inputs
	// nor a directory and pattern to enumerate.
	ErrJobModeMissing = errors.New("job must set explicit input(s) or a directory and pattern")
	// ErrJobModeAmbiguous is returned when a job sets both explicit inputs
	// and a directory to enumerate.
	ErrJobModeAmbiguous = errors.New("job must set explicit input(s) or a directory and pattern, not both")
	// ErrNoScript is returned when neither the definition nor the caller
	// provides a script path.
	ErrNoScript = errors.New("plan does not name a script file")
	// ErrMissingField is returned when a required definition field is empty.
	ErrMissingField = errors.New("required field is empty")
)

// BuildFromYAML decodes and validates a plan definition. Every definition
// mistake found is collected into the returned error, so one pass surfaces
// them all.
func BuildFromYAML(ctx context.Context, data []byte) (*Plan, error) {
	def := new(PlanDefinition)
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, errors.Join(ErrYamlUnmarshal, err)
	}

	ending, err := batch.ParseLineEnding(def.LineEndings)
	if err != nil {
		return nil, err
	}

	if len(def.Jobs) == 0 {
		return nil, ErrNoJobs
	}

	plan := &Plan{
		Name:      def.Name,
		Script:    def.Script,
		Ending:    ending,
		Overwrite: def.Overwrite,
		Jobs:      make([]Job, 0, len(def.Jobs)),
	}

	var errs *multierror.Error

	for i, raw := range def.Jobs {
		job, err := buildJob(ctx, i, raw)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		plan.Jobs = append(plan.Jobs, job)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "plan built", "name", plan.Name, "jobs", len(plan.Jobs))

	return plan, nil
}

// buildJob re-marshals one job entry and decodes it against its typed
// definition.
func buildJob(ctx context.Context, index int, raw any) (Job, error) {
	jobYAML, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("job %d: %w", index, errors.Join(ErrYamlUnmarshal, err))
	}

	base := new(BaseDefinition)
	if err := yaml.Unmarshal(jobYAML, base); err != nil {
		return nil, fmt.Errorf("job %d: %w", index, errors.Join(ErrYamlUnmarshal, err))
	}

	var (
		job     Job
		jobErr  error
		jobName = base.Name
	)

	if jobName == "" {
		jobName = fmt.Sprintf("#%d", index)
	}

	switch base.Type {
	case "warp":
		job, jobErr = buildWarpJob(jobYAML)
	case "merge":
		job, jobErr = buildMergeJob(jobYAML)
	case "calc":
		job, jobErr = buildCalcJob(jobYAML)
	default:
		jobErr = fmt.Errorf("%w: %q", ErrUnknownJobType, base.Type)
	}

	if jobErr != nil {
		return nil, fmt.Errorf("job %s: %w", jobName, jobErr)
	}

	ctxlog.Debug(ctx, "job built", "job", jobName, "type", base.Type)

	return job, nil
}

func buildWarpJob(jobYAML []byte) (Job, error) {
	def := new(WarpDefinition)
	if err := yaml.Unmarshal(jobYAML, def); err != nil {
		return nil, errors.Join(ErrYamlUnmarshal, err)
	}

	enumerated := def.Directory != "" || def.Pattern != ""

	switch {
	case def.Input != "" && enumerated:
		return nil, ErrJobModeAmbiguous
	case def.Input != "":
		if def.Output == "" {
			return nil, fmt.Errorf("%w: output", ErrMissingField)
		}
	case def.Directory == "" || def.Pattern == "":
		return nil, ErrJobModeMissing
	default:
		rule := batch.OutputRule{Suffix: def.OutputSuffix, Directory: def.OutputDirectory}
		if err := rule.Validate(); err != nil {
			return nil, err
		}
	}

	if !def.Bounds.IsZero() {
		if err := def.Bounds.Validate(); err != nil {
			return nil, err
		}
	}

	return &warpJob{def: *def}, nil
}

func buildMergeJob(jobYAML []byte) (Job, error) {
	def := new(MergeDefinition)
	if err := yaml.Unmarshal(jobYAML, def); err != nil {
		return nil, errors.Join(ErrYamlUnmarshal, err)
	}

	enumerated := def.Directory != "" || def.Pattern != ""

	switch {
	case len(def.Inputs) > 0 && enumerated:
		return nil, ErrJobModeAmbiguous
	case len(def.Inputs) == 0 && (def.Directory == "" || def.Pattern == ""):
		return nil, ErrJobModeMissing
	}

	if def.Output == "" {
		return nil, fmt.Errorf("%w: output", ErrMissingField)
	}

	return &mergeJob{def: *def}, nil
}

func buildCalcJob(jobYAML []byte) (Job, error) {
	def := new(CalcDefinition)
	if err := yaml.Unmarshal(jobYAML, def); err != nil {
		return nil, errors.Join(ErrYamlUnmarshal, err)
	}

	if def.Expression == "" {
		return nil, fmt.Errorf("%w: expression", ErrMissingField)
	}

	enumerated := def.Directory != "" || def.Pattern != ""

	switch {
	case len(def.Inputs) > 0 && enumerated:
		return nil, ErrJobModeAmbiguous
	case len(def.Inputs) > 0:
		if def.Output == "" {
			return nil, fmt.Errorf("%w: output", ErrMissingField)
		}
	case def.Directory == "" || def.Pattern == "":
		return nil, ErrJobModeMissing
	default:
		rule := batch.OutputRule{Suffix: def.OutputSuffix, Directory: def.OutputDirectory}
		if err := rule.Validate(); err != nil {
			return nil, err
		}
	}

	return &calcJob{def: *def}, nil
}
