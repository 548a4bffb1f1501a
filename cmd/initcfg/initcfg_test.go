// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package initcfg

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/rasterbatch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleYAMLBuilds(t *testing.T) {
	plan, err := config.BuildFromYAML(context.Background(), []byte(ExampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Forest cover workflow", plan.Name)
	assert.Equal(t, "forest_workflow.sh", plan.Script)
	assert.Len(t, plan.Jobs, 3)
}
