// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rootfind/core"
)

func TestDefaultAccuracy(t *testing.T) {
	acc := core.DefaultAccuracy(1e-8)
	assert.Equal(t, 1e-8, acc.Absolute)
	assert.Equal(t, core.DefaultRelativeAccuracy, acc.Relative)
	assert.Equal(t, core.DefaultFunctionValueAccuracy, acc.FunctionValue)
	assert.NoError(t, acc.Validate())
}

func TestAccuracy_Validate(t *testing.T) {
	good := core.DefaultAccuracy(core.DefaultAbsoluteAccuracy)
	cases := map[string]core.Accuracy{
		"zero absolute":     {Absolute: 0, Relative: 1e-14},
		"nan absolute":      {Absolute: math.NaN(), Relative: 1e-14},
		"inf relative":      {Absolute: 1e-6, Relative: math.Inf(1)},
		"negative relative": {Absolute: 1e-6, Relative: -1},
		"negative fva":      {Absolute: 1e-6, Relative: 1e-14, FunctionValue: -1},
		"nan fva":           {Absolute: 1e-6, Relative: 1e-14, FunctionValue: math.NaN()},
	}
	for name, acc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, acc.Validate(), core.ErrInvalidArgument)
		})
	}
	assert.NoError(t, good.Validate())
}

func TestAccuracy_Tolerance(t *testing.T) {
	acc := core.Accuracy{Absolute: 1e-6, Relative: 1e-3}
	assert.Equal(t, 1e-6, acc.Tolerance(0))
	assert.InDelta(t, 1.0, acc.Tolerance(-1000), 1e-12)
}
