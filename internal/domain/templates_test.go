package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTemplates(t *testing.T) {
	require.NoError(t, ValidateTemplates())
}

func TestCatalog(t *testing.T) {
	t.Run("every type has a spec with sane ranges", func(t *testing.T) {
		for _, sol := range SolutionTypes {
			spec, err := Spec(sol)
			require.NoError(t, err)
			assert.NotEmpty(t, spec.Name)
			assert.NotEmpty(t, spec.EligibleAreas)
			assert.Greater(t, spec.MaxEffect, spec.MinEffect)
			assert.Greater(t, spec.MinEffect, 0.0)
			assert.Greater(t, spec.BasePoints, 0)
			assert.GreaterOrEqual(t, spec.BaseDifficulty, 1)
			assert.LessOrEqual(t, spec.BaseDifficulty, 5)
		}
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := Spec(SolutionType("cloud_seeding"))
		assert.ErrorIs(t, err, ErrUnknownSolutionType)
	})
}

func TestEffectivenessProfiles(t *testing.T) {
	profiles := EffectivenessProfiles()
	require.Len(t, profiles, len(SolutionTypes))
	for i, p := range profiles {
		assert.Equal(t, SolutionTypes[i], p.Solution)
		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.AvgCoolingEffect, 0.0)
		assert.GreaterOrEqual(t, p.Effectiveness, 0)
		assert.LessOrEqual(t, p.Effectiveness, 100)
	}
}

func TestComputeEnvironmentalImpact(t *testing.T) {
	impact := ComputeEnvironmentalImpact(ImpactInputs{
		CO2ReductionKg: 460,
		CoolingSpots:   4,
		GreenAreaM2:    1000,
		TreesPlanted:   50,
	})

	assert.Equal(t, 460.0, impact.CO2Reduction.Value)
	assert.Equal(t, "200 km of passenger car travel", impact.CO2Reduction.Equivalent)
	assert.Equal(t, 600.0, impact.EnergySaving.Value)
	assert.Equal(t, "monthly electricity for 2 households", impact.EnergySaving.Equivalent)
	assert.Equal(t, 500.0, impact.WaterRetention.Value)
	assert.InDelta(t, 1.0, impact.PM25Reduction.Value, 1e-9)
	assert.Equal(t, 1000.0, impact.HabitatAreaM2)
	assert.Equal(t, 10, impact.SpeciesSupported)
}
