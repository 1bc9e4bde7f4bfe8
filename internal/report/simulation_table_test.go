package report

import (
	"My-Supps-Backend/domain"
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSimulation(t *testing.T) {
	color.NoColor = true

	res := domain.SimulationResponse{
		WeightKg:           60,
		CoveragePercentage: 72,
		Warnings:           []string{"Vitamin D exceeds the recommended upper limit (100%)"},
		Supplements:        []domain.SupplementResponse{{NameEn: "Vitamin D-3 5000 IU"}, {NameEn: "Magnesium 400mg"}},
		Nutrients: []domain.NutrientCoverageResponse{
			{
				Nutrient:          domain.NutrientResponse{NameEn: "Vitamin D", Unit: "μg"},
				ActualAmount:      100,
				RecommendedAmount: 0.09,
				Coverage:          100,
				Display:           "100.0μg",
				Contributions:     []domain.ContributionResponse{{SupplementName: "Vitamin D-3 5000 IU", Percentage: 100}},
			},
			{
				Nutrient:          domain.NutrientResponse{NameJa: "マグネシウム", Unit: "mg"},
				ActualAmount:      160,
				RecommendedAmount: 360,
				Coverage:          44.44,
				Display:           "160.0mg",
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, PrintSimulation(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "Body weight: 60.0 kg, supplements: 2")
	assert.Contains(t, out, "100.0μg")
	assert.Contains(t, out, "マグネシウム")
	assert.Contains(t, out, "360.00mg")
	assert.Contains(t, out, "! Vitamin D exceeds the recommended upper limit (100%)")
	assert.Contains(t, out, "Overall coverage: 72%")
}

func TestPrintSimulationEmpty(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	require.NoError(t, PrintSimulation(&buf, domain.SimulationResponse{WeightKg: 60}))
	assert.Contains(t, buf.String(), "No nutrients supplied")
}

func TestCoverageColor(t *testing.T) {
	assert.Equal(t, fullColor, coverageColor(100))
	assert.Equal(t, partialColor, coverageColor(50))
	assert.Equal(t, lowColor, coverageColor(49.9))
}
