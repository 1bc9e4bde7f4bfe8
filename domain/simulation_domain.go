package domain

var (
	MessageSuccessAnalyzeSimulation = "simulation analyzed successfully"
	MessageSuccessAddToSimulation   = "supplement added to simulation"
	MessageSuccessRemoveFromSim     = "supplement removed from simulation"
	MessageSuccessClearSimulation   = "simulation cleared"
	MessageSuccessSetWeight         = "simulation weight updated"

	MessageFailedAnalyzeSimulation = "failed to analyze simulation"
	MessageFailedAddToSimulation   = "failed to add supplement to simulation"
	MessageFailedRemoveFromSim     = "failed to remove supplement from simulation"
	MessageFailedClearSimulation   = "failed to clear simulation"
	MessageFailedSetWeight         = "failed to update simulation weight"
)

type (
	AddSimulationProductRequest struct {
		SupplementID string `json:"supplement_id" validate:"required,uuid"`
	}

	SetWeightRequest struct {
		WeightKg float64 `json:"weight_kg" validate:"required,gt=0,lte=500,finite"`
	}

	RunSimulationRequest struct {
		SupplementIDs []string `json:"supplement_ids" validate:"required,min=1,max=50,dive,uuid"`
		WeightKg      float64  `json:"weight_kg" validate:"omitempty,gt=0,lte=500,finite"`
	}

	ContributionResponse struct {
		SupplementID   string  `json:"supplement_id"`
		SupplementName string  `json:"supplement_name"`
		Brand          string  `json:"brand"`
		Amount         float64 `json:"amount"`
		Percentage     float64 `json:"percentage"`
	}

	NutrientCoverageResponse struct {
		Nutrient          NutrientResponse       `json:"nutrient"`
		ActualAmount      float64                `json:"actual_amount"`
		RecommendedAmount float64                `json:"recommended_amount"`
		Coverage          float64                `json:"coverage"`
		Display           string                 `json:"display"`
		Contributions     []ContributionResponse `json:"contributions"`
	}

	SimulationResponse struct {
		Nutrients          []NutrientCoverageResponse `json:"nutrients"`
		Warnings           []string                   `json:"warnings"`
		CoveragePercentage int                        `json:"coverage_percentage"`
		WeightKg           float64                    `json:"weight_kg"`
		Supplements        []SupplementResponse       `json:"supplements"`
	}
)
