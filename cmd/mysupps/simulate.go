package main

import (
	"My-Supps-Backend/cmd/config"
	"My-Supps-Backend/domain"
	"My-Supps-Backend/internal/report"
	"My-Supps-Backend/internal/utils"
	"My-Supps-Backend/pkg/catalog"
	"My-Supps-Backend/pkg/simulation"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	simulateWeight   float64
	simulateProducts []string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Print the nutrient coverage of a set of supplements.",
	Long: `Analyzes the given supplements and prints one row per nutrient.

Products may be given as catalog ids, iHerb product codes (NOW-00733) or
iHerb product URLs.`,
	Example: `  mysupps simulate --product NOW-00733 --product NOW-00490 --weight 72`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if len(simulateProducts) == 0 {
			return errors.New("at least one --product is required")
		}

		var db *gorm.DB
		if utils.GetConfig("DATA_SOURCE") != utils.DataSourceFixture {
			var err error
			if db, err = connect(); err != nil {
				return err
			}
		}
		repo := config.NewCatalogRepository(db)

		ids := make([]string, 0, len(simulateProducts))
		for _, ref := range simulateProducts {
			id, err := resolveProduct(rootCtx, repo, ref)
			if err != nil {
				return fmt.Errorf("%s: %w", ref, err)
			}
			ids = append(ids, id)
		}

		// Simulate keeps no session, so no profile sources are needed.
		service := simulation.NewSimulationService(repo, nil, nil, simulation.NewSessionStore(0), utils.GetDefaultWeight())
		res, err := service.Simulate(rootCtx, "", domain.RunSimulationRequest{
			SupplementIDs: ids,
			WeightKg:      simulateWeight,
		})
		if err != nil {
			return err
		}
		return report.PrintSimulation(cmd.OutOrStdout(), res)
	},
}

func init() {
	simulateCmd.Flags().Float64Var(&simulateWeight, "weight", 0, "body weight in kg (defaults to DEFAULT_WEIGHT_KG)")
	simulateCmd.Flags().StringArrayVar(&simulateProducts, "product", nil, "supplement id, iHerb code or iHerb URL (repeatable)")
}

// resolveProduct turns a catalog id, iHerb code or iHerb URL into a catalog id.
func resolveProduct(ctx context.Context, repo catalog.CatalogRepository, ref string) (string, error) {
	if _, err := uuid.Parse(ref); err == nil {
		return ref, nil
	}

	code := ref
	if strings.Contains(ref, "iherb.com") {
		parsed, err := catalog.ParseIHerbID(ref)
		if err != nil {
			return "", err
		}
		code = parsed
	}

	s, err := repo.GetSupplementByIHerbID(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrSupplementNotFound
		}
		return "", err
	}
	return s.ID.String(), nil
}
