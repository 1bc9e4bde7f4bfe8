// Package analyzer aggregates the nutrients supplied by a selection of
// supplements and measures them against personalised recommended intakes.
//
// An Analyzer is not safe for concurrent use. Callers that share one across
// goroutines must serialise mutate-then-analyze sequences themselves.
package analyzer

import (
	"My-Supps-Backend/entities"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const DefaultWeightKg = 60.0

// ReferenceData is everything Analyze reads besides the selection. It must be
// fully loaded before Analyze is called; the analyzer does no I/O.
type ReferenceData struct {
	// Nutrients is the master list. Its order is the order of the result.
	Nutrients []entities.Nutrient
	// Contributions maps a supplement to its nutrient rows in label order.
	Contributions map[uuid.UUID][]entities.SupplementNutrient
}

type (
	Contribution struct {
		Supplement entities.Supplement
		Amount     float64
		Percentage float64
	}

	NutrientCoverage struct {
		Nutrient          entities.Nutrient
		ActualAmount      float64
		RecommendedAmount float64
		Coverage          float64
		Contributions     []Contribution
	}

	Result struct {
		Nutrients          []NutrientCoverage
		Warnings           []string
		CoveragePercentage int
		WeightKg           float64
		Supplements        []entities.Supplement
	}
)

type Option func(*Analyzer)

func WithWeight(weightKg float64) Option {
	return func(a *Analyzer) {
		a.weightKg = weightKg
	}
}

type Analyzer struct {
	ref      ReferenceData
	products []entities.Supplement
	weightKg float64
}

func New(ref ReferenceData, opts ...Option) *Analyzer {
	a := &Analyzer{
		ref:      ref,
		weightKg: DefaultWeightKg,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetReferenceData replaces the nutrient master list and contribution rows.
func (a *Analyzer) SetReferenceData(ref ReferenceData) {
	a.ref = ref
}

// AddProduct appends the supplement unless one with the same ID is selected.
func (a *Analyzer) AddProduct(product entities.Supplement) {
	if a.indexOf(product.ID) >= 0 {
		return
	}
	a.products = append(a.products, product)
}

// RemoveProduct drops the supplement with the given ID if it is selected.
func (a *Analyzer) RemoveProduct(productID uuid.UUID) {
	i := a.indexOf(productID)
	if i < 0 {
		return
	}
	a.products = append(a.products[:i:i], a.products[i+1:]...)
}

// Clear empties the selection. The weight is kept.
func (a *Analyzer) Clear() {
	a.products = nil
}

// SetWeight replaces the body weight. The value is not checked here;
// callers validate it at the boundary.
func (a *Analyzer) SetWeight(weightKg float64) {
	a.weightKg = weightKg
}

func (a *Analyzer) Weight() float64 {
	return a.weightKg
}

// Selected returns a deep copy of the current selection in insertion order.
// Changing the returned supplements, their images or nutrient rows does not
// affect the analyzer.
func (a *Analyzer) Selected() []entities.Supplement {
	out := make([]entities.Supplement, len(a.products))
	for i, p := range a.products {
		out[i] = cloneSupplement(p)
	}
	return out
}

func cloneSupplement(s entities.Supplement) entities.Supplement {
	if s.Images != nil {
		s.Images = append(datatypes.JSON(nil), s.Images...)
	}
	if s.Nutrients != nil {
		rows := make([]entities.SupplementNutrient, len(s.Nutrients))
		for i, row := range s.Nutrients {
			if row.Nutrient != nil {
				n := *row.Nutrient
				row.Nutrient = &n
			}
			rows[i] = row
		}
		s.Nutrients = rows
	}
	return s
}

// SelectedIDs returns the IDs of the current selection in insertion order.
func (a *Analyzer) SelectedIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(a.products))
	for _, p := range a.products {
		ids = append(ids, p.ID)
	}
	return ids
}

func (a *Analyzer) indexOf(id uuid.UUID) int {
	for i, p := range a.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Analyze computes the nutrient totals of the current selection. The result
// is freshly allocated on every call and never shares slices with the
// analyzer. Nutrient bounds still point into the reference data, which is
// read-only.
func (a *Analyzer) Analyze() Result {
	acc := make([]NutrientCoverage, len(a.ref.Nutrients))
	index := make(map[uuid.UUID]int, len(a.ref.Nutrients))
	for i, n := range a.ref.Nutrients {
		acc[i] = NutrientCoverage{
			Nutrient:          n,
			RecommendedAmount: RecommendedAmount(n, a.weightKg),
		}
		index[n.ID] = i
	}

	for _, product := range a.products {
		for _, row := range a.ref.Contributions[product.ID] {
			i, ok := index[row.NutrientID]
			if !ok {
				continue
			}
			amount := row.AmountPerServing * row.BioavailabilityFactor
			acc[i].ActualAmount += amount
			acc[i].Contributions = append(acc[i].Contributions, Contribution{
				Supplement: cloneSupplement(product),
				Amount:     amount,
			})
		}
	}

	result := Result{
		Nutrients:   []NutrientCoverage{},
		Warnings:    []string{},
		WeightKg:    a.weightKg,
		Supplements: a.Selected(),
	}

	var totalCoverage float64
	for i := range acc {
		data := &acc[i]
		if data.ActualAmount == 0 {
			continue
		}

		data.Coverage = Coverage(data.ActualAmount, data.RecommendedAmount)
		for j := range data.Contributions {
			data.Contributions[j].Percentage = share(data.Contributions[j].Amount, data.ActualAmount)
		}

		if limit, ok := UpperLimit(data.Nutrient, a.weightKg); ok && data.ActualAmount > limit {
			result.Warnings = append(result.Warnings, overLimitWarning(data.Nutrient, data.Coverage))
		}

		totalCoverage += data.Coverage
		result.Nutrients = append(result.Nutrients, *data)
	}

	if len(result.Nutrients) > 0 {
		result.CoveragePercentage = int(math.Round(totalCoverage / float64(len(result.Nutrients))))
	}
	return result
}

func overLimitWarning(n entities.Nutrient, coverage float64) string {
	return fmt.Sprintf("%s exceeds the recommended upper limit (%d%%)", n.DisplayName(), int(math.Round(coverage)))
}
