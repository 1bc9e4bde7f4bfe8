package simulation

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/entities"
	"My-Supps-Backend/pkg/analyzer"
	"My-Supps-Backend/pkg/catalog"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// WeightSource supplies the body weight a new session starts with.
	WeightSource interface {
		GetWeight(ctx context.Context, userID string) (float64, error)
	}

	// SelectionSource supplies the supplements a new session starts with.
	SelectionSource interface {
		GetSelectedSupplementIDs(ctx context.Context, userID string) ([]uuid.UUID, error)
	}

	SimulationService interface {
		GetSimulation(ctx context.Context, userID string) (domain.SimulationResponse, error)
		AddProduct(ctx context.Context, userID, supplementID string) (domain.SimulationResponse, error)
		RemoveProduct(ctx context.Context, userID, supplementID string) (domain.SimulationResponse, error)
		Clear(ctx context.Context, userID string) (domain.SimulationResponse, error)
		SetWeight(ctx context.Context, userID string, weightKg float64) (domain.SimulationResponse, error)
		// Simulate analyzes an ad hoc selection without touching any session.
		// An empty userID uses the default weight when the request has none.
		Simulate(ctx context.Context, userID string, req domain.RunSimulationRequest) (domain.SimulationResponse, error)
	}

	simulationService struct {
		catalogRepository catalog.CatalogRepository
		weights           WeightSource
		selections        SelectionSource
		sessions          *SessionStore
		defaultWeightKg   float64
	}
)

func NewSimulationService(
	catalogRepository catalog.CatalogRepository,
	weights WeightSource,
	selections SelectionSource,
	sessions *SessionStore,
	defaultWeightKg float64,
) SimulationService {
	return &simulationService{
		catalogRepository: catalogRepository,
		weights:           weights,
		selections:        selections,
		sessions:          sessions,
		defaultWeightKg:   defaultWeightKg,
	}
}

func (s *simulationService) GetSimulation(ctx context.Context, userID string) (domain.SimulationResponse, error) {
	return s.withSession(ctx, userID, func(a *analyzer.Analyzer) ([]uuid.UUID, func(), error) {
		return a.SelectedIDs(), nil, nil
	})
}

func (s *simulationService) AddProduct(ctx context.Context, userID, supplementID string) (domain.SimulationResponse, error) {
	product, err := s.getSupplement(ctx, supplementID)
	if err != nil {
		return domain.SimulationResponse{}, err
	}

	return s.withSession(ctx, userID, func(a *analyzer.Analyzer) ([]uuid.UUID, func(), error) {
		return append(a.SelectedIDs(), product.ID), func() { a.AddProduct(*product) }, nil
	})
}

func (s *simulationService) RemoveProduct(ctx context.Context, userID, supplementID string) (domain.SimulationResponse, error) {
	id, err := uuid.Parse(supplementID)
	if err != nil {
		return domain.SimulationResponse{}, domain.ErrParseUUID
	}

	return s.withSession(ctx, userID, func(a *analyzer.Analyzer) ([]uuid.UUID, func(), error) {
		ids := make([]uuid.UUID, 0)
		for _, selected := range a.SelectedIDs() {
			if selected != id {
				ids = append(ids, selected)
			}
		}
		return ids, func() { a.RemoveProduct(id) }, nil
	})
}

func (s *simulationService) Clear(ctx context.Context, userID string) (domain.SimulationResponse, error) {
	return s.withSession(ctx, userID, func(a *analyzer.Analyzer) ([]uuid.UUID, func(), error) {
		return nil, a.Clear, nil
	})
}

func (s *simulationService) SetWeight(ctx context.Context, userID string, weightKg float64) (domain.SimulationResponse, error) {
	if err := domain.ValidateWeight(weightKg); err != nil {
		return domain.SimulationResponse{}, err
	}

	return s.withSession(ctx, userID, func(a *analyzer.Analyzer) ([]uuid.UUID, func(), error) {
		return a.SelectedIDs(), func() { a.SetWeight(weightKg) }, nil
	})
}

func (s *simulationService) Simulate(ctx context.Context, userID string, req domain.RunSimulationRequest) (domain.SimulationResponse, error) {
	weightKg := req.WeightKg
	if weightKg == 0 {
		weightKg = s.defaultWeightKg
		if userID != "" {
			w, err := s.weights.GetWeight(ctx, userID)
			if err != nil {
				return domain.SimulationResponse{}, err
			}
			weightKg = w
		}
	}
	if err := domain.ValidateWeight(weightKg); err != nil {
		return domain.SimulationResponse{}, err
	}

	ids := make([]uuid.UUID, 0, len(req.SupplementIDs))
	for _, raw := range req.SupplementIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.SimulationResponse{}, domain.ErrParseUUID
		}
		ids = append(ids, id)
	}

	products, err := s.catalogRepository.GetSupplementsByIDs(ctx, ids)
	if err != nil {
		return domain.SimulationResponse{}, err
	}
	found := make(map[uuid.UUID]struct{}, len(products))
	for _, p := range products {
		found[p.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return domain.SimulationResponse{}, fmt.Errorf("%w: %s", domain.ErrSupplementNotFound, id)
		}
	}

	ref, err := s.loadReferenceData(ctx, ids)
	if err != nil {
		return domain.SimulationResponse{}, err
	}

	a := analyzer.New(ref, analyzer.WithWeight(weightKg))
	for _, p := range products {
		a.AddProduct(*p)
	}
	return ToSimulationResponse(a.Analyze()), nil
}

// withSession runs plan against the user's session under its lock. plan
// returns the selection the mutation will produce and the mutation itself.
// Reference data for that selection is loaded first, so a failed load leaves
// the session untouched.
func (s *simulationService) withSession(
	ctx context.Context,
	userID string,
	plan func(a *analyzer.Analyzer) (ids []uuid.UUID, mutate func(), err error),
) (domain.SimulationResponse, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return domain.SimulationResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	ids, mutate, err := plan(sess.analyzer)
	if err != nil {
		return domain.SimulationResponse{}, err
	}
	ref, err := s.loadReferenceData(ctx, ids)
	if err != nil {
		return domain.SimulationResponse{}, err
	}

	if mutate != nil {
		mutate()
	}
	sess.analyzer.SetReferenceData(ref)
	return ToSimulationResponse(sess.analyzer.Analyze()), nil
}

// session returns the user's session, creating one from the stored profile
// weight and the selected my-supps when there is none yet.
func (s *simulationService) session(ctx context.Context, userID string) (*session, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}
	if sess, ok := s.sessions.get(userID); ok {
		return sess, nil
	}

	weightKg, err := s.weights.GetWeight(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids, err := s.selections.GetSelectedSupplementIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	products, err := s.catalogRepository.GetSupplementsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	a := analyzer.New(analyzer.ReferenceData{}, analyzer.WithWeight(weightKg))
	for _, p := range products {
		a.AddProduct(*p)
	}
	return s.sessions.put(userID, a), nil
}

func (s *simulationService) getSupplement(ctx context.Context, supplementID string) (*entities.Supplement, error) {
	if _, err := uuid.Parse(supplementID); err != nil {
		return nil, domain.ErrParseUUID
	}

	product, err := s.catalogRepository.GetSupplementByID(ctx, supplementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSupplementNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *simulationService) loadReferenceData(ctx context.Context, ids []uuid.UUID) (analyzer.ReferenceData, error) {
	nutrients, err := s.catalogRepository.ListNutrients(ctx)
	if err != nil {
		return analyzer.ReferenceData{}, fmt.Errorf("%w: %v", domain.ErrReferenceDataUnavailable, err)
	}
	contributions, err := s.catalogRepository.ListContributionsFor(ctx, ids)
	if err != nil {
		return analyzer.ReferenceData{}, fmt.Errorf("%w: %v", domain.ErrReferenceDataUnavailable, err)
	}
	return analyzer.ReferenceData{
		Nutrients:     nutrients,
		Contributions: contributions,
	}, nil
}
