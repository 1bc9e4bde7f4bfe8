package simulation

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/entities"
	"My-Supps-Backend/pkg/catalog"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfile struct {
	weight float64
	ids    []uuid.UUID
}

func (s stubProfile) GetWeight(ctx context.Context, userID string) (float64, error) {
	return s.weight, nil
}

func (s stubProfile) GetSelectedSupplementIDs(ctx context.Context, userID string) ([]uuid.UUID, error) {
	return s.ids, nil
}

// flakyCatalog fails nutrient loads while down is set.
type flakyCatalog struct {
	catalog.CatalogRepository
	mu   sync.Mutex
	down bool
}

func (c *flakyCatalog) setDown(down bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.down = down
}

func (c *flakyCatalog) ListNutrients(ctx context.Context) ([]entities.Nutrient, error) {
	c.mu.Lock()
	down := c.down
	c.mu.Unlock()
	if down {
		return nil, errors.New("connection refused")
	}
	return c.CatalogRepository.ListNutrients(ctx)
}

func newService(profile stubProfile) (SimulationService, *flakyCatalog) {
	repo := &flakyCatalog{CatalogRepository: catalog.NewFixtureCatalog(catalog.DefaultFixtures())}
	return NewSimulationService(repo, profile, profile, NewSessionStore(time.Hour), 60), repo
}

func TestSessionSeededFromProfile(t *testing.T) {
	service, _ := newService(stubProfile{weight: 70, ids: []uuid.UUID{catalog.MagnesiumID}})

	res, err := service.GetSimulation(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, 70.0, res.WeightKg)
	require.Len(t, res.Supplements, 1)
	assert.Equal(t, catalog.MagnesiumID.String(), res.Supplements[0].ID)

	require.Len(t, res.Nutrients, 1)
	mg := res.Nutrients[0]
	assert.Equal(t, "Magnesium", mg.Nutrient.NameEn)
	assert.InDelta(t, 160, mg.ActualAmount, 1e-9)
	assert.InDelta(t, 420, mg.RecommendedAmount, 1e-9)
	assert.Equal(t, "160.0mg", mg.Display)
}

func TestSessionMutations(t *testing.T) {
	service, _ := newService(stubProfile{weight: 60})
	ctx := context.Background()
	userID := uuid.NewString()

	res, err := service.GetSimulation(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, res.Nutrients)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 0, res.CoveragePercentage)

	res, err = service.AddProduct(ctx, userID, catalog.VitaminD3ID.String())
	require.NoError(t, err)
	require.Len(t, res.Nutrients, 1)
	assert.Equal(t, []string{"Vitamin D exceeds the recommended upper limit (100%)"}, res.Warnings)

	res, err = service.AddProduct(ctx, userID, catalog.MagnesiumID.String())
	require.NoError(t, err)
	assert.Len(t, res.Nutrients, 2)
	assert.Equal(t, 72, res.CoveragePercentage)

	// adding twice changes nothing
	again, err := service.AddProduct(ctx, userID, catalog.MagnesiumID.String())
	require.NoError(t, err)
	assert.Equal(t, res, again)

	res, err = service.RemoveProduct(ctx, userID, catalog.VitaminD3ID.String())
	require.NoError(t, err)
	require.Len(t, res.Supplements, 1)
	assert.Empty(t, res.Warnings)

	res, err = service.SetWeight(ctx, userID, 80)
	require.NoError(t, err)
	assert.Equal(t, 80.0, res.WeightKg)
	assert.InDelta(t, 480, res.Nutrients[0].RecommendedAmount, 1e-9)

	res, err = service.Clear(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, res.Supplements)
	assert.Equal(t, 80.0, res.WeightKg)
}

func TestSessionErrors(t *testing.T) {
	service, _ := newService(stubProfile{weight: 60})
	ctx := context.Background()
	userID := uuid.NewString()

	_, err := service.GetSimulation(ctx, "not-a-user")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = service.AddProduct(ctx, userID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrSupplementNotFound)

	_, err = service.RemoveProduct(ctx, userID, "bad")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	for _, weight := range []float64{0, -3, 501} {
		_, err = service.SetWeight(ctx, userID, weight)
		assert.ErrorIs(t, err, domain.ErrInvalidWeight)
	}
}

func TestFailedReferenceLoadLeavesSessionUntouched(t *testing.T) {
	service, repo := newService(stubProfile{weight: 60})
	ctx := context.Background()
	userID := uuid.NewString()

	_, err := service.AddProduct(ctx, userID, catalog.VitaminD3ID.String())
	require.NoError(t, err)

	repo.setDown(true)
	_, err = service.AddProduct(ctx, userID, catalog.MagnesiumID.String())
	assert.ErrorIs(t, err, domain.ErrReferenceDataUnavailable)

	repo.setDown(false)
	res, err := service.GetSimulation(ctx, userID)
	require.NoError(t, err)
	require.Len(t, res.Supplements, 1)
	assert.Equal(t, catalog.VitaminD3ID.String(), res.Supplements[0].ID)
}

func TestConcurrentMutationsOnOneSession(t *testing.T) {
	service, _ := newService(stubProfile{weight: 60})
	ctx := context.Background()
	userID := uuid.NewString()

	ids := []string{catalog.VitaminD3ID.String(), catalog.MagnesiumID.String(), catalog.AshwagandhaID.String()}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := service.AddProduct(ctx, userID, ids[i%len(ids)])
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	res, err := service.GetSimulation(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, res.Supplements, 3)
	assert.Len(t, res.Nutrients, 2)
}

func TestSimulate(t *testing.T) {
	service, _ := newService(stubProfile{weight: 75})
	ctx := context.Background()

	res, err := service.Simulate(ctx, "", domain.RunSimulationRequest{
		SupplementIDs: []string{catalog.MagnesiumID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, 60.0, res.WeightKg)

	res, err = service.Simulate(ctx, uuid.NewString(), domain.RunSimulationRequest{
		SupplementIDs: []string{catalog.MagnesiumID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, 75.0, res.WeightKg)

	res, err = service.Simulate(ctx, "", domain.RunSimulationRequest{
		SupplementIDs: []string{catalog.MagnesiumID.String(), catalog.VitaminD3ID.String()},
		WeightKg:      50,
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.WeightKg)
	assert.Len(t, res.Supplements, 2)
	assert.Equal(t, catalog.MagnesiumID.String(), res.Supplements[0].ID)

	_, err = service.Simulate(ctx, "", domain.RunSimulationRequest{SupplementIDs: []string{uuid.NewString()}})
	assert.ErrorIs(t, err, domain.ErrSupplementNotFound)
}

func TestSessionStoreSweepsIdleSessions(t *testing.T) {
	store := NewSessionStore(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.put("a", nil)
	now = now.Add(2 * time.Minute)
	store.put("b", nil)

	assert.Equal(t, 1, store.Len())
	_, ok := store.get("a")
	assert.False(t, ok)
}

func TestSessionStoreSweepsOnLookup(t *testing.T) {
	store := NewSessionStore(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.put("a", nil)
	store.put("b", nil)
	now = now.Add(30 * time.Second)
	_, ok := store.get("b")
	require.True(t, ok)

	now = now.Add(45 * time.Second)
	_, ok = store.get("b")
	assert.True(t, ok)
	assert.Equal(t, 1, store.Len())

	now = now.Add(2 * time.Minute)
	_, ok = store.get("b")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}
