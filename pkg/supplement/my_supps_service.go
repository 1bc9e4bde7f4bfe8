package supplement

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/entities"
	"My-Supps-Backend/pkg/catalog"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MySuppsService interface {
		AddMySupp(ctx context.Context, userID string, req domain.AddMySuppRequest) (domain.MySuppResponse, error)
		GetMySupps(ctx context.Context, userID string) ([]domain.MySuppResponse, error)
		UpdateMySupp(ctx context.Context, userID, id string, req domain.UpdateMySuppRequest) (domain.MySuppResponse, error)
		RemoveMySupp(ctx context.Context, userID, id string) error
		GetSelectedSupplementIDs(ctx context.Context, userID string) ([]uuid.UUID, error)
	}

	mySuppsService struct {
		userSupplementRepository UserSupplementRepository
		catalogRepository        catalog.CatalogRepository
	}
)

func NewMySuppsService(userSupplementRepository UserSupplementRepository, catalogRepository catalog.CatalogRepository) MySuppsService {
	return &mySuppsService{
		userSupplementRepository: userSupplementRepository,
		catalogRepository:        catalogRepository,
	}
}

func (s *mySuppsService) AddMySupp(ctx context.Context, userID string, req domain.AddMySuppRequest) (domain.MySuppResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MySuppResponse{}, domain.ErrParseUUID
	}

	supplement, err := s.resolveSupplement(ctx, req)
	if err != nil {
		return domain.MySuppResponse{}, err
	}

	_, err = s.userSupplementRepository.GetUserSupplementBySupplementID(ctx, userID, supplement.ID.String())
	if err == nil {
		return domain.MySuppResponse{}, domain.ErrAlreadyOwned
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.MySuppResponse{}, err
	}

	dailyIntake := req.DailyIntake
	if dailyIntake <= 0 {
		dailyIntake = 1
	}

	userSupplement := &entities.UserSupplement{
		ID:           uuid.New(),
		UserID:       userUUID,
		SupplementID: supplement.ID,
		IsSelected:   req.IsSelected,
		DailyIntake:  dailyIntake,
	}
	if err := s.userSupplementRepository.AddUserSupplement(ctx, userSupplement); err != nil {
		return domain.MySuppResponse{}, err
	}

	return toMySuppResponse(userSupplement, supplement), nil
}

func (s *mySuppsService) resolveSupplement(ctx context.Context, req domain.AddMySuppRequest) (*entities.Supplement, error) {
	var (
		supplement *entities.Supplement
		err        error
	)
	switch {
	case req.SupplementID != "":
		if _, parseErr := uuid.Parse(req.SupplementID); parseErr != nil {
			return nil, domain.ErrParseUUID
		}
		supplement, err = s.catalogRepository.GetSupplementByID(ctx, req.SupplementID)
	case req.ProductURL != "":
		iherbID, parseErr := catalog.ParseIHerbID(req.ProductURL)
		if parseErr != nil {
			return nil, parseErr
		}
		supplement, err = s.catalogRepository.GetSupplementByIHerbID(ctx, iherbID)
	default:
		return nil, domain.ErrMissingSupplementRef
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSupplementNotFound
		}
		return nil, err
	}
	return supplement, nil
}

func (s *mySuppsService) GetMySupps(ctx context.Context, userID string) ([]domain.MySuppResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	userSupplements, err := s.userSupplementRepository.GetUserSupplements(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(userSupplements))
	for _, us := range userSupplements {
		ids = append(ids, us.SupplementID)
	}
	supplements, err := s.catalogRepository.GetSupplementsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entities.Supplement, len(supplements))
	for _, supplement := range supplements {
		byID[supplement.ID] = supplement
	}

	res := make([]domain.MySuppResponse, 0, len(userSupplements))
	for _, us := range userSupplements {
		supplement, ok := byID[us.SupplementID]
		if !ok {
			// the catalog no longer lists it
			continue
		}
		res = append(res, toMySuppResponse(us, supplement))
	}
	return res, nil
}

func (s *mySuppsService) UpdateMySupp(ctx context.Context, userID, id string, req domain.UpdateMySuppRequest) (domain.MySuppResponse, error) {
	userSupplement, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return domain.MySuppResponse{}, err
	}

	if req.IsSelected != nil {
		userSupplement.IsSelected = *req.IsSelected
	}
	if req.DailyIntake != nil && *req.DailyIntake > 0 {
		userSupplement.DailyIntake = *req.DailyIntake
	}
	if req.Notes != nil {
		userSupplement.Notes = *req.Notes
	}

	if err := s.userSupplementRepository.UpdateUserSupplement(ctx, userSupplement); err != nil {
		return domain.MySuppResponse{}, err
	}

	supplement, err := s.catalogRepository.GetSupplementByID(ctx, userSupplement.SupplementID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MySuppResponse{}, domain.ErrSupplementNotFound
		}
		return domain.MySuppResponse{}, err
	}
	return toMySuppResponse(userSupplement, supplement), nil
}

func (s *mySuppsService) RemoveMySupp(ctx context.Context, userID, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.userSupplementRepository.DeleteUserSupplement(ctx, id)
}

func (s *mySuppsService) GetSelectedSupplementIDs(ctx context.Context, userID string) ([]uuid.UUID, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	raw, err := s.userSupplementRepository.GetSelectedSupplementIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// getOwned loads a my-supps entry and checks it belongs to userID. Entries
// of other users are reported as missing.
func (s *mySuppsService) getOwned(ctx context.Context, userID, id string) (*entities.UserSupplement, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	userSupplement, err := s.userSupplementRepository.GetUserSupplementByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserSupplementNotFound
		}
		return nil, err
	}
	if userSupplement.UserID.String() != userID {
		return nil, domain.ErrUserSupplementNotFound
	}
	return userSupplement, nil
}

func toMySuppResponse(us *entities.UserSupplement, supplement *entities.Supplement) domain.MySuppResponse {
	return domain.MySuppResponse{
		ID:          us.ID.String(),
		Supplement:  catalog.ToSupplementResponse(*supplement),
		IsSelected:  us.IsSelected,
		DailyIntake: us.DailyIntake,
		Notes:       us.Notes,
		AddedAt:     us.AddedAt,
	}
}
