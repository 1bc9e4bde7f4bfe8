package catalog

import (
	"My-Supps-Backend/domain"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CatalogService interface {
		GetNutrients(ctx context.Context) ([]domain.NutrientResponse, error)
		GetSupplements(ctx context.Context, query string, page, limit int) ([]domain.SupplementResponse, int64, error)
		GetSupplementDetail(ctx context.Context, id string) (domain.SupplementDetailResponse, error)
		LookupByURL(ctx context.Context, url string) (domain.SupplementResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
	}
}

func (s *catalogService) GetNutrients(ctx context.Context) ([]domain.NutrientResponse, error) {
	nutrients, err := s.catalogRepository.ListNutrients(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.NutrientResponse, 0, len(nutrients))
	for _, n := range nutrients {
		res = append(res, ToNutrientResponse(n))
	}
	return res, nil
}

func (s *catalogService) GetSupplements(ctx context.Context, query string, page, limit int) ([]domain.SupplementResponse, int64, error) {
	supplements, count, err := s.catalogRepository.GetSupplements(ctx, query, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.SupplementResponse, 0, len(supplements))
	for _, supplement := range supplements {
		res = append(res, ToSupplementResponse(*supplement))
	}
	return res, count, nil
}

func (s *catalogService) GetSupplementDetail(ctx context.Context, id string) (domain.SupplementDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.SupplementDetailResponse{}, domain.ErrParseUUID
	}

	supplement, err := s.catalogRepository.GetSupplementByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SupplementDetailResponse{}, domain.ErrSupplementNotFound
		}
		return domain.SupplementDetailResponse{}, err
	}

	rows, err := s.catalogRepository.ListContributions(ctx, id)
	if err != nil {
		return domain.SupplementDetailResponse{}, err
	}
	nutrients, err := s.catalogRepository.ListNutrients(ctx)
	if err != nil {
		return domain.SupplementDetailResponse{}, err
	}

	return ToSupplementDetailResponse(*supplement, rows, nutrients), nil
}

func (s *catalogService) LookupByURL(ctx context.Context, url string) (domain.SupplementResponse, error) {
	iherbID, err := ParseIHerbID(url)
	if err != nil {
		return domain.SupplementResponse{}, err
	}

	supplement, err := s.catalogRepository.GetSupplementByIHerbID(ctx, iherbID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SupplementResponse{}, domain.ErrSupplementNotFound
		}
		return domain.SupplementResponse{}, err
	}
	return ToSupplementResponse(*supplement), nil
}
