package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// LocationUseCase CRUD de ubicaciones del almacén.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

func (uc *LocationUseCase) Create(ctx context.Context, in dto.LocationRequest) (*entity.Location, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	loc := &entity.Location{Name: in.Name, Description: in.Description}
	if err := uc.repo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (uc *LocationUseCase) GetByID(ctx context.Context, id int64) (*entity.Location, error) {
	loc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	return loc, nil
}

func (uc *LocationUseCase) Update(ctx context.Context, id int64, in dto.LocationRequest) (*entity.Location, error) {
	loc, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	loc.Name = in.Name
	loc.Description = in.Description
	if err := uc.repo.Update(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (uc *LocationUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *LocationUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Location, error) {
	return uc.repo.List(ctx, limit, offset)
}

// CategoryUseCase CRUD de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*entity.Category, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	cat := &entity.Category{Name: in.Name, Description: in.Description}
	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	cat, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	return cat, nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*entity.Category, error) {
	cat, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cat.Name = in.Name
	cat.Description = in.Description
	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *CategoryUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	return uc.repo.List(ctx, limit, offset)
}

// TechnicalSpecUseCase CRUD de especificaciones técnicas.
type TechnicalSpecUseCase struct {
	repo repository.TechnicalSpecRepository
}

// NewTechnicalSpecUseCase construye el caso de uso.
func NewTechnicalSpecUseCase(repo repository.TechnicalSpecRepository) *TechnicalSpecUseCase {
	return &TechnicalSpecUseCase{repo: repo}
}

func (uc *TechnicalSpecUseCase) Create(ctx context.Context, in dto.TechnicalSpecRequest) (*entity.TechnicalSpec, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	spec := &entity.TechnicalSpec{Name: in.Name, Unit: in.Unit}
	if err := uc.repo.Create(ctx, spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func (uc *TechnicalSpecUseCase) GetByID(ctx context.Context, id int64) (*entity.TechnicalSpec, error) {
	spec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if spec == nil {
		return nil, domain.ErrNotFound
	}
	return spec, nil
}

func (uc *TechnicalSpecUseCase) Update(ctx context.Context, id int64, in dto.TechnicalSpecRequest) (*entity.TechnicalSpec, error) {
	spec, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	spec.Name = in.Name
	spec.Unit = in.Unit
	if err := uc.repo.Update(ctx, spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func (uc *TechnicalSpecUseCase) List(ctx context.Context, limit, offset int) ([]*entity.TechnicalSpec, error) {
	return uc.repo.List(ctx, limit, offset)
}

func (uc *TechnicalSpecUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
