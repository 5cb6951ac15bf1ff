package office

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"officerent/internal/domain"
	"officerent/internal/pkg/photos"
	"officerent/internal/repository"
)

type Service struct {
	offices   OfficeRepositoryInterface
	photosDir string
}

func NewService(offices OfficeRepositoryInterface, photosDir string) *Service {
	return &Service{offices: offices, photosDir: photosDir}
}

func (s *Service) List(ctx context.Context) ([]domain.Office, error) {
	return s.offices.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Office, error) {
	o, err := s.offices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// Create сохраняет офис и его фотографии. Фото декодируются до вставки,
// но записываются на диск после неё: каталог именуется по id. Если запись
// файлов сорвалась, только что созданный офис убирается обратно.
func (s *Service) Create(ctx context.Context, req OfficeRequest) (*domain.Office, error) {
	staged, err := photos.Decode(req.Photos)
	if err != nil {
		return nil, ErrPhotoSave
	}

	o := &domain.Office{
		Name:        req.Name,
		Address:     req.Address,
		Options:     req.Options,
		Description: req.Description,
		Area:        req.Area,
		Price:       req.Price,
		Active:      true,
		Photos:      []string{},
	}
	if err := s.offices.Create(ctx, o); err != nil {
		return nil, err
	}

	paths, err := photos.Save(s.photosDir, o.ID, staged)
	if err != nil {
		_ = photos.RemoveDir(s.photosDir, o.ID)
		_ = s.offices.Delete(ctx, o.ID)
		return nil, ErrPhotoSave
	}

	o.Photos = paths
	if err := s.offices.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Update обновляет офис. Новые фото сперва декодируются и только после
// успешной проверки сносится старый каталог — битый запрос не оставит
// офис без фотографий.
func (s *Service) Update(ctx context.Context, id int64, req OfficeRequest) error {
	o, err := s.offices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	staged, err := photos.Decode(req.Photos)
	if err != nil {
		return ErrPhotoSave
	}

	if err := photos.RemoveDir(s.photosDir, id); err != nil {
		return ErrPhotoRemove
	}
	paths, err := photos.Save(s.photosDir, id, staged)
	if err != nil {
		return ErrPhotoSave
	}

	o.Name = req.Name
	o.Address = req.Address
	o.Options = req.Options
	o.Description = req.Description
	o.Area = req.Area
	o.Price = req.Price
	o.Photos = paths
	return s.offices.Update(ctx, o)
}

// Delete убирает офис с каскадом заявок и избранного, затем чистит
// каталог фотографий.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.offices.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.offices.Delete(ctx, id); err != nil {
		return err
	}
	if err := photos.RemoveDir(s.photosDir, id); err != nil {
		return ErrPhotoRemove
	}
	return nil
}

func (s *Service) Search(ctx context.Context, req SearchRequest) ([]domain.Office, error) {
	return s.offices.Search(ctx, repository.OfficeFilters{
		MinArea:  req.MinArea,
		MaxArea:  req.MaxArea,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	})
}

func (s *Service) SearchByName(ctx context.Context, query string) ([]domain.Office, error) {
	return s.offices.SearchByName(ctx, query)
}
