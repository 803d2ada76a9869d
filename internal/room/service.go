package room

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/tomhotel/booking-backend/internal/pkg/storage"
)

// Photos are normalized to fit this bounding box before being stored.
const (
	photoMaxWidth  = 1600
	photoMaxHeight = 1200
)

type CreateRequest struct {
	Name        string
	Type        string
	Price       float64
	Capacity    int
	Description string
	Amenities   []string
	ImageURL    string
	Available   bool
}

// UpdateRequest carries a partial room update. Nil fields are left
// unchanged; Available covers the admin availability toggle.
type UpdateRequest struct {
	Name        *string
	Type        *string
	Price       *float64
	Capacity    *int
	Description *string
	Amenities   []string
	ImageURL    *string
	Available   *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	UploadPhoto(ctx context.Context, id string, header *multipart.FileHeader) (*Room, error)
	DownloadPhoto(ctx context.Context, id string) (io.ReadCloser, error)
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func validType(t Type) bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !validType(Type(req.Type)) {
		return nil, ErrInvalidType
	}
	if req.Price < 0 {
		return nil, ErrNegativePrice
	}
	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	amenities := req.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	rm := &Room{
		Name:        name,
		Type:        Type(req.Type),
		Price:       req.Price,
		Capacity:    req.Capacity,
		Description: req.Description,
		Amenities:   amenities,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		rm.Name = name
	}
	if req.Type != nil {
		if !validType(Type(*req.Type)) {
			return nil, ErrInvalidType
		}
		rm.Type = Type(*req.Type)
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrNegativePrice
		}
		rm.Price = *req.Price
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrInvalidCapacity
		}
		rm.Capacity = *req.Capacity
	}
	if req.Description != nil {
		rm.Description = *req.Description
	}
	if req.Amenities != nil {
		rm.Amenities = req.Amenities
	}
	if req.ImageURL != nil {
		rm.ImageURL = *req.ImageURL
	}
	if req.Available != nil {
		rm.Available = *req.Available
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) UploadPhoto(ctx context.Context, id string, header *multipart.FileHeader) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	processed, err := s.imgProc.FitJPEG(src, photoMaxWidth, photoMaxHeight)
	if err != nil {
		return nil, ErrInvalidPhoto
	}

	photoID := uuid.New().String()
	path := fmt.Sprintf("rooms/%s/%s.jpg", photoID[:2], photoID)

	if err := s.storage.Save(ctx, path, processed); err != nil {
		return nil, fmt.Errorf("failed to save room photo: %w", err)
	}

	oldPath := rm.PhotoPath

	rm.PhotoPath = &path
	rm.ImageURL = "/v1/rooms/" + rm.ID + "/photo"
	if err := s.repo.Update(ctx, rm); err != nil {
		_ = s.storage.Delete(ctx, path)
		return nil, err
	}

	// Best-effort cleanup of the replaced photo.
	if oldPath != nil {
		_ = s.storage.Delete(ctx, *oldPath)
	}

	return rm, nil
}

func (s *service) DownloadPhoto(ctx context.Context, id string) (io.ReadCloser, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rm.PhotoPath == nil {
		return nil, ErrNoPhoto
	}

	stream, err := s.storage.Get(ctx, *rm.PhotoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve room photo: %w", err)
	}
	return stream, nil
}
