package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	byID map[string]*Room
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: map[string]*Room{}}
}

func (f *fakeRepository) Create(ctx context.Context, rm *Room) error {
	rm.ID = "r1"
	f.byID[rm.ID] = rm
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	if rm, ok := f.byID[id]; ok {
		cp := *rm
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (f *fakeRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return nil, 0, nil
}

func (f *fakeRepository) Update(ctx context.Context, rm *Room) error {
	if _, ok := f.byID[rm.ID]; !ok {
		return ErrNotFound
	}
	cp := *rm
	f.byID[rm.ID] = &cp
	return nil
}

func TestCreateRoom(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)

	rm, err := svc.Create(context.Background(), CreateRequest{
		Name:      "  Deluxe King  ",
		Type:      "Deluxe",
		Price:     3000,
		Capacity:  2,
		Available: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Deluxe King", rm.Name)
	assert.Equal(t, TypeDeluxe, rm.Type)
	// Nil amenities are normalized so the JSON shows an empty array.
	assert.NotNil(t, rm.Amenities)
}

func TestCreateRoomValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name:    "blank name",
			req:     CreateRequest{Name: "  ", Type: "Single", Price: 100, Capacity: 1},
			wantErr: ErrEmptyName,
		},
		{
			name:    "unknown type",
			req:     CreateRequest{Name: "Pod", Type: "Capsule", Price: 100, Capacity: 1},
			wantErr: ErrInvalidType,
		},
		{
			name:    "negative price",
			req:     CreateRequest{Name: "Pod", Type: "Single", Price: -1, Capacity: 1},
			wantErr: ErrNegativePrice,
		},
		{
			name:    "zero capacity",
			req:     CreateRequest{Name: "Pod", Type: "Single", Price: 100},
			wantErr: ErrInvalidCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepository(), nil)

			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateRoomPartial(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateRequest{
		Name: "Deluxe King", Type: "Deluxe", Price: 3000, Capacity: 2, Available: true,
	})
	require.NoError(t, err)

	price := 3500.0
	available := false
	updated, err := svc.Update(context.Background(), created.ID, UpdateRequest{
		Price:     &price,
		Available: &available,
	})
	require.NoError(t, err)

	assert.Equal(t, 3500.0, updated.Price)
	assert.False(t, updated.Available)
	// Untouched fields survive the partial update.
	assert.Equal(t, "Deluxe King", updated.Name)
	assert.Equal(t, 2, updated.Capacity)
}

func TestUpdateRoomRejectsBadFields(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateRequest{
		Name: "Deluxe King", Type: "Deluxe", Price: 3000, Capacity: 2,
	})
	require.NoError(t, err)

	blank := "   "
	_, err = svc.Update(context.Background(), created.ID, UpdateRequest{Name: &blank})
	assert.ErrorIs(t, err, ErrEmptyName)

	negative := -5.0
	_, err = svc.Update(context.Background(), created.ID, UpdateRequest{Price: &negative})
	assert.ErrorIs(t, err, ErrNegativePrice)

	// A rejected update leaves the stored row untouched.
	rm, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, rm.Price)
	assert.Equal(t, "Deluxe King", rm.Name)
}

func TestUpdateUnknownRoom(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	name := "Suite"
	_, err := svc.Update(context.Background(), "missing", UpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDownloadPhotoWithoutPhoto(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateRequest{
		Name: "Deluxe King", Type: "Deluxe", Price: 3000, Capacity: 2,
	})
	require.NoError(t, err)

	_, err = svc.DownloadPhoto(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNoPhoto)
}
