package booking

import (
	"context"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomhotel/booking-backend/internal/room"
)

type fakeRepository struct {
	createErr error
	byID      map[string]*Booking

	created       []*Booking
	statusUpdates map[string]Status
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:          map[string]*Booking{},
		statusUpdates: map[string]Status{},
	}
}

func (f *fakeRepository) Create(ctx context.Context, b *Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = "b1"
	b.CreatedAt = time.Now()
	f.created = append(f.created, b)
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	if b, ok := f.byID[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (f *fakeRepository) GetByReference(ctx context.Context, reference string) (*Booking, error) {
	for _, b := range f.byID {
		if b.Reference == reference {
			cp := *b
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return nil, 0, nil
}

func (f *fakeRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	if _, ok := f.byID[id]; !ok {
		return ErrNotFound
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeRepository) Stats(ctx context.Context) (*Stats, error) {
	return &Stats{}, nil
}

type fakeRoomService struct {
	rooms map[string]*room.Room
}

func (f *fakeRoomService) GetByID(ctx context.Context, id string) (*room.Room, error) {
	if rm, ok := f.rooms[id]; ok {
		return rm, nil
	}
	return nil, room.ErrNotFound
}

func (f *fakeRoomService) Create(ctx context.Context, req room.CreateRequest) (*room.Room, error) {
	panic("not used")
}

func (f *fakeRoomService) List(ctx context.Context, filter room.Filter) ([]*room.Room, int, error) {
	panic("not used")
}

func (f *fakeRoomService) Update(ctx context.Context, id string, req room.UpdateRequest) (*room.Room, error) {
	panic("not used")
}

func (f *fakeRoomService) UploadPhoto(ctx context.Context, id string, header *multipart.FileHeader) (*room.Room, error) {
	panic("not used")
}

func (f *fakeRoomService) DownloadPhoto(ctx context.Context, id string) (io.ReadCloser, error) {
	panic("not used")
}

func newTestService(repo *fakeRepository) Service {
	rooms := &fakeRoomService{rooms: map[string]*room.Room{
		"r1": {ID: "r1", Name: "Deluxe King", Type: room.TypeDeluxe, Price: 3000, Capacity: 2, Available: true},
	}}
	return NewService(repo, rooms, NewReferenceGenerator("TOM"))
}

func TestCreateSetsPendingAndReference(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), CreateRequest{
		UserID:     "user-1",
		RoomID:     "r1",
		GuestName:  "Alice Chen",
		GuestEmail: "a@b.co",
		GuestPhone: "0912345678",
		CheckIn:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		TotalCost:  9000,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, b.Status)
	assert.Regexp(t, referenceShape, b.Reference)
	require.NotNil(t, b.UserID)
	assert.Equal(t, "user-1", *b.UserID)
	assert.Nil(t, b.SpecialRequests)
	require.Len(t, repo.created, 1)
}

func TestCreateAnonymousAndRequests(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), CreateRequest{
		RoomID:          "r1",
		GuestName:       "Bob",
		GuestEmail:      "bob@example.com",
		GuestPhone:      "0912345678",
		Guests:          1,
		SpecialRequests: "  high floor  ",
	})
	require.NoError(t, err)

	assert.Nil(t, b.UserID)
	require.NotNil(t, b.SpecialRequests)
	assert.Equal(t, "high floor", *b.SpecialRequests)
}

func TestCreateUnknownRoom(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.Create(context.Background(), CreateRequest{RoomID: "missing"})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		target  Status
		wantErr error
	}{
		{name: "pending to confirmed", current: StatusPending, target: StatusConfirmed},
		{name: "pending to cancelled", current: StatusPending, target: StatusCancelled},
		{name: "confirmed is terminal", current: StatusConfirmed, target: StatusCancelled, wantErr: ErrNotPending},
		{name: "cancelled is terminal", current: StatusCancelled, target: StatusConfirmed, wantErr: ErrNotPending},
		{name: "pending is not a target", current: StatusPending, target: StatusPending, wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			repo.byID["b1"] = &Booking{ID: "b1", Status: tt.current}
			svc := newTestService(repo)

			b, err := svc.UpdateStatus(context.Background(), "b1", tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.statusUpdates)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, b.Status)
			assert.Equal(t, tt.target, repo.statusUpdates["b1"])
		})
	}
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.UpdateStatus(context.Background(), "missing", StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}
