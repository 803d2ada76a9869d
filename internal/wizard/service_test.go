package wizard

import (
	"context"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomhotel/booking-backend/internal/booking"
	"github.com/tomhotel/booking-backend/internal/room"
)

// fakeRoomService serves rooms from a map.
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

// fakeBookingService records the terminal write and serves lookups by
// reference.
type fakeBookingService struct {
	createErr   error
	created     []booking.CreateRequest
	byReference map[string]*booking.Booking
}

func (f *fakeBookingService) Create(ctx context.Context, req booking.CreateRequest) (*booking.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	b := &booking.Booking{
		ID:            "b1",
		RoomID:        req.RoomID,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Guests:        req.Guests,
		TotalCost:     req.TotalCost,
		Status:        booking.StatusPending,
		Reference:     "TOM-TEST0000-AAAAA",
		PaymentMethod: req.PaymentMethod,
	}
	return b, nil
}

func (f *fakeBookingService) GetByReference(ctx context.Context, reference string) (*booking.Booking, error) {
	if b, ok := f.byReference[reference]; ok {
		return b, nil
	}
	return nil, booking.ErrNotFound
}

func (f *fakeBookingService) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	panic("not used")
}

func (f *fakeBookingService) List(ctx context.Context, filter booking.Filter) ([]*booking.Booking, int, error) {
	panic("not used")
}

func (f *fakeBookingService) UpdateStatus(ctx context.Context, id string, status booking.Status) (*booking.Booking, error) {
	panic("not used")
}

func (f *fakeBookingService) Stats(ctx context.Context) (*booking.Stats, error) {
	panic("not used")
}

const testUserID = "user-1"

func newTestService(rooms map[string]*room.Room, bookings *fakeBookingService) (*service, *Store) {
	store := NewStore()
	svc := &service{
		store:          store,
		roomService:    &fakeRoomService{rooms: rooms},
		bookingService: bookings,
		// Frozen clock so past-date checks are reproducible.
		now: func() time.Time { return time.Date(2025, 2, 1, 15, 30, 0, 0, time.UTC) },
	}
	return svc, store
}

func deluxeKing() map[string]*room.Room {
	return map[string]*room.Room{
		"r1": {
			ID:        "r1",
			Name:      "Deluxe King",
			Type:      room.TypeDeluxe,
			Price:     3000,
			Capacity:  2,
			Available: true,
		},
	}
}

func TestSelectStayValidationOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		req     StayRequest
		wantErr error
	}{
		{
			name:    "no room selected wins over missing dates",
			req:     StayRequest{},
			wantErr: ErrNoRoomSelected,
		},
		{
			name:    "missing dates",
			req:     StayRequest{RoomID: "r1", Guests: 2},
			wantErr: ErrDatesRequired,
		},
		{
			name: "equal dates",
			req: StayRequest{
				RoomID:  "r1",
				CheckIn: date("2025-03-01"), CheckOut: date("2025-03-01"),
				Guests: 2,
			},
			wantErr: ErrCheckOutNotAfter,
		},
		{
			name: "reversed dates",
			req: StayRequest{
				RoomID:  "r1",
				CheckIn: date("2025-03-04"), CheckOut: date("2025-03-01"),
				Guests: 2,
			},
			wantErr: ErrCheckOutNotAfter,
		},
		{
			name: "zero guests",
			req: StayRequest{
				RoomID:  "r1",
				CheckIn: date("2025-03-01"), CheckOut: date("2025-03-04"),
			},
			wantErr: ErrGuestsOutOfRange,
		},
		{
			name: "guests above capacity",
			req: StayRequest{
				RoomID:  "r1",
				CheckIn: date("2025-03-01"), CheckOut: date("2025-03-04"),
				Guests: 3,
			},
			wantErr: ErrGuestsOutOfRange,
		},
		{
			name: "check-in in the past",
			req: StayRequest{
				RoomID:  "r1",
				CheckIn: date("2025-01-31"), CheckOut: date("2025-02-03"),
				Guests: 2,
			},
			wantErr: ErrCheckInPast,
		},
		{
			name: "unknown room",
			req: StayRequest{
				RoomID:  "missing",
				CheckIn: date("2025-03-01"), CheckOut: date("2025-03-04"),
				Guests: 2,
			},
			wantErr: ErrRoomNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService(deluxeKing(), &fakeBookingService{})

			_, err := svc.SelectStay(ctx, testUserID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)

			// A blocked step must not advance the draft.
			assert.Nil(t, store.Get(testUserID).Room)
		})
	}
}

func TestSelectStayCheckInTodayAllowed(t *testing.T) {
	svc, _ := newTestService(deluxeKing(), &fakeBookingService{})

	// The frozen clock is mid-afternoon; the comparison truncates to
	// midnight, so today is still a valid check-in date.
	_, err := svc.SelectStay(context.Background(), testUserID, StayRequest{
		RoomID:  "r1",
		CheckIn: date("2025-02-01"), CheckOut: date("2025-02-03"),
		Guests: 2,
	})
	assert.NoError(t, err)
}

func TestSelectStayUnavailableRoom(t *testing.T) {
	rooms := deluxeKing()
	rooms["r1"].Available = false
	svc, _ := newTestService(rooms, &fakeBookingService{})

	_, err := svc.SelectStay(context.Background(), testUserID, StayRequest{
		RoomID:  "r1",
		CheckIn: date("2025-03-01"), CheckOut: date("2025-03-04"),
		Guests: 2,
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestSelectStaySuccess(t *testing.T) {
	svc, store := newTestService(deluxeKing(), &fakeBookingService{})

	draft, err := svc.SelectStay(context.Background(), testUserID, StayRequest{
		RoomID:  "r1",
		CheckIn: date("2025-03-01"), CheckOut: date("2025-03-04"),
		Guests: 2,
	})
	require.NoError(t, err)

	require.NotNil(t, draft.Room)
	assert.Equal(t, "Deluxe King", draft.Room.Name)
	assert.Equal(t, 2, draft.Guests)
	assert.Equal(t, 9000.0, draft.TotalCost) // 3 nights x 3000

	// The merge is visible to subsequent readers.
	assert.Equal(t, draft, store.Get(testUserID))
}

func TestSubmitGuestInfoRequiresStay(t *testing.T) {
	svc, _ := newTestService(deluxeKing(), &fakeBookingService{})

	_, err := svc.SubmitGuestInfo(testUserID, GuestInfoRequest{
		Name: "Alice", Email: "alice@example.com", Phone: "0912345678",
	})
	assert.ErrorIs(t, err, ErrStayNotSelected)
}

func TestSubmitGuestInfoValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     GuestInfoRequest
		wantErr error
	}{
		{
			name:    "blank name",
			req:     GuestInfoRequest{Name: "   ", Email: "a@b.co", Phone: "0912345678"},
			wantErr: ErrNameRequired,
		},
		{
			name:    "email without dot after at",
			req:     GuestInfoRequest{Name: "Alice", Email: "a@b", Phone: "0912345678"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "phone shorter than 10",
			req:     GuestInfoRequest{Name: "Alice", Email: "a@b.co", Phone: "12345"},
			wantErr: ErrInvalidPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService(deluxeKing(), &fakeBookingService{})
			selectStay(t, svc)

			_, err := svc.SubmitGuestInfo(testUserID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, store.Get(testUserID).GuestName)
		})
	}
}

func TestSubmitGuestInfoTrimsFields(t *testing.T) {
	svc, _ := newTestService(deluxeKing(), &fakeBookingService{})
	selectStay(t, svc)

	draft, err := svc.SubmitGuestInfo(testUserID, GuestInfoRequest{
		Name:            "  Alice Chen  ",
		Email:           " a@b.co ",
		Phone:           " 0912345678 ",
		SpecialRequests: " late arrival ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Chen", draft.GuestName)
	assert.Equal(t, "a@b.co", draft.GuestEmail)
	assert.Equal(t, "0912345678", draft.GuestPhone)
	assert.Equal(t, "late arrival", draft.SpecialRequests)
}

func TestConfirmPaymentPreconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("no stay selected", func(t *testing.T) {
		svc, _ := newTestService(deluxeKing(), &fakeBookingService{})
		_, err := svc.ConfirmPayment(ctx, testUserID, "Cash")
		assert.ErrorIs(t, err, ErrStayNotSelected)
	})

	t.Run("no guest info", func(t *testing.T) {
		svc, _ := newTestService(deluxeKing(), &fakeBookingService{})
		selectStay(t, svc)
		_, err := svc.ConfirmPayment(ctx, testUserID, "Cash")
		assert.ErrorIs(t, err, ErrGuestInfoMissing)
	})

	t.Run("payment method required", func(t *testing.T) {
		svc, _ := newTestService(deluxeKing(), &fakeBookingService{})
		completeFirstTwoSteps(t, svc)
		_, err := svc.ConfirmPayment(ctx, testUserID, "")
		assert.ErrorIs(t, err, ErrPaymentMethodRequired)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		svc, _ := newTestService(deluxeKing(), &fakeBookingService{})
		completeFirstTwoSteps(t, svc)
		_, err := svc.ConfirmPayment(ctx, testUserID, "Barter")
		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	})
}

func TestConfirmPaymentSubmits(t *testing.T) {
	bookings := &fakeBookingService{}
	svc, store := newTestService(deluxeKing(), bookings)
	completeFirstTwoSteps(t, svc)

	b, err := svc.ConfirmPayment(context.Background(), testUserID, "GCash")
	require.NoError(t, err)

	require.Len(t, bookings.created, 1)
	req := bookings.created[0]
	assert.Equal(t, testUserID, req.UserID)
	assert.Equal(t, "r1", req.RoomID)
	assert.Equal(t, "Alice Chen", req.GuestName)
	assert.Equal(t, 9000.0, req.TotalCost)
	assert.Equal(t, "GCash", req.PaymentMethod)

	assert.Equal(t, booking.StatusPending, b.Status)
	assert.NotEmpty(t, b.Reference)

	// The payment method is recorded but the draft survives until the
	// confirmation step consumes the reference.
	draft := store.Get(testUserID)
	assert.Equal(t, "GCash", draft.PaymentMethod)
	assert.NotNil(t, draft.Room)
}

func TestConfirmPaymentFailurePreservesDraft(t *testing.T) {
	bookings := &fakeBookingService{createErr: booking.ErrReferenceTaken}
	svc, store := newTestService(deluxeKing(), bookings)
	completeFirstTwoSteps(t, svc)

	_, err := svc.ConfirmPayment(context.Background(), testUserID, "Cash")
	assert.Error(t, err)

	// Same submission can be retried: every field is still in place.
	draft := store.Get(testUserID)
	assert.NotNil(t, draft.Room)
	assert.Equal(t, "Alice Chen", draft.GuestName)
	assert.Empty(t, draft.PaymentMethod)
}

func TestConfirmationClearsDraft(t *testing.T) {
	ref := "TOM-TEST0000-AAAAA"
	bookings := &fakeBookingService{
		byReference: map[string]*booking.Booking{
			ref: {ID: "b1", Reference: ref, Status: booking.StatusPending},
		},
	}
	svc, store := newTestService(deluxeKing(), bookings)
	completeFirstTwoSteps(t, svc)

	b, err := svc.Confirmation(context.Background(), testUserID, ref)
	require.NoError(t, err)
	assert.Equal(t, ref, b.Reference)

	assert.Equal(t, emptyDraft(), store.Get(testUserID))
}

func TestConfirmationUnknownReferenceKeepsDraft(t *testing.T) {
	bookings := &fakeBookingService{byReference: map[string]*booking.Booking{}}
	svc, store := newTestService(deluxeKing(), bookings)
	completeFirstTwoSteps(t, svc)

	_, err := svc.Confirmation(context.Background(), testUserID, "TOM-NOPE-XXXXX")
	assert.ErrorIs(t, err, booking.ErrNotFound)

	assert.NotNil(t, store.Get(testUserID).Room)
}

func selectStay(t *testing.T, svc *service) {
	t.Helper()
	_, err := svc.SelectStay(context.Background(), testUserID, StayRequest{
		RoomID:  "r1",
		CheckIn: date("2025-03-01"), CheckOut: date("2025-03-04"),
		Guests: 2,
	})
	require.NoError(t, err)
}

func completeFirstTwoSteps(t *testing.T, svc *service) {
	t.Helper()
	selectStay(t, svc)
	_, err := svc.SubmitGuestInfo(testUserID, GuestInfoRequest{
		Name:  "Alice Chen",
		Email: "a@b.co",
		Phone: "0912345678",
	})
	require.NoError(t, err)
}
