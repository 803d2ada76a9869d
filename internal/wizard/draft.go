package wizard

import (
	"sync"
	"time"
)

// RoomSnapshot is the slice of room data the draft carries between
// steps. Pricing and capacity checks run against this snapshot; the
// confirmation screen re-reads the durable record instead of trusting it.
type RoomSnapshot struct {
	ID       string
	Name     string
	Type     string
	Price    float64
	Capacity int
}

// Draft is one reservation-in-progress. It exists only in memory for
// the duration of a booking attempt: created empty, merged into by each
// wizard step, and reset once the reservation is durably recorded.
type Draft struct {
	Room            *RoomSnapshot
	CheckIn         time.Time // zero means unset
	CheckOut        time.Time // zero means unset
	Guests          int
	TotalCost       float64
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests string
	PaymentMethod   string
}

func emptyDraft() Draft {
	return Draft{Guests: 1}
}

// Partial is a shallow-merge update to a draft. Nil fields leave the
// current value untouched. No validation happens here; each step
// validates before merging.
type Partial struct {
	Room            *RoomSnapshot
	CheckIn         *time.Time
	CheckOut        *time.Time
	Guests          *int
	TotalCost       *float64
	GuestName       *string
	GuestEmail      *string
	GuestPhone      *string
	SpecialRequests *string
	PaymentMethod   *string
}

// Store holds one Draft per signed-in user. Steps within a session run
// strictly in order, so the lock only guards against unrelated sessions.
type Store struct {
	mu     sync.RWMutex
	drafts map[string]Draft
}

// NewStore creates an empty draft store.
func NewStore() *Store {
	return &Store{
		drafts: make(map[string]Draft),
	}
}

// Get returns the user's current draft, or an empty one if the user has
// not started a booking.
func (s *Store) Get(userID string) Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if d, ok := s.drafts[userID]; ok {
		return d
	}
	return emptyDraft()
}

// Update shallow-merges the partial into the user's draft and returns
// the result. Every subsequent reader sees the merged value.
func (s *Store) Update(userID string, p Partial) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[userID]
	if !ok {
		d = emptyDraft()
	}

	if p.Room != nil {
		room := *p.Room
		d.Room = &room
	}
	if p.CheckIn != nil {
		d.CheckIn = *p.CheckIn
	}
	if p.CheckOut != nil {
		d.CheckOut = *p.CheckOut
	}
	if p.Guests != nil {
		d.Guests = *p.Guests
	}
	if p.TotalCost != nil {
		d.TotalCost = *p.TotalCost
	}
	if p.GuestName != nil {
		d.GuestName = *p.GuestName
	}
	if p.GuestEmail != nil {
		d.GuestEmail = *p.GuestEmail
	}
	if p.GuestPhone != nil {
		d.GuestPhone = *p.GuestPhone
	}
	if p.SpecialRequests != nil {
		d.SpecialRequests = *p.SpecialRequests
	}
	if p.PaymentMethod != nil {
		d.PaymentMethod = *p.PaymentMethod
	}

	s.drafts[userID] = d
	return d
}

// Clear resets the user's draft to its empty initial value. Only the
// confirmation step calls this, after the durable record has been read
// back; a failed submission keeps the draft so the user can retry.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, userID)
}
