package booking

import (
	"sort"
)

// Reservation lives only under a (date, room, slot) key.
type Reservation struct {
	By        string `json:"by"`
	Reason    string `json:"reason"`
	CreatedAt int64  `json:"createdAt"` // epoch milliseconds
}

type slotBookings map[string]Reservation
type roomBookings map[string]slotBookings

// Store maps date -> room id -> slot label -> Reservation.
// Empty room and date levels are never retained.
type Store struct {
	dates map[string]roomBookings
}

// Snapshot is a store together with the storage revision it was loaded at.
type Snapshot struct {
	Store    *Store
	Revision int64
}

func NewStore() *Store {
	return &Store{dates: make(map[string]roomBookings)}
}

func (s *Store) Get(date, roomID, slot string) (Reservation, bool) {
	r, ok := s.dates[date][roomID][slot]
	return r, ok
}

// Set is an unconditional upsert. Exclusivity is the caller's concern.
func (s *Store) Set(date, roomID, slot string, r Reservation) {
	if s.dates == nil {
		s.dates = make(map[string]roomBookings)
	}
	day, ok := s.dates[date]
	if !ok {
		day = make(roomBookings)
		s.dates[date] = day
	}
	room, ok := day[roomID]
	if !ok {
		room = make(slotBookings)
		day[roomID] = room
	}
	room[slot] = r
}

func (s *Store) Remove(date, roomID, slot string) bool {
	day, ok := s.dates[date]
	if !ok {
		return false
	}
	room, ok := day[roomID]
	if !ok {
		return false
	}
	if _, ok := room[slot]; !ok {
		return false
	}

	delete(room, slot)
	if len(room) == 0 {
		delete(day, roomID)
	}
	if len(day) == 0 {
		delete(s.dates, date)
	}
	return true
}

func (s *Store) Len() int {
	n := 0
	for _, day := range s.dates {
		for _, room := range day {
			n += len(room)
		}
	}
	return n
}

func (s *Store) IsEmpty() bool {
	return len(s.dates) == 0
}

// Dates returns the dates holding at least one booking, ascending.
func (s *Store) Dates() []string {
	return sortedKeys(s.dates)
}

func (s *Store) Clone() *Store {
	out := NewStore()
	for date, day := range s.dates {
		for roomID, room := range day {
			for slot, r := range room {
				out.Set(date, roomID, slot, r)
			}
		}
	}
	return out
}

type DayStats struct {
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

// DayStats counts bookings across all rooms for date. Available is measured
// against the global capacity (rooms x slots), never per room, and is
// clamped at zero.
func (s *Store) DayStats(date string, capacity int) DayStats {
	occupied := 0
	for _, room := range s.dates[date] {
		occupied += len(room)
	}
	return DayStats{
		Occupied:  occupied,
		Available: max(capacity-occupied, 0),
	}
}

type DayEntry struct {
	Slot        string
	RoomID      string
	Reservation Reservation
}

// Day lists the bookings of one date ordered by slot, then room id.
func (s *Store) Day(date string) []DayEntry {
	day := s.dates[date]
	entries := make([]DayEntry, 0)
	for roomID, room := range day {
		for slot, r := range room {
			entries = append(entries, DayEntry{Slot: slot, RoomID: roomID, Reservation: r})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Slot != entries[j].Slot {
			return entries[i].Slot < entries[j].Slot
		}
		return entries[i].RoomID < entries[j].RoomID
	})
	return entries
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
