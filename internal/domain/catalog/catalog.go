package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrNoRooms          = errors.New("catalog must contain at least one room")
	ErrNoSlots          = errors.New("catalog must contain at least one time slot")
	ErrEmptyRoomID      = errors.New("room id cannot be empty")
	ErrDuplicateRoomID  = errors.New("duplicate room id")
	ErrInvalidCapacity  = errors.New("room capacity must be positive")
	ErrInvalidSlotLabel = errors.New("time slot must be zero-padded HH:MM")
	ErrUnorderedSlots   = errors.New("time slots must be strictly ascending")
)

var slotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
	Floor    string `json:"floor"`
}

// Catalog is the immutable reference data shared by every date: the rooms
// and the time grid common to all of them.
type Catalog struct {
	rooms []Room
	slots []string
	byID  map[string]int
}

func New(rooms []Room, slots []string) (*Catalog, error) {
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}

	byID := make(map[string]int, len(rooms))
	for i, r := range rooms {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			return nil, ErrEmptyRoomID
		}
		if _, dup := byID[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoomID, id)
		}
		if r.Capacity <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCapacity, id)
		}
		byID[id] = i
	}

	for i, s := range slots {
		if !slotPattern.MatchString(s) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, s)
		}
		if i > 0 && s <= slots[i-1] {
			return nil, fmt.Errorf("%w: %q after %q", ErrUnorderedSlots, s, slots[i-1])
		}
	}

	c := &Catalog{
		rooms: make([]Room, len(rooms)),
		slots: append([]string(nil), slots...),
		byID:  byID,
	}
	for i, r := range rooms {
		r.ID = strings.TrimSpace(r.ID)
		c.rooms[i] = r
	}
	return c, nil
}

func Default() *Catalog {
	c, err := New(defaultRooms, defaultSlots)
	if err != nil {
		panic("catalog: invalid built-in catalog: " + err.Error())
	}
	return c
}

type fileFormat struct {
	Rooms []Room   `json:"rooms"`
	Slots []string `json:"slots"`
}

// Load reads a catalog from a JSON file; an empty path yields Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var f fileFormat
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return New(f.Rooms, f.Slots)
}

func (c *Catalog) Rooms() []Room {
	return append([]Room(nil), c.rooms...)
}

func (c *Catalog) Slots() []string {
	return append([]string(nil), c.slots...)
}

func (c *Catalog) Room(id string) (Room, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Room{}, false
	}
	return c.rooms[i], true
}

// RoomName falls back to the id for rooms that are not in the catalog.
func (c *Catalog) RoomName(id string) string {
	if r, ok := c.Room(id); ok {
		return r.Name
	}
	return id
}

func (c *Catalog) HasSlot(label string) bool {
	for _, s := range c.slots {
		if s == label {
			return true
		}
	}
	return false
}

// Capacity is the global slot count for one day: rooms x slots.
func (c *Catalog) Capacity() int {
	return len(c.rooms) * len(c.slots)
}

// Search matches the query case-insensitively against name, type, floor and
// capacity. An empty query matches every room.
func (c *Catalog) Search(q string) []Room {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]Room, 0, len(c.rooms))
	for _, r := range c.rooms {
		if q == "" || strings.Contains(r.searchText(), q) {
			out = append(out, r)
		}
	}
	return out
}

func (r Room) searchText() string {
	return strings.ToLower(strings.Join([]string{r.Name, r.Type, r.Floor, strconv.Itoa(r.Capacity)}, " "))
}
