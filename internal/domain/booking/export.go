package booking

import (
	"strconv"
	"time"

	"room-booking/internal/domain/catalog"
)

const (
	isoDateLayout      = "2006-01-02"
	displayDateLayout  = "02/01/2006"
	displayStampLayout = "02/01/2006 15:04"
)

// Display localizes dates and timestamps for people reading exports.
type Display struct {
	loc *time.Location
}

func NewDisplay(loc *time.Location) Display {
	if loc == nil {
		loc = time.UTC
	}
	return Display{loc: loc}
}

func (d Display) Location() *time.Location {
	if d.loc == nil {
		return time.UTC
	}
	return d.loc
}

// Date renders an ISO date as DD/MM/YYYY; unparseable input is returned as is.
func (d Display) Date(iso string) string {
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format(displayDateLayout)
}

// Timestamp renders epoch milliseconds as DD/MM/YYYY HH:MM; zero renders empty.
func (d Display) Timestamp(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).In(d.Location()).Format(displayStampLayout)
}

// FileDate is the date stamp used in export file names.
func (d Display) FileDate(now time.Time) string {
	return now.In(d.Location()).Format(isoDateLayout)
}

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	t, err := time.Parse(isoDateLayout, s)
	return err == nil && t.Format(isoDateLayout) == s
}

type ExportRow struct {
	DateISO          string
	DateDisplay      string
	Slot             string
	RoomID           string
	RoomName         string
	By               string
	Reason           string
	CreatedAt        int64
	CreatedAtDisplay string
}

// Fields returns the row in export column order.
func (r ExportRow) Fields() []string {
	return []string{
		r.DateISO,
		r.DateDisplay,
		r.Slot,
		r.RoomID,
		r.RoomName,
		r.By,
		r.Reason,
		strconv.FormatInt(r.CreatedAt, 10),
		r.CreatedAtDisplay,
	}
}

// ExportRows flattens the store ordered by date, room id, then slot.
// Slot labels are zero-padded HH:MM, so lexicographic order is chronological.
func (s *Store) ExportRows(cat *catalog.Catalog, display Display) []ExportRow {
	rows := make([]ExportRow, 0, s.Len())
	for _, date := range sortedKeys(s.dates) {
		day := s.dates[date]
		for _, roomID := range sortedKeys(day) {
			room := day[roomID]
			for _, slot := range sortedKeys(room) {
				r := room[slot]
				rows = append(rows, ExportRow{
					DateISO:          date,
					DateDisplay:      display.Date(date),
					Slot:             slot,
					RoomID:           roomID,
					RoomName:         cat.RoomName(roomID),
					By:               r.By,
					Reason:           r.Reason,
					CreatedAt:        r.CreatedAt,
					CreatedAtDisplay: display.Timestamp(r.CreatedAt),
				})
			}
		}
	}
	return rows
}
