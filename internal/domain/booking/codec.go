package booking

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON emits the persisted layout:
//
//	{ "<date>": { "<roomId>": { "<HH:MM>": {"by","reason","createdAt"} } } }
func (s *Store) MarshalJSON() ([]byte, error) {
	if s == nil || s.dates == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.dates)
}

// UnmarshalJSON decodes leniently, see Decode.
func (s *Store) UnmarshalJSON(raw []byte) error {
	decoded, _ := Decode(raw)
	*s = *decoded
	return nil
}

// DecodeReport describes what Decode had to throw away.
type DecodeReport struct {
	// Corrupt is set when the payload as a whole was unusable.
	Corrupt bool
	// Dropped counts malformed entries skipped inside an otherwise valid payload.
	Dropped int
}

// Decode never fails: empty input, invalid JSON or a non-object top level
// yield an empty store. Malformed branches are skipped individually and no
// empty container survives decoding.
func Decode(raw []byte) (*Store, DecodeReport) {
	store := NewStore()
	var report DecodeReport

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return store, report
	}

	var dates map[string]json.RawMessage
	if err := json.Unmarshal(raw, &dates); err != nil || dates == nil {
		report.Corrupt = true
		return store, report
	}

	for date, rawDay := range dates {
		var rooms map[string]json.RawMessage
		if err := json.Unmarshal(rawDay, &rooms); err != nil || rooms == nil {
			report.Dropped++
			continue
		}
		for roomID, rawRoom := range rooms {
			var slots map[string]json.RawMessage
			if err := json.Unmarshal(rawRoom, &slots); err != nil || slots == nil {
				report.Dropped++
				continue
			}
			for slot, rawRes := range slots {
				r, ok := decodeReservation(rawRes)
				if !ok {
					report.Dropped++
					continue
				}
				store.Set(date, roomID, slot, r)
			}
		}
	}
	return store, report
}

type persistedReservation struct {
	By        *string         `json:"by"`
	Reason    *string         `json:"reason"`
	CreatedAt json.RawMessage `json:"createdAt"`
}

func decodeReservation(raw json.RawMessage) (Reservation, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Reservation{}, false
	}
	var p persistedReservation
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return Reservation{}, false
	}
	if p.By == nil || *p.By == "" {
		return Reservation{}, false
	}

	r := Reservation{By: *p.By}
	if p.Reason != nil {
		r.Reason = *p.Reason
	}
	r.CreatedAt = decodeTimestamp(p.CreatedAt)
	return r, true
}

// decodeTimestamp accepts integer or float epoch milliseconds; anything else is zero.
func decodeTimestamp(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return int64(f)
	}
	return 0
}
