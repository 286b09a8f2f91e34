package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/errs"
)

const (
	// Delimiter matches the default list separator of pt-BR spreadsheets.
	Delimiter = ';'
	bom       = "\uFEFF"
)

var ErrNothingToExport = errs.ErrNothingToExport

// Header labels, in booking.ExportRow field order.
var Header = []string{
	"Data (ISO)",
	"Data (BR)",
	"Hora",
	"Sala ID",
	"Sala",
	"Reservado por",
	"Motivo",
	"Criado em (timestamp)",
	"Criado em (BR)",
}

// WriteCSV writes a BOM-prefixed, semicolon-delimited file. Fields holding
// the delimiter, a double quote or a line break are quoted, inner quotes doubled.
func WriteCSV(w io.Writer, rows []booking.ExportRow) error {
	if len(rows) == 0 {
		return ErrNothingToExport
	}

	if _, err := io.WriteString(w, bom); err != nil {
		return errs.Wrap(err, "failed to write byte order mark")
	}

	cw := csv.NewWriter(w)
	cw.Comma = Delimiter

	if err := cw.Write(Header); err != nil {
		return errs.Wrap(err, "failed to write csv header")
	}
	for _, r := range rows {
		if err := cw.Write(r.Fields()); err != nil {
			return errs.Wrapf(err, "failed to write csv row %s %s %s", r.DateISO, r.RoomID, r.Slot)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errs.Wrap(err, "failed to flush csv")
	}
	return nil
}

// Render is WriteCSV into memory.
func Render(rows []booking.ExportRow) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename is the date-stamped download name, e.g. reservas-salas_2024-05-01.csv.
func Filename(display booking.Display, now time.Time) string {
	return "reservas-salas_" + display.FileDate(now) + ".csv"
}
