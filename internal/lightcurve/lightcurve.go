// Package lightcurve loads, saves and synthesizes (time, flux) series.
package lightcurve

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrEmpty is returned when a CSV file holds no data rows.
var ErrEmpty = errors.New("lightcurve: no data rows")

// Curve is a light curve: times in days, flux in arbitrary normalized units.
type Curve struct {
	Time []float64
	Flux []float64
}

// Len returns the number of samples.
func (c *Curve) Len() int { return len(c.Time) }

// Load reads a two-column (time, flux) CSV file. A non-numeric first row is
// treated as a header and skipped.
func Load(path string) (*Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lightcurve: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses CSV light-curve data from r.
func Read(r io.Reader) (*Curve, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	curve := &Curve{}
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("lightcurve: read csv: %w", err)
		}
		if len(record) < 2 {
			continue
		}

		t, terr := strconv.ParseFloat(record[0], 64)
		fl, ferr := strconv.ParseFloat(record[1], 64)
		if terr != nil || ferr != nil {
			if first {
				first = false
				continue // header row
			}
			return nil, fmt.Errorf("lightcurve: bad row %q", record)
		}
		first = false
		curve.Time = append(curve.Time, t)
		curve.Flux = append(curve.Flux, fl)
	}

	if curve.Len() == 0 {
		return nil, ErrEmpty
	}
	return curve, nil
}

// Save writes the curve as a two-column CSV file with a header row.
func (c *Curve) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lightcurve: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "flux"}); err != nil {
		return fmt.Errorf("lightcurve: write header: %w", err)
	}
	for i := range c.Time {
		row := []string{
			strconv.FormatFloat(c.Time[i], 'g', -1, 64),
			strconv.FormatFloat(c.Flux[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("lightcurve: write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
