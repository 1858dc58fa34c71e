package eos

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadCSV reads a two-column (density, pressure) table from path and
// scales both columns uniformly. A non-numeric first row is treated as a
// header and skipped.
func LoadCSV(path string, scale float64) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rho := make([]float64, 0, len(records))
	p := make([]float64, 0, len(records))

	for i, record := range records {
		if len(record) < 2 {
			return nil, fmt.Errorf("eos: row %d has %d columns, need 2", i+1, len(record))
		}

		d, errD := strconv.ParseFloat(record[0], 64)
		q, errP := strconv.ParseFloat(record[1], 64)
		if errD != nil || errP != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("eos: row %d is not numeric", i+1)
		}

		rho = append(rho, d)
		p = append(p, q)
	}

	return New(rho, p, scale)
}
