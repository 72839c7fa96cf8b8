package data

import (
	"encoding/json"
	"fmt"
	"io"
)

// Field names of dog ownership records.
const (
	DogCountry    = "country"
	DogTotal      = "DogOwnershipTotalDogs2021"
	DogsPerCapita = "DogsPerCapita2021"
)

type dogOwnership struct {
	Country   string   `json:"country"`
	Total     *float64 `json:"DogOwnershipTotalDogs2021"`
	PerCapita *float64 `json:"DogsPerCapita2021"`
}

// ParseDogOwnership reads the per-country dog ownership statistics.
func ParseDogOwnership(r io.Reader) ([]Record, error) {
	var rows []dogOwnership
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding dog ownership data: %w", err)
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := Record{DogCountry: row.Country}
		if row.Total != nil {
			rec[DogTotal] = *row.Total
		}
		if row.PerCapita != nil {
			rec[DogsPerCapita] = *row.PerCapita
		}
		records = append(records, rec)
	}
	return records, nil
}
