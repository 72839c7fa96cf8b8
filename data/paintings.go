package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
)

// PaintingsURL is the public painting dataset.
const PaintingsURL = "https://raw.githubusercontent.com/jwilber/Bob_Ross_Paintings/master/data/bob_ross_paintings.csv"

// Field names of painting records.
const (
	PaintingIndex     = "index"
	PaintingNumber    = "painting_index"
	PaintingTitle     = "painting_title"
	PaintingSeason    = "season"
	PaintingEpisode   = "episode"
	PaintingNumColors = "num_colors"
	PaintingColorList = "colors"
	PaintingColorHex  = "color_hex"
)

// PaintFields are the per-paint columns of the painting dataset.
var PaintFields = []string{
	"Black_Gesso", "Bright_Red", "Burnt_Umber", "Cadmium_Yellow",
	"Dark_Sienna", "Indian_Red", "Indian_Yellow", "Liquid_Black",
	"Liquid_Clear", "Midnight_Black", "Phthalo_Blue", "Phthalo_Green",
	"Prussian_Blue", "Sap_Green", "Titanium_White", "Van_Dyke_Brown",
	"Yellow_Ochre", "Alizarin_Crimson",
}

var paintingNumbers = append([]string{
	PaintingNumber, PaintingSeason, PaintingEpisode, PaintingNumColors,
}, PaintFields...)

// ParsePaintings reads the painting CSV. The index field is the 1-based
// row number; numeric columns which do not parse are left undefined and
// the colors column is parsed into a []string.
func ParsePaintings(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading painting header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}

	var records []Record
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading painting row %d: %w", line, err)
		}
		get := func(name string) (string, bool) {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return "", false
			}
			return row[i], true
		}

		rec := Record{PaintingIndex: float64(line)}
		for _, name := range paintingNumbers {
			if s, ok := get(name); ok {
				if v := parseNumber(s); !math.IsNaN(v) {
					rec[name] = v
				}
			}
		}
		if s, ok := get(PaintingTitle); ok && s != "" {
			rec[PaintingTitle] = s
		}
		if s, ok := get(PaintingColorHex); ok && s != "" {
			rec[PaintingColorHex] = s
		}
		if s, ok := get(PaintingColorList); ok {
			rec[PaintingColorList] = ParseColorList(s)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "True", "true":
		return 1
	case "False", "false":
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ParseColorList parses a list literal like "['Bright Red', 'Sap Green']".
// Embedded line breaks, both real and escaped, are removed.
func ParseColorList(s string) []string {
	s = strings.NewReplacer("\r\n", "", `\r\n`, "", "\n", "").Replace(s)
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	var colors []string
	for _, part := range strings.Split(s, ",") {
		part = strings.Trim(strings.TrimSpace(part), `'"`)
		part = strings.TrimSpace(part)
		if part != "" {
			colors = append(colors, part)
		}
	}
	return colors
}

// PaintingColors returns all paint names used by the paintings, each once,
// in first-seen order.
func PaintingColors(records []Record) []string {
	var all []string
	for _, r := range records {
		list, _ := r[PaintingColorList].([]string)
		all = append(all, list...)
	}
	if len(all) == 0 {
		return nil
	}
	return slice.Nub(all).([]string)
}
