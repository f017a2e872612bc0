package climate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadFromFile reads a crop calendar from .csv or .xlsx (first sheet).
// Required columns: Crop, PlantingMonths, HarvestMonths. Month lists are
// separated by ';', ',' or spaces.
func LoadFromFile(path string) (RulesEngine, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported crop calendar format: %s", path)
	}
	if err != nil {
		return nil, err
	}

	cal, err := parseCalendar(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(cal) == 0 {
		return nil, errors.New("no crop calendar rows loaded")
	}
	return New(cal), nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return x.GetRows(sheets[0])
}

func parseCalendar(rows [][]string) ([]CropCalendar, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty crop calendar")
	}
	head := rows[0]

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cCrop := findAny("Crop", "name")
	cPlant := findAny("PlantingMonths", "planting", "sowing_months")
	cHarv := findAny("HarvestMonths", "harvest", "harvesting_months")
	cWater := findAny("Watering", "water", "irrigation")
	cFert := findAny("Fertilizer", "fertiliser", "manure")
	cPest := findAny("PestControl", "pest", "pests")

	if cCrop == -1 || cPlant == -1 || cHarv == -1 {
		return nil, fmt.Errorf("crop calendar missing required columns. Found headers: %v; need at least: Crop, PlantingMonths, HarvestMonths", head)
	}

	var out []CropCalendar
	for _, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		crop := get(cCrop)
		if crop == "" {
			continue
		}
		planting, err := parseMonths(get(cPlant))
		if err != nil {
			return nil, fmt.Errorf("crop %s: planting months: %w", crop, err)
		}
		harvest, err := parseMonths(get(cHarv))
		if err != nil {
			return nil, fmt.Errorf("crop %s: harvest months: %w", crop, err)
		}
		out = append(out, CropCalendar{
			Crop:           crop,
			PlantingMonths: planting,
			HarvestMonths:  harvest,
			CareInstructions: CareInstructions{
				Watering:    get(cWater),
				Fertilizer:  get(cFert),
				PestControl: get(cPest),
			},
		})
	}
	return out, nil
}

func parseMonths(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ',' || r == ' ' || r == '|'
	})
	months := make([]int, 0, len(fields))
	for _, f := range fields {
		m, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		if m < 1 || m > 12 {
			return nil, fmt.Errorf("month %d out of range", m)
		}
		months = append(months, m)
	}
	return months, nil
}
