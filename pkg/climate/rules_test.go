package climate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"farmbot/entities"
)

func TestKeralaSeasonAllMonths(t *testing.T) {
	want := map[int]string{
		1: SeasonPostMonsoon, 2: SeasonPostMonsoon, 3: SeasonSummer, 4: SeasonSummer,
		5: SeasonSummer, 6: SeasonMonsoon, 7: SeasonMonsoon, 8: SeasonMonsoon,
		9: SeasonMonsoon, 10: SeasonPostMonsoon, 11: SeasonPostMonsoon, 12: SeasonPostMonsoon,
	}
	got := map[int]string{}
	for m := 1; m <= 12; m++ {
		got[m] = KeralaSeason(m)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("season mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestCurrentSeason(t *testing.T) {
	assert.Equal(t, "Southwest Monsoon", CurrentSeason(7).Name)
	assert.Equal(t, "Winter/Northeast Monsoon", CurrentSeason(1).Name)
	assert.Equal(t, "Pre-Monsoon/Summer", CurrentSeason(13).Name)
}

func TestSeasonalCropsDefault(t *testing.T) {
	assert.Equal(t, []string{"Rice", "Coconut", "Banana", "Ginger", "Turmeric"}, SeasonalCrops(SeasonMonsoon, "paddy"))
	assert.Equal(t, []string{"Coconut", "Banana", "Vegetables"}, SeasonalCrops(SeasonSummer, "rooftop"))
}

func titles(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestSeasonTasks(t *testing.T) {
	eng := New(nil)

	tests := []struct {
		name  string
		crops []string
		month time.Month
		want  []string
	}{
		{"june rice and pepper", []string{"Rice", "pepper", "Coconut"}, time.June, []string{"Plant Rice", "Plant pepper", "Harvest Coconut", "Prepare for Monsoon"}},
		{"october", []string{"Rice", "Vegetables"}, time.October, []string{"Harvest Rice", "Plant Vegetables", "Post-Monsoon Field Care"}},
		{"march summer", []string{"Rice"}, time.March, []string{"Harvest Rice", "Summer Water Management"}},
		{"unknown crop august", []string{"Durian"}, time.August, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2025, tt.month, 15, 9, 0, 0, 0, time.UTC)
			got := eng.SeasonTasks(tt.crops, "paddy", "thrissur", now)
			if diff := cmp.Diff(tt.want, titles(got), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("tasks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSeasonTasksCapAndDueDates(t *testing.T) {
	now := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	got := New(nil).SeasonTasks([]string{"Coconut", "Banana", "Pepper", "Rice", "Vegetables"}, "upland", "wayanad", now)

	require.Len(t, got, MaxSeasonTasks)
	for _, task := range got {
		switch task.Category {
		case entities.CategoryPlanting, entities.CategoryHarvest:
			assert.Equal(t, now.AddDate(0, 0, 7), task.DueDate, task.Title)
			assert.Equal(t, entities.PriorityHigh, task.Priority)
		default:
			assert.Equal(t, now.AddDate(0, 0, 14), task.DueDate, task.Title)
		}
	}
	assert.Contains(t, got[0].ID, "plant-Coconut-10-")
}

func TestMaintenanceTasks(t *testing.T) {
	eng := New(nil)
	now := time.Now()
	assert.Empty(t, eng.MaintenanceTasks(8, "paddy", "", now))
	assert.Equal(t, []string{"Summer Water Management"}, titles(eng.MaintenanceTasks(2, "paddy", "", now)))
	assert.Equal(t, entities.CategoryCare, eng.MaintenanceTasks(11, "paddy", "", now)[0].Category)
}

func TestCropRecommendations(t *testing.T) {
	recs := CropRecommendations("upland", "new")
	require.Len(t, recs, 3)
	assert.Equal(t, "Vegetables", recs[0].Crop)
	assert.Equal(t, "easy", recs[0].Difficulty)

	assert.Equal(t, "medium", CropRecommendations("upland", "Experienced")[0].Difficulty)
	assert.Equal(t, "hard", CropRecommendations("upland", "veteran")[0].Difficulty)
	assert.Empty(t, CropRecommendations("rooftop", "new"))
}

func TestLoadFromFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.csv")
	body := "\uFEFFcrop,planting_months,harvest months,Watering\n" +
		"Tapioca,4;5,12;1,Light watering\n" +
		",1,2,\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	eng, err := LoadFromFile(path)
	require.NoError(t, err)
	want := []CropCalendar{{
		Crop:             "Tapioca",
		PlantingMonths:   []int{4, 5},
		HarvestMonths:    []int{12, 1},
		CareInstructions: CareInstructions{Watering: "Light watering"},
	}}
	if diff := cmp.Diff(want, eng.Calendar()); diff != "" {
		t.Fatalf("calendar mismatch (-want +got):\n%s", diff)
	}

	tasks := eng.SeasonTasks([]string{"tapioca"}, "upland", "", time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, []string{"Plant tapioca"}, titles(tasks))
}

func TestLoadFromFileXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.xlsx")
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	require.NoError(t, x.SetSheetRow(sheet, "A1", &[]any{"Crop", "PlantingMonths", "HarvestMonths", "PestControl"}))
	require.NoError(t, x.SetSheetRow(sheet, "A2", &[]any{"Ginger", "5", "1, 2", "Mulch beds"}))
	require.NoError(t, x.SaveAs(path))
	require.NoError(t, x.Close())

	eng, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, eng.Calendar(), 1)
	assert.Equal(t, []int{1, 2}, eng.Calendar()[0].HarvestMonths)
	assert.Equal(t, "Mulch beds", eng.Calendar()[0].CareInstructions.PestControl)
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "calendar.json"))
	assert.Error(t, err)

	missing := filepath.Join(dir, "missing.csv")
	require.NoError(t, os.WriteFile(missing, []byte("Crop,Notes\nRice,x\n"), 0o600))
	_, err = LoadFromFile(missing)
	assert.ErrorContains(t, err, "missing required columns")

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("Crop,PlantingMonths,HarvestMonths\nRice,13,1\n"), 0o600))
	_, err = LoadFromFile(bad)
	assert.ErrorContains(t, err, "out of range")
}

func TestReferenceLookups(t *testing.T) {
	d, ok := FindDistrict("Thiruvananthapuram")
	require.True(t, ok)
	assert.Equal(t, "south", d.Region)
	_, ok = FindDistrict("Chennai")
	assert.False(t, ok)
	assert.Len(t, Districts, 14)

	for _, c := range FilterCrops("paddy", SeasonMonsoon) {
		assert.Contains(t, c.LandTypes, "paddy")
		assert.Contains(t, []string{"all", SeasonMonsoon}, c.Season)
	}
	assert.Len(t, FilterCrops("", ""), len(CropOptions))

	assert.True(t, IsHarvestSeason("pepper", 1))
	assert.False(t, IsHarvestSeason("Pepper", 6))
	assert.False(t, IsHarvestSeason("Durian", 1))
}

func TestSeasonActivityTasks(t *testing.T) {
	now := time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC)
	got := SeasonActivityTasks(now, 2)
	assert.Equal(t, []string{"Plant rice and other monsoon crops", "Manage drainage"}, titles(got))
	for _, task := range got {
		assert.Equal(t, entities.CategorySeasonal, task.Category)
		assert.Equal(t, now.AddDate(0, 0, 14), task.DueDate)
	}
	assert.Len(t, SeasonActivityTasks(now, 0), 4)
}
