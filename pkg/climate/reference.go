package climate

import "strings"

type District struct {
	Value     string  `json:"value"`
	Label     string  `json:"label"`
	Region    string  `json:"region"`  // north|central|south
	Climate   string  `json:"climate"` // coastal|midland|highland
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

var Districts = []District{
	{"kasaragod", "Kasaragod", "north", "coastal", 12.4996, 74.9869},
	{"kannur", "Kannur", "north", "coastal", 11.8745, 75.3704},
	{"wayanad", "Wayanad", "north", "highland", 11.6854, 76.1320},
	{"kozhikode", "Kozhikode", "north", "coastal", 11.2588, 75.7804},
	{"malappuram", "Malappuram", "north", "midland", 11.0510, 76.0711},

	{"palakkad", "Palakkad", "central", "midland", 10.7867, 76.6548},
	{"thrissur", "Thrissur", "central", "coastal", 10.5276, 76.2144},
	{"ernakulam", "Ernakulam", "central", "coastal", 9.9312, 76.2673},
	{"idukki", "Idukki", "central", "highland", 9.9100, 76.9700},
	{"kottayam", "Kottayam", "central", "midland", 9.5916, 76.5222},

	{"alappuzha", "Alappuzha", "south", "coastal", 9.4981, 76.3388},
	{"pathanamthitta", "Pathanamthitta", "south", "midland", 9.2648, 76.7870},
	{"kollam", "Kollam", "south", "coastal", 8.8932, 76.6141},
	{"thiruvananthapuram", "Thiruvananthapuram", "south", "coastal", 8.5241, 76.9366},
}

// FindDistrict matches on value or label, ignoring case.
func FindDistrict(name string) (District, bool) {
	name = strings.TrimSpace(name)
	for _, d := range Districts {
		if strings.EqualFold(d.Value, name) || strings.EqualFold(d.Label, name) {
			return d, true
		}
	}
	return District{}, false
}

type LandType struct {
	Value         string   `json:"value"`
	Label         string   `json:"label"`
	Description   string   `json:"description"`
	SuitableCrops []string `json:"suitableCrops"`
}

var LandTypes = []LandType{
	{"paddy", "Paddy/Wetland", "For rice cultivation", []string{"Rice", "Coconut", "Banana", "Fish", "Duck"}},
	{"upland", "Upland/Garden", "For vegetables, fruits", []string{"Vegetables", "Fruits", "Pepper", "Cardamom", "Coffee"}},
	{"plantation", "Plantation", "Coconut, rubber, spices", []string{"Coconut", "Rubber", "Pepper", "Cardamom", "Coffee", "Cashew"}},
}

type CropOption struct {
	Value     string   `json:"value"`
	Label     string   `json:"label"`
	Season    string   `json:"season"` // all|monsoon|post-monsoon|summer
	LandTypes []string `json:"landTypes"`
}

var CropOptions = []CropOption{
	{"rice", "Rice", SeasonMonsoon, []string{"paddy"}},
	{"coconut", "Coconut", "all", []string{"paddy", "upland", "plantation"}},
	{"pepper", "Pepper", SeasonPostMonsoon, []string{"upland", "plantation"}},
	{"cardamom", "Cardamom", "all", []string{"upland", "plantation"}},
	{"coffee", "Coffee", "all", []string{"upland", "plantation"}},
	{"rubber", "Rubber", "all", []string{"plantation"}},
	{"banana", "Banana", "all", []string{"paddy", "upland"}},
	{"vegetables", "Vegetables", SeasonPostMonsoon, []string{"paddy", "upland"}},
	{"fruits", "Fruits", "all", []string{"upland", "plantation"}},
	{"ginger", "Ginger", SeasonMonsoon, []string{"upland"}},
	{"turmeric", "Turmeric", SeasonMonsoon, []string{"upland"}},
	{"cashew", "Cashew", "all", []string{"plantation"}},
}

// FilterCrops narrows CropOptions by land type and season; empty filters match all.
func FilterCrops(landType, season string) []CropOption {
	out := []CropOption{}
	for _, c := range CropOptions {
		if landType != "" && !containsString(c.LandTypes, landType) {
			continue
		}
		if season != "" && c.Season != season && c.Season != "all" {
			continue
		}
		out = append(out, c)
	}
	return out
}

type ExperienceLevel struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var ExperienceLevels = []ExperienceLevel{
	{"new", "New Farmer", "Less than 2 years"},
	{"experienced", "Experienced", "2-10 years"},
	{"veteran", "Veteran Farmer", "10+ years"},
}

type CropPrice struct {
	Crop          string   `json:"crop"`
	BasePrice     float64  `json:"basePrice"` // INR per unit
	Unit          string   `json:"unit"`
	Seasonal      bool     `json:"seasonal"`
	PeakMonths    []int    `json:"peakMonths"`
	MarketCenters []string `json:"marketCenters"`
}

var allMonths = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

var CropPrices = []CropPrice{
	{"Rice", 2800, "quintal", false, []int{4, 5, 11, 12}, []string{"Palakkad", "Alappuzha", "Thrissur"}},
	{"Coconut", 25, "piece", false, allMonths, []string{"Pollachi", "Kozhikode", "Ernakulam"}},
	{"Pepper", 450, "kg", true, []int{12, 1, 2, 3}, []string{"Kochi", "Idukki", "Wayanad"}},
	{"Cardamom", 1200, "kg", true, []int{10, 11, 12, 1}, []string{"Kumily", "Vandiperiyar", "Idukki"}},
	{"Coffee", 180, "kg", true, []int{12, 1, 2, 3, 4}, []string{"Wayanad", "Idukki", "Nelliampathy"}},
	{"Rubber", 160, "kg", false, allMonths, []string{"Kottayam", "Pathanamthitta", "Kollam"}},
	{"Banana", 30, "kg", false, allMonths, []string{"Thrissur", "Ernakulam", "Wayanad"}},
}

func FindCropPrice(crop string) (CropPrice, bool) {
	for _, p := range CropPrices {
		if strings.EqualFold(p.Crop, crop) {
			return p, true
		}
	}
	return CropPrice{}, false
}

// IsHarvestSeason reports whether month is a peak market month for crop.
func IsHarvestSeason(crop string, month int) bool {
	p, ok := FindCropPrice(crop)
	return ok && containsInt(p.PeakMonths, month)
}

type Tip struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// Tips are served when no language model is reachable.
var Tips = []Tip{
	{"tip-1", "Best Time for Irrigation", "Water your crops early morning (6-8 AM) or late evening (5-7 PM) to reduce water loss through evaporation.", "irrigation"},
	{"tip-2", "Organic Pest Control", "Use neem oil spray (2-3ml per liter water) to control most common pests naturally.", "pest-control"},
	{"tip-3", "Monsoon Preparation", "Clean drainage channels and secure plant supports before monsoon arrives to prevent waterlogging and wind damage.", "seasonal"},
	{"tip-4", "Soil Health Check", "Test soil pH every 6 months. Most Kerala crops prefer slightly acidic soil (pH 6.0-6.8).", "soil"},
	{"tip-5", "Coconut Tree Care", "Remove dead fronds monthly and apply organic manure twice yearly around the base for better yield.", "crops"},
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}
