package entities

import "time"

type Farmer struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Name       string    `json:"name"`
	District   string    `json:"district" gorm:"index"`
	LandSize   string    `json:"landSize"`
	LandType   string    `json:"landType"` // paddy|upland|plantation
	Crops      []string  `gorm:"serializer:json" json:"crops"`
	Experience string    `json:"experience"` // new|experienced|veteran
	Language   string    `json:"language"`   // en|ml
	CreatedAt  time.Time `json:"createdAt"`
}

// FarmerPatch carries the profile fields a PATCH may change; nil means untouched.
type FarmerPatch struct {
	Name       *string   `json:"name"`
	District   *string   `json:"district"`
	LandSize   *string   `json:"landSize"`
	LandType   *string   `json:"landType"`
	Crops      *[]string `json:"crops"`
	Experience *string   `json:"experience"`
	Language   *string   `json:"language"`
}

func (p FarmerPatch) Apply(f *Farmer) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.District != nil {
		f.District = *p.District
	}
	if p.LandSize != nil {
		f.LandSize = *p.LandSize
	}
	if p.LandType != nil {
		f.LandType = *p.LandType
	}
	if p.Crops != nil {
		f.Crops = append([]string(nil), (*p.Crops)...)
	}
	if p.Experience != nil {
		f.Experience = *p.Experience
	}
	if p.Language != nil {
		f.Language = *p.Language
	}
}
