package domain

// Province is a top-level region.
type Province struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

// City is a second-level region belonging to a province. City lists are
// filterable by province so forms can populate dependent selects.
type City struct {
	BaseModel
	ProvinceID string    `gorm:"size:36;index;not null" json:"province_id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Province   *Province `gorm:"foreignKey:ProvinceID" json:"province,omitempty"`
}
