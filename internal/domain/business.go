package domain

// Category is a product category.
type Category struct {
	BaseModel
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
}

// Business is a UMKM business profile. Each owner account holds at most one
// profile; admins see and manage all of them.
type Business struct {
	BaseModel
	OwnerID     string    `gorm:"size:36;uniqueIndex;not null" json:"owner_id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Description string    `gorm:"size:1000" json:"description"`
	Address     string    `gorm:"size:500" json:"address"`
	Phone       string    `gorm:"size:30" json:"phone"`
	LogoURL     string    `gorm:"size:500" json:"logo_url"`
	ProvinceID  string    `gorm:"size:36;index" json:"province_id"`
	CityID      string    `gorm:"size:36;index" json:"city_id"`
	Province    *Province `gorm:"foreignKey:ProvinceID" json:"province,omitempty"`
	City        *City     `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

// Product is one sellable item in a business's catalog. Promoted products
// appear in the public promotion catalog.
type Product struct {
	BaseModel
	BusinessID  string    `gorm:"size:36;index;not null" json:"business_id"`
	CategoryID  string    `gorm:"size:36;index" json:"category_id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Description string    `gorm:"size:1000" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	ImageURL    string    `gorm:"size:500" json:"image_url"`
	Promoted    bool      `gorm:"index;not null;default:false" json:"promoted"`
	Business    *Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// SalesLocation is a map-picked selling point of a business.
type SalesLocation struct {
	BaseModel
	BusinessID string    `gorm:"size:36;index;not null" json:"business_id"`
	Name       string    `gorm:"size:150;not null" json:"name"`
	Address    string    `gorm:"size:500" json:"address"`
	Latitude   float64   `gorm:"not null" json:"latitude"`
	Longitude  float64   `gorm:"not null" json:"longitude"`
	Business   *Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
}

// SalesReport is one month's sales figures for a business. Period uses the
// YYYY-MM form; each business has at most one report per period.
type SalesReport struct {
	BaseModel
	BusinessID string    `gorm:"size:36;index:idx_report_business_period,unique;not null" json:"business_id"`
	Period     string    `gorm:"size:7;index:idx_report_business_period,unique;not null" json:"period"`
	Revenue    float64   `gorm:"not null" json:"revenue"`
	UnitsSold  int       `gorm:"not null" json:"units_sold"`
	Notes      string    `gorm:"size:1000" json:"notes"`
	Business   *Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
}

// Models lists every persisted model for migration.
func Models() []any {
	return []any{
		&User{},
		&Province{},
		&City{},
		&Category{},
		&Business{},
		&Product{},
		&SalesLocation{},
		&SalesReport{},
	}
}
