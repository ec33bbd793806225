package models

// A supplement product from the catalog. Price is kept as the raw string
// scraped from the source listing ("12,900원" etc.).
type Medicine struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Manufacturer string `gorm:"size:255" json:"manufacturer"`
	Price        string `gorm:"size:255" json:"price"`
	Efficacy     string `gorm:"type:text" json:"efficacy"`
	ImageURL     string `gorm:"size:255" json:"image_url"`

	Ingredients []Ingredient `gorm:"many2many:medicines_ingredients" json:"ingredients,omitempty"`
}

type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`

	Medicines []Medicine `gorm:"many2many:medicines_ingredients" json:"-"`
}
