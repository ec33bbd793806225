package services

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/models"

	"gorm.io/gorm"
)

// SupplementCatalog is the storage side of recommendation matching.
type SupplementCatalog interface {
	IngredientsByName(names []string) ([]models.Ingredient, error)
	MedicinesByIngredientIDs(ids []uint) ([]models.Medicine, error)
}

type gormCatalog struct{ db *gorm.DB }

func NewSupplementCatalog(db *gorm.DB) SupplementCatalog {
	return &gormCatalog{db: db}
}

func (c *gormCatalog) IngredientsByName(names []string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := c.db.Where("name IN ?", names).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (c *gormCatalog) MedicinesByIngredientIDs(ids []uint) ([]models.Medicine, error) {
	var medicines []models.Medicine
	err := c.db.
		Distinct("medicines.*").
		Joins("JOIN medicines_ingredients mi ON mi.medicine_id = medicines.id").
		Where("mi.ingredient_id IN ?", ids).
		Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

type SupplementItem struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Price        string `json:"price"`
	Efficacy     string `json:"efficacy"`
	ImageURL     string `json:"image_url"`
}

type SupplementList struct {
	RecommendedIngredients []string         `json:"recommended_ingredients"`
	Supplements            []SupplementItem `json:"supplements"`
}

// SupplementService intersects candidate ingredient names against the catalog
// and samples products that contain any matched ingredient.
type SupplementService struct {
	catalog SupplementCatalog

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSupplementService takes an optional rng so tests can pin the sample.
func NewSupplementService(catalog SupplementCatalog, rng *rand.Rand) *SupplementService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SupplementService{catalog: catalog, rng: rng}
}

// Match drops candidate names unknown to the catalog, collects every product
// containing at least one matched ingredient and returns a uniform random
// sample of at most limit of them. Unknown names and an empty match are not
// errors; the result just ends up empty.
func (s *SupplementService) Match(candidateNames []string, limit int) (*SupplementList, error) {
	result := &SupplementList{
		RecommendedIngredients: []string{},
		Supplements:            []SupplementItem{},
	}
	if len(candidateNames) == 0 {
		return result, nil
	}

	matched, err := s.catalog.IngredientsByName(candidateNames)
	if err != nil {
		return nil, fmt.Errorf("lookup ingredients: %w", err)
	}
	if len(matched) == 0 {
		return result, nil
	}

	ids := make([]uint, 0, len(matched))
	for _, ing := range matched {
		result.RecommendedIngredients = append(result.RecommendedIngredients, ing.Name)
		ids = append(ids, ing.ID)
	}

	medicines, err := s.catalog.MedicinesByIngredientIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("lookup medicines: %w", err)
	}

	for _, m := range s.sample(medicines, limit) {
		result.Supplements = append(result.Supplements, SupplementItem{
			Name:         m.Name,
			Manufacturer: m.Manufacturer,
			Price:        m.Price,
			Efficacy:     m.Efficacy,
			ImageURL:     m.ImageURL,
		})
	}
	return result, nil
}

func (s *SupplementService) sample(medicines []models.Medicine, limit int) []models.Medicine {
	if len(medicines) <= limit {
		return medicines
	}
	picked := make([]models.Medicine, len(medicines))
	copy(picked, medicines)

	s.mu.Lock()
	s.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	s.mu.Unlock()

	return picked[:limit]
}
