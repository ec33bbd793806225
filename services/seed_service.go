package services

import (
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/models"

	"gorm.io/gorm"
)

// SeedCatalog loads the recommendable ingredient vocabulary and a handful of
// sample products so the recommendation flow works on a fresh database.
// Idempotent: existing rows are left alone.
func SeedCatalog(db *gorm.DB) error {
	byName := make(map[string]models.Ingredient, len(recommendableIngredients))
	for _, name := range recommendableIngredients {
		ing := models.Ingredient{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&ing).Error; err != nil {
			return err
		}
		byName[name] = ing
	}

	samples := []struct {
		medicine    models.Medicine
		ingredients []string
	}{
		{
			medicine: models.Medicine{
				Name:         "밀크씨슬 골드",
				Manufacturer: "종근당건강",
				Price:        "15,900원",
				Efficacy:     "간 건강에 도움을 줄 수 있는 밀크씨슬(카르두스 마리아누스) 추출물 함유",
			},
			ingredients: []string{"밀크씨슬"},
		},
		{
			medicine: models.Medicine{
				Name:         "오메가3 듀얼",
				Manufacturer: "고려은단",
				Price:        "22,000원",
				Efficacy:     "혈행 개선과 기억력 개선에 도움을 줄 수 있는 DHA/EPA 함유 유지",
			},
			ingredients: []string{"DHA/EPA 제품"},
		},
		{
			medicine: models.Medicine{
				Name:         "장에좋은 유산균",
				Manufacturer: "락토핏",
				Price:        "18,500원",
				Efficacy:     "유익균 증식 및 배변활동 원활에 도움을 주는 프로바이오틱스",
			},
			ingredients: []string{"프로바이오틱스", "프락토 올리고당"},
		},
		{
			medicine: models.Medicine{
				Name:         "비타민C 1000",
				Manufacturer: "유한양행",
				Price:        "9,900원",
				Efficacy:     "항산화와 면역 기능 유지에 필요한 비타민 C 1,000mg",
			},
			ingredients: []string{"비타민 C"},
		},
		{
			medicine: models.Medicine{
				Name:         "루테인 지아잔틴",
				Manufacturer: "안국건강",
				Price:        "25,000원",
				Efficacy:     "노화로 감소할 수 있는 황반색소 밀도 유지에 도움",
			},
			ingredients: []string{"루테인", "아스타잔틴"},
		},
	}

	for _, s := range samples {
		med := s.medicine
		if err := db.Where("name = ?", med.Name).FirstOrCreate(&med).Error; err != nil {
			return err
		}
		for _, name := range s.ingredients {
			ing, ok := byName[name]
			if !ok {
				continue
			}
			if err := db.Model(&med).Association("Ingredients").Append(&ing); err != nil {
				return err
			}
		}
	}
	return nil
}
