package services

import (
	"errors"
	"time"

	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/config"
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/models"
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/utils"
)

type ProfileInput struct {
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	Dob        string `json:"dob"` // YYYY-MM-DD
	Occupation string `json:"occupation"`
	WorkStyle  string `json:"work_style"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := 0
	dob := ""
	if !user.Dob.IsZero() {
		age = utils.CalculateAge(user.Dob)
		dob = user.Dob.Format("2006-01-02")
	}

	return map[string]interface{}{
		"id":          user.ID,
		"email":       user.Email,
		"name":        user.Name,
		"gender":      user.Gender,
		"dob":         dob,
		"age":         age,
		"occupation":  user.Occupation,
		"work_style":  user.WorkStyle,
		"mfa_enabled": user.MFAEnabled,
	}, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Dob != "" {
		if dob, err := time.Parse("2006-01-02", input.Dob); err == nil {
			user.Dob = dob
		}
	}
	if input.Occupation != "" {
		user.Occupation = input.Occupation
	}
	if input.WorkStyle != "" {
		user.WorkStyle = input.WorkStyle
	}

	return config.DB.Save(&user).Error
}
