package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/models"

	"gorm.io/gorm"
)

// HistoryService reads back stored survey responses for trend views.
type HistoryService struct{ db *gorm.DB }

func NewHistoryService(db *gorm.DB) *HistoryService { return &HistoryService{db: db} }

type HistoryEntry struct {
	ID         uint            `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	Objective  json.RawMessage `json:"objective_responses"`
	Subjective json.RawMessage `json:"subjective_responses"`
}

func (s *HistoryService) History(ctx context.Context, userID uint, limit int) ([]HistoryEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var rows []models.SurveyResponse
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, HistoryEntry{
			ID:         r.ID,
			CreatedAt:  r.CreatedAt,
			Objective:  json.RawMessage(r.ObjectiveResponses),
			Subjective: json.RawMessage(r.SubjectiveResponses),
		})
	}
	return entries, nil
}

type ScoreSummary struct {
	Count       int     `json:"count"`
	LatestScore float64 `json:"latest_score"`
	AvgScore    float64 `json:"avg_score"`
	MinScore    float64 `json:"min_score"`
	MaxScore    float64 `json:"max_score"`
}

// Summary aggregates the objective score across a user's stored surveys.
func (s *HistoryService) Summary(ctx context.Context, userID uint) (*ScoreSummary, error) {
	var rows []models.SurveyResponse
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := &ScoreSummary{}
	var sum float64
	for _, r := range rows {
		var obj struct {
			Score float64 `json:"score"`
		}
		if err := json.Unmarshal(r.ObjectiveResponses, &obj); err != nil {
			continue
		}
		if out.Count == 0 {
			out.MinScore = obj.Score
			out.MaxScore = obj.Score
		}
		if obj.Score < out.MinScore {
			out.MinScore = obj.Score
		}
		if obj.Score > out.MaxScore {
			out.MaxScore = obj.Score
		}
		out.LatestScore = obj.Score
		sum += obj.Score
		out.Count++
	}
	if out.Count > 0 {
		out.AvgScore = sum / float64(out.Count)
	}
	return out, nil
}
