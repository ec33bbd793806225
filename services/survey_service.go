package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/models"
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// The closed vocabulary the model may recommend from. Matching against the
// catalog is exact, so these names double as the canonical ingredient names.
var recommendableIngredients = []string{
	"DHA/EPA 제품", "밀크씨슬", "프로바이오틱스", "은행잎 추출물", "홍삼",
	"비타민 C", "코엔자임 Q10", "멀티비타민", "포스파티딜세린", "L-테아닌",
	"알로에", "홍경천", "녹차추출물", "칼슘 + 비타민D", "글루코사민",
	"뮤코다당단백", "콘드로이친", "프락토 올리고당", "쏘팔메토 열매추출물",
	"비타민A", "루테인", "아스타잔틴", "바나바잎",
}

const (
	recommendationMaxTokens = 300
	recommendationLimit     = 3
	completionAttempts      = 2
)

// SurveyStore covers the persistence the survey flow needs.
type SurveyStore interface {
	UserByID(id uint) (*models.User, error)
	SaveResponse(resp *models.SurveyResponse) error
}

type gormSurveyStore struct{ db *gorm.DB }

func NewSurveyStore(db *gorm.DB) SurveyStore {
	return &gormSurveyStore{db: db}
}

func (s *gormSurveyStore) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormSurveyStore) SaveResponse(resp *models.SurveyResponse) error {
	return s.db.Create(resp).Error
}

type SurveyService struct {
	store       SurveyStore
	supplements *SupplementService
	completion  CompletionClient
}

func NewSurveyService(store SurveyStore, supplements *SupplementService, completion CompletionClient) *SurveyService {
	return &SurveyService{store: store, supplements: supplements, completion: completion}
}

type SurveyResult struct {
	Username           string               `json:"username"`
	Dob                string               `json:"dob"`
	Message            string               `json:"message"`
	TotalScore         utils.ObjectiveResult `json:"total_score"`
	GptRecommendations []string             `json:"gpt_recommendations"`
	SupplementList     *SupplementList      `json:"supplement_list"`
}

// Submit scores and stores one survey, then asks the model for ingredient
// suggestions and matches them against the catalog. The survey is committed
// before the model call; if the model (or the catalog lookup after it) fails,
// the stored result is kept and the response carries empty recommendations.
func (s *SurveyService) Submit(ctx context.Context, userID uint, input utils.SurveyInput) (*SurveyResult, error) {
	user, err := s.store.UserByID(userID)
	if err != nil {
		return nil, err
	}

	if input.Upload && input.BMI == 0 && input.Height > 0 && input.Weight > 0 {
		if bmi, err := utils.CalculateBMI(input.Height, input.Weight); err == nil {
			input.BMI = bmi
		}
	}

	objective := utils.ScoreObjective(input, input.Upload)
	subjective := utils.AggregateSubjective(input)

	objJSON, err := json.Marshal(objective)
	if err != nil {
		return nil, fmt.Errorf("encode objective result: %w", err)
	}
	subJSON, err := json.Marshal(subjective)
	if err != nil {
		return nil, fmt.Errorf("encode subjective result: %w", err)
	}

	if err := s.store.SaveResponse(&models.SurveyResponse{
		UserID:              userID,
		ObjectiveResponses:  datatypes.JSON(objJSON),
		SubjectiveResponses: datatypes.JSON(subJSON),
	}); err != nil {
		return nil, fmt.Errorf("save survey response: %w", err)
	}

	result := &SurveyResult{
		Username:           user.Name,
		Dob:                user.Dob.Format("2006-01-02"),
		Message:            "Survey saved successfully",
		TotalScore:         objective,
		GptRecommendations: []string{},
		SupplementList: &SupplementList{
			RecommendedIngredients: []string{},
			Supplements:            []SupplementItem{},
		},
	}

	// The survey is already stored; recommendation failures degrade to an
	// empty list instead of failing the submission.
	reply, err := s.completeWithRetry(ctx, buildRecommendationMessages(user, objective))
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("supplement recommendation skipped")
		EmitReportReady(userID, objective.Score)
		return result, nil
	}

	tokens := utils.SplitIngredientTokens(reply)
	list, err := s.supplements.Match(tokens, recommendationLimit)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("supplement matching skipped")
		EmitReportReady(userID, objective.Score)
		return result, nil
	}

	result.GptRecommendations = tokens
	result.SupplementList = list
	EmitReportReady(userID, objective.Score)
	return result, nil
}

func (s *SurveyService) completeWithRetry(ctx context.Context, messages []ChatMessage) (string, error) {
	var lastErr error
	for attempt := 0; attempt < completionAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", &CompletionError{Timeout: true, Err: ctx.Err()}
			case <-time.After(500 * time.Millisecond):
			}
		}
		reply, err := s.completion.Complete(ctx, messages, recommendationMaxTokens)
		if err == nil {
			return reply, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func buildRecommendationMessages(user *models.User, objective utils.ObjectiveResult) []ChatMessage {
	birthYear := "미상"
	if !user.Dob.IsZero() {
		birthYear = strconv.Itoa(user.Dob.Year())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "성별: %s, 나이: %s, 직업군: %s, 근무형태: %s\n",
		user.Gender, birthYear, user.Occupation, user.WorkStyle)
	fmt.Fprintf(&sb, "복용중인 약물: %s\n", strings.Join(objective.Medications, ", "))
	fmt.Fprintf(&sb, "복용중인 영양제: %s\n", strings.Join(objective.Supplements, ", "))
	fmt.Fprintf(&sb, "건강검진 주요 상태: %s\n", formatConditions(objective.Conditions))
	sb.WriteString("\n이 정보를 바탕으로 현재 건강상태를 보완할 수 있는 주요 영양제 성분 2가지 추천해줘\n")
	sb.WriteString("다른말은 하지 말고 이름만 적어줘\n")
	sb.WriteString("아래 리스트 중에서만 추천해줘\n")
	sb.WriteString(strings.Join(recommendableIngredients, ", "))

	return []ChatMessage{
		{Role: "system", Content: "당신은 영양제 전문가입니다."},
		{Role: "user", Content: sb.String()},
	}
}

func formatConditions(conditions map[string]utils.MetricStatus) string {
	if len(conditions) == 0 {
		return "없음"
	}
	// fixed metric order so prompts are reproducible
	order := []string{"blood_pressure", "fasting_glucose", "bmi", "ast", "alt", "egfr", "hemoglobin"}
	parts := make([]string, 0, len(conditions))
	for _, metric := range order {
		if status, ok := conditions[metric]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", metric, status))
		}
	}
	return strings.Join(parts, ", ")
}
