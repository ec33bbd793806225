package services

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/models"
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/utils"
)

type fakeSurveyStore struct {
	user    *models.User
	saved   []*models.SurveyResponse
	saveErr error
}

func (f *fakeSurveyStore) UserByID(id uint) (*models.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeSurveyStore) SaveResponse(resp *models.SurveyResponse) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, resp)
	return nil
}

type fakeCompletion struct {
	reply string
	err   error
	calls int
	last  []ChatMessage
}

func (f *fakeCompletion) Complete(ctx context.Context, messages []ChatMessage, maxTokens int) (string, error) {
	f.calls++
	f.last = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func testUser() *models.User {
	u := &models.User{
		Name:       "홍길동",
		Gender:     "남성",
		Dob:        time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
		Occupation: "사무직",
		WorkStyle:  "주간",
	}
	u.ID = 7
	return u
}

func newTestSurveyService(store SurveyStore, completion CompletionClient) *SurveyService {
	supplements := NewSupplementService(testCatalog(), rand.New(rand.NewSource(1)))
	return NewSurveyService(store, supplements, completion)
}

func TestSubmitHappyPath(t *testing.T) {
	store := &fakeSurveyStore{user: testUser()}
	completion := &fakeCompletion{reply: "밀크씨슬, 루테인"}
	svc := newTestSurveyService(store, completion)

	in := utils.SurveyInput{
		Upload:         true,
		Systolic:       110,
		Diastolic:      70,
		FastingGlucose: 90,
		BMI:            22,
		AST:            20,
		ALT:            20,
		EGFR:           100,
		Hemoglobin:     14,
	}
	result, err := svc.Submit(context.Background(), 7, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Username != "홍길동" || result.Dob != "1990-03-14" {
		t.Fatalf("user fields wrong: %q / %q", result.Username, result.Dob)
	}
	if result.TotalScore.Score != 100 {
		t.Fatalf("expected score 100, got %v", result.TotalScore.Score)
	}
	if len(result.GptRecommendations) != 2 {
		t.Fatalf("expected 2 recommended names, got %v", result.GptRecommendations)
	}
	if got := result.SupplementList.RecommendedIngredients; len(got) != 2 {
		t.Fatalf("expected both ingredients matched, got %v", got)
	}
	if len(result.SupplementList.Supplements) != 3 {
		t.Fatalf("expected 3 sampled products, got %d", len(result.SupplementList.Supplements))
	}

	if len(store.saved) != 1 {
		t.Fatalf("expected 1 stored response, got %d", len(store.saved))
	}
	var objective utils.ObjectiveResult
	if err := json.Unmarshal(store.saved[0].ObjectiveResponses, &objective); err != nil {
		t.Fatalf("stored objective payload not valid JSON: %v", err)
	}
	if objective.Score != 100 || len(objective.Conditions) != 7 {
		t.Fatalf("stored objective payload wrong: %+v", objective)
	}
	var subjective map[string]any
	if err := json.Unmarshal(store.saved[0].SubjectiveResponses, &subjective); err != nil {
		t.Fatalf("stored subjective payload not valid JSON: %v", err)
	}
	if _, ok := subjective["주관적 점수"]; !ok {
		t.Fatalf("stored subjective payload missing keys: %v", subjective)
	}
}

func TestSubmitDerivesBMIFromMeasurements(t *testing.T) {
	store := &fakeSurveyStore{user: testUser()}
	completion := &fakeCompletion{reply: "홍삼"}
	svc := newTestSurveyService(store, completion)

	in := utils.SurveyInput{
		Upload:         true,
		Systolic:       110,
		Diastolic:      70,
		FastingGlucose: 90,
		Height:         170,
		Weight:         65,
		AST:            20,
		ALT:            20,
		EGFR:           100,
		Hemoglobin:     14,
	}
	result, err := svc.Submit(context.Background(), 7, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 65kg at 170cm is ~22.5, a normal band
	if st := result.TotalScore.Conditions["bmi"]; st != utils.StatusNormal {
		t.Fatalf("expected derived BMI to classify as normal, got %s", st)
	}
}

func TestSubmitUnknownUser(t *testing.T) {
	store := &fakeSurveyStore{}
	completion := &fakeCompletion{}
	svc := newTestSurveyService(store, completion)

	_, err := svc.Submit(context.Background(), 99, utils.SurveyInput{})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("nothing should be stored for an unknown user")
	}
	if completion.calls != 0 {
		t.Fatalf("completion must not be called for an unknown user")
	}
}

func TestSubmitSaveFailure(t *testing.T) {
	store := &fakeSurveyStore{user: testUser(), saveErr: errors.New("db down")}
	completion := &fakeCompletion{reply: "홍삼"}
	svc := newTestSurveyService(store, completion)

	_, err := svc.Submit(context.Background(), 7, utils.SurveyInput{})
	if err == nil || !strings.Contains(err.Error(), "save survey response") {
		t.Fatalf("expected wrapped save error, got %v", err)
	}
	if completion.calls != 0 {
		t.Fatalf("completion must not run when persistence fails")
	}
}

func TestSubmitDegradesOnCompletionFailure(t *testing.T) {
	store := &fakeSurveyStore{user: testUser()}
	completion := &fakeCompletion{err: &CompletionError{Timeout: true, Err: context.DeadlineExceeded}}
	svc := newTestSurveyService(store, completion)

	result, err := svc.Submit(context.Background(), 7, utils.SurveyInput{})
	if err != nil {
		t.Fatalf("completion failure must not fail the submission, got %v", err)
	}
	if completion.calls != completionAttempts {
		t.Fatalf("expected %d completion attempts, got %d", completionAttempts, completion.calls)
	}
	if len(store.saved) != 1 {
		t.Fatalf("survey must be stored before the model call")
	}
	if len(result.GptRecommendations) != 0 || len(result.SupplementList.Supplements) != 0 {
		t.Fatalf("expected empty recommendations on failure, got %+v", result)
	}
}

func TestRecommendationPromptShape(t *testing.T) {
	store := &fakeSurveyStore{user: testUser()}
	completion := &fakeCompletion{reply: "밀크씨슬"}
	svc := newTestSurveyService(store, completion)

	in := utils.SurveyInput{
		Upload:         true,
		Medications:    []string{"고혈압약"},
		Supplements:    []string{"비타민 C"},
		Systolic:       145,
		Diastolic:      70,
		FastingGlucose: 90,
		BMI:            22,
		AST:            20,
		ALT:            20,
		EGFR:           100,
		Hemoglobin:     14,
	}
	if _, err := svc.Submit(context.Background(), 7, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(completion.last) != 2 {
		t.Fatalf("expected system + user message, got %d", len(completion.last))
	}
	if completion.last[0].Role != "system" || completion.last[0].Content != "당신은 영양제 전문가입니다." {
		t.Fatalf("system message wrong: %+v", completion.last[0])
	}
	prompt := completion.last[1].Content
	for _, want := range []string{
		"성별: 남성, 나이: 1990, 직업군: 사무직, 근무형태: 주간",
		"복용중인 약물: 고혈압약",
		"복용중인 영양제: 비타민 C",
		"blood_pressure: 위험",
		"아래 리스트 중에서만 추천해줘",
		"밀크씨슬",
		"바나바잎",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestFormatConditionsOrderAndEmpty(t *testing.T) {
	if got := formatConditions(nil); got != "없음" {
		t.Fatalf("expected 없음 for no conditions, got %q", got)
	}
	got := formatConditions(map[string]utils.MetricStatus{
		"hemoglobin":     utils.StatusNormal,
		"blood_pressure": utils.StatusRisk,
		"bmi":            utils.StatusCaution,
	})
	want := "blood_pressure: 위험, bmi: 주의, hemoglobin: 정상"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
