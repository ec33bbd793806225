package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/services"
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/utils"

	"github.com/gin-gonic/gin"
)

type stubSubmitter struct {
	result *services.SurveyResult
	err    error

	gotUserID uint
	gotInput  utils.SurveyInput
}

func (s *stubSubmitter) Submit(ctx context.Context, userID uint, input utils.SurveyInput) (*services.SurveyResult, error) {
	s.gotUserID = userID
	s.gotInput = input
	return s.result, s.err
}

func surveyTestRouter(stub *stubSubmitter, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set("userID", userID)
		}
		c.Next()
	})
	sc := NewSurveyController(stub, nil)
	r.POST("/survey/result", sc.SubmitSurvey)
	return r
}

func TestSubmitSurveyOK(t *testing.T) {
	stub := &stubSubmitter{
		result: &services.SurveyResult{
			Username:           "홍길동",
			Dob:                "1990-03-14",
			Message:            "Survey saved successfully",
			TotalScore:         utils.ObjectiveResult{Score: 100},
			GptRecommendations: []string{"밀크씨슬"},
			SupplementList: &services.SupplementList{
				RecommendedIngredients: []string{"밀크씨슬"},
				Supplements:            []services.SupplementItem{},
			},
		},
	}
	r := surveyTestRouter(stub, 7)

	body := `{"upload":true,"systolic":110,"diastolic":70,"fasting_glucose":90,"bmi":22,"ast":20,"alt":20,"egfr":100,"hemoglobin":14}`
	req := httptest.NewRequest(http.MethodPost, "/survey/result", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if stub.gotUserID != 7 {
		t.Fatalf("expected userID 7, got %d", stub.gotUserID)
	}
	if !stub.gotInput.Upload || stub.gotInput.Systolic != 110 {
		t.Fatalf("input not bound: %+v", stub.gotInput)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	for _, key := range []string{"username", "dob", "message", "total_score", "gpt_recommendations", "supplement_list"} {
		if _, ok := resp[key]; !ok {
			t.Errorf("response missing %q: %s", key, w.Body.String())
		}
	}
}

func TestSubmitSurveyUnauthorized(t *testing.T) {
	r := surveyTestRouter(&stubSubmitter{}, 0)

	req := httptest.NewRequest(http.MethodPost, "/survey/result", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestSubmitSurveyBadPayload(t *testing.T) {
	stub := &stubSubmitter{}
	r := surveyTestRouter(stub, 7)

	req := httptest.NewRequest(http.MethodPost, "/survey/result", strings.NewReader(`{"systolic":"high"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if stub.gotUserID != 0 {
		t.Fatalf("service must not be called on a bind failure")
	}
}

func TestSubmitSurveyUserNotFound(t *testing.T) {
	r := surveyTestRouter(&stubSubmitter{err: services.ErrUserNotFound}, 7)

	req := httptest.NewRequest(http.MethodPost, "/survey/result", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSubmitSurveyServiceError(t *testing.T) {
	r := surveyTestRouter(&stubSubmitter{err: context.DeadlineExceeded}, 7)

	req := httptest.NewRequest(http.MethodPost, "/survey/result", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Error calculating score") {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}
