package utils

// MetricStatus classifies one checkup metric. The literal strings are what
// the mobile client renders, so they stay in Korean.
type MetricStatus string

const (
	StatusNormal  MetricStatus = "정상"
	StatusCaution MetricStatus = "주의"
	StatusRisk    MetricStatus = "위험"
)

// SurveyInput is the raw survey submission. Every field is optional on the
// wire; absent numbers arrive as 0 and absent lists as nil.
type SurveyInput struct {
	Upload bool `json:"upload"`

	// Checkup values (upload mode only)
	Systolic       float64 `json:"systolic"`
	Diastolic      float64 `json:"diastolic"`
	FastingGlucose float64 `json:"fasting_glucose"`
	BMI            float64 `json:"bmi"`
	Height         float64 `json:"height"` // cm, used to derive BMI when it is not sent
	Weight         float64 `json:"weight"` // kg
	AST            float64 `json:"ast"`
	ALT            float64 `json:"alt"`
	EGFR           float64 `json:"egfr"`
	Hemoglobin     float64 `json:"hemoglobin"`

	Medications    []string `json:"medications"`
	Supplements    []string `json:"supplements"`
	PastConditions []string `json:"past_conditions"`
	FamilyHistory  []string `json:"family_history"`

	// Subjective answers, stored verbatim
	OverallHealthAware   any `json:"overall_health_aware"`
	DailyFunction        any `json:"daily_function"`
	LifePattern          any `json:"life_pattern"`
	Mental               any `json:"mental"`
	InconvenienceConcern any `json:"inconvenience_concern"`
	SubjectiveScore      any `json:"subjective_score"`
}

// ObjectiveResult is the computed health report. Conditions is only set in
// upload mode.
type ObjectiveResult struct {
	Score          float64                 `json:"score"`
	Medications    []string                `json:"medications"`
	Supplements    []string                `json:"supplements"`
	PastConditions []string                `json:"past_conditions"`
	FamilyHistory  []string                `json:"family_history"`
	Conditions     map[string]MetricStatus `json:"conditions,omitempty"`
}

// ScoreObjective maps the submission onto a wellness score. With a checkup
// upload it starts at 100 and applies the per-metric rule table; without one
// it starts at 35 (history penalties only) and is rescaled to a 100 scale.
// The score is deliberately not clamped; enough penalties push it negative.
func ScoreObjective(in SurveyInput, upload bool) ObjectiveResult {
	if !upload {
		score := 35.0
		score -= historyPenalty(in)
		return ObjectiveResult{
			Score:          score / 35 * 100,
			Medications:    in.Medications,
			Supplements:    in.Supplements,
			PastConditions: in.PastConditions,
			FamilyHistory:  in.FamilyHistory,
		}
	}

	score := 100.0
	score -= historyPenalty(in)

	conditions := map[string]MetricStatus{}
	apply := func(metric string, penalty float64, status MetricStatus) {
		score -= penalty
		conditions[metric] = status
	}

	p, st := classifyBloodPressure(in.Systolic, in.Diastolic)
	apply("blood_pressure", p, st)
	p, st = classifyFastingGlucose(in.FastingGlucose)
	apply("fasting_glucose", p, st)
	p, st = classifyBMI(in.BMI)
	apply("bmi", p, st)
	p, st = classifyLiverEnzyme(in.AST)
	apply("ast", p, st)
	p, st = classifyLiverEnzyme(in.ALT)
	apply("alt", p, st)
	p, st = classifyEGFR(in.EGFR)
	apply("egfr", p, st)
	p, st = classifyHemoglobin(in.Hemoglobin)
	apply("hemoglobin", p, st)

	return ObjectiveResult{
		Score:          score,
		Medications:    in.Medications,
		Supplements:    in.Supplements,
		PastConditions: in.PastConditions,
		FamilyHistory:  in.FamilyHistory,
		Conditions:     conditions,
	}
}

// historyPenalty is shared by both scoring modes: -4 per medication (max 20),
// -2 per past condition (max 10), -1 per family-history entry (max 5).
// Supplements are recorded but never penalised.
func historyPenalty(in SurveyInput) float64 {
	p := min(float64(len(in.Medications))*4, 20)
	p += min(float64(len(in.PastConditions))*2, 10)
	p += min(float64(len(in.FamilyHistory)), 5)
	return p
}

// Systolic and diastolic are judged jointly; the first matching band wins.
func classifyBloodPressure(systolic, diastolic float64) (float64, MetricStatus) {
	switch {
	case systolic > 180 || diastolic > 120:
		return 10, StatusRisk
	case systolic >= 140 || diastolic >= 90:
		return 8, StatusRisk
	case systolic >= 130 || diastolic >= 80:
		return 5, StatusRisk
	case systolic >= 120:
		return 3, StatusCaution
	default:
		return 0, StatusNormal
	}
}

// Band order matters: the hypoglycemia branch sits below the elevated
// branches, so e.g. 65 falls through to <70. Keep it that way.
func classifyFastingGlucose(glucose float64) (float64, MetricStatus) {
	switch {
	case glucose >= 126:
		return 10, StatusRisk
	case glucose >= 100:
		return 5, StatusCaution
	case glucose < 70:
		return 12, StatusRisk
	default:
		return 0, StatusNormal
	}
}

func classifyBMI(bmi float64) (float64, MetricStatus) {
	switch {
	case bmi < 18.5:
		return 5, StatusRisk
	case bmi >= 30:
		return 7, StatusRisk
	case bmi >= 25:
		return 5, StatusRisk
	case bmi >= 24:
		return 2, StatusCaution
	default:
		return 0, StatusNormal
	}
}

// AST and ALT share thresholds but are scored independently.
func classifyLiverEnzyme(v float64) (float64, MetricStatus) {
	switch {
	case v > 100:
		return 4, StatusRisk
	case v >= 61:
		return 2, StatusRisk
	case v >= 41:
		return 1, StatusCaution
	default:
		return 0, StatusNormal
	}
}

func classifyEGFR(egfr float64) (float64, MetricStatus) {
	switch {
	case egfr < 15:
		return 15, StatusRisk
	case egfr < 30:
		return 12, StatusRisk
	case egfr < 45:
		return 9, StatusRisk
	case egfr < 60:
		return 6, StatusCaution
	case egfr < 90:
		return 3, StatusCaution
	default:
		return 0, StatusNormal
	}
}

func classifyHemoglobin(hb float64) (float64, MetricStatus) {
	switch {
	case hb > 19 || hb < 7:
		return 12, StatusRisk
	case (hb >= 16.5 && hb <= 18.9) || (hb >= 7 && hb <= 9.9):
		if hb < 10 {
			return 10, StatusCaution
		}
		return 5, StatusCaution
	case hb >= 10 && hb <= 12.49:
		return 5, StatusCaution
	default:
		return 0, StatusNormal
	}
}

// AggregateSubjective bundles the self-reported answers under the fixed
// display keys. Stored and shown as-is, never computed on.
func AggregateSubjective(in SurveyInput) map[string]any {
	return map[string]any{
		"주관적 점수":           in.SubjectiveScore,
		"전반적 건강 인식":        in.OverallHealthAware,
		"일상기능&체력":          in.DailyFunction,
		"생활습관(운동,수면,식사)":   in.LifePattern,
		"정신/감정 상태":         in.Mental,
		"질병 관련 불편함 및 불안":   in.InconvenienceConcern,
	}
}
