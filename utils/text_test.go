package utils

import (
	"reflect"
	"testing"
)

func TestSplitIngredientTokens(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  []string
	}{
		{
			name:  "comma separated",
			reply: "밀크씨슬, 프로바이오틱스, 루테인",
			want:  []string{"밀크씨슬", "프로바이오틱스", "루테인"},
		},
		{
			name:  "newline separated",
			reply: "밀크씨슬\n프로바이오틱스\n루테인",
			want:  []string{"밀크씨슬", "프로바이오틱스", "루테인"},
		},
		{
			name:  "mixed separators with blank lines",
			reply: "밀크씨슬, 프로바이오틱스\n\n루테인 ",
			want:  []string{"밀크씨슬", "프로바이오틱스", "루테인"},
		},
		{
			name:  "single token",
			reply: "홍삼",
			want:  []string{"홍삼"},
		},
		{
			name:  "empty reply",
			reply: "",
			want:  []string{},
		},
		{
			name:  "separators only",
			reply: ",,\n ,\n",
			want:  []string{},
		},
		{
			name:  "inner whitespace kept",
			reply: "칼슘 + 비타민D, DHA/EPA 제품",
			want:  []string{"칼슘 + 비타민D", "DHA/EPA 제품"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitIngredientTokens(tc.reply)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(170, 65)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bmi < 22.4 || bmi > 22.6 {
		t.Fatalf("expected bmi near 22.5, got %v", bmi)
	}

	for _, in := range [][2]float64{{0, 65}, {170, 0}, {-170, 65}, {30, 65}, {170, 500}} {
		if _, err := CalculateBMI(in[0], in[1]); err == nil {
			t.Errorf("expected error for height=%v weight=%v", in[0], in[1])
		}
	}
}
