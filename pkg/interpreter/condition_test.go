package interpreter

import (
	"testing"

	"github.com/giovannicarlino04/Pipeline/pkg/runtime"
)

func TestEvaluateCondition(t *testing.T) {
	state := NewState()
	state.Variables.Set("x", runtime.StringValue{Val: "5"})
	state.Variables.Set("name", runtime.StringValue{Val: "bob"})

	cases := []struct {
		cond string
		want bool
	}{
		{cond: "3 <= 4", want: true},
		{cond: "4 <= 4", want: true},
		{cond: "5 <= 4", want: false},
		{cond: "4 >= 5", want: false},
		{cond: "3 < 4", want: true},
		{cond: "3 > 4", want: false},
		{cond: "x == 5", want: true},
		{cond: "x != 5", want: false},
		{cond: "x + 1 == 6", want: true},
		{cond: "2 == 2.0", want: true},
		{cond: "10 / 4 > 2", want: true},
		{cond: "name == bob", want: true},
		{cond: "name < carol", want: true},
		{cond: "name == 5", want: false},
		{cond: "name != 5", want: true},
		{cond: "name > 5", want: false},
		{cond: "x", want: false},
		{cond: "", want: false},
		{cond: "1 + == 2", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.cond, func(t *testing.T) {
			if got := EvaluateCondition(state, tc.cond); got != tc.want {
				t.Fatalf("EvaluateCondition(%q) = %v, want %v", tc.cond, got, tc.want)
			}
		})
	}
}

func TestInterpreterEvaluateConditionUsesItsState(t *testing.T) {
	interp := New()
	interp.SetOutput(nil)
	if err := interp.Run([]string{"limit = 10;"}); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !interp.EvaluateCondition("limit > 9") {
		t.Fatalf("expected limit > 9")
	}
	if interp.EvaluateCondition("limit > 10") {
		t.Fatalf("expected limit > 10 to be false")
	}
}
