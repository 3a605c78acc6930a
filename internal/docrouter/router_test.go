package docrouter_test

import (
	"context"
	"testing"

	"uni-deadline-tracker/internal/docrouter"
	"uni-deadline-tracker/internal/model"
	"uni-deadline-tracker/pkg/log"
)

func newRouter() *docrouter.DocRouter {
	return docrouter.New(model.DefaultKeywords(), log.Init(log.ZapConfig{Level: "error", Mode: "development"}))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    docrouter.Kind
	}{
		{
			name:    "html table",
			payload: `<table><tr><td>Week</td><td>Begin Date</td></tr></table>`,
			want:    docrouter.KindHTMLCalendar,
		},
		{
			name:    "pipe list",
			payload: `Assignment | 20 percent; Final Exam | 50 percent`,
			want:    docrouter.KindAssessList,
		},
		{
			name:    "pdf schedule labels",
			payload: "Laboratory Report (10%)\nLab Report\nWeek: 5\nDay: Friday",
			want:    docrouter.KindPDFSchedule,
		},
		{
			name:    "program calendar header",
			payload: "Program Calendar\n1. 23 February Introduction",
			want:    docrouter.KindPDFCalendar,
		},
		{
			name:    "html wins over week labels",
			payload: "<table><tr><td>Week: 1</td></tr></table>",
			want:    docrouter.KindHTMLCalendar,
		},
		{
			name:    "plain prose",
			payload: "This unit introduces programming concepts.",
			want:    docrouter.KindUnknown,
		},
		{
			name:    "empty",
			payload: "",
			want:    docrouter.KindUnknown,
		},
	}

	r := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Classify(context.Background(), tt.payload)
			if got.Kind != tt.want {
				t.Errorf("Classify(%q).Kind = %s, want %s (%s)", tt.payload, got.Kind, tt.want, got.Reason)
			}
			if got.Reason == "" {
				t.Error("Reason must not be empty")
			}
		})
	}
}
