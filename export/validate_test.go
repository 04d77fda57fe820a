package export

import (
	"strings"
	"testing"

	"github.com/tsawler/rubrica/model"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		res     model.Result
		wantErr string
	}{
		{
			name: "valid result",
			res:  sampleResult(),
		},
		{
			name: "empty result",
			res:  model.EmptyResult(),
		},
		{
			name: "level out of range",
			res: model.Result{
				Outline: []model.Entry{{Level: 4, Text: "Deep", Page: 1}},
			},
			wantErr: "level 4 out of range",
		},
		{
			name: "empty text",
			res: model.Result{
				Outline: []model.Entry{{Level: model.H1, Text: "", Page: 1}},
			},
			wantErr: "empty text",
		},
		{
			name: "zero page",
			res: model.Result{
				Outline: []model.Entry{{Level: model.H1, Text: "Intro", Page: 0}},
			},
			wantErr: "not 1-based",
		},
		{
			name: "pages decrease",
			res: model.Result{
				Outline: []model.Entry{
					{Level: model.H1, Text: "Later", Page: 5},
					{Level: model.H2, Text: "Earlier", Page: 2},
				},
			},
			wantErr: "precedes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.res)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	res := model.Result{
		Outline: []model.Entry{
			{Level: 0, Text: "", Page: 0},
		},
	}

	err := Validate(res)
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"level 0", "empty text", "not 1-based"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %v missing %q", err, want)
		}
	}
}
