package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/agecalc/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agecalc/internal/domain"
	"github.com/jsamuelsen11/agecalc/internal/ports"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestAgeRequest_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    ports.AgeInput
		wantErr bool
	}{
		{
			name: "strings",
			body: `{"day":"07","month":"6","year":"2000"}`,
			want: ports.AgeInput{Day: "07", Month: "6", Year: "2000"},
		},
		{
			name: "numbers",
			body: `{"day":7,"month":6,"year":2000}`,
			want: ports.AgeInput{Day: "7", Month: "6", Year: "2000"},
		},
		{
			name: "null and missing",
			body: `{"day":null,"year":""}`,
			want: ports.AgeInput{},
		},
		{
			name: "non-digit strings pass through untouched",
			body: `{"day":"1a","month":" 6","year":"-1"}`,
			want: ports.AgeInput{Day: "1a", Month: " 6", Year: "-1"},
		},
		{
			name:    "boolean",
			body:    `{"day":true}`,
			wantErr: true,
		},
		{
			name:    "object",
			body:    `{"day":{"n":1}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req dto.AgeRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) error = nil, want error", tt.body)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.body, err)
			}
			if err := req.Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if got := req.ToInput(); got != tt.want {
				t.Errorf("ToInput() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAgeBatchRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("empty items", func(t *testing.T) {
		t.Parallel()
		req := dto.AgeBatchRequest{}
		requireValidationField(t, req.Validate(), "items")
	})

	t.Run("items in order", func(t *testing.T) {
		t.Parallel()

		var req dto.AgeBatchRequest
		body := `{"items":[{"day":"1","month":"2","year":"2003"},{"day":4,"month":5,"year":2006}]}`
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("Unmarshal error = %v", err)
		}
		if err := req.Validate(); err != nil {
			t.Fatalf("Validate() = %v, want nil", err)
		}

		got := req.ToInputs()
		want := []ports.AgeInput{
			{Day: "1", Month: "2", Year: "2003"},
			{Day: "4", Month: "5", Year: "2006"},
		}
		if len(got) != len(want) {
			t.Fatalf("len(ToInputs()) = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("ToInputs()[%d] = %+v, want %+v", i, got[i], want[i])
			}
		}
	})
}
