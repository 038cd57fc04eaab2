package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s, substr string
		want      bool
	}{
		{s: "Ahmed Ali", substr: "", want: true},
		{s: "Ahmed Ali", substr: "   ", want: true},
		{s: "Ahmed Ali", substr: "ali", want: true},
		{s: "Ahmed Ali", substr: " AHMED ", want: true},
		{s: "Ahmed Ali", substr: "bilal", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.s+"/"+tt.substr, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsFold(tt.s, tt.substr))
		})
	}
}

func TestIsDateIsMonth(t *testing.T) {
	assert.True(t, IsDate("2024-10-05"))
	assert.False(t, IsDate("2024-13-05"))
	assert.False(t, IsDate("05/10/2024"))
	assert.True(t, IsMonth("2024-10"))
	assert.False(t, IsMonth("2024-10-05"))
	assert.False(t, IsMonth("Oct 2024"))
}

func TestFieldErrors(t *testing.T) {
	translator := NewTranslator()
	validate := validator.New()
	InitValidators(validate, translator)

	type form struct {
		Day   string `json:"day" validate:"required,ymd"`
		Month string `json:"month" validate:"omitempty,ym"`
		Start string `json:"start" validate:"omitempty,hhmm"`
	}

	tests := []struct {
		name string
		err  error
		want map[string]string
	}{
		{
			name: "validator errors",
			err:  validate.Struct(form{Month: "2024", Start: "24:00"}),
			want: map[string]string{
				"day":   "this field is required",
				"month": "month must be a month formatted as YYYY-MM",
				"start": "start must be a time formatted as HH:MM",
			},
		},
		{
			name: "bad date",
			err:  validate.Struct(form{Day: "2024-02-30"}),
			want: map[string]string{"day": "day must be a date formatted as YYYY-MM-DD"},
		},
		{
			name: "validation error fields",
			err:  NewValidationError(nil, FieldError{Field: "status", Error: "nope"}),
			want: map[string]string{"status": "nope"},
		},
		{name: "other error", err: assert.AnError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FieldErrors(tt.err, translator))
		})
	}

	assert.NoError(t, validate.Struct(form{Day: "2024-10-05", Month: "2024-10", Start: "09:30"}))
}

func TestSequenceGenerator(t *testing.T) {
	var g SequenceGenerator
	assert.Equal(t, "s1", g.NewID("s"))
	assert.Equal(t, "s2", g.NewID("s"))
	assert.Equal(t, "mf3", g.NewID("mf"))
}
