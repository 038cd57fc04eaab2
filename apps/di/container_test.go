package di_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/umairnumplate/noor-ul-masajid/apps/api/echo"
	"github.com/umairnumplate/noor-ul-masajid/apps/di"
	"github.com/umairnumplate/noor-ul-masajid/core"
	testutil "github.com/umairnumplate/noor-ul-masajid/tests"
)

func TestNew(t *testing.T) {
	c := di.New(testutil.Config)

	var svc di.Services
	require.NoError(t, c.Invoke(func(s di.Services) { svc = s }))
	t.Cleanup(func() { _ = svc.DB.Close() })

	assert.NotNil(t, svc.Students)
	assert.NotNil(t, svc.Dashboard)
	assert.False(t, svc.Generator.IsAvailable(), "no API key configured")

	students, err := svc.Students.QueryAll()
	require.NoError(t, err)
	assert.Len(t, students, 3)

	var server *echoapi.Server
	require.NoError(t, c.Invoke(func(s *echoapi.Server) { server = s }))
	assert.NotNil(t, server)
}

func TestNewValidator(t *testing.T) {
	validate := di.NewValidator(core.NewTranslator())

	tests := []struct {
		tag     string
		value   string
		wantErr bool
	}{
		{tag: "ymd", value: "2024-10-01"},
		{tag: "ymd", value: "2024-13-01", wantErr: true},
		{tag: "ym", value: "2024-10"},
		{tag: "ym", value: "10-2024", wantErr: true},
		{tag: "hhmm", value: "08:30"},
		{tag: "hhmm", value: "24:00", wantErr: true},
		{tag: "classid", value: "dn1"},
		{tag: "classid", value: "dn10", wantErr: true},
		{tag: "weekday", value: "Monday"},
		{tag: "weekday", value: "monday", wantErr: true},
		{tag: "attendancestatus", value: "Leave"},
		{tag: "attendancestatus", value: "Late", wantErr: true},
		{tag: "feestatus", value: "Paid"},
		{tag: "feestatus", value: "Overdue", wantErr: true},
		{tag: "sanadstatus", value: "Received"},
		{tag: "sanadstatus", value: "Lost", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.value, func(t *testing.T) {
			err := validate.Var(tt.value, tt.tag)
			if tt.wantErr {
				var verrs validator.ValidationErrors
				assert.ErrorAs(t, err, &verrs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewValidator_translations(t *testing.T) {
	translator := core.NewTranslator()
	validate := di.NewValidator(translator)

	type form struct {
		Month  string `json:"month" validate:"required"`
		Status string `json:"status" validate:"feestatus"`
	}
	err := validate.Struct(form{Status: "Overdue"})
	assert.Equal(t, map[string]string{
		"month":  "this field is required",
		"status": "status must be one of Paid, Pending",
	}, core.FieldErrors(err, translator))
}
