package attendance

import (
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

type memRepo struct {
	sync.Mutex
	records []Record
}

func (r *memRepo) QueryAllRecords() ([]Record, error) {
	r.Lock()
	defer r.Unlock()
	return append([]Record(nil), r.records...), nil
}

func (r *memRepo) UpdateRecords(fn func(records []Record) []Record) error {
	r.Lock()
	defer r.Unlock()
	r.records = fn(append([]Record(nil), r.records...))
	return nil
}

func newService() (*Service, *memRepo) {
	translator := core.NewTranslator()
	validate := validator.New()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)

	repo := new(memRepo)
	return NewService(repo, validate), repo
}

func TestService_SetStatus(t *testing.T) {
	svc, repo := newService()

	require.NoError(t, svc.SetStatus("s1", "2024-10-01", StatusAbsent))
	require.NoError(t, svc.SetStatus("s1", "2024-10-01", StatusPresent))
	require.NoError(t, svc.SetStatus("s2", "2024-10-01", StatusLeave))

	assert.Equal(t, []Record{
		{StudentID: "s1", Date: "2024-10-01", Status: StatusPresent},
		{StudentID: "s2", Date: "2024-10-01", Status: StatusLeave},
	}, repo.records, "one record per student and date")

	status, ok, err := svc.StatusOf("s1", "2024-10-01")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StatusPresent, status)

	require.NoError(t, svc.ClearStatus("s1", "2024-10-01"))
	_, ok, _ = svc.StatusOf("s1", "2024-10-01")
	assert.False(t, ok)
	require.NoError(t, svc.ClearStatus("s1", "2024-10-01"), "clearing twice is fine")
}

func TestService_SetStatus_invalid(t *testing.T) {
	svc, repo := newService()

	tests := []struct {
		name            string
		studentID, date string
		status          Status
	}{
		{name: "unknown status", studentID: "s1", date: "2024-10-01", status: "Late"},
		{name: "bad date", studentID: "s1", date: "01/10/2024", status: StatusPresent},
		{name: "no student", date: "2024-10-01", status: StatusPresent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, svc.SetStatus(tt.studentID, tt.date, tt.status))
		})
	}
	assert.Empty(t, repo.records)
}

func TestService_MarkAll(t *testing.T) {
	svc, repo := newService()
	repo.records = []Record{
		{StudentID: "s1", Date: "2024-10-01", Status: StatusAbsent},
		{StudentID: "s1", Date: "2024-09-30", Status: StatusAbsent},
		{StudentID: "s9", Date: "2024-10-01", Status: StatusLeave},
	}

	require.NoError(t, svc.MarkAll([]string{"s1", "s2", "s2"}, "2024-10-01", StatusPresent))

	assert.ElementsMatch(t, []Record{
		{StudentID: "s1", Date: "2024-09-30", Status: StatusAbsent},
		{StudentID: "s9", Date: "2024-10-01", Status: StatusLeave},
		{StudentID: "s1", Date: "2024-10-01", Status: StatusPresent},
		{StudentID: "s2", Date: "2024-10-01", Status: StatusPresent},
	}, repo.records)

	assert.Error(t, svc.MarkAll([]string{"s1"}, "2024-10-01", "Late"))
}
