package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umairnumplate/noor-ul-masajid/core/graduate"
	"github.com/umairnumplate/noor-ul-masajid/core/teacher"
)

func Test_teacherApi(t *testing.T) {
	app := newTestApp(t)

	app.run(t, []httpTest{
		{name: "schedule bad day", path: "/v1/teachers/schedule?day=Funday", token: app.token, wantCode: http.StatusBadRequest},
		{name: "schedule friday", path: "/v1/teachers/schedule?day=Friday", token: app.token, wantData: []byte(`[]`)},
		{
			name: "create bad slot", method: http.MethodPost, path: "/v1/teachers", token: app.token, wantCode: http.StatusBadRequest,
			body: []byte(`{"name":"Mufti Usman","contact":"0300","timetable":[{"day":"Monday","subject":"Fiqh","classId":"dn1","startTime":"9","endTime":"10:00"}]}`),
		},
		{name: "retrieve unknown", path: "/v1/teachers/t9", token: app.token, wantCode: http.StatusNotFound},
	})

	rec := app.serve(http.MethodGet, "/v1/teachers/schedule?day=Monday", app.token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var slots []teacher.Slot
	unmarshal(t, rec, &slots)
	require.Len(t, slots, 3)
	assert.Equal(t, "Tajweed", slots[0].Subject)
	assert.Equal(t, "Qari Ahmed Raza", slots[0].TeacherName)

	rec = app.serve(http.MethodPost, "/v1/teachers", app.token,
		[]byte(`{"name":"Mufti Usman","contact":"0300","timetable":[{"day":"Friday","subject":"Fiqh","classId":"dn1","startTime":"09:00","endTime":"10:00"}]}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created teacher.Teacher
	unmarshal(t, rec, &created)
	require.Len(t, created.Timetable, 1)
	assert.NotEmpty(t, created.Timetable[0].ID)

	rec = app.serve(http.MethodPut, "/v1/teachers/"+created.ID, app.token, []byte(`{"name":"Mufti Usman","contact":"0301"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated teacher.Teacher
	unmarshal(t, rec, &updated)
	assert.Equal(t, "0301", updated.Contact)
	assert.Len(t, updated.Timetable, 1, "the timetable is kept when omitted")

	assert.Equal(t, http.StatusNoContent, app.serve(http.MethodDelete, "/v1/teachers/"+created.ID, app.token).Code)
}

func Test_graduateApi(t *testing.T) {
	app := newTestApp(t)

	app.run(t, []httpTest{
		{
			name: "save bad progress", method: http.MethodPost, path: "/v1/graduates", token: app.token, wantCode: http.StatusBadRequest,
			body:     []byte(`{"name":"Hamza","fatherName":"Yusuf","phone":"0300","graduationDate":"2024-06-01","degreeCompleted":"Dars-e-Nizami","darsENizamiProgress":{"h1":true}}`),
			wantData: []byte(`{"darsENizamiProgress":"progress can only be recorded for Dars-e-Nizami classes"}`),
		},
		{name: "edit unknown", method: http.MethodPut, path: "/v1/graduates/a9", token: app.token, wantCode: http.StatusNotFound,
			body: []byte(`{"name":"Hamza","fatherName":"Yusuf","phone":"0300","graduationDate":"2024-06-01","degreeCompleted":"Hifz"}`),
		},
	})

	rec := app.serve(http.MethodGet, "/v1/graduates/a1", app.token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var detail struct {
		Graduate graduate.Graduate        `json:"graduate"`
		Progress []graduate.ClassProgress `json:"progress"`
	}
	unmarshal(t, rec, &detail)
	assert.Equal(t, graduate.SanadReceived, detail.Graduate.SanadStatus())
	require.Len(t, detail.Progress, 9)
	assert.True(t, detail.Progress[8].Completed)

	rec = app.serve(http.MethodPost, "/v1/graduates", app.token,
		[]byte(`{"name":"Hamza","fatherName":"Yusuf","phone":"0300","graduationDate":"2024-06-01","degreeCompleted":"Hifz","hifzSanadStatus":"Not Yet Issued"}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created graduate.Graduate
	unmarshal(t, rec, &created)
	assert.Equal(t, "https://picsum.photos/seed/"+created.ID+"-grad/200", created.AlumniPicture)
	assert.Equal(t, graduate.SanadNotYetIssued, created.SanadStatus())

	assert.Equal(t, http.StatusNoContent, app.serve(http.MethodDelete, "/v1/graduates/"+created.ID, app.token).Code)
}
