package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medclinic-client/internal/api"
	"medclinic-client/internal/devserver/devservertest"
	"medclinic-client/internal/models"
	"medclinic-client/internal/utils"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func loginAs(t *testing.T, env *devservertest.Env, email, password string) *api.Client {
	t.Helper()
	resp, err := api.NewClient(env.URL).Auth().Login(context.Background(), email, password)
	if err != nil {
		t.Fatalf("Login(%s): %v", email, err)
	}
	return api.NewClient(env.URL, api.WithTokenSource(staticToken(resp.AccessToken)))
}

func TestLogin_ReturnsTokenWithClaims(t *testing.T) {
	env := devservertest.Start(t)

	resp, err := api.NewClient(env.URL).Auth().Login(context.Background(), devservertest.AdminEmail, devservertest.AdminPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := utils.DecodeClaims(resp.AccessToken)
	if err != nil {
		t.Fatalf("DecodeClaims: %v", err)
	}
	if claims.Role != models.RoleAdmin || !claims.Active() || claims.UserID() == "" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	env := devservertest.Start(t)

	_, err := api.NewClient(env.URL).Auth().Login(context.Background(), devservertest.AdminEmail, "wrong")
	if !api.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("err = %v, want 401", err)
	}
	if got := api.DetailOr(err, "fallback"); got == "fallback" {
		t.Error("expected the backend detail")
	}
}

func TestPatientBookingFlow(t *testing.T) {
	env := devservertest.Start(t)
	doc := env.CreateUser(t, "doc@med-clinic.pl", "doctor123", "Dr House", models.RoleDoctor, true)
	env.CreateUser(t, "pat@example.com", "patient123", "Pat", models.RolePatient, true)
	slot := env.CreateSlot(t, doc.ID, time.Now().Add(48*time.Hour).Truncate(time.Minute), models.StatusAvailable)
	client := loginAs(t, env, "pat@example.com", "patient123")
	ctx := context.Background()

	doctors, err := client.Patient().Doctors(ctx)
	if err != nil || len(doctors) != 1 || doctors[0].ID != doc.ID {
		t.Fatalf("Doctors = %v, %v", doctors, err)
	}

	appts, err := client.Patient().DoctorAppointments(ctx, doc.ID)
	if err != nil || len(appts) != 1 || !appts[0].IsBookable() {
		t.Fatalf("DoctorAppointments = %v, %v", appts, err)
	}

	booked, err := client.Patient().Book(ctx, slot.ID, models.AppointmentDetails{ReasonForVisit: "Headache"})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if booked.Status != models.StatusBooked || booked.Details == nil || booked.Details.ReasonForVisit != "Headache" {
		t.Errorf("booked = %+v", booked)
	}

	_, err = client.Patient().Book(ctx, slot.ID, models.AppointmentDetails{ReasonForVisit: "Headache"})
	if !api.IsStatus(err, http.StatusBadRequest) {
		t.Errorf("second Book err = %v, want 400", err)
	}

	mine, err := client.Patient().MyAppointments(ctx)
	if err != nil || len(mine) != 1 || mine[0].ID != slot.ID {
		t.Fatalf("MyAppointments = %v, %v", mine, err)
	}
}

func TestAdminDoctorLifecycle(t *testing.T) {
	env := devservertest.Start(t)
	client := loginAs(t, env, devservertest.AdminEmail, devservertest.AdminPassword)
	ctx := context.Background()

	doc, err := client.Admin().RegisterDoctor(ctx, models.UserCreate{
		Email: "new@med-clinic.pl", Password: "secret123", FullName: "New Doc",
	})
	if err != nil {
		t.Fatalf("RegisterDoctor: %v", err)
	}

	toggled, err := client.Admin().ToggleDoctorActivity(ctx, doc.ID)
	if err != nil || toggled.IsActive {
		t.Fatalf("ToggleDoctorActivity = %+v, %v", toggled, err)
	}

	if err := client.Admin().UpdateDoctor(ctx, doc.ID, models.DoctorUpdate{FullName: "Renamed Doc", Email: "new@med-clinic.pl"}); err != nil {
		t.Fatalf("UpdateDoctor: %v", err)
	}
	got, err := client.Admin().Doctor(ctx, doc.ID)
	if err != nil || got.FullName != "Renamed Doc" || got.IsActive {
		t.Fatalf("Doctor = %+v, %v", got, err)
	}

	result, err := client.Admin().GenerateBulkSchedule(ctx, models.BulkScheduleRequest{
		DoctorID:        doc.ID,
		StartTime:       "2031-01-06T08:00:00.000Z",
		EndTime:         "2031-01-06T09:00:00.000Z",
		IntervalMinutes: 30,
	})
	if err != nil || result.Count != 2 {
		t.Fatalf("GenerateBulkSchedule = %+v, %v", result, err)
	}

	appts, err := client.Admin().DoctorAppointments(ctx, doc.ID)
	if err != nil || len(appts) != 2 {
		t.Fatalf("DoctorAppointments = %v, %v", appts, err)
	}
	_, err = client.Admin().UpdateAppointment(ctx, appts[0].ID, models.AppointmentUpdate{
		StartTime: "2031-01-06T08:30:00.000Z",
		EndTime:   "2031-01-06T09:00:00.000Z",
	})
	if !api.IsStatus(err, http.StatusBadRequest) {
		t.Errorf("colliding UpdateAppointment err = %v, want 400", err)
	}
	if err := client.Admin().DeleteAppointment(ctx, appts[1].ID); err != nil {
		t.Fatalf("DeleteAppointment: %v", err)
	}
	if err := client.Admin().ResetPassword(ctx, doc.ID, "brandnew123"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
}

func TestDoctorVisitFlow(t *testing.T) {
	env := devservertest.Start(t)
	doc := env.CreateUser(t, "doc@med-clinic.pl", "doctor123", "Dr House", models.RoleDoctor, true)
	pat := env.CreateUser(t, "pat@example.com", "patient123", "Pat Smith", models.RolePatient, true)
	slot := env.CreateSlot(t, doc.ID, time.Now().Truncate(time.Minute), models.StatusBooked)
	env.Server.DB.Model(&slot).Update("patient_id", pat.ID)
	client := loginAs(t, env, "doc@med-clinic.pl", "doctor123")
	ctx := context.Background()

	detail, err := client.Doctor().AppointmentDetail(ctx, slot.ID)
	if err != nil {
		t.Fatalf("AppointmentDetail: %v", err)
	}
	if detail.ID != slot.ID || detail.PatientData == nil || detail.PatientData.FullName != "Pat Smith" {
		t.Errorf("detail = %+v", detail)
	}

	if _, err := client.Doctor().AddHistory(ctx, models.MedicalHistoryCreate{
		PatientID: pat.ID, AppointmentID: slot.ID, Diagnosis: "Cold", TreatmentNotes: "Rest at home",
	}); err != nil {
		t.Fatalf("AddHistory: %v", err)
	}

	history, err := client.Doctor().PatientHistory(ctx, pat.ID)
	if err != nil || len(history) != 1 || history[0].Diagnosis != "Cold" {
		t.Fatalf("PatientHistory = %v, %v", history, err)
	}
	schedule, err := client.Doctor().MySchedule(ctx)
	if err != nil || len(schedule) != 1 || schedule[0].Status != models.StatusCompleted {
		t.Fatalf("MySchedule = %v, %v", schedule, err)
	}
}

func TestError_StringDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Slot already taken"}`))
	}))
	defer ts.Close()

	_, err := api.NewClient(ts.URL).Patient().Book(context.Background(), "a1", models.AppointmentDetails{ReasonForVisit: "Pain"})
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *api.Error", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Detail != "Slot already taken" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestError_ValidationListDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"msg":"field required"},{"msg":"too short"}]}`))
	}))
	defer ts.Close()

	_, err := api.NewClient(ts.URL).Auth().Register(context.Background(), models.UserCreate{})
	if got := api.DetailOr(err, ""); got != "field required; too short" {
		t.Errorf("DetailOr = %q", got)
	}
}

func TestError_NoDetailFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := api.NewClient(ts.URL).Patient().Doctors(context.Background())
	if got := api.DetailOr(err, "fallback"); got != "fallback" {
		t.Errorf("DetailOr = %q, want fallback", got)
	}
}

func TestClient_SendsBearerAndRequestID(t *testing.T) {
	var auth, reqID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		reqID = r.Header.Get(api.RequestIDHeader)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := api.NewClient(ts.URL, api.WithTokenSource(staticToken("abc")))
	if _, err := client.Patient().MyAppointments(context.Background()); err != nil {
		t.Fatalf("MyAppointments: %v", err)
	}
	if auth != "Bearer abc" {
		t.Errorf("Authorization = %q", auth)
	}
	if reqID == "" {
		t.Error("missing request id")
	}
}
