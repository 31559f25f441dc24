package api

import (
	"context"
	"net/http"
	"net/url"

	"medclinic-client/internal/models"
)

// AuthService wraps /auth.
type AuthService struct{ c *Client }

// Login posts the OAuth2 password form.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)
	var out models.AuthResponse
	if err := s.c.doForm(ctx, "/auth/login", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a patient account.
func (s *AuthService) Register(ctx context.Context, req models.UserCreate) (*models.User, error) {
	var out models.User
	if err := s.c.doJSON(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminService wraps /admin.
type AdminService struct{ c *Client }

// Doctors lists every doctor, active or not.
func (s *AdminService) Doctors(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := s.c.doJSON(ctx, http.MethodGet, "/admin/all-doctors-full", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterDoctor creates a doctor account.
func (s *AdminService) RegisterDoctor(ctx context.Context, req models.UserCreate) (*models.User, error) {
	active := true
	req.Role = models.RoleDoctor
	req.IsActive = &active
	var out models.User
	if err := s.c.doJSON(ctx, http.MethodPost, "/admin/register-doctor", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Doctor fetches one doctor.
func (s *AdminService) Doctor(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	if err := s.c.doJSON(ctx, http.MethodGet, "/admin/doctor/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDoctor changes a doctor's name and e-mail.
func (s *AdminService) UpdateDoctor(ctx context.Context, id string, req models.DoctorUpdate) error {
	return s.c.doJSON(ctx, http.MethodPut, "/admin/doctor/"+escape(id), req, nil)
}

// DoctorAppointments lists a doctor's slots sorted by start time.
func (s *AdminService) DoctorAppointments(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return doctorAppointments(ctx, s.c, doctorID)
}

// ToggleDoctorActivity suspends or reactivates a doctor.
func (s *AdminService) ToggleDoctorActivity(ctx context.Context, id string) (*models.ToggleActivityResult, error) {
	var out models.ToggleActivityResult
	if err := s.c.doJSON(ctx, http.MethodPatch, "/admin/doctor/"+escape(id)+"/toggle-activity", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword sets a new password for a user.
func (s *AdminService) ResetPassword(ctx context.Context, userID, newPassword string) error {
	req := models.PasswordReset{UserID: userID, NewPassword: newPassword}
	return s.c.doJSON(ctx, http.MethodPost, "/admin/admin-reset-password", req, nil)
}

// GenerateBulkSchedule creates available slots over a time window.
func (s *AdminService) GenerateBulkSchedule(ctx context.Context, req models.BulkScheduleRequest) (*models.ScheduleResult, error) {
	if req.Breaks == nil {
		req.Breaks = []models.BreakWindow{}
	}
	var out models.ScheduleResult
	if err := s.c.doJSON(ctx, http.MethodPost, "/admin/generate-bulk-schedule", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAppointment moves an appointment's time window.
func (s *AdminService) UpdateAppointment(ctx context.Context, id string, req models.AppointmentUpdate) (*models.Appointment, error) {
	var out models.Appointment
	if err := s.c.doJSON(ctx, http.MethodPatch, "/admin/appointment/"+escape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAppointment removes a slot.
func (s *AdminService) DeleteAppointment(ctx context.Context, id string) error {
	return s.c.doJSON(ctx, http.MethodDelete, "/admin/appointment/"+escape(id), nil, nil)
}

// DoctorService wraps /doctor.
type DoctorService struct{ c *Client }

// MySchedule lists the logged-in doctor's slots.
func (s *DoctorService) MySchedule(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := s.c.doJSON(ctx, http.MethodGet, "/doctor/my-schedule", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PatientHistory lists a patient's records, newest first.
func (s *DoctorService) PatientHistory(ctx context.Context, patientID string) ([]models.MedicalHistory, error) {
	var out []models.MedicalHistory
	if err := s.c.doJSON(ctx, http.MethodGet, "/doctor/patient-history/"+escape(patientID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddHistory records a visit and completes its appointment.
func (s *DoctorService) AddHistory(ctx context.Context, req models.MedicalHistoryCreate) (*models.MedicalHistory, error) {
	if req.Recommendations == nil {
		req.Recommendations = []string{}
	}
	var out models.MedicalHistory
	if err := s.c.doJSON(ctx, http.MethodPost, "/doctor/add-history", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AppointmentDetail fetches an appointment with its patient snapshot.
func (s *DoctorService) AppointmentDetail(ctx context.Context, id string) (*models.FullAppointment, error) {
	var out models.FullAppointment
	if err := s.c.doJSON(ctx, http.MethodGet, "/doctor/appointment-detail/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatientService wraps /user.
type PatientService struct{ c *Client }

// Doctors lists active doctors.
func (s *PatientService) Doctors(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := s.c.doJSON(ctx, http.MethodGet, "/user/doctors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DoctorAppointments lists a doctor's slots.
func (s *PatientService) DoctorAppointments(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return doctorAppointments(ctx, s.c, doctorID)
}

// Book reserves an available slot.
func (s *PatientService) Book(ctx context.Context, appointmentID string, details models.AppointmentDetails) (*models.Appointment, error) {
	var out models.Appointment
	if err := s.c.doJSON(ctx, http.MethodPatch, "/user/book/"+escape(appointmentID), details, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyAppointments lists the patient's appointments, newest first.
func (s *PatientService) MyAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := s.c.doJSON(ctx, http.MethodGet, "/user/my-appointments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelAppointment releases a booked slot.
func (s *PatientService) CancelAppointment(ctx context.Context, id string) error {
	return s.c.doJSON(ctx, http.MethodPatch, "/user/cancel-appointment/"+escape(id), nil, nil)
}

// MedicalHistory lists the patient's records.
func (s *PatientService) MedicalHistory(ctx context.Context) ([]models.MedicalHistory, error) {
	var out []models.MedicalHistory
	if err := s.c.doJSON(ctx, http.MethodGet, "/user/my-medical-history", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func doctorAppointments(ctx context.Context, c *Client, doctorID string) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := c.doJSON(ctx, http.MethodGet, "/admin/doctor/"+escape(doctorID)+"/appointments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
