package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"medclinic-client/internal/devserver/store"
	"medclinic-client/internal/models"
)

// AdminHandler serves the /admin router.
type AdminHandler struct {
	DB *gorm.DB
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{DB: db}
}

// AllDoctors lists every doctor account, suspended ones included.
func (h *AdminHandler) AllDoctors(c *gin.Context) {
	var doctors []store.User
	if err := h.DB.Where("role = ?", models.RoleDoctor).Order("email asc").Find(&doctors).Error; err != nil {
		InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}
	out := make([]models.User, len(doctors))
	for i := range doctors {
		out[i] = doctors[i].ToModel()
	}
	c.JSON(http.StatusOK, out)
}

// RegisterDoctor creates an active doctor account regardless of the role sent.
func (h *AdminHandler) RegisterDoctor(c *gin.Context) {
	var req RegisterRequest
	if !BindAndValidate(c, &req) {
		return
	}
	user, ok := createUser(c, h.DB, req, models.RoleDoctor)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user.ToModel())
}

// findDoctor loads a doctor, answering 404 itself when there is none.
func (h *AdminHandler) findDoctor(c *gin.Context, id string) (*store.User, bool) {
	var doctor store.User
	if err := h.DB.Where("id = ? AND role = ?", id, models.RoleDoctor).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "No doctor with the given ID")
		} else {
			InternalServerError(c, "Database error: "+err.Error())
		}
		return nil, false
	}
	return &doctor, true
}

// GetDoctor returns one doctor.
func (h *AdminHandler) GetDoctor(c *gin.Context) {
	doctor, ok := h.findDoctor(c, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doctor.ToModel())
}

// DoctorUpdateRequest represents the request body for editing a doctor.
type DoctorUpdateRequest struct {
	FullName string `json:"full_name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
}

// UpdateDoctor changes a doctor's name and e-mail.
func (h *AdminHandler) UpdateDoctor(c *gin.Context) {
	var req DoctorUpdateRequest
	if !BindAndValidate(c, &req) {
		return
	}

	var user store.User
	if err := h.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "No user with the given ID")
		} else {
			InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	if user.Role != models.RoleDoctor {
		BadRequest(c, fmt.Sprintf("This user is not a doctor (role: %s)", user.Role))
		return
	}

	if req.Email != user.Email {
		var count int64
		if err := h.DB.Model(&store.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			InternalServerError(c, "Database error: "+err.Error())
			return
		}
		if count > 0 {
			BadRequest(c, "This email is already taken")
			return
		}
	}

	user.FullName = req.FullName
	user.Email = req.Email
	if err := h.DB.Save(&user).Error; err != nil {
		InternalServerError(c, "Failed to update doctor: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Doctor details updated"})
}

// DoctorAppointments lists a doctor's slots ordered by start time. The route is public.
func (h *AdminHandler) DoctorAppointments(c *gin.Context) {
	var appts []store.Appointment
	if err := h.DB.Where("doctor_id = ?", c.Param("id")).Find(&appts).Error; err != nil {
		BadRequest(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	store.SortByStart(appts, false)
	c.JSON(http.StatusOK, toAppointmentModels(appts))
}

// ToggleActivity suspends an active doctor or reactivates a suspended one.
func (h *AdminHandler) ToggleActivity(c *gin.Context) {
	doctor, ok := h.findDoctor(c, c.Param("id"))
	if !ok {
		return
	}
	doctor.IsActive = !doctor.IsActive
	if err := h.DB.Model(doctor).Update("is_active", doctor.IsActive).Error; err != nil {
		InternalServerError(c, "Failed to update status: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, models.ToggleActivityResult{Message: "Status changed", IsActive: doctor.IsActive})
}

// PasswordResetRequest represents the request body for an admin password reset.
type PasswordResetRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// ResetPassword sets a new password for any user.
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	var req PasswordResetRequest
	if !BindAndValidate(c, &req) {
		return
	}

	var user store.User
	if err := h.DB.First(&user, "id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "User does not exist")
		} else {
			InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}
	if err := h.DB.Model(&user).Update("password", user.Password).Error; err != nil {
		InternalServerError(c, "Failed to update password: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Password changed for " + user.Email})
}

// BreakRequest is a pause inside a generated schedule.
type BreakRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// BulkScheduleRequest represents the request body for slot generation.
type BulkScheduleRequest struct {
	DoctorID        string         `json:"doctor_id" validate:"required"`
	StartTime       string         `json:"start_time" validate:"required"`
	EndTime         string         `json:"end_time" validate:"required"`
	IntervalMinutes *int           `json:"interval_minutes" validate:"omitempty,min=5,max=120"`
	Breaks          []BreakRequest `json:"breaks" validate:"dive"`
}

type window struct {
	start, end time.Time
}

// GenerateBulkSchedule fills [start, end) with available slots of the given
// length, skipping breaks and anything that collides with existing slots.
func (h *AdminHandler) GenerateBulkSchedule(c *gin.Context) {
	var req BulkScheduleRequest
	if !BindAndValidate(c, &req) {
		return
	}

	doctor, ok := h.findDoctor(c, req.DoctorID)
	if !ok {
		return
	}

	genStart, err := parseWallClock(req.StartTime)
	if err != nil {
		BadRequest(c, "Invalid start_time: "+err.Error())
		return
	}
	genEnd, err := parseWallClock(req.EndTime)
	if err != nil {
		BadRequest(c, "Invalid end_time: "+err.Error())
		return
	}
	interval := 15
	if req.IntervalMinutes != nil {
		interval = *req.IntervalMinutes
	}
	step := time.Duration(interval) * time.Minute

	breaks := make([]window, 0, len(req.Breaks))
	for _, b := range req.Breaks {
		start, err := parseWallClock(b.Start)
		if err != nil {
			BadRequest(c, "Invalid break start: "+err.Error())
			return
		}
		end, err := parseWallClock(b.End)
		if err != nil {
			BadRequest(c, "Invalid break end: "+err.Error())
			return
		}
		breaks = append(breaks, window{start: start, end: end})
	}

	var existing []store.Appointment
	if err := h.DB.Where("doctor_id = ?", doctor.ID).Find(&existing).Error; err != nil {
		InternalServerError(c, "Failed to fetch schedule: "+err.Error())
		return
	}

	var slots []store.Appointment
	for cur := genStart; !cur.Add(step).After(genEnd); cur = cur.Add(step) {
		slotEnd := cur.Add(step)
		if overlapsAny(breaks, cur, slotEnd) || collides(existing, cur, slotEnd) {
			continue
		}
		slots = append(slots, store.Appointment{
			DoctorID:  doctor.ID,
			StartTime: cur,
			EndTime:   slotEnd,
			Status:    models.StatusAvailable,
		})
	}

	if len(slots) == 0 {
		BadRequest(c, "No new slots were generated. Every slot collides with a break or the existing schedule")
		return
	}
	if err := h.DB.Create(&slots).Error; err != nil {
		InternalServerError(c, "Failed to save slots: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, models.ScheduleResult{
		Message: fmt.Sprintf("Generated %d slots for %s", len(slots), doctor.FullName),
		Count:   len(slots),
	})
}

func overlapsAny(ws []window, start, end time.Time) bool {
	for _, w := range ws {
		if start.Before(w.end) && end.After(w.start) {
			return true
		}
	}
	return false
}

func collides(appts []store.Appointment, start, end time.Time) bool {
	for i := range appts {
		if appts[i].Overlaps(start, end) {
			return true
		}
	}
	return false
}

// AppointmentUpdateRequest represents the request body for editing an appointment.
type AppointmentUpdateRequest struct {
	DoctorID  *string                   `json:"doctor_id"`
	StartTime *string                   `json:"start_time"`
	EndTime   *string                   `json:"end_time"`
	Status    *models.AppointmentStatus `json:"status" validate:"omitempty,oneof=available booked completed"`
}

// UpdateAppointment moves an appointment, refusing windows that collide with
// another slot of the same doctor.
func (h *AdminHandler) UpdateAppointment(c *gin.Context) {
	var req AppointmentUpdateRequest
	if !BindAndValidate(c, &req) {
		return
	}

	var appt store.Appointment
	if err := h.DB.First(&appt, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Appointment does not exist")
		} else {
			InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	moved := req.DoctorID != nil || req.StartTime != nil || req.EndTime != nil
	if req.DoctorID != nil {
		appt.DoctorID = *req.DoctorID
	}
	if req.StartTime != nil {
		t, err := parseWallClock(*req.StartTime)
		if err != nil {
			BadRequest(c, "Invalid start_time: "+err.Error())
			return
		}
		appt.StartTime = t
	}
	if req.EndTime != nil {
		t, err := parseWallClock(*req.EndTime)
		if err != nil {
			BadRequest(c, "Invalid end_time: "+err.Error())
			return
		}
		appt.EndTime = t
	}
	if req.Status != nil {
		appt.Status = *req.Status
	}

	if moved {
		if !appt.EndTime.After(appt.StartTime) {
			BadRequest(c, "End time must be after start time")
			return
		}
		var others []store.Appointment
		if err := h.DB.Where("doctor_id = ? AND id <> ?", appt.DoctorID, appt.ID).Find(&others).Error; err != nil {
			InternalServerError(c, "Database error: "+err.Error())
			return
		}
		for i := range others {
			if others[i].Overlaps(appt.StartTime, appt.EndTime) {
				BadRequest(c, fmt.Sprintf("Collision! The doctor already has another appointment at that time (%s - %s)",
					others[i].StartTime.In(models.Location()).Format("15:04"), others[i].EndTime.In(models.Location()).Format("15:04")))
				return
			}
		}
	}

	if err := h.DB.Save(&appt).Error; err != nil {
		InternalServerError(c, "Failed to update appointment: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, appt.ToModel())
}

// DeleteAppointment removes a slot.
func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	result := h.DB.Delete(&store.Appointment{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		InternalServerError(c, "Failed to delete appointment: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "No appointment to delete")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Appointment deleted"})
}

// parseWallClock reads a request timestamp and keeps only its wall clock,
// placed in the wall-clock zone of naive timestamps. Clients send local times labelled UTC.
func parseWallClock(s string) (time.Time, error) {
	t, err := models.ParseTimestamp(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), models.Location()), nil
}

func toAppointmentModels(appts []store.Appointment) []models.Appointment {
	out := make([]models.Appointment, len(appts))
	for i := range appts {
		out[i] = appts[i].ToModel()
	}
	return out
}
