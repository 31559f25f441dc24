package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"medclinic-client/internal/devserver/middleware"
	"medclinic-client/internal/devserver/store"
	"medclinic-client/internal/models"
)

// DoctorHandler serves the /doctor router.
type DoctorHandler struct {
	DB *gorm.DB
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{DB: db}
}

// MySchedule lists the calling doctor's slots ordered by start time.
func (h *DoctorHandler) MySchedule(c *gin.Context) {
	doctorID, _ := middleware.GetUserIDFromContext(c)

	var appts []store.Appointment
	if err := h.DB.Where("doctor_id = ?", doctorID).Find(&appts).Error; err != nil {
		InternalServerError(c, "Failed to fetch schedule: "+err.Error())
		return
	}
	store.SortByStart(appts, false)
	c.JSON(http.StatusOK, toAppointmentModels(appts))
}

// PatientHistory lists a patient's visit records newest first.
func (h *DoctorHandler) PatientHistory(c *gin.Context) {
	listHistory(c, h.DB, c.Param("patientId"))
}

// HistoryRequest represents the request body for a visit record.
type HistoryRequest struct {
	PatientID       string   `json:"patient_id" validate:"required"`
	AppointmentID   string   `json:"appointment_id" validate:"required"`
	Diagnosis       string   `json:"diagnosis" validate:"required,min=3"`
	TreatmentNotes  string   `json:"treatment_notes" validate:"required"`
	Recommendations []string `json:"recommendations"`
}

// AddHistory stores a visit record and completes the appointment.
func (h *DoctorHandler) AddHistory(c *gin.Context) {
	var req HistoryRequest
	if !BindAndValidate(c, &req) {
		return
	}
	doctorID, _ := middleware.GetUserIDFromContext(c)

	var record store.MedicalHistory
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var appt store.Appointment
		if err := tx.First(&appt, "id = ?", req.AppointmentID).Error; err != nil {
			return err
		}
		if appt.DoctorID != doctorID {
			return gorm.ErrRecordNotFound
		}

		record = store.MedicalHistory{
			PatientID:       req.PatientID,
			DoctorID:        doctorID,
			AppointmentID:   req.AppointmentID,
			Diagnosis:       req.Diagnosis,
			TreatmentNotes:  req.TreatmentNotes,
			Recommendations: req.Recommendations,
			Date:            time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return tx.Model(&appt).Update("status", models.StatusCompleted).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "Appointment not found or not yours")
		return
	}
	if err != nil {
		InternalServerError(c, "Failed to save visit record: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, record.ToModel())
}

// appointmentDetail is the doctor's view of an appointment.
type appointmentDetail struct {
	models.Appointment
	PatientData *models.PatientData `json:"patient_data,omitempty"`
}

// AppointmentDetail returns an appointment with its patient's name and e-mail.
func (h *DoctorHandler) AppointmentDetail(c *gin.Context) {
	var appt store.Appointment
	if err := h.DB.First(&appt, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Appointment not found")
		} else {
			InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	out := appointmentDetail{Appointment: appt.ToModel()}
	if appt.PatientID != nil {
		var patient store.User
		if err := h.DB.First(&patient, "id = ?", *appt.PatientID).Error; err == nil {
			out.PatientData = &models.PatientData{FullName: patient.FullName, Email: patient.Email}
		}
	}
	c.JSON(http.StatusOK, out)
}
