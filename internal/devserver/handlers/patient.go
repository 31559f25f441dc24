package handlers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"medclinic-client/internal/devserver/middleware"
	"medclinic-client/internal/devserver/store"
	"medclinic-client/internal/models"
)

// CancelNotice is how far ahead of its start a booking may still be cancelled.
const CancelNotice = 24 * time.Hour

var errSlotTaken = errors.New("slot taken")

// PatientHandler serves the /user router.
type PatientHandler struct {
	DB  *gorm.DB
	Now func() time.Time
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db, Now: time.Now}
}

// Doctors lists active doctors. The route is public.
func (h *PatientHandler) Doctors(c *gin.Context) {
	var doctors []store.User
	if err := h.DB.Where("role = ? AND is_active = ?", models.RoleDoctor, true).Find(&doctors).Error; err != nil {
		InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}
	out := make([]models.User, len(doctors))
	for i := range doctors {
		out[i] = doctors[i].ToModel()
	}
	c.JSON(http.StatusOK, out)
}

// BookingRequest represents the details a patient submits when booking.
type BookingRequest struct {
	ReasonForVisit    string  `json:"reason_for_visit" validate:"required,min=5"`
	PreviousTreatment bool    `json:"previous_treatment"`
	AdditionalNotes   *string `json:"additional_notes"`
}

// Book reserves an available slot for the calling patient.
func (h *PatientHandler) Book(c *gin.Context) {
	var req BookingRequest
	if !BindAndValidate(c, &req) {
		return
	}
	patientID, _ := middleware.GetUserIDFromContext(c)

	var appt store.Appointment
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND status = ?", c.Param("id"), models.StatusAvailable).
			First(&appt).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errSlotTaken
			}
			return err
		}
		appt.PatientID = &patientID
		appt.Status = models.StatusBooked
		appt.Details = &models.AppointmentDetails{
			ReasonForVisit:    req.ReasonForVisit,
			PreviousTreatment: req.PreviousTreatment,
			AdditionalNotes:   req.AdditionalNotes,
		}
		return tx.Save(&appt).Error
	})
	if errors.Is(err, errSlotTaken) {
		BadRequest(c, "Appointment already taken or does not exist")
		return
	}
	if err != nil {
		InternalServerError(c, "Failed to book appointment: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, appt.ToModel())
}

// MyAppointments lists the caller's appointments newest first, each with its
// visit record when one exists.
func (h *PatientHandler) MyAppointments(c *gin.Context) {
	patientID, _ := middleware.GetUserIDFromContext(c)

	var appts []store.Appointment
	if err := h.DB.Where("patient_id = ?", patientID).Find(&appts).Error; err != nil {
		InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	store.SortByStart(appts, true)

	var histories []store.MedicalHistory
	if err := h.DB.Where("patient_id = ?", patientID).Find(&histories).Error; err != nil {
		InternalServerError(c, "Failed to fetch medical history: "+err.Error())
		return
	}
	byAppointment := make(map[string]*store.MedicalHistory, len(histories))
	for i := range histories {
		byAppointment[histories[i].AppointmentID] = &histories[i]
	}

	out := make([]models.Appointment, len(appts))
	for i := range appts {
		out[i] = appts[i].ToModel()
		if hist, ok := byAppointment[appts[i].ID]; ok {
			m := hist.ToModel()
			out[i].MedicalHistory = &m
		}
	}
	c.JSON(http.StatusOK, out)
}

// CancelAppointment releases the caller's booking when it starts more than a day from now.
func (h *PatientHandler) CancelAppointment(c *gin.Context) {
	patientID, _ := middleware.GetUserIDFromContext(c)

	var appt store.Appointment
	if err := h.DB.First(&appt, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Appointment not found")
		} else {
			InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	if appt.PatientID == nil || *appt.PatientID != patientID {
		Forbidden(c, "This is not your appointment")
		return
	}
	if appt.StartTime.Before(h.Now().Add(CancelNotice)) {
		BadRequest(c, "An appointment can be cancelled no later than 24 hours before it starts")
		return
	}

	appt.Status = models.StatusAvailable
	appt.PatientID = nil
	appt.Details = nil
	if err := h.DB.Save(&appt).Error; err != nil {
		InternalServerError(c, "Failed to cancel appointment: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Appointment cancelled"})
}

// MedicalHistory lists the caller's visit records newest first.
func (h *PatientHandler) MedicalHistory(c *gin.Context) {
	patientID, _ := middleware.GetUserIDFromContext(c)
	listHistory(c, h.DB, patientID)
}

func listHistory(c *gin.Context, db *gorm.DB, patientID string) {
	var records []store.MedicalHistory
	if err := db.Where("patient_id = ?", patientID).Find(&records).Error; err != nil {
		InternalServerError(c, "Failed to fetch medical history: "+err.Error())
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	out := make([]models.MedicalHistory, len(records))
	for i := range records {
		out[i] = records[i].ToModel()
	}
	c.JSON(http.StatusOK, out)
}
