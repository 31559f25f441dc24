package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"medclinic-client/internal/config"
	"medclinic-client/internal/devserver/handlers"
	"medclinic-client/internal/devserver/middleware"
	"medclinic-client/internal/models"
)

// SetupRoutes configures the clinic API routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.DevServerConfig) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db)
	doctorHandler := handlers.NewDoctorHandler(db)
	patientHandler := handlers.NewPatientHandler(db)

	authenticated := middleware.AuthMiddleware(cfg.JWTSecret)

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Schedules are readable without logging in so patients can browse.
	router.GET("/admin/doctor/:id/appointments", adminHandler.DoctorAppointments)

	admin := router.Group("/admin")
	admin.Use(authenticated, middleware.RoleAuthMiddleware("Administrator privileges required", models.RoleAdmin))
	{
		admin.GET("/all-doctors-full", adminHandler.AllDoctors)
		admin.POST("/register-doctor", adminHandler.RegisterDoctor)
		admin.GET("/doctor/:id", adminHandler.GetDoctor)
		admin.PUT("/doctor/:id", adminHandler.UpdateDoctor)
		admin.PATCH("/doctor/:id/toggle-activity", adminHandler.ToggleActivity)
		admin.POST("/admin-reset-password", adminHandler.ResetPassword)
		admin.POST("/generate-bulk-schedule", adminHandler.GenerateBulkSchedule)
		admin.PATCH("/appointment/:id", adminHandler.UpdateAppointment)
		admin.DELETE("/appointment/:id", adminHandler.DeleteAppointment)
	}

	doctor := router.Group("/doctor")
	doctor.Use(authenticated, middleware.RoleAuthMiddleware("Only doctors can access this resource", models.RoleDoctor))
	{
		doctor.GET("/my-schedule", doctorHandler.MySchedule)
		doctor.GET("/patient-history/:patientId", doctorHandler.PatientHistory)
		doctor.POST("/add-history", doctorHandler.AddHistory)
		doctor.GET("/appointment-detail/:id", doctorHandler.AppointmentDetail)
	}

	user := router.Group("/user")
	{
		user.GET("/doctors", patientHandler.Doctors)

		patient := user.Group("")
		patient.Use(authenticated, middleware.RoleAuthMiddleware("This endpoint is for patients only", models.RolePatient))
		{
			patient.PATCH("/book/:id", patientHandler.Book)
			patient.GET("/my-appointments", patientHandler.MyAppointments)
			patient.PATCH("/cancel-appointment/:id", patientHandler.CancelAppointment)
			patient.GET("/my-medical-history", patientHandler.MedicalHistory)
		}
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Clinic appointment API is running"})
	})
}
