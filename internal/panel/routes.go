package panel

import (
	"net/url"

	"medclinic-client/internal/models"
)

// Screen routes.
const (
	RouteLogin          = "/login"
	RouteRegister       = "/register"
	RouteAdmin          = "/admin"
	RouteAdminNewDoctor = "/admin/doctor/new"
	RouteDoctor         = "/doctor"
	RouteDoctorSchedule = "/doctor/schedule"
	RouteUser           = "/user"
	RouteUserDoctors    = "/user/doctors"
	RouteMyAppointments = "/user/my-appointments"
)

// AdminDoctorRoute is the admin detail screen of one doctor.
func AdminDoctorRoute(id string) string { return "/admin/doctor/" + url.PathEscape(id) }

// AdminEditDoctorRoute is the edit form of one doctor.
func AdminEditDoctorRoute(id string) string { return "/admin/doctor/edit/" + url.PathEscape(id) }

// VisitRoute is the doctor's visit screen for an appointment.
func VisitRoute(appointmentID string) string { return "/doctor/visit/" + url.PathEscape(appointmentID) }

// BookingRoute is the patient's booking calendar for a doctor.
func BookingRoute(doctorID string) string { return "/user/book/" + url.PathEscape(doctorID) }

// HomeFor is where a user lands after logging in.
func HomeFor(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return RouteAdmin
	case models.RoleDoctor:
		return RouteDoctor
	default:
		return RouteUser
	}
}

// Guard decides whether the session may open a screen restricted to roles.
// It returns ok, or the route to redirect to instead.
func Guard(loggedIn bool, role models.Role, roles ...models.Role) (redirect string, ok bool) {
	if len(roles) == 0 {
		return "", true
	}
	for _, r := range roles {
		if role != "" && r == role {
			return "", true
		}
	}
	if !loggedIn {
		return RouteLogin, false
	}
	switch role {
	case models.RoleAdmin:
		return RouteAdmin, false
	case models.RoleDoctor:
		return RouteDoctor, false
	default:
		return RouteUserDoctors, false
	}
}
