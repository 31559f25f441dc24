package i18n

import "fmt"

// Section groups keys the way the translation tables are organised.
type Section string

const (
	SectionNotifications  Section = "notifications"
	SectionBooking        Section = "booking"
	SectionAuth           Section = "auth"
	SectionRegister       Section = "register"
	SectionDoctorDetail   Section = "doctorDetail"
	SectionDoctor         Section = "doctor"
	SectionVisit          Section = "visit"
	SectionMyAppointments Section = "myAppointments"
	SectionCalendar       Section = "calendar"
	SectionConfirm        Section = "confirm"
)

// Key identifies one translatable message.
type Key int

const (
	LoadAppointmentsError Key = iota
	BookingSuccess
	BookingError
	ErrorDefault
	CancelSuccess
	CancelError
	LoadHistoryError
	FetchDoctorsError
	ConfirmDeleteAppt
	DeleteApptSuccess
	PasswordSuccess
	StatusSuccess
	FillTimeframes
	ScheduleSuccess
	UpdateApptSuccess
	FetchScheduleError
	SlotNotBooked
	VisitSaveSuccess
	VisitSaveError
	LoginSuccess
	RegisterSuccess
	CreateDoctorSuccess
	UpdateDoctorSuccess

	BookingLoginRequired
	BookingReasonInvalid

	AuthLoginError
	AuthFormInvalid

	RegisterDefaultError

	DetailResetPass
	DetailConfirmPassword
	DetailChangeStatus
	DetailConfirmStatus
	DetailDeleteAppt
	DetailEditAppt
	DetailConfirmEditAppt
	DetailPasswordInvalid

	DoctorSuspended

	VisitFormInvalid
	VisitFinishTitle
	VisitConfirmFinish

	MyApptCancelTitle
	MyApptConfirmCancel

	CalendarAvailable
	CalendarBooked
	CalendarCompleted

	ConfirmPrompt

	keyCount
)

type keyInfo struct {
	section  Section
	name     string
	fallback string
}

var keyTable = [keyCount]keyInfo{
	LoadAppointmentsError: {SectionNotifications, "loadAppointmentsError", "Error"},
	BookingSuccess:        {SectionNotifications, "bookingSuccess", "Success"},
	BookingError:          {SectionNotifications, "bookingError", "Error"},
	ErrorDefault:          {SectionNotifications, "errorDefault", "Error"},
	CancelSuccess:         {SectionNotifications, "cancelSuccess", "Success"},
	CancelError:           {SectionNotifications, "cancelError", "Error"},
	LoadHistoryError:      {SectionNotifications, "loadHistoryError", "Error"},
	FetchDoctorsError:     {SectionNotifications, "fetchDoctorsError", "Error"},
	ConfirmDeleteAppt:     {SectionNotifications, "confirmDeleteAppt", "Confirm?"},
	DeleteApptSuccess:     {SectionNotifications, "deleteApptSuccess", "Success"},
	PasswordSuccess:       {SectionNotifications, "passwordSuccess", "Success"},
	StatusSuccess:         {SectionNotifications, "statusSuccess", "Success"},
	FillTimeframes:        {SectionNotifications, "fillTimeframes", "Fill fields"},
	ScheduleSuccess:       {SectionNotifications, "scheduleSuccess", "Success"},
	UpdateApptSuccess:     {SectionNotifications, "updateApptSuccess", "Success"},
	FetchScheduleError:    {SectionNotifications, "fetchScheduleError", "Error"},
	SlotNotBooked:         {SectionNotifications, "slotNotBooked", "Not booked"},
	VisitSaveSuccess:      {SectionNotifications, "visitSaveSuccess", "Success"},
	VisitSaveError:        {SectionNotifications, "visitSaveError", "Error"},
	LoginSuccess:          {SectionNotifications, "loginSuccess", "Success"},
	RegisterSuccess:       {SectionNotifications, "registerSuccess", "Success"},
	CreateDoctorSuccess:   {SectionNotifications, "createDoctorSuccess", "Success"},
	UpdateDoctorSuccess:   {SectionNotifications, "updateDoctorSuccess", "Success"},

	BookingLoginRequired: {SectionBooking, "loginRequired", "Login required"},
	BookingReasonInvalid: {SectionBooking, "reasonInvalid", "Invalid form"},

	AuthLoginError:  {SectionAuth, "loginError", "Error"},
	AuthFormInvalid: {SectionAuth, "formInvalid", "Invalid form"},

	RegisterDefaultError: {SectionRegister, "defaultError", "Error"},

	DetailResetPass:       {SectionDoctorDetail, "resetPass", "Reset password"},
	DetailConfirmPassword: {SectionDoctorDetail, "confirmPassword", "Are you sure?"},
	DetailChangeStatus:    {SectionDoctorDetail, "changeStatus", "Status"},
	DetailConfirmStatus:   {SectionDoctorDetail, "confirmStatus", "Confirm?"},
	DetailDeleteAppt:      {SectionDoctorDetail, "deleteAppt", "Delete appointment"},
	DetailEditAppt:        {SectionDoctorDetail, "editAppt", "Edit appointment"},
	DetailConfirmEditAppt: {SectionDoctorDetail, "confirmEditAppt", "Confirm?"},
	DetailPasswordInvalid: {SectionDoctorDetail, "passwordInvalid", "Invalid password"},

	DoctorSuspended: {SectionDoctor, "suspended", "Account suspended"},

	VisitFormInvalid:   {SectionVisit, "formInvalid", "Invalid form"},
	VisitFinishTitle:   {SectionVisit, "finishTitle", "Finish visit"},
	VisitConfirmFinish: {SectionVisit, "confirmFinish", "Confirm?"},

	MyApptCancelTitle:   {SectionMyAppointments, "cancelTitle", "Cancel appointment"},
	MyApptConfirmCancel: {SectionMyAppointments, "confirmCancel", "Confirm?"},

	CalendarAvailable: {SectionCalendar, "available", "available"},
	CalendarBooked:    {SectionCalendar, "booked", "booked"},
	CalendarCompleted: {SectionCalendar, "completed", "completed"},

	ConfirmPrompt: {SectionConfirm, "prompt", "[y/N]"},
}

// Section returns the table section the key belongs to.
func (k Key) Section() Section {
	if !k.valid() {
		return ""
	}
	return keyTable[k].section
}

// String returns the dotted lookup path, e.g. "notifications.bookingError".
func (k Key) String() string {
	if !k.valid() {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return string(keyTable[k].section) + "." + keyTable[k].name
}

func (k Key) valid() bool {
	return k >= 0 && k < keyCount
}

// Keys returns every defined key in declaration order.
func Keys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}
