package i18n

var polish = [keyCount]string{
	LoadAppointmentsError: "Nie udało się pobrać wizyt",
	BookingSuccess:        "Wizyta została zarezerwowana",
	BookingError:          "Nie udało się zarezerwować wizyty",
	ErrorDefault:          "Wystąpił błąd",
	CancelSuccess:         "Wizyta została odwołana",
	CancelError:           "Nie udało się odwołać wizyty",
	LoadHistoryError:      "Nie udało się pobrać historii leczenia",
	FetchDoctorsError:     "Nie udało się pobrać listy lekarzy",
	ConfirmDeleteAppt:     "Czy na pewno chcesz usunąć tę wizytę?",
	DeleteApptSuccess:     "Wizyta została usunięta",
	PasswordSuccess:       "Hasło zostało zmienione",
	StatusSuccess:         "Status konta został zmieniony",
	FillTimeframes:        "Uzupełnij ramy czasowe grafiku",
	ScheduleSuccess:       "Grafik został wygenerowany",
	UpdateApptSuccess:     "Wizyta została zaktualizowana",
	FetchScheduleError:    "Nie udało się pobrać grafiku",
	SlotNotBooked:         "Ten termin nie został jeszcze zarezerwowany",
	VisitSaveSuccess:      "Karta wizyty została zapisana",
	VisitSaveError:        "Nie udało się zapisać karty wizyty",
	LoginSuccess:          "Zalogowano pomyślnie",
	RegisterSuccess:       "Konto zostało utworzone, możesz się zalogować",
	CreateDoctorSuccess:   "Lekarz został dodany",
	UpdateDoctorSuccess:   "Dane lekarza zostały zaktualizowane",

	BookingLoginRequired: "Zaloguj się, aby zarezerwować wizytę",
	BookingReasonInvalid: "Proszę poprawnie wypełnić powód wizyty",

	AuthLoginError:  "Niepoprawny email lub hasło",
	AuthFormInvalid: "Uzupełnij poprawnie formularz",

	RegisterDefaultError: "Rejestracja nie powiodła się",

	DetailResetPass:       "Reset hasła",
	DetailConfirmPassword: "Czy na pewno chcesz zmienić hasło?",
	DetailChangeStatus:    "Zmiana statusu",
	DetailConfirmStatus:   "Czy na pewno chcesz zmienić status konta lekarza?",
	DetailDeleteAppt:      "Usuwanie wizyty",
	DetailEditAppt:        "Edycja wizyty",
	DetailConfirmEditAppt: "Czy zapisać nowe godziny wizyty?",
	DetailPasswordInvalid: "Hasło musi mieć co najmniej 6 znaków",

	DoctorSuspended: "Twoje konto jest zawieszone. Możliwość edycji wizyt została zablokowana.",

	VisitFormInvalid:   "Proszę poprawnie wypełnić kartę badania",
	VisitFinishTitle:   "Zakończenie wizyty",
	VisitConfirmFinish: "Czy na pewno chcesz zakończyć wizytę i zapisać kartę?",

	MyApptCancelTitle:   "Odwołanie wizyty",
	MyApptConfirmCancel: "Czy na pewno chcesz odwołać tę wizytę?",

	CalendarAvailable: "wolny",
	CalendarBooked:    "zarezerwowany",
	CalendarCompleted: "zakończony",

	ConfirmPrompt: "[t/N]",
}

var english = [keyCount]string{
	LoadAppointmentsError: "Could not load appointments",
	BookingSuccess:        "Appointment booked",
	BookingError:          "Booking failed",
	ErrorDefault:          "Something went wrong",
	CancelSuccess:         "Appointment cancelled",
	CancelError:           "Could not cancel the appointment",
	LoadHistoryError:      "Could not load medical history",
	FetchDoctorsError:     "Could not load doctors",
	ConfirmDeleteAppt:     "Are you sure you want to delete this appointment?",
	DeleteApptSuccess:     "Appointment deleted",
	PasswordSuccess:       "Password changed",
	StatusSuccess:         "Account status changed",
	FillTimeframes:        "Fill in the schedule time frame",
	ScheduleSuccess:       "Schedule generated",
	UpdateApptSuccess:     "Appointment updated",
	FetchScheduleError:    "Could not load the schedule",
	SlotNotBooked:         "This slot has not been booked yet",
	VisitSaveSuccess:      "Visit record saved",
	VisitSaveError:        "Could not save the visit record",
	LoginSuccess:          "Logged in",
	RegisterSuccess:       "Account created, you can log in now",
	CreateDoctorSuccess:   "Doctor added",
	UpdateDoctorSuccess:   "Doctor details updated",

	BookingLoginRequired: "Log in to book an appointment",
	BookingReasonInvalid: "Please fill in the reason for visit correctly",

	AuthLoginError:  "Invalid email or password",
	AuthFormInvalid: "Please fill in the form correctly",

	RegisterDefaultError: "Registration failed",

	DetailResetPass:       "Reset password",
	DetailConfirmPassword: "Are you sure?",
	DetailChangeStatus:    "Change status",
	DetailConfirmStatus:   "Are you sure you want to change the doctor's account status?",
	DetailDeleteAppt:      "Delete appointment",
	DetailEditAppt:        "Edit appointment",
	DetailConfirmEditAppt: "Save the new appointment time?",
	DetailPasswordInvalid: "Password must be at least 6 characters",

	DoctorSuspended: "Your account is suspended. Access to visit editing is disabled.",

	VisitFormInvalid:   "Please fill the exam card correctly",
	VisitFinishTitle:   "Finish visit",
	VisitConfirmFinish: "Finish the visit and save the record?",

	MyApptCancelTitle:   "Cancel appointment",
	MyApptConfirmCancel: "Are you sure you want to cancel this appointment?",

	CalendarAvailable: "available",
	CalendarBooked:    "booked",
	CalendarCompleted: "completed",

	ConfirmPrompt: "[y/N]",
}

var weekdays = map[Lang][7]string{
	Polish:  {"Poniedziałek", "Wtorek", "Środa", "Czwartek", "Piątek", "Sobota", "Niedziela"},
	English: {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
}
