package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"medclinic-client/internal/calendar"
	"medclinic-client/internal/models"
	"medclinic-client/internal/panel"
)

const displayLayout = "2006-01-02 15:04"

func (a *app) table(headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func (a *app) when(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(a.loc).Format(displayLayout)
}

func (a *app) yesNo(b bool) string {
	if b {
		return a.catalog.Translate("tak", "yes")
	}
	return a.catalog.Translate("nie", "no")
}

func (a *app) renderUsers(users []models.User) {
	tr := a.catalog.Translate
	tw := a.table("ID", tr("IMIĘ I NAZWISKO", "NAME"), "EMAIL", tr("AKTYWNY", "ACTIVE"))
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.FullName, u.Email, a.yesNo(u.IsActive))
	}
	tw.Flush()
}

func (a *app) renderDoctorEntries(entries []panel.DoctorEntry) {
	tr := a.catalog.Translate
	tw := a.table("ID", tr("LEKARZ", "DOCTOR"), tr("NAJBLIŻSZY TERMIN", "NEXT TERM"))
	for _, e := range entries {
		next := "-"
		if e.NextTerm != nil {
			next = a.when(*e.NextTerm)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID, e.FullName, next)
	}
	tw.Flush()
}

func (a *app) renderAppointments(appts []models.Appointment) {
	tr := a.catalog.Translate
	tw := a.table("ID", tr("POCZĄTEK", "START"), tr("KONIEC", "END"), "STATUS", tr("POWÓD", "REASON"))
	for _, appt := range appts {
		end := "-"
		if appt.EndTime != nil {
			end = a.when(appt.EndTime.Time)
		}
		reason := ""
		if appt.Details != nil {
			reason = appt.Details.ReasonForVisit
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", appt.ID, a.when(appt.StartTime.Time), end, a.catalog.Status(appt.Status), reason)
	}
	tw.Flush()
}

func (a *app) renderHistory(history []models.MedicalHistory) {
	tr := a.catalog.Translate
	tw := a.table(tr("DATA", "DATE"), tr("DIAGNOZA", "DIAGNOSIS"), tr("LECZENIE", "TREATMENT"), tr("ZALECENIA", "RECOMMENDATIONS"))
	for _, h := range history {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.when(h.Date.Time), h.Diagnosis, h.TreatmentNotes, strings.Join(h.Recommendations, ", "))
	}
	tw.Flush()
}

// renderWeek prints the slot grid, one row per time label.
func (a *app) renderWeek(week calendar.Week) {
	names := a.catalog.Weekdays()
	headers := []string{""}
	for i, d := range week.Dates {
		headers = append(headers, fmt.Sprintf("%.3s %s", names[i], d.Format("02.01")))
	}
	tw := a.table(headers...)
	for _, row := range week.Rows {
		cells := []string{row[0].Label}
		for _, c := range row {
			cells = append(cells, a.cellText(c))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

func (a *app) cellText(c calendar.Cell) string {
	if c.Appointment == nil {
		return "·"
	}
	return a.catalog.Status(c.Appointment.Status)
}
