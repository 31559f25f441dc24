package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"medclinic-client/internal/models"
	"medclinic-client/internal/panel"
)

// weekOf parses a --week value (any date in the week); empty means today.
func (a *app) weekOf(s string) (time.Time, error) {
	if s == "" {
		return a.now().In(a.loc), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, a.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --week %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

func doctorsCmd(a *app) *cobra.Command {
	var (
		search    string
		sortBy    string
		desc      bool
		available bool
	)
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "List doctors with their next free term",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.require(models.RolePatient); err != nil {
				return err
			}
			list := panel.NewDoctorList(a.deps(), a.client.Patient())
			if err := list.Load(cmd.Context()); err != nil {
				return a.finish(err)
			}
			list.SetSearch(search)
			list.SetSort(panel.SortField(sortBy))
			list.SetDescending(desc)
			list.SetOnlyAvailable(available)
			a.renderDoctorEntries(list.Visible())
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by name")
	cmd.Flags().StringVar(&sortBy, "sort", string(panel.SortByName), "order by name or date")
	cmd.Flags().BoolVar(&desc, "desc", false, "descending order")
	cmd.Flags().BoolVar(&available, "available", false, "only doctors with a free term")
	return cmd
}

func calendarCmd(a *app) *cobra.Command {
	var week string
	cmd := &cobra.Command{
		Use:   "calendar <doctorID>",
		Short: "Show a doctor's weekly calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.require(models.RolePatient); err != nil {
				return err
			}
			day, err := a.weekOf(week)
			if err != nil {
				return err
			}
			b := panel.NewBooking(a.deps(), a.client.Patient(), args[0])
			if err := b.Load(cmd.Context()); err != nil {
				return a.finish(err)
			}
			b.ShowWeekOf(day)
			a.renderWeek(b.Week())

			var free []models.Appointment
			for _, row := range b.Week().Rows {
				for _, c := range row {
					if c.Appointment != nil && c.Appointment.IsBookable() {
						free = append(free, *c.Appointment)
					}
				}
			}
			if len(free) > 0 {
				fmt.Fprintln(a.out)
				a.renderAppointments(free)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&week, "week", "", "any date of the week to show (YYYY-MM-DD)")
	return cmd
}

func bookCmd(a *app) *cobra.Command {
	var form panel.BookingForm
	cmd := &cobra.Command{
		Use:   "book <doctorID> <appointmentID>",
		Short: "Book a free slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.require(models.RolePatient); err != nil {
				return err
			}
			b := panel.NewBooking(a.deps(), a.client.Patient(), args[0])
			if err := b.Load(cmd.Context()); err != nil {
				return a.finish(err)
			}
			var slot *models.Appointment
			for _, appt := range b.Appointments() {
				if appt.ID == args[1] {
					slot = &appt
					break
				}
			}
			if slot == nil || !b.SelectSlot(*slot) {
				return fmt.Errorf("appointment %s is not a free slot of doctor %s", args[1], args[0])
			}
			b.Form = form
			return a.finish(b.Submit(cmd.Context()))
		},
	}
	cmd.Flags().StringVar(&form.ReasonForVisit, "reason", "", "reason for the visit, at least 3 characters")
	cmd.Flags().BoolVar(&form.PreviousTreatment, "previous-treatment", false, "treated for this before")
	cmd.Flags().StringVar(&form.AdditionalNotes, "notes", "", "additional notes")
	return cmd
}

func appointmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "appointments",
		Short: "List my upcoming and completed visits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.require(models.RolePatient); err != nil {
				return err
			}
			m := panel.NewMyAppointments(a.deps(), a.client.Patient())
			err := m.Load(cmd.Context())
			fmt.Fprintln(a.out, a.catalog.Translate("Nadchodzące wizyty", "Upcoming visits"))
			a.renderAppointments(m.Upcoming())
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, a.catalog.Translate("Zakończone wizyty", "Completed visits"))
			a.renderAppointments(m.Completed())
			return a.finish(err)
		},
	}
}

func cancelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <appointmentID>",
		Short: "Cancel a booked visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.require(models.RolePatient); err != nil {
				return err
			}
			m := panel.NewMyAppointments(a.deps(), a.client.Patient())
			return a.finish(m.Cancel(cmd.Context(), args[0]))
		},
	}
}

func historyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show my medical history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.require(models.RolePatient); err != nil {
				return err
			}
			m := panel.NewMyAppointments(a.deps(), a.client.Patient())
			err := m.Load(cmd.Context())
			a.renderHistory(m.History())
			return a.finish(err)
		},
	}
}
