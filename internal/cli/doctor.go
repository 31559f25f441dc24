package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"medclinic-client/internal/models"
	"medclinic-client/internal/panel"
)

func doctorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Doctor panel",
	}
	cmd.AddCommand(doctorScheduleCmd(a), doctorVisitCmd(a), doctorFinishCmd(a))
	return cmd
}

func doctorScheduleCmd(a *app) *cobra.Command {
	var week string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show my weekly schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.require(models.RoleDoctor); err != nil {
				return err
			}
			day, err := a.weekOf(week)
			if err != nil {
				return err
			}
			s := panel.NewDoctorSchedule(a.deps(), a.client.Doctor())
			if err := s.Load(cmd.Context()); err != nil {
				return a.finish(err)
			}
			s.ShowWeekOf(day)
			a.renderWeek(s.Week())
			fmt.Fprintln(a.out)
			a.renderAppointments(s.Appointments())
			return nil
		},
	}
	cmd.Flags().StringVar(&week, "week", "", "any date of the week to show (YYYY-MM-DD)")
	return cmd
}

// openVisit goes through the schedule screen the way a click on a slot does,
// then loads the visit.
func (a *app) openVisit(ctx context.Context, id string) (*panel.Visit, error) {
	if err := a.require(models.RoleDoctor); err != nil {
		return nil, err
	}
	deps := a.deps()
	s := panel.NewDoctorSchedule(deps, a.client.Doctor())
	if err := s.Load(ctx); err != nil {
		return nil, a.finish(err)
	}
	var target *models.Appointment
	for _, appt := range s.Appointments() {
		if appt.ID == id {
			target = &appt
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("appointment %s is not on your schedule", id)
	}
	if !s.Open(*target) {
		return nil, &shownError{err: errors.New("visit not available")}
	}

	v := panel.NewVisit(deps, a.client.Doctor(), id)
	if err := v.Load(ctx); err != nil {
		return nil, a.finish(err)
	}
	return v, nil
}

func doctorVisitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "visit <appointmentID>",
		Short: "Show a visit with the patient's history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.openVisit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			appt := v.Appointment()
			tr := a.catalog.Translate
			if p := appt.PatientData; p != nil {
				fmt.Fprintf(a.out, "%s: %s <%s>\n", tr("Pacjent", "Patient"), p.FullName, p.Email)
			}
			fmt.Fprintf(a.out, "%s: %s  %s\n", tr("Termin", "Term"), a.when(appt.StartTime.Time), a.catalog.Status(appt.Status))
			if d := appt.Details; d != nil {
				fmt.Fprintf(a.out, "%s: %s\n", tr("Powód wizyty", "Reason"), d.ReasonForVisit)
				fmt.Fprintf(a.out, "%s: %s\n", tr("Wcześniej leczony", "Treated before"), a.yesNo(d.PreviousTreatment))
				if d.AdditionalNotes != nil {
					fmt.Fprintf(a.out, "%s: %s\n", tr("Uwagi", "Notes"), *d.AdditionalNotes)
				}
			}
			fmt.Fprintln(a.out)
			a.renderHistory(v.History())
			return nil
		},
	}
}

func doctorFinishCmd(a *app) *cobra.Command {
	var form panel.VisitForm
	cmd := &cobra.Command{
		Use:   "finish <appointmentID>",
		Short: "Fill in the exam card and complete the visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.openVisit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			v.Form = form
			return a.finish(v.Finish(cmd.Context()))
		},
	}
	cmd.Flags().StringVar(&form.Diagnosis, "diagnosis", "", "diagnosis, at least 3 characters")
	cmd.Flags().StringVar(&form.TreatmentNotes, "notes", "", "treatment notes, at least 5 characters")
	cmd.Flags().StringVar(&form.Recommendations, "recommendations", "", "comma-separated recommendations")
	return cmd
}
