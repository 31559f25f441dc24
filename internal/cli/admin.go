package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"medclinic-client/internal/models"
	"medclinic-client/internal/panel"
)

func adminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator panel",
	}
	cmd.AddCommand(
		adminDoctorsCmd(a),
		adminDoctorCmd(a),
		adminCreateDoctorCmd(a),
		adminEditDoctorCmd(a),
		adminToggleCmd(a),
		adminResetPasswordCmd(a),
		adminScheduleCmd(a),
		adminEditAppointmentCmd(a),
		adminDeleteAppointmentCmd(a),
	)
	return cmd
}

// openDoctor checks the admin role and loads a doctor's detail screen.
func (a *app) openDoctor(ctx context.Context, id string) (*panel.DoctorDetail, error) {
	if err := a.require(models.RoleAdmin); err != nil {
		return nil, err
	}
	d := panel.NewDoctorDetail(a.deps(), a.client.Admin(), id)
	if err := d.Load(ctx); err != nil {
		return nil, a.finish(err)
	}
	return d, nil
}

func adminDoctorsCmd(a *app) *cobra.Command {
	var (
		search string
		page   int
		desc   bool
	)
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "List doctor accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.require(models.RoleAdmin); err != nil {
				return err
			}
			dir := panel.NewDirectory(a.deps(), a.client.Admin())
			if err := dir.Load(cmd.Context()); err != nil {
				return a.finish(err)
			}
			dir.SetSearch(search)
			dir.SetDescending(desc)
			for dir.Page() < page && dir.NextPage() {
			}
			a.renderUsers(dir.Visible())
			fmt.Fprintf(a.out, "%d/%d\n", dir.Page(), max(1, dir.TotalPages()))
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by e-mail")
	cmd.Flags().IntVar(&page, "page", 1, "page to show")
	cmd.Flags().BoolVar(&desc, "desc", false, "descending e-mail order")
	return cmd
}

func adminDoctorCmd(a *app) *cobra.Command {
	var week string
	cmd := &cobra.Command{
		Use:   "doctor <doctorID>",
		Short: "Show a doctor with their calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := a.weekOf(week)
			if err != nil {
				return err
			}
			d, err := a.openDoctor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.renderUsers([]models.User{*d.Doctor()})
			fmt.Fprintln(a.out)
			d.ShowWeekOf(day)
			a.renderWeek(d.Week())
			fmt.Fprintln(a.out)
			a.renderAppointments(d.Appointments())
			return nil
		},
	}
	cmd.Flags().StringVar(&week, "week", "", "any date of the week to show (YYYY-MM-DD)")
	return cmd
}

func adminCreateDoctorCmd(a *app) *cobra.Command {
	var in panel.DoctorInput
	cmd := &cobra.Command{
		Use:   "create-doctor",
		Short: "Create a doctor account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.require(models.RoleAdmin); err != nil {
				return err
			}
			f := panel.NewDoctorForm(a.deps(), a.client.Admin(), "")
			f.Input = in
			return a.finish(f.Submit(cmd.Context()))
		},
	}
	cmd.Flags().StringVar(&in.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "clinic e-mail")
	cmd.Flags().StringVar(&in.Password, "password", "", "initial password")
	return cmd
}

func adminEditDoctorCmd(a *app) *cobra.Command {
	var name, email string
	cmd := &cobra.Command{
		Use:   "edit-doctor <doctorID>",
		Short: "Change a doctor's name or e-mail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.require(models.RoleAdmin); err != nil {
				return err
			}
			f := panel.NewDoctorForm(a.deps(), a.client.Admin(), args[0])
			if err := f.Load(cmd.Context()); err != nil {
				return a.finish(err)
			}
			if cmd.Flags().Changed("name") {
				f.Input.FullName = name
			}
			if cmd.Flags().Changed("email") {
				f.Input.Email = email
			}
			return a.finish(f.Submit(cmd.Context()))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new full name")
	cmd.Flags().StringVar(&email, "email", "", "new clinic e-mail")
	return cmd
}

func adminToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <doctorID>",
		Short: "Suspend or reactivate a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDoctor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.finish(d.ToggleActivity(cmd.Context()))
		},
	}
}

func adminResetPasswordCmd(a *app) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "reset-password <doctorID>",
		Short: "Set a new password for a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDoctor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			d.Password.NewPassword = password
			return a.finish(d.ResetPassword(cmd.Context()))
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "new password, at least 6 characters")
	return cmd
}

func adminScheduleCmd(a *app) *cobra.Command {
	var (
		start, end string
		interval   int
		breaks     []string
	)
	cmd := &cobra.Command{
		Use:   "schedule <doctorID>",
		Short: "Generate free slots for a doctor",
		Long: "Generate free slots between --start and --end (YYYY-MM-DDTHH:mm, local time).\n" +
			"The end defaults to start plus 8 hours. Each --break is START or START,END;\n" +
			"a break without an end lasts 30 minutes.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDoctor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := d.OpenSchedule()
			w.SetStart(start)
			if end != "" {
				w.SetEnd(end)
			}
			w.SetInterval(interval)
			if err := w.Next(); err != nil {
				return a.finish(err)
			}
			for i, b := range breaks {
				w.AddBreak()
				bStart, bEnd, _ := strings.Cut(b, ",")
				w.SetBreakStart(i, strings.TrimSpace(bStart))
				if bEnd != "" {
					w.SetBreakEnd(i, strings.TrimSpace(bEnd))
				}
			}
			res, err := d.GenerateSchedule(cmd.Context())
			if err != nil {
				return a.finish(err)
			}
			fmt.Fprintf(a.out, "%s (%d)\n", res.Message, res.Count)
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "first slot start")
	cmd.Flags().StringVar(&end, "end", "", "end of the time frame")
	cmd.Flags().IntVar(&interval, "interval", panel.DefaultInterval, "slot length in minutes")
	cmd.Flags().StringArrayVar(&breaks, "break", nil, "break window, repeatable")
	return cmd
}

func adminEditAppointmentCmd(a *app) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "edit-appointment <doctorID> <appointmentID>",
		Short: "Move an appointment to a new window",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDoctor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			appt, ok := d.Find(args[1])
			if !ok {
				return fmt.Errorf("appointment %s not found for doctor %s", args[1], args[0])
			}
			d.SelectAppointment(appt)
			if start != "" {
				d.SetEditStart(start)
			}
			if end != "" {
				d.SetEditEnd(end)
			}
			return a.finish(d.SaveAppointment(cmd.Context()))
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "new start (YYYY-MM-DDTHH:mm); the end follows 30 minutes later")
	cmd.Flags().StringVar(&end, "end", "", "new end (YYYY-MM-DDTHH:mm)")
	return cmd
}

func adminDeleteAppointmentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-appointment <doctorID> <appointmentID>",
		Short: "Delete an appointment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDoctor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			appt, ok := d.Find(args[1])
			if !ok {
				return fmt.Errorf("appointment %s not found for doctor %s", args[1], args[0])
			}
			d.SelectAppointment(appt)
			return a.finish(d.DeleteAppointment(cmd.Context()))
		},
	}
}
