package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"medclinic-client/internal/panel"
)

func loginCmd(a *app) *cobra.Command {
	var form panel.LoginForm
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if form.Password == "" {
				pw, err := a.ask(a.catalog.Translate("Hasło: ", "Password: "))
				if err != nil {
					return err
				}
				form.Password = pw
			}
			auth := panel.NewAuth(a.deps(), a.client.Auth())
			return a.finish(auth.Login(cmd.Context(), form))
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "account e-mail")
	cmd.Flags().StringVar(&form.Password, "password", "", "password (asked for when empty)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return panel.NewAuth(a.deps(), a.client.Auth()).Logout()
		},
	}
}

func registerCmd(a *app) *cobra.Command {
	var form panel.RegisterForm
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a patient account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			auth := panel.NewAuth(a.deps(), a.client.Auth())
			return a.finish(auth.Register(cmd.Context(), form))
		},
	}
	cmd.Flags().StringVar(&form.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&form.Email, "email", "", "e-mail")
	cmd.Flags().StringVar(&form.Password, "password", "", "password, at least 6 characters")
	return cmd
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !a.session.IsLoggedIn() {
				return panel.ErrNotAuthenticated
			}
			st := a.session.Snapshot()
			tw := a.table("ID", "EMAIL", a.catalog.Translate("ROLA", "ROLE"), a.catalog.Translate("AKTYWNY", "ACTIVE"))
			email := ""
			if st.User != nil {
				email = st.User.Email
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", st.UserID, email, st.Role, a.yesNo(st.IsActive))
			return tw.Flush()
		},
	}
}
