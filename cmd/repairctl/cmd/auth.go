package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dtroode/repairctl/internal/guard"
	"github.com/dtroode/repairctl/internal/model"
)

var loginFlags struct {
	email    string
	password string
	remember bool
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the marketplace",
	Long: `Log in with email and password.

With --remember the session survives restarts. Without it the session is kept
in the ephemeral store only. With the default memory store that lasts for this
command alone; set SESSION_EPHEMERAL_BACKEND=redis to keep it until REDIS_TTL.
The password is read from stdin when --password is not given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := secret(cmd, loginFlags.password, "Password")
		if err != nil {
			return err
		}

		p, err := a.auth.Login(cmd.Context(), model.Credentials{
			Email:      loginFlags.email,
			Password:   password,
			RememberMe: loginFlags.remember,
		})
		if err != nil {
			return reported(err)
		}

		a.navigator.Navigate(guard.HomeFor(&p))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a.auth.Logout(cmd.Context())
		return nil
	},
}

type whoami struct {
	Profile   model.Profile `json:"user"`
	ExpiresAt *time.Time    `json:"expiresAt,omitempty"`
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize("/profile"); err != nil {
			return err
		}

		out := whoami{Profile: *a.manager.CurrentUser()}
		if claims, err := a.inspector.Inspect(a.manager.Token(cmd.Context())); err == nil && !claims.ExpiresAt.IsZero() {
			out.ExpiresAt = &claims.ExpiresAt
		}

		return a.printer.Print(out, func(w io.Writer) error {
			t := newTable(w)
			p := out.Profile
			fmt.Fprintf(t, "Name:\t%s\n", p.DisplayName())
			fmt.Fprintf(t, "Email:\t%s\n", p.Email)
			fmt.Fprintf(t, "Role:\t%s\n", p.Role)
			fmt.Fprintf(t, "Email verified:\t%t\n", p.EmailVerified())
			fmt.Fprintf(t, "Member since:\t%s\n", ago(p.CreatedAt))
			if out.ExpiresAt != nil {
				fmt.Fprintf(t, "Session expires:\t%s\n", humanize.Time(*out.ExpiresAt))
			}
			return t.Flush()
		})
	},
}

var registerFlags struct {
	email    string
	password string
	name     string
	phone    string
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a customer account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := secret(cmd, registerFlags.password, "Password")
		if err != nil {
			return err
		}

		_, err = a.auth.Register(cmd.Context(), model.Registration{
			Email:       registerFlags.email,
			Password:    password,
			FullName:    registerFlags.name,
			PhoneNumber: registerFlags.phone,
		})
		if err != nil {
			return reported(err)
		}
		a.navigator.Navigate(guard.PathLogin)
		return nil
	},
}

var verifyEmailCmd = &cobra.Command{
	Use:   "verify-email <token>",
	Short: "Verify an email address with the token from the verification link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reported(a.auth.VerifyEmail(cmd.Context(), args[0]))
	},
}

var resendVerificationCmd = &cobra.Command{
	Use:   "resend-verification <email>",
	Short: "Send the verification email again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reported(a.auth.ResendVerification(cmd.Context(), args[0]))
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password <email>",
	Short: "Request password reset instructions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reported(a.auth.ForgotPassword(cmd.Context(), args[0]))
	},
}

var resetPasswordFlags struct {
	token    string
	password string
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password with the token from the reset link",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := secret(cmd, resetPasswordFlags.password, "New password")
		if err != nil {
			return err
		}
		err = a.auth.ResetPassword(cmd.Context(), model.PasswordReset{
			Token:       resetPasswordFlags.token,
			NewPassword: password,
		})
		return reported(err)
	},
}

var changePasswordFlags struct {
	current string
	next    string
}

var changePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change the password of the logged in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize("/settings"); err != nil {
			return err
		}
		err := a.auth.ChangePassword(cmd.Context(), model.PasswordChange{
			CurrentPassword: changePasswordFlags.current,
			NewPassword:     changePasswordFlags.next,
		})
		return reported(err)
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginFlags.email, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginFlags.password, "password", "", "account password (read from stdin if empty)")
	loginCmd.Flags().BoolVar(&loginFlags.remember, "remember", false, "keep the session across restarts")
	_ = loginCmd.MarkFlagRequired("email")

	registerCmd.Flags().StringVar(&registerFlags.email, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerFlags.password, "password", "", "account password (read from stdin if empty)")
	registerCmd.Flags().StringVar(&registerFlags.name, "name", "", "full name")
	registerCmd.Flags().StringVar(&registerFlags.phone, "phone", "", "phone number")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("name")

	resetPasswordCmd.Flags().StringVar(&resetPasswordFlags.token, "token", "", "reset token from the email link")
	resetPasswordCmd.Flags().StringVar(&resetPasswordFlags.password, "password", "", "new password (read from stdin if empty)")
	_ = resetPasswordCmd.MarkFlagRequired("token")

	changePasswordCmd.Flags().StringVar(&changePasswordFlags.current, "current", "", "current password")
	changePasswordCmd.Flags().StringVar(&changePasswordFlags.next, "new", "", "new password")
	_ = changePasswordCmd.MarkFlagRequired("current")
	_ = changePasswordCmd.MarkFlagRequired("new")

	rootCmd.AddCommand(
		loginCmd,
		logoutCmd,
		whoamiCmd,
		registerCmd,
		verifyEmailCmd,
		resendVerificationCmd,
		forgotPasswordCmd,
		resetPasswordCmd,
		changePasswordCmd,
	)
}
