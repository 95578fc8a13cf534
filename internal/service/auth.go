package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/repairctl/internal/api/rest"
	"github.com/dtroode/repairctl/internal/logger"
	"github.com/dtroode/repairctl/internal/model"
	"github.com/dtroode/repairctl/internal/validation"
)

// ErrInvalidForm wraps form validation failures.
var ErrInvalidForm = errors.New("invalid form")

type Auth struct {
	backend  AuthBackend
	session  SessionManager
	notifier model.Notifier
	logger   *logger.Logger
}

func NewAuth(
	backend AuthBackend,
	session SessionManager,
	notifier model.Notifier,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		backend:  backend,
		session:  session,
		notifier: notifier,
		logger:   logger,
	}
}

func validate(form any) error {
	if err := validation.Struct(form); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return nil
}

// Login authenticates against the backend and stores the session in the
// durable tier when creds.RememberMe is set.
func (a *Auth) Login(ctx context.Context, creds model.Credentials) (model.Profile, error) {
	if err := validate(creds); err != nil {
		return model.Profile{}, err
	}

	a.logger.Debug("Auth service: logging in",
		"email", creds.Email,
		"remember", creds.RememberMe)

	res, err := a.backend.Login(ctx, creds)
	if err != nil {
		a.logger.Error("Auth service: login failed",
			"email", creds.Email,
			"status", rest.StatusOf(err),
			"error", err.Error())
		a.notifier.Error(rest.MessageOr(err, "Login failed"))
		return model.Profile{}, fmt.Errorf("failed to login: %w", err)
	}

	if err := a.session.Login(ctx, res.User, res.Token, creds.RememberMe); err != nil {
		a.logger.Error("Auth service: failed to store session",
			"email", creds.Email,
			"error", err.Error())
		a.notifier.Error("Login failed")
		return model.Profile{}, fmt.Errorf("failed to store session: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", res.User.ID,
		"role", res.User.Role)
	a.notifier.Success("Login successful!")

	return res.User, nil
}

// Logout ends the session. The backend is notified in the background.
func (a *Auth) Logout(ctx context.Context) {
	if p := a.session.CurrentUser(); p != nil {
		a.logger.Info("Auth service: user logging out",
			"user_id", p.ID)
	}
	a.session.Logout(ctx)
}

// Register creates a customer account. The user must verify the email before logging in.
func (a *Auth) Register(ctx context.Context, reg model.Registration) (model.Profile, error) {
	reg.Role = model.RoleCustomer
	if err := validate(reg); err != nil {
		return model.Profile{}, err
	}

	p, err := a.backend.Register(ctx, reg)
	if err != nil {
		a.logger.Error("Auth service: registration failed",
			"email", reg.Email,
			"error", err.Error())
		a.notifier.Error(rest.MessageOr(err, "Registration failed"))
		return model.Profile{}, fmt.Errorf("failed to register: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", p.ID)
	a.notifier.Success("Registration successful! Please check your email for verification.")
	return p, nil
}

func (a *Auth) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: verification token is required", ErrInvalidForm)
	}
	if err := a.backend.VerifyEmail(ctx, token); err != nil {
		a.logger.Error("Auth service: email verification failed",
			"error", err.Error())
		a.notifier.Error("Email verification failed. The link may be expired or invalid.")
		return fmt.Errorf("failed to verify email: %w", err)
	}
	a.notifier.Success("Email verified successfully!")
	return nil
}

func (a *Auth) ResendVerification(ctx context.Context, email string) error {
	if err := a.backend.ResendVerification(ctx, email); err != nil {
		a.logger.Error("Auth service: resend verification failed",
			"email", email,
			"error", err.Error())
		a.notifier.Error("Failed to resend verification email")
		return fmt.Errorf("failed to resend verification: %w", err)
	}
	a.notifier.Success("Verification email sent successfully!")
	return nil
}

func (a *Auth) ForgotPassword(ctx context.Context, email string) error {
	if err := a.backend.ForgotPassword(ctx, email); err != nil {
		a.logger.Error("Auth service: forgot password request failed",
			"email", email,
			"error", err.Error())
		a.notifier.Error("Failed to process forgot password request")
		return fmt.Errorf("failed to request password reset: %w", err)
	}
	a.notifier.Success("Password reset instructions sent to your email")
	return nil
}

func (a *Auth) ResetPassword(ctx context.Context, reset model.PasswordReset) error {
	if err := validate(reset); err != nil {
		return err
	}
	if err := a.backend.ResetPassword(ctx, reset); err != nil {
		a.logger.Error("Auth service: password reset failed",
			"error", err.Error())
		a.notifier.Error("Password reset failed. The link may be expired or invalid.")
		return fmt.Errorf("failed to reset password: %w", err)
	}
	a.notifier.Success("Password reset successful!")
	return nil
}

func (a *Auth) ChangePassword(ctx context.Context, change model.PasswordChange) error {
	if err := validate(change); err != nil {
		return err
	}
	if err := a.backend.ChangePassword(ctx, change); err != nil {
		a.logger.Error("Auth service: password change failed",
			"error", err.Error())
		a.notifier.Error(rest.MessageOr(err, "Failed to change password"))
		return fmt.Errorf("failed to change password: %w", err)
	}
	a.notifier.Success("Password changed successfully!")
	return nil
}
