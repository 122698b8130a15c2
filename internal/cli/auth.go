package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/cannadex/cannadex-go/internal/api"
	"github.com/cannadex/cannadex-go/internal/models"
)

// Login authenticates against the backend and persists the session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	session, err := a.client.Login(ctx, email, password)
	if err != nil {
		var netErr *api.NetworkError
		if errors.As(err, &netErr) {
			return fmt.Errorf("server unreachable, try again when online: %w", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", session.User.Username)
	a.tracker.UserAction(ctx, "login")
	return nil
}

// Register creates an account. The backend enforces the 21+ age gate; the
// date of birth is collected here and validated server-side.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	dob, err := GetSimpleText(a.reader, "Date of birth (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	ok, err := a.client.VerifyAge(ctx, dob)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("you must be 21 or older to register")
	}

	session, err := a.client.Register(ctx, models.RegisterData{
		Username:    username,
		Email:       email,
		Password:    password,
		DateOfBirth: dob,
	})
	if err != nil {
		var valErr *api.ValidationError
		if errors.As(err, &valErr) {
			for field, msgs := range valErr.Errors {
				for _, msg := range msgs {
					fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
				}
			}
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", session.User.Username)
	return nil
}

// Logout ends the session. The local session is cleared even when the
// server cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed, local session cleared anyway", "error", err)
	}
	printlnFn("Logged out")
	return nil
}
