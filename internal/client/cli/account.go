package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/quizboard/internal/client/models"
	"github.com/dmitrijs2005/quizboard/internal/common"
)

func (a *App) renderTitle(title string) {
	renderNav(a.out, a.loggedIn, a.theme)
	renderAlert(a.out, a.flash)
	fmt.Fprintf(a.out, "\n== %s ==\n", title)
}

// readPasswordPair prompts for a password and its confirmation. The caller
// wipes both slices.
func (a *App) readPasswordPair(prompt string) ([]byte, []byte, error) {
	password, err := getPassword(a.out, prompt)
	if err != nil {
		return nil, nil, err
	}
	confirm, err := getPassword(a.out, "Confirm Password")
	if err != nil {
		common.WipeByteArray(password)
		return nil, nil, err
	}
	return password, confirm, nil
}

// registerView prompts for a new account. Success redirects to the login
// view.
func (a *App) registerView(ctx context.Context) error {
	a.renderTitle("Register")

	var form models.UserForm
	var err error
	if form.FirstName, err = getSimpleText(a.reader, "First Name", a.out); err != nil {
		return a.abort(err)
	}
	if form.LastName, err = getSimpleText(a.reader, "Last Name", a.out); err != nil {
		return a.abort(err)
	}
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return a.abort(err)
	}

	password, confirm, err := a.readPasswordPair("Password")
	if err != nil {
		return a.abort(err)
	}
	defer common.WipeByteArray(password)
	defer common.WipeByteArray(confirm)
	form.Password, form.ConfirmPassword = string(password), string(confirm)

	u, err := a.auth.Register(ctx, form)
	if err != nil {
		if errors.Is(err, common.ErrPasswordMismatch) {
			a.flashMessage("Passwords do not match", models.CategoryDanger)
		} else {
			a.flashError(err)
		}
		return a.Navigate(ctx, "/")
	}

	a.flashMessage(fmt.Sprintf("%s %s has been created with the username %s", u.FirstName, u.LastName, u.Email), models.CategorySuccess)
	return a.Navigate(ctx, "/login")
}

// loginView exchanges credentials for a session and loads the current user.
func (a *App) loginView(ctx context.Context) error {
	a.renderTitle("Log In")

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return a.abort(err)
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return a.abort(err)
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, password); err != nil {
		a.flashError(err)
		return a.Navigate(ctx, "/")
	}

	u, err := a.auth.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "current user lookup failed after login", "error", err)
		a.loggedIn = false
		a.currentUser = nil
		a.flashError(err)
		return a.Navigate(ctx, "/")
	}

	a.loggedIn = true
	a.currentUser = u
	a.flashMessage("You have successfully logged in", models.CategorySuccess)
	return a.Navigate(ctx, "/")
}

// Logout drops the session and returns to the home view. The stored
// session is cleared even when it has already expired.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.flashError(err)
		a.render(ctx)
		return err
	}
	if !a.loggedIn {
		printlnFn("You are not logged in")
		return nil
	}
	a.loggedIn = false
	a.currentUser = nil
	a.flashMessage("You have been logged out", models.CategoryDark)
	return a.Navigate(ctx, "/")
}

// editUserView shows the profile and offers update or account deletion.
func (a *App) editUserView(ctx context.Context) error {
	a.renderTitle("Edit User")

	u := a.currentUser
	if u == nil {
		u = &models.User{}
	}
	fmt.Fprintf(a.out, "Name:  %s\nEmail: %s\n", u.FullName(), u.Email)

	action, err := getSimpleText(a.reader, "Action: (u)pdate, (d)elete account, (c)ancel", a.out)
	if err != nil {
		return a.abort(err)
	}

	switch action {
	case "u", "update":
		return a.updateUser(ctx, u)
	case "d", "delete":
		return a.deleteUser(ctx)
	}
	return a.Navigate(ctx, "/")
}

func (a *App) updateUser(ctx context.Context, u *models.User) error {
	var form models.UserForm
	var err error
	if form.FirstName, err = a.promptDefault("First Name", u.FirstName); err != nil {
		return a.abort(err)
	}
	if form.LastName, err = a.promptDefault("Last Name", u.LastName); err != nil {
		return a.abort(err)
	}
	if form.Email, err = a.promptDefault("Email", u.Email); err != nil {
		return a.abort(err)
	}

	password, confirm, err := a.readPasswordPair("New Password (empty keeps the current one)")
	if err != nil {
		return a.abort(err)
	}
	defer common.WipeByteArray(password)
	defer common.WipeByteArray(confirm)
	form.Password, form.ConfirmPassword = string(password), string(confirm)

	updated, err := a.auth.UpdateUser(ctx, form)
	if err != nil {
		if errors.Is(err, common.ErrPasswordMismatch) {
			a.flashMessage("Passwords do not match", models.CategoryDanger)
		} else {
			a.flashError(err)
		}
		return a.Navigate(ctx, "/")
	}

	a.currentUser = updated
	a.flashMessage(fmt.Sprintf("%s has been updated", updated.FullName()), models.CategorySuccess)
	return a.Navigate(ctx, "/")
}

func (a *App) deleteUser(ctx context.Context) error {
	ok, err := getConfirmation(a.reader, "Are you sure you want to delete your account? This action cannot be undone.", a.out)
	if err != nil {
		return a.abort(err)
	}
	if !ok {
		return a.Navigate(ctx, "/user")
	}

	msg, err := a.auth.DeleteUser(ctx)
	if err != nil {
		a.flashError(err)
		return a.Navigate(ctx, "/")
	}

	a.loggedIn = false
	a.currentUser = nil
	a.flashMessage(msg, models.CategoryPrimary)
	return a.Navigate(ctx, "/")
}
