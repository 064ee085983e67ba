package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/student-support/supportctl/internal/core/ports"
)

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, ports.LoginInput{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	studentID := fs.String("student-id", "", "student id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, ports.RegisterInput{
		Name:      *name,
		Email:     *email,
		Password:  *password,
		StudentID: *studentID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s! Your account is ready and you are signed in.\n", user.Name)
	return nil
}

func (a *App) cmdLogout(ctx context.Context, _ []string) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *App) cmdWhoami(_ context.Context, _ []string) error {
	u := a.session.Current()
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(a.out, "role: %s\n", u.Role)
	if u.StudentID != "" {
		fmt.Fprintf(a.out, "student id: %s\n", u.StudentID)
	}
	return nil
}

func (a *App) cmdAdmin(_ context.Context, _ []string) error {
	u := a.session.Current()
	if !u.IsAdmin() {
		return fmt.Errorf("the admin panel is only available to admin accounts")
	}
	fmt.Fprintln(a.out, "Welcome, Admin!")
	fmt.Fprintln(a.out, "As an admin you can edit and delete any community event or post,")
	fmt.Fprintln(a.out, "not just your own. Use the events and posts commands as usual.")
	return nil
}
