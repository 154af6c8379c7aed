package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/invorax/invorax-go/internal/application/dto"
)

func (c *CLI) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(c.Out)
	email := fs.String("email", "", "email de la cuenta")
	password := fs.String("password", "", "contraseña")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.Session.Login(ctx, *email, *password); err != nil {
		return err
	}
	u := c.Session.Current().User
	fmt.Fprintf(c.Out, "Sesión iniciada como %s (%s)\n", u.FullName(), u.Email)
	return nil
}

func (c *CLI) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(c.Out)
	in := dto.RegisterRequest{}
	fs.StringVar(&in.Email, "email", "", "email de la cuenta")
	fs.StringVar(&in.Username, "username", "", "nombre de usuario")
	fs.StringVar(&in.FirstName, "first-name", "", "nombre")
	fs.StringVar(&in.LastName, "last-name", "", "apellido")
	fs.StringVar(&in.Password, "password", "", "contraseña")
	fs.StringVar(&in.PasswordConfirm, "password-confirm", "", "confirmación de contraseña")
	fs.StringVar(&in.CompanyName, "company", "", "nombre de la empresa")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.Session.Register(ctx, in); err != nil {
		return err
	}
	u := c.Session.Current().User
	fmt.Fprintf(c.Out, "Cuenta creada; sesión iniciada como %s\n", u.Email)
	return nil
}

func (c *CLI) logout() error {
	c.Session.Logout()
	fmt.Fprintln(c.Out, "Sesión cerrada")
	return nil
}

func (c *CLI) whoami() error {
	s := c.Session.Current()
	if !s.IsAuthenticated() {
		fmt.Fprintln(c.Out, "Sin sesión activa")
		return nil
	}
	fmt.Fprintf(c.Out, "%s (%s) — empresa %d\n", s.User.FullName(), s.User.Email, s.User.CompanyID)
	return nil
}
