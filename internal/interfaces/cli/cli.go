package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/invorax/invorax-go/internal/application/session"
	"github.com/invorax/invorax-go/internal/application/usecase"
	"github.com/invorax/invorax-go/internal/domain"
)

// CLI despacha los subcomandos del binario invorax. Cada pantalla del producto
// (categorías, productos, lotes, movimientos, stock) es un subcomando.
type CLI struct {
	Session    *session.Manager
	Categories *usecase.CategoryUseCase
	Products   *usecase.ProductUseCase
	Batches    *usecase.BatchUseCase
	Movements  *usecase.MovementUseCase
	Stock      *usecase.StockUseCase
	Out        io.Writer
}

// Run ejecuta el subcomando indicado en args.
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.usage()
		return fmt.Errorf("%w: falta el subcomando", domain.ErrValidation)
	}

	switch args[0] {
	case "login":
		return c.login(ctx, args[1:])
	case "register":
		return c.register(ctx, args[1:])
	case "logout":
		return c.logout()
	case "whoami":
		return c.whoami()
	case "categories":
		return c.categories(ctx, args[1:])
	case "products":
		return c.products(ctx, args[1:])
	case "batches":
		return c.batches(ctx, args[1:])
	case "movements":
		return c.movements(ctx, args[1:])
	case "stock":
		return c.stock(ctx)
	case "help", "-h", "--help":
		c.usage()
		return nil
	default:
		c.usage()
		return fmt.Errorf("%w: subcomando desconocido %q", domain.ErrValidation, args[0])
	}
}

func (c *CLI) usage() {
	fmt.Fprint(c.Out, `invorax — inventario multi-empresa

Uso:
  invorax login --email ... --password ...
  invorax register --email ... --username ... --password ... --password-confirm ... --company ...
  invorax logout
  invorax whoami
  invorax categories list|create|update|delete [flags]
  invorax products   list|create|update|delete [flags]
  invorax batches    list|create|delete [flags]
  invorax movements  list|create|delete [flags]
  invorax stock
`)
}

// requireSession verifica la sesión y renueva el token si hace falta, antes de
// cualquier operación autenticada.
func (c *CLI) requireSession(ctx context.Context) error {
	if err := c.Session.EnsureFresh(ctx); err != nil {
		return fmt.Errorf("%w (ejecute: invorax login)", err)
	}
	return nil
}

// table arma un tabwriter con la configuración usada por todos los listados.
func (c *CLI) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.Out, 0, 4, 2, ' ', 0)
}

// formatDate presenta fechas del backend en DD/MM/AAAA. Acepta fecha sola o
// timestamp RFC3339; cualquier otra cosa se muestra tal cual.
func formatDate(s string) string {
	if s == "" || s == "-" {
		return "-"
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return s
}
