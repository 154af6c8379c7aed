package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/invorax/invorax-go/internal/domain"
	"github.com/invorax/invorax-go/internal/domain/entity"
)

func (c *CLI) movements(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: uso: invorax movements list|create|delete", domain.ErrValidation)
	}
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return c.movementsList(ctx)
	case "create":
		return c.movementsCreate(ctx, args[1:])
	case "delete":
		return c.movementsDelete(ctx, args[1:])
	default:
		return fmt.Errorf("%w: acción desconocida %q", domain.ErrValidation, args[0])
	}
}

func (c *CLI) movementsList(ctx context.Context) error {
	items, err := c.Movements.List(ctx)
	if err != nil {
		return err
	}
	w := c.table()
	fmt.Fprintln(w, "ID\tFECHA\tTIPO\tLOTE\tCANTIDAD\tMOTIVO")
	for _, m := range items {
		lot := m.BatchCode
		if lot == "" {
			lot = m.Batch.Label(fmt.Sprintf("#%d", m.Batch.ID()))
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			m.ID, m.CreatedAt.Format("02/01/2006"), m.Type, lot, m.Quantity, m.Reason)
	}
	return w.Flush()
}

func (c *CLI) movementsCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("movements create", flag.ContinueOnError)
	fs.SetOutput(c.Out)
	var in entity.NewMovement
	batchID := fs.Int64("batch", 0, "id del lote")
	movType := fs.String("type", string(entity.MovementIn), "tipo: IN, OUT, ADJUST, EXPIRED")
	fs.StringVar(&in.BatchCode, "batch-code", "", "código del lote (alternativa a --batch)")
	fs.Int64Var(&in.Quantity, "quantity", 0, "cantidad")
	fs.StringVar(&in.Reason, "reason", "", "motivo")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *batchID > 0 {
		in.Batch = batchID
	}
	in.Type = entity.MovementType(*movType)

	m, err := c.Movements.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Movimiento registrado: %d (%s)\n", m.ID, m.Type)
	return nil
}

func (c *CLI) movementsDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("movements delete", flag.ContinueOnError)
	fs.SetOutput(c.Out)
	id := fs.Int64("id", 0, "id del movimiento")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: --id es requerido", domain.ErrValidation)
	}

	if err := c.Movements.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintln(c.Out, "Movimiento eliminado")
	return nil
}
