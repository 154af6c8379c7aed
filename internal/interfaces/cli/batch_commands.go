package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/invorax/invorax-go/internal/domain"
	"github.com/invorax/invorax-go/internal/domain/entity"
)

func (c *CLI) batches(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: uso: invorax batches list|create|delete", domain.ErrValidation)
	}
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return c.batchesList(ctx)
	case "create":
		return c.batchesCreate(ctx, args[1:])
	case "delete":
		return c.batchesDelete(ctx, args[1:])
	default:
		return fmt.Errorf("%w: acción desconocida %q", domain.ErrValidation, args[0])
	}
}

func (c *CLI) batchesList(ctx context.Context) error {
	items, err := c.Batches.List(ctx)
	if err != nil {
		return err
	}
	w := c.table()
	fmt.Fprintln(w, "ID\tCÓDIGO\tPRODUCTO\tRECIBIDO\tDISPONIBLE\tPRECIO\tVENCIMIENTO")
	for _, b := range items {
		product := b.Product.Label(fmt.Sprintf("#%d", b.Product.ID()))
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\t%s\n",
			b.ID, b.Code, product,
			b.QuantityReceived, b.QuantityAvailable,
			b.PurchasePrice.StringFixed(2), formatDate(b.ExpirationDate))
	}
	return w.Flush()
}

func (c *CLI) batchesCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("batches create", flag.ContinueOnError)
	fs.SetOutput(c.Out)
	var in entity.NewBatch
	price := fs.String("price", "0", "precio de compra (decimal)")
	fs.StringVar(&in.Code, "code", "", "código del lote (el backend genera uno si se omite)")
	fs.Int64Var(&in.Product, "product", 0, "id del producto")
	fs.Int64Var(&in.QuantityReceived, "quantity", 0, "cantidad recibida")
	fs.StringVar(&in.ExpirationDate, "expires", "", "fecha de vencimiento AAAA-MM-DD")
	fs.StringVar(&in.Supplier, "supplier", "", "proveedor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := decimal.NewFromString(*price)
	if err != nil {
		return fmt.Errorf("%w: precio inválido %q", domain.ErrValidation, *price)
	}
	in.PurchasePrice = p

	b, err := c.Batches.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Lote creado: %s (id %d)\n", b.Code, b.ID)
	return nil
}

func (c *CLI) batchesDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("batches delete", flag.ContinueOnError)
	fs.SetOutput(c.Out)
	id := fs.Int64("id", 0, "id del lote")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: --id es requerido", domain.ErrValidation)
	}

	if err := c.Batches.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintln(c.Out, "Lote eliminado")
	return nil
}
