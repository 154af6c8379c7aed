package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/invorax/invorax-go/internal/domain"
	"github.com/invorax/invorax-go/internal/domain/entity"
)

func (c *CLI) products(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: uso: invorax products list|create|update|delete", domain.ErrValidation)
	}
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return c.productsList(ctx)
	case "create":
		return c.productsCreate(ctx, args[1:])
	case "update":
		return c.productsUpdate(ctx, args[1:])
	case "delete":
		return c.productsDelete(ctx, args[1:])
	default:
		return fmt.Errorf("%w: acción desconocida %q", domain.ErrValidation, args[0])
	}
}

func (c *CLI) productsList(ctx context.Context) error {
	items, err := c.Products.List(ctx)
	if err != nil {
		return err
	}
	w := c.table()
	fmt.Fprintln(w, "ID\tNOMBRE\tCATEGORÍA\tPROVEEDOR\tPRESENTACIÓN")
	for _, p := range items {
		// La categoría puede venir plana o expandida; Label resuelve ambas.
		category := p.Category.Label(fmt.Sprintf("#%d", p.Category.ID()))
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, category, p.Supplier, p.Presentation)
	}
	return w.Flush()
}

func productFlags(fs *flag.FlagSet, in *entity.NewProduct) {
	fs.StringVar(&in.Name, "name", "", "nombre del producto")
	fs.StringVar(&in.Slug, "slug", "", "slug (se sugiere desde el nombre si se omite)")
	fs.StringVar(&in.Presentation, "presentation", "", "presentación (ej. caja x12)")
	fs.StringVar(&in.Supplier, "supplier", "", "proveedor")
	fs.Int64Var(&in.Category, "category", 0, "id de la categoría")
}

func (c *CLI) productsCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products create", flag.ContinueOnError)
	fs.SetOutput(c.Out)
	var in entity.NewProduct
	productFlags(fs, &in)
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := c.Products.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Producto creado: %d (%s)\n", p.ID, p.Slug)
	return nil
}

func (c *CLI) productsUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products update", flag.ContinueOnError)
	fs.SetOutput(c.Out)
	id := fs.Int64("id", 0, "id del producto")
	var in entity.NewProduct
	productFlags(fs, &in)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: --id es requerido", domain.ErrValidation)
	}

	p, err := c.Products.Update(ctx, *id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Producto actualizado: %d (%s)\n", p.ID, p.Slug)
	return nil
}

func (c *CLI) productsDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products delete", flag.ContinueOnError)
	fs.SetOutput(c.Out)
	id := fs.Int64("id", 0, "id del producto")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: --id es requerido", domain.ErrValidation)
	}

	if err := c.Products.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintln(c.Out, "Producto eliminado")
	return nil
}
