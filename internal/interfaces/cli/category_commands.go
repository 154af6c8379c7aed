package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/invorax/invorax-go/internal/domain"
	"github.com/invorax/invorax-go/internal/domain/entity"
)

func (c *CLI) categories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: uso: invorax categories list|create|update|delete", domain.ErrValidation)
	}
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return c.categoriesList(ctx)
	case "create":
		return c.categoriesCreate(ctx, args[1:])
	case "update":
		return c.categoriesUpdate(ctx, args[1:])
	case "delete":
		return c.categoriesDelete(ctx, args[1:])
	default:
		return fmt.Errorf("%w: acción desconocida %q", domain.ErrValidation, args[0])
	}
}

func (c *CLI) categoriesList(ctx context.Context) error {
	items, err := c.Categories.List(ctx)
	if err != nil {
		return err
	}
	w := c.table()
	fmt.Fprintln(w, "ID\tNOMBRE\tSLUG\tDESCRIPCIÓN")
	for _, cat := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", cat.ID, cat.Name, cat.Slug, cat.Description)
	}
	return w.Flush()
}

func categoryFlags(fs *flag.FlagSet, in *entity.NewCategory) {
	fs.StringVar(&in.Name, "name", "", "nombre de la categoría")
	fs.StringVar(&in.Slug, "slug", "", "slug (se sugiere desde el nombre si se omite)")
	fs.StringVar(&in.Description, "description", "", "descripción")
}

func (c *CLI) categoriesCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("categories create", flag.ContinueOnError)
	fs.SetOutput(c.Out)
	var in entity.NewCategory
	categoryFlags(fs, &in)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := c.Categories.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Categoría creada: %d (%s)\n", cat.ID, cat.Slug)
	return nil
}

func (c *CLI) categoriesUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("categories update", flag.ContinueOnError)
	fs.SetOutput(c.Out)
	id := fs.Int64("id", 0, "id de la categoría")
	var in entity.NewCategory
	categoryFlags(fs, &in)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: --id es requerido", domain.ErrValidation)
	}

	cat, err := c.Categories.Update(ctx, *id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Categoría actualizada: %d (%s)\n", cat.ID, cat.Slug)
	return nil
}

func (c *CLI) categoriesDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("categories delete", flag.ContinueOnError)
	fs.SetOutput(c.Out)
	id := fs.Int64("id", 0, "id de la categoría")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: --id es requerido", domain.ErrValidation)
	}

	if err := c.Categories.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintln(c.Out, "Categoría eliminada")
	return nil
}
