package cli

import (
	"context"
	"fmt"
)

// stock presenta el control de stock: totales por producto y detalle por lote.
func (c *CLI) stock(ctx context.Context) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}
	items, err := c.Stock.Summaries(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(c.Out, "No hay stock disponible")
		return nil
	}

	for _, item := range items {
		fmt.Fprintf(c.Out, "%s (id %d)\n", item.ProductName, item.ProductID)
		fmt.Fprintf(c.Out, "  Recibido: %d  Vendido: %d  Disponible: %d\n",
			item.TotalReceived, item.TotalSold, item.TotalAvailable)

		w := c.table()
		fmt.Fprintln(w, "  LOTE\tCANTIDAD\tVENCIMIENTO")
		for _, b := range item.Batches {
			fmt.Fprintf(w, "  %s\t%d\t%s\n", b.Code, b.QuantityAvailable, formatDate(b.ExpirationDate))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(c.Out)
	}
	return nil
}
