package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/netx"
)

// uploadToPresignedURL is a test seam for netx.UploadToPresignedURL.
var uploadToPresignedURL = netx.UploadToPresignedURL

func (a *App) Cart(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	cart, err := a.client.GetCart(ctx)
	if err != nil {
		return err
	}
	a.printCart(cart)
	return nil
}

func (a *App) Add(ctx context.Context, itemID string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	cart, err := a.client.AddToCart(ctx, itemID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s.\n", itemID)
	a.printCart(cart)
	return nil
}

func (a *App) Remove(ctx context.Context, itemID string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	cart, err := a.client.RemoveFromCart(ctx, itemID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed %s.\n", itemID)
	a.printCart(cart)
	return nil
}

func (a *App) Products(ctx context.Context, list string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	products, err := a.client.Products(ctx, client.ProductList(list))
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tOLD PRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%.2f\n", p.ID, p.Name, p.Category, p.NewPrice, p.OldPrice)
	}
	return tw.Flush()
}

// Upload stores a local image under a presigned URL and prints the public
// link to use as a product image.
func (a *App) Upload(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	name := filepath.Base(path)
	up, err := a.client.PresignImageUpload(ctx, name)
	if err != nil {
		return err
	}

	if err := uploadToPresignedURL(ctx, up.URL, mime.TypeByExtension(filepath.Ext(name)), data); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Image URL:", up.ImageURL)
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) printCart(cart map[string]int) {
	if len(cart) == 0 {
		fmt.Fprintln(a.out, "Cart is empty.")
		return
	}

	keys := make([]string, 0, len(cart))
	for k := range cart {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tQTY")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%d\n", k, cart[k])
	}
	_ = tw.Flush()
}
