// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"freshmart/cli/internal/catalog"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	productsSearch     string
	productsName       string
	productsCategory   string
	productsInStock    bool
	productsCategories bool
)

// productsCmd lists catalog products using the saved session.
var productsCmd = &cobra.Command{
	Use:   "products [id]",
	Short: "Browse the product catalog",
	Long: `The products command lists catalog products. Requests carry the saved session when
there is one and are sent anonymously otherwise. If the server rejects the saved
token, the session is cleared.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		return withApp(func(a *app) error {
			c := a.catalog

			if productsCategories {
				cats, err := c.Categories(ctx)
				if err != nil {
					return productsError(a, err)
				}
				items := make([]pterm.BulletListItem, 0, len(cats))
				for _, name := range cats {
					items = append(items, pterm.BulletListItem{Text: name})
				}
				return pterm.DefaultBulletList.WithItems(items).Render()
			}

			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid product id %q", args[0])
				}
				p, err := c.Get(ctx, id)
				if err != nil {
					return productsError(a, err)
				}
				pterm.DefaultBox.
					WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(p.ProductName)).
					Println(fmt.Sprintf("Price:    %.2f\nStock:    %d\nCategory: %s\n%s", p.Price, p.Quantity, orDash(p.Category), p.Description))
				return nil
			}

			var (
				list []catalog.Product
				err  error
			)
			switch {
			case productsSearch != "":
				list, err = c.Search(ctx, productsSearch)
			case productsName != "":
				list, err = c.SearchByName(ctx, productsName)
			case productsCategory != "":
				list, err = c.ByCategory(ctx, productsCategory)
			case productsInStock:
				list, err = c.InStock(ctx)
			default:
				list, err = c.List(ctx)
			}
			if err != nil {
				return productsError(a, err)
			}
			if len(list) == 0 {
				pterm.Info.Println("No products found")
				return nil
			}
			items := make([]pterm.BulletListItem, 0, len(list))
			for _, p := range list {
				line := fmt.Sprintf("%-30s %8.2f", p.ProductName, p.Price)
				if !p.InStock() {
					line += pterm.Gray("  out of stock")
				}
				items = append(items, pterm.BulletListItem{Text: line})
			}
			return pterm.DefaultBulletList.WithItems(items).Render()
		})
	},
}

func init() {
	productsCmd.Flags().StringVarP(&productsSearch, "search", "s", "", "Search names, descriptions and categories")
	productsCmd.Flags().StringVar(&productsName, "name", "", "Search by product name")
	productsCmd.Flags().StringVarP(&productsCategory, "category", "c", "", "List one category")
	productsCmd.Flags().BoolVar(&productsInStock, "in-stock", false, "Only products with stock available")
	productsCmd.Flags().BoolVar(&productsCategories, "categories", false, "List category names")
	rootCmd.AddCommand(productsCmd)
}

func productsError(a *app, err error) error {
	if errors.Is(err, catalog.ErrUnauthorized) {
		printSessionExpired()
		return err
	}
	return a.reportRequestError(err, "loading products")
}
