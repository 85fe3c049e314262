package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/catalog/internal/app"
	"github.com/five82/catalog/internal/catalog"
)

func newListCmd(opts *app.Options) *cobra.Command {
	var (
		search string
		sortBy string
		desc   bool
		page   int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long: `Lists products filtered by --search (case-insensitive match on name or
category), sorted by --sort. With --page the output is limited to that page of
three products.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := catalog.ParseSortKey(sortBy)
			if err != nil {
				return err
			}
			if page < 0 {
				return fmt.Errorf("page must be positive, got %d", page)
			}
			return withEnv(cmd.Context(), opts, func(env *app.Env) error {
				listing := env.List(app.ListOptions{Search: search, Sort: key, Desc: desc, Page: page})
				printListing(cmd.OutOrStdout(), listing, page)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name or category")
	cmd.Flags().StringVar(&sortBy, "sort", string(catalog.SortByName), "sort key: name, category or price")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVarP(&page, "page", "p", 0, "show only this page")
	return cmd
}

func newAddCmd(opts *app.Options) *cobra.Command {
	var draft catalog.Draft
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a product",
		Example: `  catalog add --name "Office Chair" --category Furniture --price 120`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), opts, func(env *app.Env) error {
				p, err := env.Add(cmd.Context(), draft)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added %d %s\n", p.ID, p.Name)
				return nil
			})
		},
	}
	bindDraftFlags(cmd, &draft)
	return cmd
}

func newEditCmd(opts *app.Options) *cobra.Command {
	var draft catalog.Draft
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a product",
		Long:  "Edits the product with the given id. Fields that are not passed keep their current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd.Context(), opts, func(env *app.Env) error {
				p, err := env.Edit(cmd.Context(), id, draft)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated %d %s\n", p.ID, p.Name)
				return nil
			})
		},
	}
	bindDraftFlags(cmd, &draft)
	return cmd
}

func newRemoveCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a product",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd.Context(), opts, func(env *app.Env) error {
				p, err := env.Remove(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d %s\n", p.ID, p.Name)
				return nil
			})
		},
	}
}

func bindDraftFlags(cmd *cobra.Command, draft *catalog.Draft) {
	cmd.Flags().StringVar(&draft.Name, "name", "", "product name (letters and spaces)")
	cmd.Flags().StringVar(&draft.Category, "category", "", "product category (letters and spaces)")
	cmd.Flags().StringVar(&draft.Price, "price", "", "price, a whole number greater than zero")
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}

func printListing(w io.Writer, listing app.Listing, page int) {
	if len(listing.Products) == 0 {
		fmt.Fprintln(w, "no products")
	} else {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "NAME", "CATEGORY", "PRICE")
		for _, p := range listing.Products {
			t.Row(strconv.FormatInt(p.ID, 10), p.Name, p.Category, strconv.FormatInt(p.Price, 10))
		}
		fmt.Fprintln(w, t.String())
	}

	summary := fmt.Sprintf("%d of %d products", listing.Matches, listing.Total)
	if page > 0 {
		summary += fmt.Sprintf(", page %d/%d", page, listing.Page.TotalPages)
	}
	fmt.Fprintln(w, summary)
}
