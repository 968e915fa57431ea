package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xpense/xpense/internal/ledger"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories in use",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			for _, c := range ledger.Categories(store.All()) {
				fmt.Println(c)
			}
			return nil
		},
	}
}
