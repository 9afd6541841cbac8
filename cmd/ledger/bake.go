package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/disjoint/pkg/baking"
)

func (a *app) bakeCmd() *cobra.Command {
	order := baking.Order{Item: "pie"}

	c := &cobra.Command{
		Use:   "bake",
		Short: "Run the baking pipeline for one order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := baking.Bake(cmd.Context(), order)
			a.logger.Debug("bake finished",
				zap.String("item", order.Item),
				zap.Strings("ingredients", order.Ingredients),
				zap.Bool("success", res.IsSuccess()))

			return report(cmd, "bake", res, func(v baking.OkVal) string {
				return v.Message
			})
		},
	}

	c.Flags().StringVar(&order.Item, "item", order.Item, "item to bake")
	c.Flags().StringSliceVarP(&order.Ingredients, "ingredient", "i", nil, "ingredient (repeatable)")
	c.Flags().IntVarP(&order.Temperature, "temperature", "t", baking.MinTemperature, "oven temperature")
	c.Flags().BoolVar(&order.Fragile, "fragile", false, "item is fragile")
	c.Flags().IntVarP(&order.Score, "score", "s", 5, "rating score")
	return c
}
