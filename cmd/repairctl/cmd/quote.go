package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dtroode/repairctl/internal/model"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Create, accept and list quotes",
}

var quoteCreateFlags struct {
	request     int64
	cost        float64
	days        int
	description string
}

var quoteCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Quote on a repair request",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize("/shop/repairs"); err != nil {
			return err
		}
		q, err := a.quote.Create(cmd.Context(), model.QuoteForm{
			RepairRequestID: quoteCreateFlags.request,
			EstimatedCost:   quoteCreateFlags.cost,
			EstimatedDays:   quoteCreateFlags.days,
			Description:     quoteCreateFlags.description,
		})
		if err != nil {
			return reported(err)
		}
		return a.printer.Print(q, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "Quote #%d created\n", q.ID)
			return err
		})
	},
}

var quoteAcceptCmd = &cobra.Command{
	Use:   "accept <quote-id>",
	Short: "Accept a quote on one of your repair requests",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize("/repair-requests"); err != nil {
			return err
		}
		id, err := parseID(args[0], "quote id")
		if err != nil {
			return err
		}
		_, err = a.quote.Accept(cmd.Context(), id)
		return reported(err)
	},
}

var quoteListCmd = &cobra.Command{
	Use:   "list <request-id>",
	Short: "List the quotes on a repair request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize("/repair-requests/" + args[0]); err != nil {
			return err
		}
		id, err := parseID(args[0], "request id")
		if err != nil {
			return err
		}

		quotes, err := a.quote.List(cmd.Context(), id)
		if err != nil {
			return reported(err)
		}

		return a.printer.Print(quotes, func(w io.Writer) error {
			if len(quotes) == 0 {
				_, err := fmt.Fprintln(w, "No quotes yet.")
				return err
			}
			t := newTable(w)
			fmt.Fprintln(t, "ID\tSHOP\tCOST\tDAYS\tSTATUS\tDESCRIPTION")
			for _, q := range quotes {
				shop := "-"
				if q.Shop != nil {
					shop = q.Shop.ShopName
				}
				fmt.Fprintf(t, "%d\t%s\t%s\t%d\t%s\t%s\n",
					q.ID, shop, humanize.CommafWithDigits(q.EstimatedCost, 2), q.EstimatedDays,
					orDash(q.Status), q.Description)
			}
			return t.Flush()
		})
	},
}

func init() {
	f := quoteCreateCmd.Flags()
	f.Int64Var(&quoteCreateFlags.request, "request", 0, "repair request id")
	f.Float64Var(&quoteCreateFlags.cost, "cost", 0, "estimated cost")
	f.IntVar(&quoteCreateFlags.days, "days", 0, "estimated days to complete")
	f.StringVar(&quoteCreateFlags.description, "description", "", "work description")

	quoteCmd.AddCommand(quoteCreateCmd, quoteAcceptCmd, quoteListCmd)
	rootCmd.AddCommand(quoteCmd)
}
