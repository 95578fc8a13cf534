package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dtroode/repairctl/internal/model"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review shops and read their reviews",
}

var reviewSubmitFlags struct {
	request int64
	rating  int
	comment string
}

var reviewSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Review the shop that completed one of your repairs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize("/repair-requests"); err != nil {
			return err
		}
		_, err := a.review.Submit(cmd.Context(), model.ReviewForm{
			RepairRequestID: reviewSubmitFlags.request,
			Rating:          reviewSubmitFlags.rating,
			Comment:         reviewSubmitFlags.comment,
		})
		return reported(err)
	},
}

var reviewListCmd = &cobra.Command{
	Use:   "list <shop-id>",
	Short: "List the reviews of a shop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize("/shops/" + args[0]); err != nil {
			return err
		}
		id, err := parseID(args[0], "shop id")
		if err != nil {
			return err
		}

		reviews, err := a.review.ShopReviews(cmd.Context(), id)
		if err != nil {
			return reported(err)
		}

		return a.printer.Print(reviews, func(w io.Writer) error {
			if len(reviews) == 0 {
				_, err := fmt.Fprintln(w, "No reviews yet.")
				return err
			}
			t := newTable(w)
			fmt.Fprintln(t, "RATING\tCUSTOMER\tWHEN\tCOMMENT")
			for _, r := range reviews {
				fmt.Fprintf(t, "%s\t%s\t%s\t%s\n",
					stars(r.Rating), orDash(r.CustomerName), ago(r.CreatedAt), r.Comment)
			}
			return t.Flush()
		})
	},
}

func stars(rating int) string {
	rating = min(max(rating, 0), 5)
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func init() {
	f := reviewSubmitCmd.Flags()
	f.Int64Var(&reviewSubmitFlags.request, "request", 0, "repair request id")
	f.IntVar(&reviewSubmitFlags.rating, "rating", 0, "rating from 1 to 5")
	f.StringVar(&reviewSubmitFlags.comment, "comment", "", "review text (at most 500 characters)")

	reviewCmd.AddCommand(reviewSubmitCmd, reviewListCmd)
	rootCmd.AddCommand(reviewCmd)
}
