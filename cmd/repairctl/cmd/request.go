package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dtroode/repairctl/internal/intake"
	"github.com/dtroode/repairctl/internal/model"
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Manage repair requests",
}

var submitFlags struct {
	brand       string
	model       string
	imei        string
	category    string
	description string
	images      []string
}

var requestSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a repair request with up to 3 photos",
	Long: fmt.Sprintf(`Submit a repair request.

Photos are given with --image (repeatable, at most %d). JPEG, PNG and WebP
files up to 5MB are accepted. They are resized to at most %dpx on the
longest side and sent as JPEG. Photos that cannot be processed are skipped.

Problem categories: %s`, intake.MaxImages, intake.MaxDimension, categoryList()),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize("/repair-requests/new"); err != nil {
			return err
		}
		ctx := cmd.Context()

		batch := intake.NewBatch(a.previews, a.logger, intake.WithMetrics(a.metrics))
		defer func() {
			if err := batch.ReleaseAll(context.WithoutCancel(ctx)); err != nil {
				a.logger.Warn("CLI: failed to release previews",
					"error", err.Error())
			}
		}()

		if err := addImages(ctx, batch, submitFlags.images); err != nil {
			return err
		}
		if err := batch.Wait(ctx); err != nil {
			return err
		}
		reportSkipped(batch)

		form := model.RepairRequestForm{
			DeviceBrand:        submitFlags.brand,
			DeviceModel:        submitFlags.model,
			IMEINumber:         submitFlags.imei,
			ProblemCategory:    model.ProblemCategory(strings.ToUpper(submitFlags.category)),
			ProblemDescription: submitFlags.description,
		}

		req, err := a.repair.Submit(ctx, form, batch)
		if err != nil {
			return reported(err)
		}

		return a.printer.Print(req, func(w io.Writer) error {
			fmt.Fprintf(w, "Repair request #%d is %s\n", req.ID, req.Status)
			return nil
		})
	},
}

func addImages(ctx context.Context, batch *intake.Batch, paths []string) error {
	if len(paths) > intake.MaxImages {
		a.notifier.Error(intake.UserMessage(intake.ErrTooManyImages))
		return errReported
	}

	files := make([]intake.File, 0, len(paths))
	for _, p := range paths {
		f, err := intake.LoadFile(p)
		if err != nil {
			return err
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil
	}

	if err := batch.AddFiles(ctx, files...); err != nil {
		if errors.Is(err, intake.ErrTooManyImages) {
			a.notifier.Error(intake.UserMessage(err))
			return errReported
		}
		return err
	}
	return nil
}

func reportSkipped(batch *intake.Batch) {
	for _, e := range batch.Entries() {
		if e.Status == intake.StatusError {
			a.notifier.Error(fmt.Sprintf("%s: %s", e.Name, intake.UserMessage(e.Err)))
		}
	}
}

func categoryList() string {
	names := make([]string, len(model.ProblemCategories))
	for i, c := range model.ProblemCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

var requestListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your repair requests, or your shop's",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/repair-requests"
		if u := a.manager.CurrentUser(); u != nil && u.Role == model.RoleShopOwner {
			path = "/shop/repairs"
		}
		if err := a.authorize(path); err != nil {
			return err
		}

		reqs, err := a.repair.List(cmd.Context(), a.manager.CurrentUser().Role)
		if err != nil {
			return reported(err)
		}

		return a.printer.Print(reqs, func(w io.Writer) error {
			if len(reqs) == 0 {
				_, err := fmt.Fprintln(w, "No repair requests yet.")
				return err
			}
			t := newTable(w)
			fmt.Fprintln(t, "ID\tDEVICE\tPROBLEM\tSTATUS\tIMAGES\tQUOTE\tCREATED")
			for _, r := range reqs {
				quote := "-"
				if r.Quote != nil {
					quote = fmt.Sprintf("%s (%s)", humanize.CommafWithDigits(r.Quote.EstimatedCost, 2), r.Quote.Status)
				}
				fmt.Fprintf(t, "%d\t%s %s\t%s\t%s\t%d\t%s\t%s\n",
					r.ID, r.DeviceBrand, r.DeviceModel, r.ProblemCategory, r.Status,
					len(r.ImageURLs), quote, ago(r.CreatedAt))
			}
			return t.Flush()
		})
	},
}

var requestStatusCmd = &cobra.Command{
	Use:   "status <request-id> <status>",
	Short: "Update the status of a repair request at your shop",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize("/shop/repairs"); err != nil {
			return err
		}
		id, err := parseID(args[0], "request id")
		if err != nil {
			return err
		}
		status, err := model.ParseRequestStatus(strings.ToUpper(args[1]))
		if err != nil {
			return err
		}

		_, err = a.repair.UpdateStatus(cmd.Context(), id, status)
		return reported(err)
	},
}

func init() {
	f := requestSubmitCmd.Flags()
	f.StringVar(&submitFlags.brand, "brand", "", "device brand")
	f.StringVar(&submitFlags.model, "model", "", "device model")
	f.StringVar(&submitFlags.imei, "imei", "", "15-digit IMEI number")
	f.StringVar(&submitFlags.category, "category", "", "problem category")
	f.StringVar(&submitFlags.description, "description", "", "problem description")
	f.StringArrayVar(&submitFlags.images, "image", nil, "path to a photo of the device (repeatable)")

	requestCmd.AddCommand(requestSubmitCmd, requestListCmd, requestStatusCmd)
	rootCmd.AddCommand(requestCmd)
}
