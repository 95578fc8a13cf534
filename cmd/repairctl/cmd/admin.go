package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dtroode/repairctl/internal/guard"
	"github.com/dtroode/repairctl/internal/model"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Platform administration",
}

var adminDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show platform statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize(guard.PathAdminDashboard); err != nil {
			return err
		}
		stats, err := a.admin.Dashboard(cmd.Context())
		if err != nil {
			return reported(err)
		}

		return a.printer.Print(stats, func(w io.Writer) error {
			t := newTable(w)
			fmt.Fprintf(t, "Users:\t%d\t(%d new this week)\n", stats.UserStats.Total, stats.UserStats.NewLast7Days)
			for _, r := range []model.Role{model.RoleCustomer, model.RoleShopOwner, model.RoleAdmin} {
				fmt.Fprintf(t, "  %s\t%d\n", r, stats.UserStats.ByRole[r])
			}
			fmt.Fprintf(t, "Shops:\t%d\t(%d verified, avg rating %.1f)\n",
				stats.ShopStats.Total, stats.ShopStats.Verified, stats.ShopStats.AverageRating)
			fmt.Fprintf(t, "Repair requests:\t%d\t(%d new this week)\n", stats.RequestStats.Total, stats.RequestStats.NewLast7Days)
			for _, s := range model.RequestStatuses {
				fmt.Fprintf(t, "  %s\t%d\n", s, stats.RequestStats.ByStatus[s])
			}
			fmt.Fprintf(t, "Recent activity:\t%d users, %d requests, %d shops\n",
				stats.RecentActivity.NewUsers, stats.RecentActivity.NewRequests, stats.RecentActivity.NewShops)
			return t.Flush()
		})
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List all users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize(guard.PathAdminDashboard); err != nil {
			return err
		}
		users, err := a.admin.Users(cmd.Context())
		if err != nil {
			return reported(err)
		}

		return a.printer.Print(users, func(w io.Writer) error {
			t := newTable(w)
			fmt.Fprintln(t, "ID\tNAME\tEMAIL\tROLE\tVERIFIED\tENABLED\tJOINED")
			for _, u := range users {
				fmt.Fprintf(t, "%d\t%s\t%s\t%s\t%t\t%t\t%s\n",
					u.ID, u.DisplayName(), u.Email, u.Role, u.EmailVerified(), u.Enabled, ago(u.CreatedAt))
			}
			return t.Flush()
		})
	},
}

var adminUserCmd = &cobra.Command{
	Use:   "user",
	Short: "Moderate a user account",
}

var adminUserShowCmd = &cobra.Command{
	Use:   "show <user-id>",
	Short: "Show a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize(guard.PathAdminDashboard); err != nil {
			return err
		}
		id, err := parseID(args[0], "user id")
		if err != nil {
			return err
		}
		u, err := a.admin.User(cmd.Context(), id)
		if err != nil {
			return reported(err)
		}

		return a.printer.Print(u, func(w io.Writer) error {
			t := newTable(w)
			fmt.Fprintf(t, "User:\t#%d %s\n", u.ID, u.DisplayName())
			fmt.Fprintf(t, "Email:\t%s\n", u.Email)
			fmt.Fprintf(t, "Phone:\t%s\n", orDash(u.PhoneNumber))
			fmt.Fprintf(t, "Role:\t%s\n", u.Role)
			fmt.Fprintf(t, "Enabled:\t%t\n", u.Enabled)
			fmt.Fprintf(t, "Email verified:\t%t\n", u.EmailVerified())
			fmt.Fprintf(t, "Joined:\t%s\n", ago(u.CreatedAt))
			return t.Flush()
		})
	},
}

var adminReason string

var adminUserStatusCmd = &cobra.Command{
	Use:   "status <user-id> <status>",
	Short: "Change the status of a user account",
	Long:  "Change the status of a user account. Statuses: " + joinStatuses(model.UserStatuses),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize(guard.PathAdminDashboard); err != nil {
			return err
		}
		id, err := parseID(args[0], "user id")
		if err != nil {
			return err
		}
		status, err := model.ParseUserStatus(strings.ToUpper(args[1]))
		if err != nil {
			return err
		}
		_, err = a.admin.UpdateUserStatus(cmd.Context(), id, status, adminReason)
		return reported(err)
	},
}

var adminUserResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <user-id>",
	Short: "Email a password reset link to a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize(guard.PathAdminDashboard); err != nil {
			return err
		}
		id, err := parseID(args[0], "user id")
		if err != nil {
			return err
		}
		return reported(a.admin.ResetUserPassword(cmd.Context(), id))
	},
}

var adminShopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Moderate repair shops",
}

var adminShopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every shop with its statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize(guard.PathAdminDashboard); err != nil {
			return err
		}
		shops, err := a.admin.Shops(cmd.Context())
		if err != nil {
			return reported(err)
		}
		return a.printer.Print(shops, func(w io.Writer) error {
			return writeShops(w, shops)
		})
	},
}

var adminShopShowCmd = &cobra.Command{
	Use:   "show <shop-id>",
	Short: "Show a shop with its owner and statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize(guard.PathAdminDashboard); err != nil {
			return err
		}
		id, err := parseID(args[0], "shop id")
		if err != nil {
			return err
		}
		shop, err := a.admin.Shop(cmd.Context(), id)
		if err != nil {
			return reported(err)
		}
		return a.printer.Print(shop, func(w io.Writer) error {
			return writeShop(w, shop)
		})
	},
}

var adminShopStatusCmd = &cobra.Command{
	Use:   "status <shop-id> <status>",
	Short: "Change the status of a shop",
	Long:  "Change the status of a shop. Statuses: " + joinStatuses(model.ShopStatuses),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize(guard.PathAdminDashboard); err != nil {
			return err
		}
		id, err := parseID(args[0], "shop id")
		if err != nil {
			return err
		}
		status, err := model.ParseShopStatus(strings.ToUpper(args[1]))
		if err != nil {
			return err
		}
		_, err = a.admin.UpdateShopStatus(cmd.Context(), id, status, adminReason)
		return reported(err)
	},
}

var adminShopVerifyCmd = &cobra.Command{
	Use:   "verify <shop-id>",
	Short: "Mark a shop as verified",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize(guard.PathAdminDashboard); err != nil {
			return err
		}
		id, err := parseID(args[0], "shop id")
		if err != nil {
			return err
		}
		_, err = a.admin.VerifyShop(cmd.Context(), id)
		return reported(err)
	},
}

var adminRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Inspect repair requests across all shops",
}

var adminRequestFlags struct {
	status string
	page   int
	size   int
}

var adminRequestListCmd = &cobra.Command{
	Use:   "list",
	Short: "List repair requests, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize(guard.PathAdminDashboard); err != nil {
			return err
		}
		q := model.PageQuery{Page: adminRequestFlags.page, Size: adminRequestFlags.size}
		if s := strings.ToUpper(adminRequestFlags.status); s != "" && s != "ALL" {
			status, err := model.ParseRequestStatus(s)
			if err != nil {
				return err
			}
			q.Status = status
		}
		page, err := a.admin.RepairRequests(cmd.Context(), q)
		if err != nil {
			return err
		}

		return a.printer.Print(page, func(w io.Writer) error {
			if page.Empty || len(page.Content) == 0 {
				_, err := fmt.Fprintln(w, "No repair requests found.")
				return err
			}
			t := newTable(w)
			fmt.Fprintln(t, "ID\tCUSTOMER\tDEVICE\tPROBLEM\tSTATUS\tCREATED")
			for _, r := range page.Content {
				customer := "-"
				if r.Customer != nil {
					customer = r.Customer.DisplayName()
				}
				fmt.Fprintf(t, "%d\t%s\t%s %s\t%s\t%s\t%s\n",
					r.ID, customer, r.DeviceBrand, r.DeviceModel, r.ProblemCategory, r.Status, ago(r.CreatedAt))
			}
			if err := t.Flush(); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Page %d of %d (%d requests)\n",
				page.PageNumber+1, max(page.TotalPages, 1), page.TotalElements)
			return err
		})
	},
}

var adminRequestShowCmd = &cobra.Command{
	Use:   "show <request-id>",
	Short: "Show a repair request with its customer and quote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize(guard.PathAdminDashboard); err != nil {
			return err
		}
		id, err := parseID(args[0], "request id")
		if err != nil {
			return err
		}
		r, err := a.admin.RepairRequest(cmd.Context(), id)
		if err != nil {
			return reported(err)
		}

		return a.printer.Print(r, func(w io.Writer) error {
			t := newTable(w)
			fmt.Fprintf(t, "Request:\t#%d\n", r.ID)
			if r.Customer != nil {
				fmt.Fprintf(t, "Customer:\t%s <%s>\n", r.Customer.DisplayName(), r.Customer.Email)
			}
			fmt.Fprintf(t, "Device:\t%s %s\n", r.DeviceBrand, r.DeviceModel)
			fmt.Fprintf(t, "IMEI:\t%s\n", orDash(r.IMEINumber))
			fmt.Fprintf(t, "Problem:\t%s\n", r.ProblemCategory)
			fmt.Fprintf(t, "Description:\t%s\n", r.ProblemDescription)
			fmt.Fprintf(t, "Status:\t%s\n", r.Status)
			fmt.Fprintf(t, "Images:\t%d\n", len(r.ImageURLs))
			fmt.Fprintf(t, "Created:\t%s\n", ago(r.CreatedAt))
			if r.Quote != nil {
				shop := "-"
				if r.Quote.Shop != nil {
					shop = r.Quote.Shop.ShopName
				}
				fmt.Fprintf(t, "Quote:\t%.2f by %s, %d days (%s)\n",
					r.Quote.EstimatedCost, shop, r.Quote.EstimatedDays, r.Quote.Status)
			}
			return t.Flush()
		})
	},
}

func joinStatuses[S ~string](statuses []S) string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func init() {
	adminUserStatusCmd.Flags().StringVar(&adminReason, "reason", "", "reason shown to the user")
	adminShopStatusCmd.Flags().StringVar(&adminReason, "reason", "", "reason shown to the shop owner")

	f := adminRequestListCmd.Flags()
	f.StringVar(&adminRequestFlags.status, "status", "", "only requests with this status, or ALL")
	f.IntVar(&adminRequestFlags.page, "page", 0, "zero-based page number")
	f.IntVar(&adminRequestFlags.size, "size", 10, "requests per page")

	adminUserCmd.AddCommand(adminUserShowCmd, adminUserStatusCmd, adminUserResetPasswordCmd)
	adminShopCmd.AddCommand(adminShopListCmd, adminShopShowCmd, adminShopStatusCmd, adminShopVerifyCmd)
	adminRequestCmd.AddCommand(adminRequestListCmd, adminRequestShowCmd)
	adminCmd.AddCommand(adminDashboardCmd, adminUsersCmd, adminUserCmd, adminShopCmd, adminRequestCmd)
	rootCmd.AddCommand(adminCmd)
}
