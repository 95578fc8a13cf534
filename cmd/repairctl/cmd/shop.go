package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dtroode/repairctl/internal/guard"
	"github.com/dtroode/repairctl/internal/model"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse repair shops and manage your own",
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List repair shops",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize("/shops"); err != nil {
			return err
		}
		shops, err := a.shop.List(cmd.Context())
		if err != nil {
			return reported(err)
		}
		return a.printer.Print(shops, func(w io.Writer) error {
			return writeShops(w, shops)
		})
	},
}

var shopShowCmd = &cobra.Command{
	Use:   "show <shop-id>",
	Short: "Show a repair shop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "shop id")
		if err != nil {
			return err
		}
		if err := a.authorize(fmt.Sprintf("/shops/%d", id)); err != nil {
			return err
		}
		shop, err := a.shop.Get(cmd.Context(), id)
		if err != nil {
			return reported(err)
		}
		return a.printer.Print(shop, func(w io.Writer) error {
			return writeShop(w, shop)
		})
	},
}

var shopMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Show the shop you own",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize("/shop-profile"); err != nil {
			return err
		}
		shop, err := a.shop.Mine(cmd.Context(), a.manager.CurrentUser().ID)
		if err != nil {
			return reported(err)
		}
		return a.printer.Print(shop, func(w io.Writer) error {
			return writeShop(w, shop)
		})
	},
}

type shopFormFlags struct {
	name        string
	address     string
	description string
	hours       string
	services    []string
	payments    []string
	repairTime  string
	rush        bool
	devices     []string
	years       int
	photos      []string
	latitude    float64
	longitude   float64
}

func (f *shopFormFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "shop name")
	fs.StringVar(&f.address, "address", "", "street address")
	fs.StringVar(&f.description, "description", "", "short description")
	fs.StringVar(&f.hours, "hours", "", "operating hours")
	fs.StringSliceVar(&f.services, "service", nil, "offered service (repeatable)")
	fs.StringSliceVar(&f.payments, "payment", nil, "accepted payment method (repeatable)")
	fs.StringVar(&f.repairTime, "repair-time", "", "average repair time")
	fs.BoolVar(&f.rush, "rush", false, "rush service available")
	fs.StringSliceVar(&f.devices, "device-type", nil, "supported device type (repeatable)")
	fs.IntVar(&f.years, "years", 0, "years in business")
	fs.StringSliceVar(&f.photos, "photo-url", nil, "shop photo URL (repeatable)")
	fs.Float64Var(&f.latitude, "lat", 0, "latitude")
	fs.Float64Var(&f.longitude, "lon", 0, "longitude")
}

// apply copies the flags that were set on fs into form.
func (f *shopFormFlags) apply(fs *pflag.FlagSet, form *model.ShopForm) {
	set := func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}
	set("name", func() { form.ShopName = f.name })
	set("address", func() { form.Address = f.address })
	set("description", func() { form.Description = f.description })
	set("hours", func() { form.OperatingHours = f.hours })
	set("service", func() { form.Services = f.services })
	set("payment", func() { form.PaymentMethods = f.payments })
	set("repair-time", func() { form.AverageRepairTime = f.repairTime })
	set("rush", func() { form.RushServiceAvailable = f.rush })
	set("device-type", func() { form.DeviceTypes = f.devices })
	set("years", func() { form.YearsInBusiness = f.years })
	set("photo-url", func() { form.PhotoURLs = f.photos })
	set("lat", func() { form.Latitude = &f.latitude })
	set("lon", func() { form.Longitude = &f.longitude })
}

// shopFormOf is the form that leaves shop unchanged when sent as an update.
func shopFormOf(shop model.Shop) model.ShopForm {
	return model.ShopForm{
		ShopName:             shop.ShopName,
		Address:              shop.Address,
		Description:          shop.Description,
		OperatingHours:       shop.OperatingHours,
		Services:             shop.Services,
		PaymentMethods:       shop.PaymentMethods,
		AverageRepairTime:    shop.AverageRepairTime,
		RushServiceAvailable: shop.RushServiceAvailable,
		DeviceTypes:          shop.DeviceTypes,
		YearsInBusiness:      shop.YearsInBusiness,
		PhotoURLs:            shop.PhotoURLs,
		Latitude:             shop.Latitude,
		Longitude:            shop.Longitude,
	}
}

var (
	registerShopFlags shopFormFlags
	updateShopFlags   shopFormFlags
)

var shopRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register your repair shop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize("/shop-registration"); err != nil {
			return err
		}
		var form model.ShopForm
		registerShopFlags.apply(cmd.Flags(), &form)

		shop, err := a.shop.Register(cmd.Context(), form)
		if err != nil {
			return reported(err)
		}
		a.navigator.Navigate(guard.PathShopDashboard)
		return a.printer.Print(shop, func(w io.Writer) error {
			return writeShop(w, shop)
		})
	},
}

var shopUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the details of your shop",
	Long:  "Update the details of your shop. Only the given flags change.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.authorize("/shop-profile"); err != nil {
			return err
		}
		ctx := cmd.Context()
		current, err := a.shop.Mine(ctx, a.manager.CurrentUser().ID)
		if err != nil {
			return reported(err)
		}
		form := shopFormOf(current)
		updateShopFlags.apply(cmd.Flags(), &form)

		shop, err := a.shop.Update(ctx, current.ID, form)
		if err != nil {
			return reported(err)
		}
		return a.printer.Print(shop, func(w io.Writer) error {
			return writeShop(w, shop)
		})
	},
}

func writeShops(w io.Writer, shops []model.Shop) error {
	if len(shops) == 0 {
		_, err := fmt.Fprintln(w, "No shops found.")
		return err
	}
	t := newTable(w)
	fmt.Fprintln(t, "ID\tNAME\tADDRESS\tSTATUS\tVERIFIED\tRATING\tREPAIRS")
	for _, s := range shops {
		fmt.Fprintf(t, "%d\t%s\t%s\t%s\t%t\t%s\t%d\n",
			s.ID, s.ShopName, orDash(s.Address), orDash(string(s.Status)), s.Verified,
			rating(s.AverageRating), s.TotalRepairs)
	}
	return t.Flush()
}

func writeShop(w io.Writer, s model.Shop) error {
	t := newTable(w)
	fmt.Fprintf(t, "Shop:\t#%d %s\n", s.ID, s.ShopName)
	if s.Owner != nil {
		fmt.Fprintf(t, "Owner:\t%s <%s>\n", s.Owner.DisplayName(), s.Owner.Email)
	}
	fmt.Fprintf(t, "Address:\t%s\n", orDash(s.Address))
	fmt.Fprintf(t, "Description:\t%s\n", orDash(s.Description))
	fmt.Fprintf(t, "Hours:\t%s\n", orDash(s.OperatingHours))
	fmt.Fprintf(t, "Services:\t%s\n", orDash(strings.Join(s.Services, ", ")))
	fmt.Fprintf(t, "Devices:\t%s\n", orDash(strings.Join(s.DeviceTypes, ", ")))
	fmt.Fprintf(t, "Payment:\t%s\n", orDash(strings.Join(s.PaymentMethods, ", ")))
	fmt.Fprintf(t, "Repair time:\t%s\n", orDash(s.AverageRepairTime))
	fmt.Fprintf(t, "Rush service:\t%t\n", s.RushServiceAvailable)
	fmt.Fprintf(t, "Status:\t%s\n", orDash(string(s.Status)))
	if s.StatusReason != "" {
		fmt.Fprintf(t, "Reason:\t%s\n", s.StatusReason)
	}
	verified := "no"
	if s.Verified {
		verified = "yes"
		if s.VerificationDate != nil {
			verified += ", " + ago(*s.VerificationDate)
		}
	}
	fmt.Fprintf(t, "Verified:\t%s\n", verified)
	fmt.Fprintf(t, "Rating:\t%s\n", rating(s.AverageRating))
	if s.TotalRepairs > 0 {
		fmt.Fprintf(t, "Repairs:\t%s (%.0f%% completed)\n", humanize.Comma(s.TotalRepairs), s.CompletionRate)
	}
	return t.Flush()
}

func rating(r float64) string {
	if r == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", r)
}

func init() {
	registerShopFlags.register(shopRegisterCmd.Flags())
	updateShopFlags.register(shopUpdateCmd.Flags())

	shopCmd.AddCommand(shopListCmd, shopShowCmd, shopMineCmd, shopRegisterCmd, shopUpdateCmd)
	rootCmd.AddCommand(shopCmd)
}
