package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/repairctl/internal/model"
)

func TestShopFormFlags_OnlyChangedFlagsApply(t *testing.T) {
	lat := 40.7
	current := model.Shop{
		ID:             4,
		ShopName:       "Fix-It",
		Address:        "1 Main St",
		OperatingHours: "9-17",
		Services:       []string{"Screen"},
		Latitude:       &lat,
	}

	var flags shopFormFlags
	fs := pflag.NewFlagSet("update", pflag.ContinueOnError)
	flags.register(fs)
	require.NoError(t, fs.Parse([]string{"--address", "2 Main St", "--service", "Screen,Battery", "--rush", "--lon=-74"}))

	form := shopFormOf(current)
	flags.apply(fs, &form)

	assert.Equal(t, "Fix-It", form.ShopName)
	assert.Equal(t, "2 Main St", form.Address)
	assert.Equal(t, "9-17", form.OperatingHours)
	assert.Equal(t, []string{"Screen", "Battery"}, form.Services)
	assert.True(t, form.RushServiceAvailable)
	require.NotNil(t, form.Latitude)
	assert.InDelta(t, 40.7, *form.Latitude, 1e-9)
	require.NotNil(t, form.Longitude)
	assert.InDelta(t, -74.0, *form.Longitude, 1e-9)
}

func TestShopFormFlags_RegisterStartsEmpty(t *testing.T) {
	var flags shopFormFlags
	fs := pflag.NewFlagSet("register", pflag.ContinueOnError)
	flags.register(fs)
	require.NoError(t, fs.Parse([]string{"--name", "Fix-It", "--address", "1 Main St"}))

	var form model.ShopForm
	flags.apply(fs, &form)

	assert.Equal(t, model.ShopForm{ShopName: "Fix-It", Address: "1 Main St"}, form)
}

func TestJoinStatuses(t *testing.T) {
	assert.Equal(t, "ACTIVE, SUSPENDED, BLOCKED", joinStatuses(model.UserStatuses))
	assert.Equal(t, "ACTIVE, PENDING_VERIFICATION, SUSPENDED, DEACTIVATED", joinStatuses(model.ShopStatuses))
}
