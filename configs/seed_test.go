package configs

import (
	"testing"

	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSeedLookupsIsIdempotent(t *testing.T) {
	ConnectionDB("file:TestSeedLookupsIsIdempotent?mode=memory&cache=shared")
	SetupDatabase()

	require.NoError(t, SeedLookups())

	var deptCount, varietyCount, toppingCount int64
	DB().Model(&entity.Department{}).Count(&deptCount)
	DB().Model(&entity.RollVariety{}).Count(&varietyCount)
	DB().Model(&entity.Topping{}).Count(&toppingCount)
	require.EqualValues(t, 4, deptCount)
	require.EqualValues(t, 2, varietyCount)
	require.EqualValues(t, 5, toppingCount)

	// an admin price change must survive the re-seed on restart
	require.NoError(t, DB().Model(&entity.RollVariety{}).
		Where("code = ?", entity.RollWhite).
		Update("price_per_half", decimal.RequireFromString("0.45")).Error)

	require.NoError(t, SeedLookups())

	var white entity.RollVariety
	require.NoError(t, DB().Where("code = ?", entity.RollWhite).First(&white).Error)
	require.True(t, decimal.RequireFromString("0.45").Equal(white.PricePerHalf))

	DB().Model(&entity.Department{}).Count(&deptCount)
	require.EqualValues(t, 4, deptCount)
}
