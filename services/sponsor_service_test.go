package services

import (
	"testing"

	"github.com/creativeyMedia/fwkantine/apperr"
	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSponsorRollsAndEggs(t *testing.T) {
	env := newTestEnv(t)

	// sponsor Anna: rolls 1.15, 1 egg 0.50, coffee 1.00
	_, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 2, 1, false, 1, true))
	require.NoError(t, err)
	// Bernd: rolls 0.75 (2 white), 2 eggs 1.00, coffee 1.00
	berndOrder, err := env.orders.Submit(env.empB, env.breakfastReq(env.dept1, 2, 0, false, 2, true))
	require.NoError(t, err)

	res, err := env.sponsors.Sponsor(env.dept1, "", entity.SponsorRollsEggs, env.empA)
	require.NoError(t, err)

	// only Bernd's portion moves: 0.75 + 1.00
	requireDec(t, "1.75", res.TotalSponsored)
	require.Equal(t, 1, res.EmployeesAffected)

	// Bernd keeps his coffee
	bernd := env.employee(t, env.empB)
	requireDec(t, "1.00", bernd.BreakfastBalance)
	got := env.order(t, berndOrder.ID)
	requireDec(t, "0", got.RollsCost)
	requireDec(t, "0", got.EggsCost)
	requireDec(t, "1.00", got.CoffeeCost)
	requireDec(t, "1.00", got.RecordedCost)

	// Anna pays her own order (2.65) plus the sponsored total
	anna := env.employee(t, env.empA)
	requireDec(t, "4.40", anna.BreakfastBalance)
}

func TestSponsorLunchOnly(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.Submit(env.empB, env.breakfastReq(env.dept1, 2, 0, true, 0, true))
	require.NoError(t, err)

	res, err := env.sponsors.Sponsor(env.dept1, "", entity.SponsorLunch, env.empA)
	require.NoError(t, err)
	requireDec(t, "4.00", res.TotalSponsored)

	// rolls and coffee stay with Bernd
	bernd := env.employee(t, env.empB)
	requireDec(t, "1.75", bernd.BreakfastBalance)

	anna := env.employee(t, env.empA)
	requireDec(t, "4.00", anna.BreakfastBalance)
}

func TestSponsorTwiceFails(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.Submit(env.empB, env.breakfastReq(env.dept1, 2, 0, false, 1, false))
	require.NoError(t, err)

	_, err = env.sponsors.Sponsor(env.dept1, "", entity.SponsorRollsEggs, env.empA)
	require.NoError(t, err)

	annaAfterFirst := env.employee(t, env.empA).BreakfastBalance
	berndAfterFirst := env.employee(t, env.empB).BreakfastBalance

	_, err = env.sponsors.Sponsor(env.dept1, "", entity.SponsorRollsEggs, env.empA)
	require.ErrorIs(t, err, apperr.ErrAlreadySponsored)

	// balances unchanged by the rejected second call
	require.True(t, annaAfterFirst.Equal(env.employee(t, env.empA).BreakfastBalance))
	require.True(t, berndAfterFirst.Equal(env.employee(t, env.empB).BreakfastBalance))
}

func TestSponsorConservesTotalOwed(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 2, 1, true, 1, true))
	require.NoError(t, err)
	_, err = env.orders.Submit(env.empB, env.breakfastReq(env.dept1, 1, 2, true, 0, false))
	require.NoError(t, err)
	// Clara as guest in dept1
	_, err = env.orders.Submit(env.empC, env.breakfastReq(env.dept1, 2, 0, true, 0, false))
	require.NoError(t, err)

	totalBefore := env.totalOwed(t)

	_, err = env.sponsors.Sponsor(env.dept1, "", entity.SponsorLunch, env.empA)
	require.NoError(t, err)

	require.True(t, totalBefore.Equal(env.totalOwed(t)),
		"sponsoring must relabel cost, not create or destroy it")
}

func TestSponsorUnknownCategoryOrEmployee(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sponsors.Sponsor(env.dept1, "", "dessert", env.empA)
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = env.sponsors.Sponsor(env.dept1, "", entity.SponsorLunch, 9999)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

// totalOwed sums every employee's full snapshot.
func (env *testEnv) totalOwed(t *testing.T) decimal.Decimal {
	t.Helper()
	total := decimal.Zero
	for _, id := range []uint{env.empA, env.empB, env.empC} {
		snap, err := env.ledger.BalancesOf(env.db, id)
		require.NoError(t, err)
		total = total.Add(snap.Total())
	}
	return total
}
