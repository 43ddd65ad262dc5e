package services

import (
	"testing"

	"github.com/creativeyMedia/fwkantine/apperr"
	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/stretchr/testify/require"
)

func TestSubmitBreakfastWorkedExample(t *testing.T) {
	env := newTestEnv(t)

	// 2 white + 1 seeded halves, 3 toppings, no lunch:
	// 2*0.375 + 1*0.40 = 1.15
	order, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 2, 1, false, 0, false))
	require.NoError(t, err)
	requireDec(t, "1.15", order.RecordedCost)
	requireDec(t, "1.15", order.RollsCost)

	emp := env.employee(t, env.empA)
	requireDec(t, "1.15", emp.BreakfastBalance)
}

func TestSubmitBreakfastWithAddons(t *testing.T) {
	env := newTestEnv(t)

	// rolls 1.15 + lunch 4.00 + 2 eggs 1.00 + coffee 1.00 = 7.15
	order, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 2, 1, true, 2, true))
	require.NoError(t, err)
	requireDec(t, "1.15", order.RollsCost)
	requireDec(t, "1.00", order.EggsCost)
	requireDec(t, "1.00", order.CoffeeCost)
	requireDec(t, "4.00", order.LunchCost)
	requireDec(t, "7.15", order.RecordedCost)
}

func TestSubmitValidation(t *testing.T) {
	env := newTestEnv(t)

	// halves don't add up
	req := env.breakfastReq(env.dept1, 2, 1, false, 0, false)
	req.Breakfast.WhiteHalves = 3
	_, err := env.orders.Submit(env.empA, req)
	require.ErrorIs(t, err, apperr.ErrValidation)

	// toppings count mismatch
	req = env.breakfastReq(env.dept1, 2, 1, false, 0, false)
	req.Breakfast.ToppingIDs = req.Breakfast.ToppingIDs[:2]
	_, err = env.orders.Submit(env.empA, req)
	require.ErrorIs(t, err, apperr.ErrValidation)

	// negative egg count
	req = env.breakfastReq(env.dept1, 2, 1, false, -1, false)
	_, err = env.orders.Submit(env.empA, req)
	require.ErrorIs(t, err, apperr.ErrValidation)

	// negative item quantity
	_, err = env.orders.Submit(env.empA, &SubmitOrderReq{
		DepartmentID: env.dept1,
		OrderType:    entity.OrderDrinks,
		Items:        []ItemLine{{MenuItemID: env.cola, Qty: -2}},
	})
	require.ErrorIs(t, err, apperr.ErrValidation)

	// nothing charged by any of it
	emp := env.employee(t, env.empA)
	requireDec(t, "0", emp.BreakfastBalance)
	requireDec(t, "0", emp.DrinksSweetsBalance)
}

func TestSecondBreakfastSubmissionEdits(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 2, 1, false, 0, false))
	require.NoError(t, err)

	second, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 4, 0, true, 0, false))
	require.NoError(t, err)

	// same record, new payload
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 4, second.WhiteHalves)
	requireDec(t, "5.50", second.RecordedCost) // 4*0.375 + 4.00

	var count int64
	env.db.Model(&entity.Order{}).
		Where("employee_id = ? AND is_cancelled = ?", env.empA, false).
		Count(&count)
	require.EqualValues(t, 1, count)

	// balance reflects only the second content
	emp := env.employee(t, env.empA)
	requireDec(t, "5.50", emp.BreakfastBalance)
}

func TestCancelReversesRecordedCost(t *testing.T) {
	env := newTestEnv(t)

	order, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 2, 1, false, 0, false))
	require.NoError(t, err)

	require.NoError(t, env.orders.Cancel(order.ID, "employee:1"))

	emp := env.employee(t, env.empA)
	requireDec(t, "0", emp.BreakfastBalance)

	got := env.order(t, order.ID)
	require.True(t, got.IsCancelled)
	require.NotNil(t, got.CancelledAt)
	requireDec(t, "1.15", got.RecordedCost) // audit: what was last charged

	// cancelling again is a distinct no-op condition
	err = env.orders.Cancel(order.ID, "employee:1")
	require.ErrorIs(t, err, apperr.ErrAlreadyCancelled)

	err = env.orders.Cancel(99999, "employee:1")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCancelledDayAllowsFreshBreakfast(t *testing.T) {
	env := newTestEnv(t)

	order, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 2, 1, false, 0, false))
	require.NoError(t, err)
	require.NoError(t, env.orders.Cancel(order.ID, "employee:1"))

	fresh, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 0, 2, false, 0, false))
	require.NoError(t, err)
	require.NotEqual(t, order.ID, fresh.ID)
	requireDec(t, "0.80", fresh.RecordedCost)

	emp := env.employee(t, env.empA)
	requireDec(t, "0.80", emp.BreakfastBalance)
}

func TestAdminDeleteRemovesRecord(t *testing.T) {
	env := newTestEnv(t)

	order, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 2, 1, false, 0, false))
	require.NoError(t, err)

	require.NoError(t, env.orders.Delete(order.ID, "admin:1"))

	emp := env.employee(t, env.empA)
	requireDec(t, "0", emp.BreakfastBalance)

	var count int64
	env.db.Unscoped().Model(&entity.Order{}).Where("id = ?", order.ID).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestDeleteCancelledOrderDoesNotReverseTwice(t *testing.T) {
	env := newTestEnv(t)

	order, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 2, 1, false, 0, false))
	require.NoError(t, err)
	require.NoError(t, env.orders.Cancel(order.ID, "employee:1"))
	require.NoError(t, env.orders.Delete(order.ID, "admin:1"))

	emp := env.employee(t, env.empA)
	requireDec(t, "0", emp.BreakfastBalance)
}

func TestSubmitDrinksOrder(t *testing.T) {
	env := newTestEnv(t)

	order, err := env.orders.Submit(env.empA, &SubmitOrderReq{
		DepartmentID: env.dept1,
		OrderType:    entity.OrderDrinks,
		Items:        []ItemLine{{MenuItemID: env.cola, Qty: 3}},
	})
	require.NoError(t, err)
	requireDec(t, "3.60", order.RecordedCost)

	emp := env.employee(t, env.empA)
	requireDec(t, "3.60", emp.DrinksSweetsBalance)
	requireDec(t, "0", emp.BreakfastBalance)
}

func TestGuestOrderLandsOnSubaccount(t *testing.T) {
	env := newTestEnv(t)

	// Clara (home dept2) orders breakfast in dept1
	_, err := env.orders.Submit(env.empC, env.breakfastReq(env.dept1, 2, 0, false, 0, false))
	require.NoError(t, err)

	snap, err := env.ledger.BalancesOf(env.db, env.empC)
	require.NoError(t, err)
	requireDec(t, "0", snap.BreakfastBalance)
	require.Len(t, snap.Subaccounts, 1)
	requireDec(t, "0.75", snap.Subaccounts[0].BreakfastBalance)
}

// Conservation: the balance always equals the recorded cost of the
// currently active orders minus recorded payments.
func TestBalanceConservation(t *testing.T) {
	env := newTestEnv(t)

	o1, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 2, 1, false, 0, false))
	require.NoError(t, err)
	_, err = env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 1, 1, true, 1, false)) // edits o1
	require.NoError(t, err)

	_, err = env.orders.Submit(env.empA, &SubmitOrderReq{
		DepartmentID: env.dept1,
		OrderType:    entity.OrderSweets,
		Items:        []ItemLine{{MenuItemID: env.cake, Qty: 1}},
	})
	require.NoError(t, err)

	res, err := env.payments.RecordPayment(env.empA, entity.BalanceDrinksSweets, env.dept1, "admin:1")
	require.NoError(t, err)
	requireDec(t, "2.50", res.AmountCleared)

	// active orders: edited breakfast 0.375+0.40+4.00+0.50 = 5.275
	got := env.order(t, o1.ID)
	requireDec(t, "5.275", got.RecordedCost)

	emp := env.employee(t, env.empA)
	requireDec(t, "5.275", emp.BreakfastBalance)
	requireDec(t, "0", emp.DrinksSweetsBalance)
}
