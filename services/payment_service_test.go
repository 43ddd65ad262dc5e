package services

import (
	"testing"

	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentClearsAndLogs(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 2, 1, false, 0, false))
	require.NoError(t, err)

	res, err := env.payments.RecordPayment(env.empA, entity.BalanceBreakfast, env.dept1, "admin:1")
	require.NoError(t, err)
	requireDec(t, "1.15", res.AmountCleared)

	emp := env.employee(t, env.empA)
	requireDec(t, "0", emp.BreakfastBalance)

	logs, err := env.payments.PaymentLogs(env.empA)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	requireDec(t, "1.15", logs[0].Amount)
	require.Equal(t, entity.BalanceBreakfast, logs[0].BalanceType)
	require.Equal(t, "admin:1", logs[0].AdminName)
}

func TestPaymentLogsNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.Submit(env.empA, env.breakfastReq(env.dept1, 2, 0, false, 0, false))
	require.NoError(t, err)
	_, err = env.payments.RecordPayment(env.empA, entity.BalanceBreakfast, env.dept1, "admin:1")
	require.NoError(t, err)

	_, err = env.orders.Submit(env.empA, &SubmitOrderReq{
		DepartmentID: env.dept1,
		OrderType:    entity.OrderDrinks,
		Items:        []ItemLine{{MenuItemID: env.cola, Qty: 1}},
	})
	require.NoError(t, err)
	_, err = env.payments.RecordPayment(env.empA, entity.BalanceDrinksSweets, env.dept1, "admin:2")
	require.NoError(t, err)

	logs, err := env.payments.PaymentLogs(env.empA)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Equal(t, entity.BalanceDrinksSweets, logs[0].BalanceType)
	require.Equal(t, entity.BalanceBreakfast, logs[1].BalanceType)
}

func TestRecordPaymentOnEmptyBalance(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.payments.RecordPayment(env.empA, entity.BalanceBreakfast, env.dept1, "admin:1")
	require.NoError(t, err)
	requireDec(t, "0", res.AmountCleared)

	// still logged: the clearing happened, for zero
	logs, err := env.payments.PaymentLogs(env.empA)
	require.NoError(t, err)
	require.Len(t, logs, 1)
}

func TestRecordPaymentGuestSubaccount(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.Submit(env.empC, env.breakfastReq(env.dept1, 2, 0, false, 0, false))
	require.NoError(t, err)

	res, err := env.payments.RecordPayment(env.empC, entity.BalanceBreakfast, env.dept1, "admin:1")
	require.NoError(t, err)
	requireDec(t, "0.75", res.AmountCleared)

	snap, err := env.ledger.BalancesOf(env.db, env.empC)
	require.NoError(t, err)
	requireDec(t, "0", snap.Total())
}
