package controllers

import (
	"strconv"

	"github.com/creativeyMedia/fwkantine/pkg/resp"
	"github.com/creativeyMedia/fwkantine/services"
	"github.com/creativeyMedia/fwkantine/utils"
	"github.com/gin-gonic/gin"
)

type BalanceController struct {
	Ledger  *services.LedgerService
	Summary *services.SummaryService
}

func NewBalanceController(ledger *services.LedgerService, summary *services.SummaryService) *BalanceController {
	return &BalanceController{Ledger: ledger, Summary: summary}
}

// GET /employees/:id/balances (self, or any employee for admins)
func (ctl *BalanceController) Balances(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad employee id")
		return
	}
	if utils.CurrentRole(c) != "admin" && utils.CurrentEmployeeID(c) != uint(id) {
		resp.Forbidden(c, "forbidden")
		return
	}
	snap, err := ctl.Ledger.BalancesOf(ctl.Ledger.DB, uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, snap)
}

// GET /departments/:id/summary?date=
func (ctl *BalanceController) DailySummary(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad department id")
		return
	}
	summary, err := ctl.Summary.DailySummary(uint(id), c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, summary)
}
