package controllers

import (
	"fmt"
	"strconv"

	"github.com/creativeyMedia/fwkantine/pkg/resp"
	"github.com/creativeyMedia/fwkantine/services"
	"github.com/creativeyMedia/fwkantine/utils"
	"github.com/gin-gonic/gin"
)

// AdminController exposes the operations only the Kantinenwart may run:
// hard deletes, price changes, sponsoring, payments and migrations.
type AdminController struct {
	Orders    *services.OrderService
	Pricing   *services.PricingService
	Sponsors  *services.SponsorService
	Payments  *services.PaymentService
	Migration *services.MigrationService
}

func NewAdminController(
	orders *services.OrderService,
	pricing *services.PricingService,
	sponsors *services.SponsorService,
	payments *services.PaymentService,
	migration *services.MigrationService,
) *AdminController {
	return &AdminController{
		Orders: orders, Pricing: pricing, Sponsors: sponsors,
		Payments: payments, Migration: migration,
	}
}

func adminActor(c *gin.Context) string {
	return fmt.Sprintf("admin:%d", utils.CurrentEmployeeID(c))
}

// DELETE /admin/orders/:id
func (ctl *AdminController) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}
	if err := ctl.Orders.Delete(uint(id), adminActor(c)); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// PUT /admin/prices
func (ctl *AdminController) UpdatePrice(c *gin.Context) {
	var req services.UpdatePriceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := ctl.Pricing.UpdatePriceSetting(&req, adminActor(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, res)
}

// GET /admin/prices/history?departmentId=&limit=
func (ctl *AdminController) PriceHistory(c *gin.Context) {
	deptID, _ := strconv.Atoi(c.DefaultQuery("departmentId", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	events, err := ctl.Pricing.PriceHistory(uint(deptID), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, events)
}

type sponsorReq struct {
	DepartmentID      uint   `json:"departmentId" binding:"required"`
	Date              string `json:"date"`
	Category          string `json:"category" binding:"required"`
	SponsorEmployeeID uint   `json:"sponsorEmployeeId" binding:"required"`
}

// POST /admin/sponsorships
func (ctl *AdminController) Sponsor(c *gin.Context) {
	var req sponsorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := ctl.Sponsors.Sponsor(req.DepartmentID, req.Date, req.Category, req.SponsorEmployeeID)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, res)
}

type recordPaymentReq struct {
	EmployeeID   uint   `json:"employeeId" binding:"required"`
	BalanceType  string `json:"balanceType" binding:"required"`
	DepartmentID uint   `json:"departmentId" binding:"required"`
}

// POST /admin/payments
func (ctl *AdminController) RecordPayment(c *gin.Context) {
	var req recordPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	var res *services.RecordPaymentRes
	err := withRetry(func() error {
		var opErr error
		res, opErr = ctl.Payments.RecordPayment(req.EmployeeID, req.BalanceType, req.DepartmentID, adminActor(c))
		return opErr
	})
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, res)
}

// GET /admin/employees/:id/payment-logs
func (ctl *AdminController) PaymentLogs(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad employee id")
		return
	}
	logs, err := ctl.Payments.PaymentLogs(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, logs)
}

type moveEmployeeReq struct {
	NewDepartmentID uint `json:"newDepartmentId" binding:"required"`
}

// PUT /admin/employees/:id/department
func (ctl *AdminController) MoveEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad employee id")
		return
	}
	var req moveEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	var res *services.MoveResult
	err = withRetry(func() error {
		var opErr error
		res, opErr = ctl.Migration.MoveEmployee(uint(id), req.NewDepartmentID)
		return opErr
	})
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, res)
}
