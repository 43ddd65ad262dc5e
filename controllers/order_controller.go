package controllers

import (
	"fmt"
	"strconv"

	"github.com/creativeyMedia/fwkantine/pkg/resp"
	"github.com/creativeyMedia/fwkantine/services"
	"github.com/creativeyMedia/fwkantine/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders
func (ctl *OrderController) Submit(c *gin.Context) {
	var req services.SubmitOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ctl.Orders.Submit(utils.CurrentEmployeeID(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, order)
}

// DELETE /orders/:id  (cancel, the record stays)
func (ctl *OrderController) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}
	actor := fmt.Sprintf("employee:%d", utils.CurrentEmployeeID(c))
	if err := ctl.Orders.Cancel(uint(id), actor); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}
	detail, err := ctl.Orders.DetailForEmployee(utils.CurrentEmployeeID(c), uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, detail)
}

// GET /profile/orders
func (ctl *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := ctl.Orders.ListForEmployee(utils.CurrentEmployeeID(c), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, items)
}
