package controllers

import (
	"strconv"

	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/creativeyMedia/fwkantine/pkg/resp"
	"github.com/creativeyMedia/fwkantine/repository"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MenuController is plain catalog CRUD. Price changes for ledger-priced
// components (lunch/egg/coffee/rolls) do NOT go through here; they go
// through the admin price endpoint so the recalculation runs.
type MenuController struct {
	Repo *repository.MenuRepository
}

func NewMenuController(repo *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: repo}
}

// GET /menu?departmentId=
func (ctl *MenuController) Catalog(c *gin.Context) {
	deptID, _ := strconv.Atoi(c.DefaultQuery("departmentId", "0"))

	varieties, err := ctl.Repo.ListRollVarieties(ctl.Repo.DB)
	if err != nil {
		writeError(c, err)
		return
	}
	toppings, err := ctl.Repo.ListToppings()
	if err != nil {
		writeError(c, err)
		return
	}
	items, err := ctl.Repo.ListMenuItems(uint(deptID), "")
	if err != nil {
		writeError(c, err)
		return
	}
	var settings *entity.DepartmentSettings
	if deptID != 0 {
		if s, err := ctl.Repo.GetSettings(ctl.Repo.DB, uint(deptID)); err == nil {
			settings = s
		}
	}
	resp.OK(c, gin.H{
		"rollVarieties": varieties,
		"toppings":      toppings,
		"items":         items,
		"settings":      settings,
	})
}

type menuItemReq struct {
	DepartmentID uint   `json:"departmentId" binding:"required"`
	Kind         string `json:"kind" binding:"required,oneof=drinks sweets"`
	Name         string `json:"name" binding:"required"`
	Price        string `json:"price" binding:"required"`
}

// POST /admin/menu/items
func (ctl *MenuController) CreateItem(c *gin.Context) {
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		resp.BadRequest(c, "bad price")
		return
	}
	item := &entity.MenuItem{
		DepartmentID: req.DepartmentID,
		Kind:         req.Kind,
		Name:         req.Name,
		Price:        price,
	}
	if err := ctl.Repo.CreateMenuItem(item); err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, item)
}

// DELETE /admin/menu/items/:id
func (ctl *MenuController) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad item id")
		return
	}
	if err := ctl.Repo.DeleteMenuItem(uint(id)); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

type toppingReq struct {
	Name string `json:"name" binding:"required"`
}

// POST /admin/menu/toppings
func (ctl *MenuController) CreateTopping(c *gin.Context) {
	var req toppingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t := &entity.Topping{Name: req.Name}
	if err := ctl.Repo.CreateTopping(t); err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, t)
}
