package controllers

import (
	"github.com/creativeyMedia/fwkantine/pkg/resp"
	"github.com/creativeyMedia/fwkantine/services"
	"github.com/creativeyMedia/fwkantine/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginReq struct {
	Email string `json:"email" binding:"required,email"`
	PIN   string `json:"pin" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, emp, err := ctl.Auth.Login(req.Email, req.PIN)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "employee": emp})
}

func (ctl *AuthController) Me(c *gin.Context) {
	emp, err := ctl.Auth.GetProfile(utils.CurrentEmployeeID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, emp)
}

type createEmployeeReq struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PIN          string `json:"pin" binding:"required,min=4"`
	DepartmentID uint   `json:"departmentId"`
	Role         string `json:"role"`
}

func (ctl *AuthController) CreateEmployee(c *gin.Context) {
	var req createEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	emp, err := ctl.Auth.CreateEmployee(req.Name, req.Email, req.PIN, req.DepartmentID, req.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, emp)
}
