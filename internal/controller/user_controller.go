package controller

import (
	"errors"
	"net/http"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
	"github.com/Shamanthsheni/SmartCareerAI/internal/service"
	"github.com/Shamanthsheni/SmartCareerAI/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Service: svc}
}

// @Summary 获取用户资料
// @Tags 用户
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} model.User
// @Failure 404 {object} util.Response
// @Router /user/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.Service.GetUser(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// @Summary 创建用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param body body model.InsertUser true "用户信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var insert model.InsertUser
	if err := ctx.ShouldBindJSON(&insert); err != nil {
		util.BadRequest(ctx, util.FormatValidationError(err).Error())
		return
	}

	user, err := c.Service.Register(insert)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, user)
}

// @Summary 更新用户资料
// @Description 部分更新，未提供的字段保持不变
// @Tags 用户
// @Accept json
// @Produce json
// @Param id path string true "用户ID"
// @Param body body service.UpdateUserRequest true "更新内容"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /user/{id} [patch]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req service.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.FormatValidationError(err).Error())
		return
	}

	user, err := c.Service.UpdateUser(ctx.Param("id"), req)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, user)
}
