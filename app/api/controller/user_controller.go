package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"backend/insurance-platform/app/api/client/request"
	"backend/insurance-platform/app/api/client/response"
	"backend/insurance-platform/app/internal/runtime"
	"backend/insurance-platform/app/manager"
	echoUtil "backend/insurance-platform/app/pkg/util/echo"
)

type UserController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewUserController(managers *manager.Managers, res runtime.Resource) *UserController {
	return &UserController{
		res:      res,
		managers: managers,
	}
}

// Create godoc
//
//	@Summary		Create user
//	@Description	Create a new user; all fields optional, unique fields enforced by storage
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.CreateUserRequest	true	"User"
//	@Success		201		{object}	response.UserResponse
//	@Failure		400
//	@Failure		409
//	@Failure		500
//	@Router			/v1/users [post]
func (c *UserController) Create(ec echo.Context) error {
	ctx := ec.Request().Context()
	var req request.CreateUserRequest
	if err := echoUtil.BindAndValidate(ec, &req); err != nil {
		return ec.JSON(http.StatusBadRequest, response.ToErrorResponse(http.StatusBadRequest, "Invalid request"))
	}

	res, err := c.managers.UserManager.Create(ctx, req)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusCreated, response.ToSuccessResponse(res))
}

// FindAll godoc
//
//	@Summary		List users
//	@Description	Paginated, filtered and sorted user listing
//	@Tags			users
//	@Produce		json
//	@Param			page		query		int		false	"Page (default 1)"
//	@Param			limit		query		int		false	"Page size (default 10, max 100)"
//	@Param			search		query		string	false	"Matches email/fullName/phone"
//	@Param			role		query		string	false	"USER or ADMIN"
//	@Param			status		query		string	false	"ACTIVE, INACTIVE or DELETED"
//	@Param			isActive	query		bool	false	"Active flag"
//	@Param			isLocked	query		bool	false	"Locked flag"
//	@Param			province	query		string	false	"Province substring"
//	@Param			district	query		string	false	"District substring"
//	@Param			sortBy		query		string	false	"Field name (default createdAt)"
//	@Param			sortOrder	query		string	false	"asc or desc (default desc)"
//	@Success		200			{object}	response.PaginationResponse[response.UserResponse]
//	@Failure		400
//	@Failure		500
//	@Router			/v1/users [get]
func (c *UserController) FindAll(ec echo.Context) error {
	ctx := ec.Request().Context()
	var req request.QueryUsersRequest
	if err := echoUtil.BindAndValidate(ec, &req); err != nil {
		return ec.JSON(http.StatusBadRequest, response.ToErrorResponse(http.StatusBadRequest, "Invalid request"))
	}

	res, err := c.managers.UserManager.FindAll(ctx, req)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, res)
}

// GetStats godoc
//
//	@Summary		User statistics
//	@Description	Aggregate counts of total, active, recent and locked users
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	response.UserStatsResponse
//	@Failure		500
//	@Router			/v1/users/stats [get]
func (c *UserController) GetStats(ec echo.Context) error {
	res, err := c.managers.UserManager.GetUserStats(ec.Request().Context())
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(res))
}

// FindOne godoc
//
//	@Summary		Get user
//	@Tags			users
//	@Produce		json
//	@Param			id	path		int	true	"User id"
//	@Success		200	{object}	response.UserResponse
//	@Failure		400
//	@Failure		404
//	@Router			/v1/users/{id} [get]
func (c *UserController) FindOne(ec echo.Context) error {
	id, err := c.pathID(ec)
	if err != nil {
		return ec.JSON(http.StatusBadRequest, response.ToErrorResponse(http.StatusBadRequest, "Invalid user id"))
	}

	res, err := c.managers.UserManager.FindOne(ec.Request().Context(), id)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(res))
}

// Update godoc
//
//	@Summary		Update user
//	@Description	Sparse update; password and emailVerified are not patchable
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User id"
//	@Param			request	body		request.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	response.UserResponse
//	@Failure		400
//	@Failure		404
//	@Failure		409
//	@Router			/v1/users/{id} [patch]
func (c *UserController) Update(ec echo.Context) error {
	id, err := c.pathID(ec)
	if err != nil {
		return ec.JSON(http.StatusBadRequest, response.ToErrorResponse(http.StatusBadRequest, "Invalid user id"))
	}

	var req request.UpdateUserRequest
	if err := echoUtil.BindAndValidate(ec, &req); err != nil {
		return ec.JSON(http.StatusBadRequest, response.ToErrorResponse(http.StatusBadRequest, "Invalid request"))
	}

	res, err := c.managers.UserManager.Update(ec.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(res))
}

// Remove godoc
//
//	@Summary		Delete user
//	@Description	Hard delete; the row is gone and repeat deletes answer 404
//	@Tags			users
//	@Param			id	path	int	true	"User id"
//	@Success		204
//	@Failure		400
//	@Failure		404
//	@Router			/v1/users/{id} [delete]
func (c *UserController) Remove(ec echo.Context) error {
	id, err := c.pathID(ec)
	if err != nil {
		return ec.JSON(http.StatusBadRequest, response.ToErrorResponse(http.StatusBadRequest, "Invalid user id"))
	}

	if _, err := c.managers.UserManager.Remove(ec.Request().Context(), id); err != nil {
		return err
	}
	return ec.NoContent(http.StatusNoContent)
}

// SoftDelete godoc
//
//	@Summary		Soft delete user
//	@Description	Marks the user DELETED and inactive; the row and its unique values remain
//	@Tags			users
//	@Produce		json
//	@Param			id	path		int	true	"User id"
//	@Success		200	{object}	response.UserSummaryResponse
//	@Failure		400
//	@Failure		404
//	@Router			/v1/users/{id}/soft-delete [patch]
func (c *UserController) SoftDelete(ec echo.Context) error {
	id, err := c.pathID(ec)
	if err != nil {
		return ec.JSON(http.StatusBadRequest, response.ToErrorResponse(http.StatusBadRequest, "Invalid user id"))
	}

	res, err := c.managers.UserManager.SoftDelete(ec.Request().Context(), id)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(res))
}

// Lock godoc
//
//	@Summary		Lock user
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User id"
//	@Param			request	body		request.LockUserRequest	false	"Optional reason"
//	@Success		200		{object}	response.UserSummaryResponse
//	@Failure		400
//	@Failure		404
//	@Router			/v1/users/{id}/lock [patch]
func (c *UserController) Lock(ec echo.Context) error {
	id, err := c.pathID(ec)
	if err != nil {
		return ec.JSON(http.StatusBadRequest, response.ToErrorResponse(http.StatusBadRequest, "Invalid user id"))
	}

	var req request.LockUserRequest
	if err := echoUtil.BindAndValidate(ec, &req); err != nil {
		return ec.JSON(http.StatusBadRequest, response.ToErrorResponse(http.StatusBadRequest, "Invalid request"))
	}

	res, err := c.managers.UserManager.Lock(ec.Request().Context(), id, req.Reason)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(res))
}

// Unlock godoc
//
//	@Summary		Unlock user
//	@Tags			users
//	@Produce		json
//	@Param			id	path		int	true	"User id"
//	@Success		200	{object}	response.UserSummaryResponse
//	@Failure		400
//	@Failure		404
//	@Router			/v1/users/{id}/unlock [patch]
func (c *UserController) Unlock(ec echo.Context) error {
	id, err := c.pathID(ec)
	if err != nil {
		return ec.JSON(http.StatusBadRequest, response.ToErrorResponse(http.StatusBadRequest, "Invalid user id"))
	}

	res, err := c.managers.UserManager.Unlock(ec.Request().Context(), id)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(res))
}

// VerifyEmail godoc
//
//	@Summary		Verify user email
//	@Tags			users
//	@Produce		json
//	@Param			id	path		int	true	"User id"
//	@Success		200	{object}	response.UserSummaryResponse
//	@Failure		400
//	@Failure		404
//	@Router			/v1/users/{id}/verify-email [patch]
func (c *UserController) VerifyEmail(ec echo.Context) error {
	id, err := c.pathID(ec)
	if err != nil {
		return ec.JSON(http.StatusBadRequest, response.ToErrorResponse(http.StatusBadRequest, "Invalid user id"))
	}

	res, err := c.managers.UserManager.VerifyEmail(ec.Request().Context(), id)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(res))
}

func (c *UserController) pathID(ec echo.Context) (int64, error) {
	return strconv.ParseInt(ec.Param("id"), 10, 64)
}
