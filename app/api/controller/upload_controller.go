package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backend/insurance-platform/app/api/client/response"
	"backend/insurance-platform/app/internal/runtime"
	"backend/insurance-platform/app/manager"
)

type UploadController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewUploadController(managers *manager.Managers, res runtime.Resource) *UploadController {
	return &UploadController{
		res:      res,
		managers: managers,
	}
}

// Upload godoc
//
//	@Summary		Upload image
//	@Description	Accepts jpg, jpeg, png, gif or webp and returns the hosted URL
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image file"
//	@Success		201		{object}	response.UploadResponse
//	@Failure		400
//	@Failure		500
//	@Router			/v1/upload [post]
func (c *UploadController) Upload(ec echo.Context) error {
	fileHeader, err := ec.FormFile("file")
	if err != nil {
		return ec.JSON(http.StatusBadRequest, response.ToErrorResponse(http.StatusBadRequest, "Missing file"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.res.Logger.Error("Failed to open uploaded file", zap.Error(err))
		return ec.JSON(http.StatusBadRequest, response.ToErrorResponse(http.StatusBadRequest, "Unreadable file"))
	}
	defer src.Close()

	res, err := c.managers.UploadManager.Upload(ec.Request().Context(), src, fileHeader.Filename)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusCreated, response.ToSuccessResponse(res))
}
