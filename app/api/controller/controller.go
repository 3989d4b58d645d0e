package controller

import (
	"backend/insurance-platform/app/internal/runtime"
	"backend/insurance-platform/app/manager"
)

type Controllers struct {
	UserController   *UserController
	UploadController *UploadController
	HealthController *HealthController
}

func NewControllers(managers *manager.Managers, res runtime.Resource) *Controllers {
	return &Controllers{
		UserController:   NewUserController(managers, res),
		UploadController: NewUploadController(managers, res),
		HealthController: NewHealthController(managers, res),
	}
}
