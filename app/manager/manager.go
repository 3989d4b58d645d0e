package manager

import (
	"backend/insurance-platform/app/database/repository"
	"backend/insurance-platform/app/internal/runtime"
	"backend/insurance-platform/app/pkg/bcrypt"
)

type Managers struct {
	UserManager   UserManager
	UploadManager UploadManager
}

func NewManagers(res runtime.Resource, repositories *repository.Repositories) *Managers {
	bcryptHasher := bcrypt.NewBcrypt(res.Config.BcryptConfig.Cost)
	hasher := &bcryptHasher

	return &Managers{
		UserManager:   NewUserManager(res, hasher, repositories),
		UploadManager: NewUploadManager(res, res.Clients.Uploader),
	}
}
