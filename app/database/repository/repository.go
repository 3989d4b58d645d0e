package repository

import (
	"backend/insurance-platform/app/internal/runtime"
)

type Repositories struct {
	UserRepository UserRepository
}

func NewRepositories(res runtime.Resource) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(res),
	}
}
