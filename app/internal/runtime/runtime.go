package runtime

import (
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"backend/insurance-platform/app/internal/config"
	"backend/insurance-platform/app/pkg/cloudinary"
	"backend/insurance-platform/app/pkg/db"
	"backend/insurance-platform/app/pkg/redis"
)

// Clients holds the external collaborators the application talks to.
type Clients struct {
	Uploader cloudinary.Uploader
}

type Resource struct {
	Config     config.ApplicationConfig
	Logger     *zap.Logger
	DB         *db.DB
	Redis      redis.Redis
	HttpClient *resty.Client
	Clients    Clients
}
