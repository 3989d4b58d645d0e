package manager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"backend/insurance-platform/app/api/client/exception"
	"backend/insurance-platform/app/api/client/request"
	"backend/insurance-platform/app/api/client/response"
	"backend/insurance-platform/app/database/constant/role"
	"backend/insurance-platform/app/database/constant/user"
	"backend/insurance-platform/app/database/entity"
	"backend/insurance-platform/app/database/repository"
	queryUtil "backend/insurance-platform/app/database/repository/query_utils"
	"backend/insurance-platform/app/internal/runtime"
	"backend/insurance-platform/app/pkg/bcrypt"
	redisutil "backend/insurance-platform/app/pkg/redis"
	util "backend/insurance-platform/app/pkg/util"
	"backend/insurance-platform/app/pkg/util/collection"
	pagingUtil "backend/insurance-platform/app/pkg/util/paging"
)

const (
	// DefaultLockReason is recorded when an admin locks a user without
	// giving a reason.
	DefaultLockReason = "Locked by admin"

	dateOfBirthLayout = "2006-01-02"
	recentUserWindow  = 30 * 24 * time.Hour

	statsCacheKey = "users:stats"
	statsCacheTTL = 30 * time.Second
)

// sortableColumns maps the field names the listing endpoint accepts for
// sortBy to their columns. Anything outside this map is rejected.
var sortableColumns = map[string]string{
	"id":          "id",
	"email":       "email",
	"fullName":    "full_name",
	"phone":       "phone",
	"role":        "role",
	"status":      "status",
	"province":    "province",
	"district":    "district",
	"dateOfBirth": "date_of_birth",
	"isActive":    "is_active",
	"isLocked":    "is_locked",
	"lastLogin":   "last_login",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

// uniqueConstraintFields maps database unique constraints to the API
// field names reported back on conflict.
var uniqueConstraintFields = map[string]string{
	"users_email_key":        "email",
	"users_facebook_id_key":  "facebookId",
	"users_google_id_key":    "googleId",
	"users_firebase_uid_key": "firebaseUid",
	"users_apple_id_key":     "appleId",
}

type UserManager interface {
	Create(ctx context.Context, req request.CreateUserRequest) (*response.UserResponse, error)
	FindAll(ctx context.Context, req request.QueryUsersRequest) (*response.PaginationResponse[response.UserResponse], error)
	FindOne(ctx context.Context, id int64) (*response.UserResponse, error)
	Update(ctx context.Context, id int64, req request.UpdateUserRequest) (*response.UserResponse, error)
	Remove(ctx context.Context, id int64) (*response.UserSummaryResponse, error)
	SoftDelete(ctx context.Context, id int64) (*response.UserSummaryResponse, error)
	Lock(ctx context.Context, id int64, reason *string) (*response.UserSummaryResponse, error)
	Unlock(ctx context.Context, id int64) (*response.UserSummaryResponse, error)
	VerifyEmail(ctx context.Context, id int64) (*response.UserSummaryResponse, error)
	TouchLastLogin(ctx context.Context, id int64)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindBySocialLogin(ctx context.Context, provider user.SocialProvider, socialID string) (*entity.User, error)
	GetUserStats(ctx context.Context) (*response.UserStatsResponse, error)
}

type DefaultUserManager struct {
	logger         *zap.Logger
	hasher         bcrypt.Hasher
	cache          redisutil.Redis
	userRepository repository.UserRepository
}

func NewUserManager(res runtime.Resource, hasher bcrypt.Hasher, repositories *repository.Repositories) UserManager {
	return &DefaultUserManager{
		logger:         res.Logger,
		hasher:         hasher,
		cache:          res.Redis,
		userRepository: repositories.UserRepository,
	}
}

func (m *DefaultUserManager) Create(ctx context.Context, req request.CreateUserRequest) (*response.UserResponse, error) {
	u := entity.User{
		EmailVerified: util.GetOrDefault(req.EmailVerified, false),
		FacebookID:    req.FacebookID,
		GoogleID:      req.GoogleID,
		FirebaseUID:   req.FirebaseUID,
		AppleID:       req.AppleID,
		Avatar:        req.Avatar,
		FullName:      req.FullName,
		Phone:         req.Phone,
		Province:      req.Province,
		District:      req.District,
		Ward:          req.Ward,
		Address:       req.Address,
		LockReason:    req.LockReason,
		Role:          util.GetOrDefault(req.Role, role.User),
		Status:        util.GetOrDefault(req.Status, user.Active),
		IsActive:      util.GetOrDefault(req.IsActive, true),
		IsLocked:      util.GetOrDefault(req.IsLocked, false),
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		u.Email = &email
	}
	if req.Password != nil {
		hashed, err := m.hasher.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.Password = &hashed
	}
	if req.DateOfBirth != nil {
		dob, err := parseDateOfBirth(*req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		u.DateOfBirth = dob
	}

	created, err := m.userRepository.Insert(ctx, &u)
	if err != nil {
		var uv *queryUtil.UniqueViolation
		if errors.As(err, &uv) {
			return nil, m.conflictError(uv)
		}
		return nil, err
	}
	m.invalidateStats(ctx)

	resp := response.ToUserResponse(*created)
	return &resp, nil
}

func (m *DefaultUserManager) FindAll(ctx context.Context, req request.QueryUsersRequest) (*response.PaginationResponse[response.UserResponse], error) {
	req.LoadDefaultValues()

	orderBy, ok := sortableColumns[req.SortBy]
	if !ok {
		return nil, exception.NewBadRequestError(
			exception.ErrInvalidParameter,
			int(exception.ErrorCodeInvalidParameter),
			fmt.Sprintf("unsupported sortBy field: %s", req.SortBy),
		)
	}

	paging := pagingUtil.Page{
		Limit:   req.Limit,
		Offset:  (req.Page - 1) * req.Limit,
		OrderBy: orderBy,
		SortBy:  pagingUtil.SortBy(strings.ToUpper(req.SortOrder)),
	}
	search := repository.UserSearch{
		Filter: repository.UserFilter{
			Role:     req.Role,
			Status:   req.Status,
			IsActive: req.IsActive,
			IsLocked: req.IsLocked,
		},
		Search:   req.Search,
		Province: req.Province,
		District: req.District,
	}

	users, total, err := m.userRepository.FindMany(ctx, search, paging)
	if err != nil {
		return nil, err
	}

	resp := response.ToPaginationResponse(
		collection.Map(users, response.ToUserResponse),
		total, req.Page, req.Limit,
	)
	return &resp, nil
}

func (m *DefaultUserManager) FindOne(ctx context.Context, id int64) (*response.UserResponse, error) {
	found, err := m.userRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, m.notFoundError(err, id)
		}
		return nil, err
	}
	resp := response.ToUserResponse(*found)
	return &resp, nil
}

func (m *DefaultUserManager) Update(ctx context.Context, id int64, req request.UpdateUserRequest) (*response.UserResponse, error) {
	var (
		patch   entity.User
		columns []string
	)
	setString := func(column string, dst **string, value *string) {
		if value != nil {
			*dst = value
			columns = append(columns, column)
		}
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		patch.Email = &email
		columns = append(columns, "email")
	}
	setString("facebook_id", &patch.FacebookID, req.FacebookID)
	setString("google_id", &patch.GoogleID, req.GoogleID)
	setString("firebase_uid", &patch.FirebaseUID, req.FirebaseUID)
	setString("apple_id", &patch.AppleID, req.AppleID)
	setString("avatar", &patch.Avatar, req.Avatar)
	setString("full_name", &patch.FullName, req.FullName)
	setString("phone", &patch.Phone, req.Phone)
	setString("province", &patch.Province, req.Province)
	setString("district", &patch.District, req.District)
	setString("ward", &patch.Ward, req.Ward)
	setString("address", &patch.Address, req.Address)
	if req.Role != nil {
		patch.Role = *req.Role
		columns = append(columns, "role")
	}
	if req.Status != nil {
		patch.Status = *req.Status
		columns = append(columns, "status")
	}
	if req.IsActive != nil {
		patch.IsActive = *req.IsActive
		columns = append(columns, "is_active")
	}
	if req.DateOfBirth != nil {
		dob, err := parseDateOfBirth(*req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		patch.DateOfBirth = dob
		columns = append(columns, "date_of_birth")
	}

	// An empty patch changes nothing; answer with the current record.
	if len(columns) == 0 {
		return m.FindOne(ctx, id)
	}

	updated, err := m.userRepository.UpdateByID(ctx, id, &patch, columns)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, m.notFoundError(err, id)
		}
		var uv *queryUtil.UniqueViolation
		if errors.As(err, &uv) {
			return nil, m.conflictError(uv)
		}
		return nil, err
	}
	m.invalidateStats(ctx)

	resp := response.ToUserResponse(*updated)
	return &resp, nil
}

func (m *DefaultUserManager) Remove(ctx context.Context, id int64) (*response.UserSummaryResponse, error) {
	deleted, err := m.userRepository.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, m.notFoundError(err, id)
		}
		return nil, err
	}
	m.invalidateStats(ctx)

	resp := response.ToUserSummaryResponse(*deleted)
	return &resp, nil
}

// SoftDelete marks the user DELETED and inactive but keeps the row, so
// the email and social ids stay reserved.
func (m *DefaultUserManager) SoftDelete(ctx context.Context, id int64) (*response.UserSummaryResponse, error) {
	patch := entity.User{Status: user.Deleted, IsActive: false}
	updated, err := m.userRepository.UpdateByID(ctx, id, &patch, []string{"status", "is_active"})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, m.notFoundError(err, id)
		}
		return nil, err
	}
	m.invalidateStats(ctx)

	resp := response.ToUserSummaryResponse(*updated)
	resp.IsActive = &updated.IsActive
	return &resp, nil
}

func (m *DefaultUserManager) Lock(ctx context.Context, id int64, reason *string) (*response.UserSummaryResponse, error) {
	lockReason := DefaultLockReason
	if reason != nil && *reason != "" {
		lockReason = *reason
	}
	patch := entity.User{IsLocked: true, LockReason: &lockReason}
	updated, err := m.userRepository.UpdateByID(ctx, id, &patch, []string{"is_locked", "lock_reason"})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, m.notFoundError(err, id)
		}
		return nil, err
	}
	m.invalidateStats(ctx)

	resp := response.ToUserSummaryResponse(*updated)
	resp.IsLocked = &updated.IsLocked
	resp.LockReason = updated.LockReason
	return &resp, nil
}

func (m *DefaultUserManager) Unlock(ctx context.Context, id int64) (*response.UserSummaryResponse, error) {
	patch := entity.User{IsLocked: false, LockReason: nil}
	updated, err := m.userRepository.UpdateByID(ctx, id, &patch, []string{"is_locked", "lock_reason"})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, m.notFoundError(err, id)
		}
		return nil, err
	}
	m.invalidateStats(ctx)

	resp := response.ToUserSummaryResponse(*updated)
	resp.IsLocked = &updated.IsLocked
	return &resp, nil
}

func (m *DefaultUserManager) VerifyEmail(ctx context.Context, id int64) (*response.UserSummaryResponse, error) {
	patch := entity.User{EmailVerified: true}
	updated, err := m.userRepository.UpdateByID(ctx, id, &patch, []string{"email_verified"})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, m.notFoundError(err, id)
		}
		return nil, err
	}
	resp := response.ToUserSummaryResponse(*updated)
	resp.EmailVerified = &updated.EmailVerified
	return &resp, nil
}

// TouchLastLogin is best effort. A failed stamp must never break the
// caller's flow, so the error is only logged.
func (m *DefaultUserManager) TouchLastLogin(ctx context.Context, id int64) {
	if err := m.userRepository.UpdateLastLogin(ctx, id); err != nil {
		m.logger.Warn("failed to update last login", zap.Int64("user_id", id), zap.Error(err))
	}
}

// FindByEmail returns the full record including the password hash, or
// nil when no user carries the email. Internal use only.
func (m *DefaultUserManager) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	found, err := m.userRepository.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return found, nil
}

func (m *DefaultUserManager) FindBySocialLogin(ctx context.Context, provider user.SocialProvider, socialID string) (*entity.User, error) {
	column, ok := provider.Column()
	if !ok {
		return nil, exception.NewBadRequestError(
			exception.ErrInvalidParameter,
			int(exception.ErrorCodeInvalidParameter),
			fmt.Sprintf("unsupported social provider: %s", provider),
		)
	}

	found, err := m.userRepository.FindBySocialID(ctx, column, socialID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return found, nil
}

// GetUserStats issues four independent counts. They may observe slightly
// different snapshots under concurrent writes; the figures are
// informational, so a short-lived cached copy is acceptable too.
func (m *DefaultUserManager) GetUserStats(ctx context.Context) (*response.UserStatsResponse, error) {
	if m.cache != nil {
		var cached response.UserStatsResponse
		if err := m.cache.Get(ctx, statsCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	total, err := m.userRepository.Count(ctx, repository.UserFilter{})
	if err != nil {
		return nil, err
	}

	active := true
	activeCount, err := m.userRepository.Count(ctx, repository.UserFilter{IsActive: &active})
	if err != nil {
		return nil, err
	}

	recentCount, err := m.userRepository.CountCreatedSince(ctx, time.Now().Add(-recentUserWindow))
	if err != nil {
		return nil, err
	}

	locked := true
	lockedCount, err := m.userRepository.Count(ctx, repository.UserFilter{IsLocked: &locked})
	if err != nil {
		return nil, err
	}

	stats := &response.UserStatsResponse{
		TotalUsers:  total,
		ActiveUsers: activeCount,
		RecentUsers: recentCount,
		LockedUsers: lockedCount,
	}
	if m.cache != nil {
		if err := m.cache.Set(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
			m.logger.Warn("failed to cache user stats", zap.Error(err))
		}
	}
	return stats, nil
}

// invalidateStats drops the cached aggregate after a write that changes
// what the counts would report.
func (m *DefaultUserManager) invalidateStats(ctx context.Context) {
	if m.cache == nil {
		return
	}
	if err := m.cache.Delete(ctx, statsCacheKey); err != nil {
		m.logger.Warn("failed to invalidate user stats cache", zap.Error(err))
	}
}

func (m *DefaultUserManager) notFoundError(err error, id int64) error {
	return exception.NewNotFoundError(
		err,
		int(exception.ErrorCodeEntityNotFound),
		fmt.Sprintf("user with id %d not found", id),
	)
}

func (m *DefaultUserManager) conflictError(uv *queryUtil.UniqueViolation) error {
	field := "field"
	if mapped, known := uniqueConstraintFields[uv.Constraint]; known {
		field = mapped
	}
	return exception.NewConflictError(
		uv,
		int(exception.ErrorCodeConflict),
		fmt.Sprintf("%s already exists", field),
	)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func parseDateOfBirth(value string) (*time.Time, error) {
	parsed, err := time.Parse(dateOfBirthLayout, value)
	if err != nil {
		return nil, exception.NewBadRequestError(
			err,
			int(exception.ErrorCodeInvalidParameter),
			"dateOfBirth must be formatted as YYYY-MM-DD",
		)
	}
	return &parsed, nil
}
