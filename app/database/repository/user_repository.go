package repository

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"backend/insurance-platform/app/database/constant/role"
	"backend/insurance-platform/app/database/constant/user"
	"backend/insurance-platform/app/database/entity"
	util "backend/insurance-platform/app/database/repository/query_utils"
	"backend/insurance-platform/app/internal/runtime"
	pagingUtil "backend/insurance-platform/app/pkg/util/paging"
)

// UserFilter carries the exact-match conditions of a user listing or count.
// Nil fields are not part of the query.
type UserFilter struct {
	Role     *role.Role   `mapstructure:"role,omitempty"`
	Status   *user.Status `mapstructure:"status,omitempty"`
	IsActive *bool        `mapstructure:"is_active,omitempty"`
	IsLocked *bool        `mapstructure:"is_locked,omitempty"`
}

// UserSearch combines exact-match filters with the free-text and
// partial-match conditions of the listing endpoint.
type UserSearch struct {
	Filter   UserFilter
	Search   string
	Province string
	District string
}

type UserRepository interface {
	Insert(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindBySocialID(ctx context.Context, column string, socialID string) (*entity.User, error)
	FindMany(ctx context.Context, search UserSearch, paging pagingUtil.Page) ([]entity.User, int, error)
	UpdateByID(ctx context.Context, id int64, user *entity.User, columns []string) (*entity.User, error)
	DeleteByID(ctx context.Context, id int64) (*entity.User, error)
	UpdateLastLogin(ctx context.Context, id int64) error
	Count(ctx context.Context, filter UserFilter) (int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}

type DefaultUserRepository struct {
	res runtime.Resource
}

func NewUserRepository(res runtime.Resource) UserRepository {
	return &DefaultUserRepository{res: res}
}

func (r DefaultUserRepository) Insert(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := r.res.DB.
		NewInsert().
		Model(user).
		Returning("*").
		Scan(ctx, user)
	if err != nil {
		return nil, util.WrapUniqueViolation(err)
	}
	return user, nil
}

func (r DefaultUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	u := new(entity.User)
	err := r.res.DB.
		ReplicaNewSelect().
		Model(u).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r DefaultUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := new(entity.User)
	err := r.res.DB.
		ReplicaNewSelect().
		Model(u).
		Where("email = ?", email).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r DefaultUserRepository) FindBySocialID(ctx context.Context, column string, socialID string) (*entity.User, error) {
	u := new(entity.User)
	err := r.res.DB.
		ReplicaNewSelect().
		Model(u).
		Where("? = ?", bun.Ident(column), socialID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r DefaultUserRepository) FindMany(ctx context.Context, search UserSearch, paging pagingUtil.Page) (entities []entity.User, total int, err error) {
	query := r.res.DB.
		ReplicaNewSelect().
		Model(&entities)

	query, err = util.ApplyConditions(query, search.Filter, "")
	if err != nil {
		return nil, 0, err
	}

	if search.Search != "" {
		pattern := "%" + search.Search + "%"
		query = query.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				WhereOr("email ILIKE ?", pattern).
				WhereOr("full_name ILIKE ?", pattern).
				WhereOr("phone LIKE ?", pattern)
		})
	}
	if search.Province != "" {
		query = query.Where("province ILIKE ?", "%"+search.Province+"%")
	}
	if search.District != "" {
		query = query.Where("district ILIKE ?", "%"+search.District+"%")
	}

	query = query.
		Offset(paging.Offset).
		Limit(paging.Limit).
		OrderExpr("? "+string(paging.SortBy), bun.Ident(paging.OrderBy))

	total, err = query.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, util.SkipNotFound(err)
	}
	return entities, total, nil
}

func (r DefaultUserRepository) UpdateByID(ctx context.Context, id int64, user *entity.User, columns []string) (*entity.User, error) {
	now := time.Now()
	user.UpdatedAt = &now

	var u entity.User
	err := r.res.DB.
		NewUpdate().
		Model(user).
		Column(append(columns, "updated_at")...).
		Where("id = ?", id).
		Returning("*").
		Scan(ctx, &u)
	if err != nil {
		return nil, util.WrapUniqueViolation(err)
	}
	return &u, nil
}

func (r DefaultUserRepository) DeleteByID(ctx context.Context, id int64) (*entity.User, error) {
	var u entity.User
	err := r.res.DB.
		NewDelete().
		Model(&u).
		Where("id = ?", id).
		Returning("*").
		Scan(ctx, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r DefaultUserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	_, err := r.res.DB.
		NewUpdate().
		Model((*entity.User)(nil)).
		Set("last_login = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r DefaultUserRepository) Count(ctx context.Context, filter UserFilter) (int, error) {
	query := r.res.DB.
		ReplicaNewSelect().
		Model((*entity.User)(nil))

	query, err := util.ApplyConditions(query, filter, "")
	if err != nil {
		return 0, err
	}
	return query.Count(ctx)
}

func (r DefaultUserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	return r.res.DB.
		ReplicaNewSelect().
		Model((*entity.User)(nil)).
		Where("created_at >= ?", since).
		Count(ctx)
}
