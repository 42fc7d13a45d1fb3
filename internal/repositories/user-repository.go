package repositories

//go:generate mockgen -source=user-repository.go -destination=mocks/user_repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/infrastructure/bd"
	"pharma-order-system/pkg/constants"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/types"
)

const userTable = "users"

var userMap = map[string]string{
	"id":        "u.id",
	"userId":    "u.user_id",
	"name":      "u.name",
	"email":     "u.email",
	"role":      "u.role",
	"team":      "u.team",
	"isActive":  "u.is_active",
	"createdAt": "u.created_at",
}

var userColumns = []string{
	"u.id", "u.user_id", "u.name", "u.email", "u.password", "u.role", "u.team",
	"u.is_active", "u.last_login", "u.created_at", "u.updated_at",
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) error
	UpdateUser(ctx context.Context, user *entities.User) error
	UpdateLastLogin(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	var role string
	err := row.Scan(
		&user.ID, &user.UserID, &user.Name, &user.Email, &user.Password, &role, &user.Team,
		&user.IsActive, &user.LastLogin, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	user.Role = constants.UserRole(role)
	return &user, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	search := func(b sq.SelectBuilder) sq.SelectBuilder {
		return db.ApplySearch(b, filter.Search, "u.name", "u.email", "u.user_id")
	}

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil

	countBuilder := db.ApplyListParams(search(psql.Select("COUNT(u.id)").From(userTable+" AS u")), countFilter, userMap)
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, mapStoreError("count users", err)
	}
	if total == 0 {
		return []entities.User{}, 0, nil
	}

	baseBuilder := search(psql.Select(userColumns...).From(userTable + " AS u"))
	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("u.name ASC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, userMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapStoreError("query users", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0, filter.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) findOne(ctx context.Context, where sq.Eq) (*entities.User, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(userColumns...).From(userTable + " AS u").Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"u.id": id})
}

// FindByEmail compares lower-cased addresses; emails are stored lower-cased.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"u.email": strings.ToLower(strings.TrimSpace(email))})
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	query := `
		INSERT INTO users (user_id, name, email, password, role, team, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := r.storage.QueryRow(ctx, query,
		user.UserID, user.Name, user.Email, user.Password, string(user.Role), user.Team, user.IsActive,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return mapStoreError("insert user", err)
	}
	return nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	query := `
		UPDATE users SET name = $1, role = $2, team = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`
	err := r.storage.QueryRow(ctx, query,
		user.Name, string(user.Role), user.Team, user.IsActive, user.ID,
	).Scan(&user.UpdatedAt)
	return mapStoreError("update user", err)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uint64) error {
	_, err := r.storage.Exec(ctx, "UPDATE users SET last_login = NOW() WHERE id = $1", id)
	return mapStoreError("update last login", err)
}
