package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-course-marketplace/internal/domain"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/internal/domain/repository"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const selectUser = `
	SELECT id, email, password, name, avatar_url, status, created_at, updated_at
	FROM users
`

// Save upserts the user row and replaces its role links in one transaction.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	s := u.Snapshot()
	var avatar *string
	if s.AvatarURL != nil {
		v := s.AvatarURL.String()
		avatar = &v
	}

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO users (id, email, password, name, avatar_url, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE SET
				email = EXCLUDED.email,
				password = EXCLUDED.password,
				name = EXCLUDED.name,
				avatar_url = EXCLUDED.avatar_url,
				status = EXCLUDED.status,
				updated_at = EXCLUDED.updated_at
		`, s.ID.String(), s.Email.String(), s.PasswordHash.String(), s.Name.String(), avatar,
			s.Status.Int(), s.CreatedAt, s.UpdatedAt); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, s.ID.String()); err != nil {
			return err
		}
		for _, role := range s.Roles {
			if _, err := tx.Exec(ctx, `
				INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)
			`, s.ID.String(), role.ID().String()); err != nil {
				return err
			}
		}
		return nil
	})
	if isUniqueViolation(err) {
		return domain.Conflictf("user with email %q already exists", s.Email.String())
	}
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id vo.UserID) (*entity.User, error) {
	return r.findOne(ctx, selectUser+` WHERE id = $1`, id.String())
}

func (r *UserRepository) FindByEmail(ctx context.Context, email vo.UserEmail) (*entity.User, error) {
	return r.findOne(ctx, selectUser+` WHERE email = $1`, email.String())
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg string) (*entity.User, error) {
	var (
		id, email, password, name string
		avatar                    *string
		status                    int
		createdAt, updatedAt      time.Time
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(&id, &email, &password, &name, &avatar, &status, &createdAt, &updatedAt)
	if isNoRows(err) {
		return nil, domain.NotFoundf("user %s", arg)
	}
	if err != nil {
		return nil, err
	}

	snap, err := userSnapshot(id, email, password, name, avatar, status)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row %s: %w", id, err)
	}
	snap.CreatedAt, snap.UpdatedAt = createdAt, updatedAt

	snap.Roles, err = r.rolesOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return entity.RehydrateUser(snap), nil
}

func (r *UserRepository) rolesOf(ctx context.Context, userID string) ([]*entity.Role, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.name, r.created_at, r.updated_at
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*entity.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func userSnapshot(id, email, password, name string, avatar *string, status int) (entity.UserSnapshot, error) {
	var s entity.UserSnapshot
	var err error
	if s.ID, err = vo.NewUserID(id); err != nil {
		return s, err
	}
	if s.Email, err = vo.NewUserEmail(email); err != nil {
		return s, err
	}
	if s.PasswordHash, err = vo.NewUserPasswordHash(password); err != nil {
		return s, err
	}
	if s.Name, err = vo.NewUserName(name); err != nil {
		return s, err
	}
	if avatar != nil {
		a, err := vo.NewUserAvatarURL(*avatar)
		if err != nil {
			return s, err
		}
		s.AvatarURL = &a
	}
	if s.Status, err = vo.NewUserStatus(status); err != nil {
		return s, err
	}
	return s, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
