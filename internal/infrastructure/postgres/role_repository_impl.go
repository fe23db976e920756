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

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) Save(ctx context.Context, role *entity.Role) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO roles (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = EXCLUDED.updated_at
	`, role.ID().String(), role.Name().String(), role.CreatedAt(), role.UpdatedAt())
	if isUniqueViolation(err) {
		return domain.Conflictf("role %q already exists", role.Name().String())
	}
	return err
}

func (r *RoleRepository) FindByID(ctx context.Context, id vo.RoleID) (*entity.Role, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM roles WHERE id = $1`, id.String())
	role, err := scanRole(row)
	if isNoRows(err) {
		return nil, domain.NotFoundf("role %s", id.String())
	}
	return role, err
}

func (r *RoleRepository) FindByName(ctx context.Context, name vo.RoleName) (*entity.Role, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM roles WHERE name = $1`, name.String())
	role, err := scanRole(row)
	if isNoRows(err) {
		return nil, domain.NotFoundf("role %q", name.String())
	}
	return role, err
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]*entity.Role, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at, updated_at FROM roles ORDER BY name`)
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

func scanRole(row pgx.Row) (*entity.Role, error) {
	var (
		id, name             string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	roleID, err := vo.NewRoleID(id)
	if err != nil {
		return nil, fmt.Errorf("corrupt role row: %w", err)
	}
	roleName, err := vo.NewRoleName(name)
	if err != nil {
		return nil, fmt.Errorf("corrupt role row %s: %w", id, err)
	}
	return entity.RehydrateRole(roleID, roleName, createdAt, updatedAt), nil
}

var _ repository.RoleRepository = (*RoleRepository)(nil)
