package core

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mdobak/go-xerrors"
	"github.com/realworld-apps/conduit/internal/auth"
	"github.com/realworld-apps/conduit/internal/utils/databaseutils"
)

var (
	ErrDuplicateEmail    = xerrors.Message("Duplicate email")
	ErrDuplicateUsername = xerrors.Message("Duplicate username")
	NoRecordFound        = xerrors.Message("No record found")
)

func scanUser(rows *sql.Rows) (*auth.User, error) {
	user := &auth.User{}
	if err := rows.Scan(
		&user.ID,
		&user.PID,
		&user.Email,
		&user.Username,
		&user.Password,
		&user.Bio,
		&user.Image,
	); err != nil {
		return nil, xerrors.New(err)
	}
	return user, nil
}

func (c *Core) CreateUser(ctx context.Context, user *auth.User) error {
	const insertSQL = `
		INSERT INTO users (pid, username, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	args := []any{user.PID, user.Username, user.Email, user.Password}
	_, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, insertSQL, func(rows *sql.Rows) (*auth.User, error) {
		if err := rows.Scan(&user.ID); err != nil {
			return nil, xerrors.New(err)
		}
		return user, nil
	}, args...)

	if err != nil {
		switch {
		case strings.Contains(err.Error(), `unique constraint "users_email_key"`):
			return xerrors.New(ErrDuplicateEmail)
		case strings.Contains(err.Error(), `unique constraint "users_username_key"`):
			return xerrors.New(ErrDuplicateUsername)
		default:
			return xerrors.New(err)
		}
	}

	return nil
}

func (c *Core) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	const selectSQL = `
		SELECT id, pid, email, username, password, bio, image
		FROM users
		WHERE email = $1
	`

	return c.getSingleUser(ctx, selectSQL, email)
}

func (c *Core) GetUserByUsername(ctx context.Context, username string) (*auth.User, error) {
	const selectSQL = `
		SELECT id, pid, email, username, password, bio, image
		FROM users
		WHERE username = $1
	`

	return c.getSingleUser(ctx, selectSQL, username)
}

func (c *Core) GetUserByPID(ctx context.Context, pid string) (*auth.User, error) {
	const selectSQL = `
		SELECT id, pid, email, username, password, bio, image
		FROM users
		WHERE pid = $1
	`

	return c.getSingleUser(ctx, selectSQL, pid)
}

func (c *Core) GetUserByID(ctx context.Context, id int64) (*auth.User, error) {
	const selectSQL = `
		SELECT id, pid, email, username, password, bio, image
		FROM users
		WHERE id = $1
	`

	return c.getSingleUser(ctx, selectSQL, id)
}

func (c *Core) getSingleUser(ctx context.Context, query string, arg any) (*auth.User, error) {
	user, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, scanUser, arg)

	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(NoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}

	return user, nil
}

// GetUsersByIdList fetches all users with the given ids in a single query.
func (c *Core) GetUsersByIdList(ctx context.Context, userIdList []int64) ([]*auth.User, error) {
	if len(userIdList) == 0 {
		return []*auth.User{}, nil
	}

	placeholders, args := inClause(userIdList)
	query := fmt.Sprintf(`
		SELECT id, pid, email, username, password, bio, image
		FROM users
		WHERE id IN (%s)
	`, strings.Join(placeholders, ", "))

	queryResultList, err := databaseutils.ExecuteQuery(c.sqlTemplate, ctx, query, scanUser, args...)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return queryResultList, nil
}

func inClause[T any](list []T) (placeholders []string, args []any) {
	placeholders = make([]string, len(list))
	args = make([]any, len(list))
	for i, id := range list {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	return placeholders, args
}
