package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bloghub/internal/common"
	"github.com/dmitrijs2005/bloghub/internal/dbx"
	"github.com/dmitrijs2005/bloghub/internal/server/models"
)

const selectAccount = `
SELECT u.id, u.name, u.nickname, u.password, u.about, u.profile_img_url, u.member_since,
       (SELECT COUNT(*) FROM followers f WHERE f.user_id = u.id)     AS followers,
       (SELECT COUNT(*) FROM followers f WHERE f.follower_id = u.id) AS following
  FROM users u`

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var (
		a        models.Account
		about    sql.NullString
		imageURL sql.NullString
	)

	err := row.Scan(&a.ID, &a.Name, &a.Nickname, &a.PasswordHash, &about, &imageURL,
		&a.MemberSince, &a.FollowerCount, &a.FollowingCount)
	if err != nil {
		return nil, err
	}

	a.About = about.String
	a.ProfileImageURL = imageURL.String
	return &a, nil
}

func findOne(ctx context.Context, db dbx.DBTX, where string, arg any) (*models.Account, error) {
	a, err := scanAccount(db.QueryRowContext(ctx, selectAccount+"\n WHERE "+where, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return a, nil
}

// classify maps driver errors onto the repository error sentinels.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorNotFound):
		return err
	case dbx.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s", common.ErrorAlreadyExists, dbx.ConstraintName(err))
	case errors.Is(err, common.ErrorDatabase):
		return err
	default:
		return fmt.Errorf("%w: %w", common.ErrorDatabase, err)
	}
}

func nullable(o models.Optional[string]) sql.NullString {
	v, ok := o.Get()
	return sql.NullString{String: v, Valid: ok}
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *PostgresRepository) FindByNickname(ctx context.Context, nickname string) (*models.Account, error) {
	a, err := findOne(ctx, r.db, "u.nickname = $1", nickname)
	return a, classify(err)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	a, err := findOne(ctx, r.db, "u.id = $1", id)
	return a, classify(err)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Account, error) {
	rows, err := r.db.QueryContext(ctx, selectAccount+"\n ORDER BY u.id")
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	accounts := make([]*models.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, classify(err)
		}
		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return accounts, nil
}

func (r *PostgresRepository) ExistsByNickname(ctx context.Context, nickname string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE nickname = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, nickname).Scan(&exists); err != nil {
		return false, classify(err)
	}
	return exists, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO users (name, nickname, password, about, profile_img_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`

	var created *models.Account
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var id int64
		err := tx.QueryRowContext(ctx, query,
			account.Name, account.Nickname, account.PasswordHash,
			nullIfEmpty(account.About), nullIfEmpty(account.ProfileImageURL)).Scan(&id)
		if err != nil {
			return err
		}

		created, err = findOne(ctx, tx, "u.id = $1", id)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	return created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, patch models.AccountPatch) (*models.Account, error) {
	query :=
		`UPDATE users
		    SET name            = COALESCE($1, name),
		        nickname        = COALESCE($2, nickname),
		        password        = COALESCE($3, password),
		        about           = COALESCE($4, about),
		        profile_img_url = COALESCE($5, profile_img_url)
		  WHERE id = $6`

	var updated *models.Account
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, query,
			nullable(patch.Name), nullable(patch.Nickname), nullable(patch.PasswordHash),
			nullable(patch.About), nullable(patch.ProfileImageURL), id)
		if err != nil {
			return err
		}

		if err := expectAffected(res); err != nil {
			return err
		}

		updated, err = findOne(ctx, tx, "u.id = $1", id)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		return expectAffected(res)
	})

	return classify(err)
}

func (r *PostgresRepository) Follow(ctx context.Context, followerID, followedID int64) error {
	query := `INSERT INTO followers (user_id, follower_id) VALUES ($1, $2)`

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, query, followedID, followerID)
		return err
	})

	return classify(err)
}

func (r *PostgresRepository) Unfollow(ctx context.Context, followerID, followedID int64) error {
	query := `DELETE FROM followers WHERE user_id = $1 AND follower_id = $2`

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, query, followedID, followerID)
		if err != nil {
			return err
		}
		return expectAffected(res)
	})

	return classify(err)
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
