package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/bloghub/internal/common"
	"github.com/dmitrijs2005/bloghub/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	qSelectByID       = `(?s)^\s*SELECT\s+u\.id,.*FROM\s+users\s+u\s+WHERE\s+u\.id\s*=\s*\$1\s*$`
	qSelectByNickname = `(?s)^\s*SELECT\s+u\.id,.*FROM\s+users\s+u\s+WHERE\s+u\.nickname\s*=\s*\$1\s*$`
	qSelectAll        = `(?s)^\s*SELECT\s+u\.id,.*FROM\s+users\s+u\s+ORDER\s+BY\s+u\.id\s*$`
	qInsertUser       = `(?s)^INSERT\s+INTO\s+users\s*\(name,\s*nickname,\s*password,\s*about,\s*profile_img_url\).*RETURNING\s+id\s*$`
	qUpdateUser       = `(?s)^UPDATE\s+users\s+SET\s+name\s*=\s*COALESCE\(\$1,\s*name\).*WHERE\s+id\s*=\s*\$6\s*$`
	qDeleteUser       = `(?s)^DELETE\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
	qInsertFollow     = `(?s)^INSERT\s+INTO\s+followers\s*\(user_id,\s*follower_id\)\s*VALUES\s*\(\$1,\s*\$2\)\s*$`
	qDeleteFollow     = `(?s)^DELETE\s+FROM\s+followers\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+follower_id\s*=\s*\$2\s*$`
)

var accountColumns = []string{
	"id", "name", "nickname", "password", "about", "profile_img_url", "member_since", "followers", "following",
}

var since = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func accountRow(id int64, nickname string, followers, following int64) *sqlmock.Rows {
	return sqlmock.NewRows(accountColumns).
		AddRow(id, "John", nickname, "hash", nil, "https://img/x.png", since, followers, following)
}

func TestFindByNickname_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSelectByNickname).WithArgs("john").WillReturnRows(accountRow(7, "john", 2, 1))

	got, err := repo.FindByNickname(context.Background(), "john")
	if err != nil {
		t.Fatalf("FindByNickname error: %v", err)
	}
	if got.ID != 7 || got.Nickname != "john" || got.FollowerCount != 2 || got.FollowingCount != 1 {
		t.Fatalf("unexpected account: %+v", got)
	}
	if got.About != "" {
		t.Fatalf("NULL about should scan as empty, got %q", got.About)
	}
	if !got.MemberSince.Equal(since) {
		t.Fatalf("member_since = %v", got.MemberSince)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindByNickname_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSelectByNickname).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByNickname(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestFindByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSelectByID).WithArgs(int64(1)).WillReturnError(errors.New("db down"))

	_, err := repo.FindByID(context.Background(), 1)
	if !errors.Is(err, common.ErrorDatabase) {
		t.Fatalf("expected ErrorDatabase, got %v", err)
	}
	if !regexp.MustCompile(`database error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("driver message should be kept, got %v", err)
	}
}

func TestListAll_OrderedAndNeverNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(accountColumns).
		AddRow(int64(1), "A", "alpha", "h", "a", nil, since, int64(0), int64(0)).
		AddRow(int64(2), "B", "beta", "h", nil, nil, since, int64(1), int64(0))
	mock.ExpectQuery(qSelectAll).WillReturnRows(rows)

	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(got) != 2 || got[0].Nickname != "alpha" || got[1].Nickname != "beta" {
		t.Fatalf("unexpected list: %+v", got)
	}

	mock.ExpectQuery(qSelectAll).WillReturnRows(sqlmock.NewRows(accountColumns))
	got, err = repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestExistsByNickname(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+EXISTS`).WithArgs("john").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.ExistsByNickname(context.Background(), "john")
	if err != nil || !ok {
		t.Fatalf("ExistsByNickname = %v, %v", ok, err)
	}
}

func TestInsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(qInsertUser).
		WithArgs("John", "john", "hash", nil, "https://img/x.png").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery(qSelectByID).WithArgs(int64(7)).WillReturnRows(accountRow(7, "john", 0, 0))
	mock.ExpectCommit()

	got, err := repo.Insert(context.Background(), &models.Account{
		Name: "John", Nickname: "john", PasswordHash: "hash", ProfileImageURL: "https://img/x.png",
	})
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if got.ID != 7 || got.MemberSince.IsZero() {
		t.Fatalf("unexpected account: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsert_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(qInsertUser).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_nickname_key"})
	mock.ExpectRollback()

	_, err := repo.Insert(context.Background(), &models.Account{Name: "John", Nickname: "john", PasswordHash: "hash"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected ErrorAlreadyExists, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdate_OnlyPresentFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(qUpdateUser).
		WithArgs("Johnny", nil, nil, "", nil, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(qSelectByID).WithArgs(int64(7)).WillReturnRows(accountRow(7, "john", 0, 0))
	mock.ExpectCommit()

	patch := models.AccountPatch{Name: models.Some("Johnny"), About: models.Some("")}
	if _, err := repo.Update(context.Background(), 7, patch); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(qUpdateUser).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), 99, models.AccountPatch{Name: models.Some("x")})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(qDeleteUser).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec(qDeleteUser).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := repo.Delete(context.Background(), 7); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound on second delete, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// Delete removes the account row only; follow rows referencing it go through
// the ON DELETE CASCADE foreign keys of the followers table.
func TestDelete_FollowsLeftToForeignKeys(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(qDeleteUser).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	// any statement against followers would have been reported as unexpected
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDelete_CommitError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(qDeleteUser).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	err := repo.Delete(context.Background(), 7)
	if !errors.Is(err, common.ErrorDatabase) {
		t.Fatalf("expected ErrorDatabase, got %v", err)
	}
	if got := err.Error(); got != "database error: commit: connection reset" {
		t.Fatalf("unexpected message %q", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFollow_ArgumentOrderAndDuplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// follower 1 follows user 2: row is (user_id=2, follower_id=1)
	mock.ExpectBegin()
	mock.ExpectExec(qInsertFollow).WithArgs(int64(2), int64(1)).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("Follow error: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec(qInsertFollow).WithArgs(int64(2), int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "unique_follow"})
	mock.ExpectRollback()

	err := repo.Follow(context.Background(), 1, 2)
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected ErrorAlreadyExists, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUnfollow_NotFollowing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(qDeleteFollow).WithArgs(int64(2), int64(1)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := repo.Unfollow(context.Background(), 1, 2); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
