package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
)

var _ repository.UserRepository = (*SQLUserRepository)(nil)

const usersTable = "users"

// SQLUserRepository implements UserRepository on the users table.
// Balance changes are single conditional UPDATE ... RETURNING statements.
type SQLUserRepository struct {
	db *sqlx.DB
	sq sq.StatementBuilderType
}

func NewSQLUserRepository(db *sqlx.DB, driver string) *SQLUserRepository {
	return &SQLUserRepository{
		db: db,
		sq: statementBuilder(driver),
	}
}

func (r *SQLUserRepository) CreateUser(ctx context.Context, username string, passwordHash []byte, credits int64) error {
	if credits < 0 {
		return repository.ErrNegativeCredits
	}

	qry, args, err := r.sq.Insert(usersTable).
		Columns("username", "password_hash", "sentence", "credits").
		Values(username, string(passwordHash), "", credits).
		Suffix("ON CONFLICT (username) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	res, err := r.db.ExecContext(ctx, qry, args...)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return repository.ErrUserExists
	}
	return nil
}

func (r *SQLUserRepository) GetUser(ctx context.Context, username string) (*models.User, error) {
	qry, args, err := r.sq.Select("username", "password_hash", "sentence", "credits").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	var user models.User
	if err := r.db.GetContext(ctx, &user, qry, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return &user, nil
}

func (r *SQLUserRepository) UpdateUser(ctx context.Context, username string, update models.UserUpdate) error {
	if update.IsEmpty() {
		_, err := r.GetCredits(ctx, username)
		return err
	}

	query := r.sq.Update(usersTable).Where(sq.Eq{"username": username})
	if update.PasswordHash != nil {
		query = query.Set("password_hash", string(update.PasswordHash))
	}
	if update.Sentence != nil {
		query = query.Set("sentence", *update.Sentence)
	}
	if update.Credits != nil {
		if *update.Credits < 0 {
			return repository.ErrNegativeCredits
		}
		query = query.Set("credits", *update.Credits)
	}

	qry, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update: %w", err)
	}
	res, err := r.db.ExecContext(ctx, qry, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func (r *SQLUserRepository) GetCredits(ctx context.Context, username string) (int64, error) {
	qry, args, err := r.sq.Select("credits").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build select: %w", err)
	}

	var credits int64
	if err := r.db.GetContext(ctx, &credits, qry, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, repository.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to select credits: %w", err)
	}
	return credits, nil
}

func (r *SQLUserRepository) ChargeCredits(ctx context.Context, username string, amount int64) (int64, error) {
	qry, args, err := r.conditionalCharge(username, amount, nil, "credits")
	if err != nil {
		return 0, err
	}

	var balance int64
	if err := r.db.QueryRowxContext(ctx, qry, args...).Scan(&balance); err != nil {
		return 0, r.chargeError(ctx, username, err)
	}
	return balance, nil
}

func (r *SQLUserRepository) StoreSentence(ctx context.Context, username, sentence string, cost int64) (int64, error) {
	qry, args, err := r.conditionalCharge(username, cost, &sentence, "credits")
	if err != nil {
		return 0, err
	}

	var balance int64
	if err := r.db.QueryRowxContext(ctx, qry, args...).Scan(&balance); err != nil {
		return 0, r.chargeError(ctx, username, err)
	}
	return balance, nil
}

func (r *SQLUserRepository) RetrieveSentence(ctx context.Context, username string, cost int64) (string, int64, error) {
	qry, args, err := r.conditionalCharge(username, cost, nil, "credits", "sentence")
	if err != nil {
		return "", 0, err
	}

	var (
		balance  int64
		sentence string
	)
	if err := r.db.QueryRowxContext(ctx, qry, args...).Scan(&balance, &sentence); err != nil {
		return "", 0, r.chargeError(ctx, username, err)
	}
	return sentence, balance, nil
}

func (r *SQLUserRepository) AddCredits(ctx context.Context, username string, amount int64) (int64, error) {
	qry, args, err := r.sq.Update(usersTable).
		Set("credits", sq.Expr("credits + ?", amount)).
		Where(sq.And{
			sq.Eq{"username": username},
			sq.Expr("credits + ? >= 0", amount),
		}).
		Suffix("RETURNING credits").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update: %w", err)
	}

	var balance int64
	if err := r.db.QueryRowxContext(ctx, qry, args...).Scan(&balance); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("failed to add credits: %w", err)
		}
		if _, err := r.GetCredits(ctx, username); err != nil {
			return 0, err
		}
		return 0, repository.ErrNegativeCredits
	}
	return balance, nil
}

// conditionalCharge builds an UPDATE that subtracts cost only where the
// balance covers it, optionally replacing the sentence in the same statement.
func (r *SQLUserRepository) conditionalCharge(username string, cost int64, sentence *string, returning ...string) (string, []any, error) {
	query := r.sq.Update(usersTable).
		Set("credits", sq.Expr("credits - ?", cost))
	if sentence != nil {
		query = query.Set("sentence", *sentence)
	}
	qry, args, err := query.
		Where(sq.And{
			sq.Eq{"username": username},
			sq.GtOrEq{"credits": cost},
		}).
		Suffix("RETURNING " + strings.Join(returning, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build charge update: %w", err)
	}
	return qry, args, nil
}

// chargeError tells a missing user apart from an uncovered balance after
// a conditional charge matched no row.
func (r *SQLUserRepository) chargeError(ctx context.Context, username string, err error) error {
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to charge credits: %w", err)
	}
	if _, err := r.GetCredits(ctx, username); err != nil {
		return err
	}
	return repository.ErrInsufficientCredits
}
