package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/models"
)

// userRepository is the SQL implementation of [UserRepository]. It works
// against both PostgreSQL and SQLite; the dialect differences live in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CreateUser persists a new user and grants it roleName.
//
// Error handling:
//   - unique violation on email or fs_uniquifier → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped low-level sentinel.
func (r *userRepository) CreateUser(ctx context.Context, user models.User, roleName string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = tx.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if r.db.classify(err) == UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	role, err := r.grantRole(ctx, tx, user.UserID, roleName)
	if err != nil {
		return models.User{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	user.Roles = []string{role.Name}
	return user, nil
}

// FindUserByEmail implements [UserRepository]. [sql.ErrNoRows] is reported
// as [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildSelectUserByEmailQuery(r.db.builder, email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID implements [UserRepository].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(r.db.builder, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "*userRepository.FindUserByID", query, args)
}

// ListUsers implements [UserRepository]. Two queries are issued: one for
// the users and one for all memberships.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error selecting users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	index := make(map[int64]int)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		index[user.UserID] = len(users)
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	// SQLite runs on a single connection; release it before the next query.
	rows.Close()

	query, args, err = buildSelectAllUserRolesQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	roleRows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error selecting roles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer roleRows.Close()

	for roleRows.Next() {
		var (
			userID int64
			name   string
		)
		if err = roleRows.Scan(&userID, &name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if i, ok := index[userID]; ok {
			users[i].Roles = append(users[i].Roles, name)
		}
	}
	if err = roleRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// AttachRole implements [UserRepository]. An unknown userID is reported as
// [ErrUserNotFound].
func (r *userRepository) AttachRole(ctx context.Context, userID int64, roleName string) (models.Role, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AttachRole").Msg("error beginning transaction")
		return models.Role{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	role, err := r.grantRole(ctx, tx, userID, roleName)
	if err != nil {
		return models.Role{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.AttachRole").Msg("error committing transaction")
		return models.Role{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return role, nil
}

// UpdatePassword implements [UserRepository].
func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash, fsUniquifier string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordQuery(r.db.builder, userID, passwordHash, fsUniquifier)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error updating password")
		if r.db.classify(err) == UniqueViolation {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

// SetActive implements [UserRepository].
func (r *userRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	query, args, err := buildUpdateActiveQuery(r.db.builder, userID, active)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.SetActive").Msg("error updating active flag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

// DeleteUser implements [UserRepository]. Memberships are removed first in
// the same transaction, so it does not depend on ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	rolesQuery, rolesArgs, err := buildDeleteUserRolesQuery(r.db.builder, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	userQuery, userArgs, err := buildDeleteUserQuery(r.db.builder, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, rolesQuery, rolesArgs...); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting memberships")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, userQuery, userArgs...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = requireAffected(result); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// grantRole ensures roleName exists and links it to userID inside tx.
func (r *userRepository) grantRole(ctx context.Context, tx queryer, userID int64, roleName string) (models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRoleQuery(r.db.builder, roleName, "")
	if err != nil {
		return models.Role{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("role", roleName).Msg("error ensuring role")
		return models.Role{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = buildSelectRoleByNameQuery(r.db.builder, roleName)
	if err != nil {
		return models.Role{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		role        models.Role
		description sql.NullString
	)
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&role.RoleID, &role.Name, &description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Role{}, ErrRoleNotFound
		}
		return models.Role{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	role.Description = description.String

	query, args, err = buildAttachRoleQuery(r.db.builder, userID, role.RoleID)
	if err != nil {
		return models.Role{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Int64("user_id", userID).Str("role", roleName).Msg("error attaching role")
		if r.db.classify(err) == ForeignKeyViolation {
			return models.Role{}, ErrUserNotFound
		}
		return models.Role{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return role, nil
}

func (r *userRepository) findUser(ctx context.Context, caller, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", caller).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	roles, err := r.userRoles(ctx, r.db, user.UserID)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error loading roles")
		return models.User{}, err
	}
	user.Roles = roles

	return user, nil
}

// requireAffected reports [ErrUserNotFound] when the statement touched no row.
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) userRoles(ctx context.Context, q queryer, userID int64) ([]string, error) {
	query, args, err := buildSelectUserRolesQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		roles = append(roles, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return roles, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user                       models.User
		firstName, lastName, phone sql.NullString
		confirmedAt                sql.NullTime
	)

	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.PasswordHash,
		&firstName,
		&lastName,
		&phone,
		&user.Active,
		&confirmedAt,
		&user.FsUniquifier,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.FirstName = firstName.String
	user.LastName = lastName.String
	user.Phone = phone.String
	if confirmedAt.Valid {
		t := confirmedAt.Time
		user.ConfirmedAt = &t
	}

	return user, nil
}
