package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-shell/models"
)

const (
	usersTable      = "users"
	rolesTable      = "roles"
	rolesUsersTable = "roles_users"
)

// userColumns is the column order scanUser expects.
var userColumns = []string{
	"id",
	"email",
	"password",
	"first_name",
	"last_name",
	"phone",
	"active",
	"confirmed_at",
	"fs_uniquifier",
	"created_at",
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "password", "first_name", "last_name", "phone", "active", "fs_uniquifier", "created_at").
		Values(
			user.Email,
			user.PasswordHash,
			nullString(user.FirstName),
			nullString(user.LastName),
			nullString(user.Phone),
			user.Active,
			user.FsUniquifier,
			user.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildSelectUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		ToSql()
}

// buildSelectAllUserRolesQuery lists every membership as (user_id, role name).
func buildSelectAllUserRolesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("ru.user_id", "r.name").
		From(rolesTable + " r").
		Join(rolesUsersTable + " ru ON ru.role_id = r.id").
		OrderBy("ru.user_id", "r.name").
		ToSql()
}

func buildSelectUserRolesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("r.name").
		From(rolesTable + " r").
		Join(rolesUsersTable + " ru ON ru.role_id = r.id").
		Where(sq.Eq{"ru.user_id": userID}).
		OrderBy("r.name").
		ToSql()
}

// buildInsertRoleQuery inserts the role unless one with the same name exists.
func buildInsertRoleQuery(b sq.StatementBuilderType, name, description string) (string, []any, error) {
	return b.Insert(rolesTable).
		Columns("name", "description").
		Values(name, nullString(description)).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
}

func buildSelectRoleByNameQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select("id", "name", "description").
		From(rolesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildAttachRoleQuery(b sq.StatementBuilderType, userID, roleID int64) (string, []any, error) {
	return b.Insert(rolesUsersTable).
		Columns("user_id", "role_id").
		Values(userID, roleID).
		Suffix("ON CONFLICT (user_id, role_id) DO NOTHING").
		ToSql()
}

func buildUpdatePasswordQuery(b sq.StatementBuilderType, userID int64, passwordHash, fsUniquifier string) (string, []any, error) {
	return b.Update(usersTable).
		Set("password", passwordHash).
		Set("fs_uniquifier", fsUniquifier).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildUpdateActiveQuery(b sq.StatementBuilderType, userID int64, active bool) (string, []any, error) {
	return b.Update(usersTable).
		Set("active", active).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildDeleteUserRolesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(rolesUsersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// nullString stores empty optional text as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
