package storage

import (
	"errors"

	"github.com/GoArmGo/BlogApp/internal/apperr"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Коды ошибок PostgreSQL, которые шлюз различает явно.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classifyError переводит ошибку драйвера в типизированную ошибку шлюза.
// Известные коды постгреса получают свой вид; прочие коды — общая ошибка
// БД (клиент мог её спровоцировать, это не 500). Ошибки вне протокола
// постгреса (обрыв соединения и т.п.) возвращаются как есть и дойдут
// до маппера неклассифицированными.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		meta := pgMeta(pgErr)
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperr.GatewayUnique(pgErr.Code, meta, err)
		case pgForeignKeyViolation:
			return apperr.GatewayForeignKey(pgErr.Code, meta, err)
		default:
			return apperr.Gateway(pgErr.Code, meta, err)
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.GatewayNotFound(err)
	}

	if errors.Is(err, gorm.ErrInvalidData) ||
		errors.Is(err, gorm.ErrInvalidValue) ||
		errors.Is(err, gorm.ErrInvalidField) ||
		errors.Is(err, gorm.ErrEmptySlice) {
		return apperr.GatewayValidation(err)
	}

	return err
}

func pgMeta(pgErr *pgconn.PgError) map[string]any {
	meta := make(map[string]any)
	if pgErr.ConstraintName != "" {
		meta["constraint"] = pgErr.ConstraintName
	}
	if pgErr.TableName != "" {
		meta["table"] = pgErr.TableName
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}
