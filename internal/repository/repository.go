package repository

import (
	"database/sql"
	"errors"

	"fgblog/internal/patch"
)

// notFound 把 sql.ErrNoRows 统一转换为 patch.ErrNotFound
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return patch.ErrNotFound
	}
	return err
}

// affected 删除类语句没有命中任何行时返回 patch.ErrNotFound
func affected(result sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return patch.ErrNotFound
	}
	return nil
}
