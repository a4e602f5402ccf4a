package repository

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code raised by UNIQUE constraints
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}

func checkRowsAffected(rows int64, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
