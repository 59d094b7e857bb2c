// Package repository mediates all persistence. Repositories are explicitly
// constructed and injected; nothing here touches package-level state.
// Validation happens before any query so a bad write never costs a round
// trip, and every write is a single row, atomic at the database.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/heartman0001/ForeCase/internal/apperrors"
)

// wrap maps a GORM error onto the application taxonomy.
func wrap(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return apperrors.Backend(err)
}
