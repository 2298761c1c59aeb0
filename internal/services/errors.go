package services

import (
	"errors"

	"github.com/coolleighton/InventoryApp/internal/repositories/interfaces"
)

func isNotFound(err error) bool {
	return errors.Is(err, interfaces.ErrNotFound)
}
