package owners

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("owner not found")

type Repository interface {
	GetByID(ctx context.Context, id int64) (Owner, error)
}
