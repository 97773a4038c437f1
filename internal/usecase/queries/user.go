package queries

import (
	"context"
	"time"

	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user_mock.go -package=queriesmock

var (
	ErrUserNotFound = errs.NotFound(errs.New("user not found"))
	ErrUserInactive = errs.Unauthorized(errs.New("user inactive"))
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	ListFirstPage(ctx context.Context, filter UserFilter, limit int32) ([]*UserView, error)
	ListKeyset(ctx context.Context, filter UserFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*UserView, error)
}

type UserQueries interface {
	// GetCurrentUser fails for deactivated accounts.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context, filter UserFilter, cursor *Cursor, limit int) ([]*UserView, *Cursor, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	u, err := q.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}
	return &AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		IsActive: u.IsActive,
	}, nil
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrUserNotFound, "id %s", id)
		}
		return nil, err
	}
	return u, nil
}

func (q *userQueriesImpl) List(ctx context.Context, filter UserFilter, cursor *Cursor, limit int) ([]*UserView, *Cursor, error) {
	return page(cursor, limit,
		func(n int32) ([]*UserView, error) {
			return q.readStore.ListFirstPage(ctx, filter, n)
		},
		func(after time.Time, afterID uuid.UUID, n int32) ([]*UserView, error) {
			return q.readStore.ListKeyset(ctx, filter, after, afterID, n)
		},
		func(v *UserView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID },
	)
}
