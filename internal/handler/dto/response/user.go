package response

import (
	"time"

	"commission-tracker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var uuidToString = copier.Option{
	Converters: []copier.TypeConverter{{
		SrcType: uuid.UUID{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return src.(uuid.UUID).String(), nil
		},
	}},
}

type UserResponse struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	Role           string     `json:"role"`
	CommissionRate float64    `json:"commission_rate"`
	IsActive       bool       `json:"is_active"`
	LastLogin      *time.Time `json:"last_login"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// FromUserView copies the matching fields and derives the percentage.
func FromUserView(v *queries.UserView) (*UserResponse, error) {
	var res UserResponse
	if err := copier.CopyWithOption(&res, v, uuidToString); err != nil {
		return nil, err
	}
	res.CommissionRate = basisPointsToPercent(v.CommissionRateBP)
	return &res, nil
}

func FromUserList(items []*queries.UserView) ([]*UserResponse, error) {
	res := make([]*UserResponse, len(items))
	for i, it := range items {
		u, err := FromUserView(it)
		if err != nil {
			return nil, err
		}
		res[i] = u
	}
	return res, nil
}
