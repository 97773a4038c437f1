package request

import "commission-tracker/internal/usecase/commands"

type CreateUserRequest struct {
	Email          string   `json:"email" binding:"required,email"`
	Name           string   `json:"name" binding:"required,max=100"`
	Password       string   `json:"password" binding:"required,min=8,max=72"`
	Role           string   `json:"role" binding:"required,oneof=admin sales"`
	CommissionRate *float64 `json:"commission_rate" binding:"required,min=0,max=100"`
}

func (r *CreateUserRequest) ToCommand() commands.CreateUserRequest {
	return commands.CreateUserRequest{
		Email:                 r.Email,
		Name:                  r.Name,
		Password:              r.Password,
		Role:                  r.Role,
		CommissionRatePercent: *r.CommissionRate,
	}
}

// ChangeCommissionRateRequest takes a percentage with up to two decimals.
type ChangeCommissionRateRequest struct {
	CommissionRate *float64 `json:"commission_rate" binding:"required,min=0,max=100"`
}

type SetUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
