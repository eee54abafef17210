package types

import "time"

// UserData is returned by GET /api/users/{id}.
type UserData struct {
	UserID         int64      `json:"user_id"`
	UserAddress    string     `json:"user_address"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	JobIDs         []int64    `json:"job_ids"`
	AccountBalance string     `json:"account_balance"`
	TokenBalance   string     `json:"token_balance"`
	LastUpdatedAt  *time.Time `json:"last_updated_at,omitempty"`
}

// WalletPoints is returned by GET /api/wallet/points/{address}.
type WalletPoints struct {
	TotalPoints float64 `json:"total_points"`
}
