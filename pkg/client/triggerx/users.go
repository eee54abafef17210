package triggerx

import (
	"context"
	"fmt"
	"net/url"

	"github.com/trigg3rX/triggerx-sdk-go/pkg/types"
)

// GetUserData fetches a user record by its numeric id.
func (c *Client) GetUserData(ctx context.Context, userID int64) (*types.UserData, error) {
	var user types.UserData
	if err := c.api.Get(ctx, fmt.Sprintf("/api/users/%d", userID), &user); err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	return &user, nil
}

// GetWalletPoints returns the points accrued by a wallet.
func (c *Client) GetWalletPoints(ctx context.Context, address string) (*types.WalletPoints, error) {
	if address == "" {
		return nil, fmt.Errorf("wallet address cannot be empty")
	}
	var points types.WalletPoints
	if err := c.api.Get(ctx, "/api/wallet/points/"+url.PathEscape(address), &points); err != nil {
		return nil, fmt.Errorf("failed to get points for %s: %w", address, err)
	}
	return &points, nil
}
