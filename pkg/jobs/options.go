package jobs

import "github.com/trigg3rX/triggerx-sdk-go/pkg/types"

// resolveOptions returns opts with every unset field replaced by its default.
// Zero priority/security and empty amounts count as unset.
func resolveOptions(opts types.JobOptions) types.JobOptions {
	resolved := types.DefaultJobOptions()
	if opts.Priority != nil && *opts.Priority != 0 {
		resolved.Priority = types.Int(*opts.Priority)
	}
	if opts.Security != nil && *opts.Security != 0 {
		resolved.Security = types.Int(*opts.Security)
	}
	if opts.Recurring != nil {
		resolved.Recurring = types.Bool(*opts.Recurring)
	}
	if opts.StakeAmount != nil && *opts.StakeAmount != "" {
		resolved.StakeAmount = types.String(*opts.StakeAmount)
	}
	if opts.TokenAmount != nil && *opts.TokenAmount != "" {
		resolved.TokenAmount = types.String(*opts.TokenAmount)
	}
	return resolved
}
