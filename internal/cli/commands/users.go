package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/trigg3rX/triggerx-sdk-go/internal/cli/jobfile"
)

func (r *runner) userCommand() *cli.Command {
	return &cli.Command{
		Name:      "user",
		Usage:     "Show a user",
		ArgsUsage: "USER_ID",
		Action: func(c *cli.Context) error {
			id, err := idArg(c, "user id")
			if err != nil {
				return err
			}
			client, err := r.client()
			if err != nil {
				return err
			}
			defer client.Close()

			user, err := client.GetUserData(c.Context, id)
			if err != nil {
				return err
			}
			return r.printJSON(user)
		},
	}
}

func (r *runner) pointsCommand() *cli.Command {
	return &cli.Command{
		Name:      "points",
		Usage:     "Show the points of a wallet",
		ArgsUsage: "ADDRESS",
		Action: func(c *cli.Context) error {
			address, err := jobfile.ValidateAddress(c.Args().First())
			if err != nil {
				return err
			}
			client, err := r.client()
			if err != nil {
				return err
			}
			defer client.Close()

			points, err := client.GetWalletPoints(c.Context, address)
			if err != nil {
				return err
			}
			return r.printJSON(points)
		},
	}
}
