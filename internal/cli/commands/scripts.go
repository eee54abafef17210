package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func (r *runner) publishScriptCommand() *cli.Command {
	return &cli.Command{
		Name:      "publish-script",
		Usage:     "Upload a job script to IPFS and print its URL",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("missing script file argument")
			}
			url, err := r.publish(c.Args().First())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(r.out, url)
			return err
		},
	}
}
