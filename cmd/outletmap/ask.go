package main

import (
	"fmt"

	"github.com/wkleong/outletmap"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	outlets, err := deps.Outlets.FindOutlets(deps.Ctx, outletmap.OutletFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", outletmap.ErrorMessage(err))
		return err
	}

	answer := deps.Resolver.Answer(deps.Ctx, c.Question, outlets)
	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
