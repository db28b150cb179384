package main

import (
	outlethttp "github.com/wkleong/outletmap/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. The server runs until the context is
// canceled (SIGINT), then shuts down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := outlethttp.NewServer(deps.Logger, c.ChatRPS)
	srv.Addr = c.Addr
	srv.Outlets = deps.Outlets
	srv.Resolver = deps.Resolver

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		<-ctx.Done()
		return srv.Close()
	})

	return g.Wait()
}
