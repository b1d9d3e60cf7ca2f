package main

import (
	"github.com/alateas/vybory"
	"github.com/alateas/vybory/crawl"
)

// Run executes the walk command.
func (c *WalkCmd) Run(deps *Dependencies) error {
	if c.Depth <= 0 {
		return vybory.Errorf(vybory.EINVALID, "--depth must be at least 1, got %d", c.Depth)
	}

	e, err := c.OpenElection(deps)
	if err != nil {
		return err
	}

	tree := crawl.NewTree(e)
	tree.MaxDepth = c.Depth
	tree.Logger = deps.Logger

	failed := 0
	err = tree.Walk(deps.Ctx, func(n crawl.Node) error {
		if n.Err != nil {
			failed++
			if c.FailFast {
				return n.Err
			}
			url := n.PageURL
			if n.Area.ChildURL != "" {
				url = n.Area.ChildURL
			}
			return deps.Output.Error(n.Depth, n.Path, url, n.Err)
		}
		return deps.Output.Area(n.Depth, n.Path, n.Area)
	})
	if err != nil {
		return err
	}

	if failed > 0 {
		deps.Logger.Warn("walk finished with failures", "failed", failed)
	}
	return nil
}
