package main

import (
	"github.com/alateas/vybory"
	"github.com/alateas/vybory/crawl"
)

// Run executes the regions command.
func (c *RegionsCmd) Run(deps *Dependencies) error {
	e, err := c.OpenElection(deps)
	if err != nil {
		return err
	}
	areas, err := e.Regions(deps.Ctx)
	if err != nil {
		return err
	}
	return writeAreas(deps.Output, crawl.DepthRegion, areas)
}

// Run executes the expand command.
func (c *ExpandCmd) Run(deps *Dependencies) error {
	e, err := c.OpenElection(deps)
	if err != nil {
		return err
	}
	areas, err := e.Expand(deps.Ctx, c.Page, c.Indirect)
	if err != nil {
		return err
	}
	return writeAreas(deps.Output, 0, areas)
}

func writeAreas(out *RecordWriter, depth int, areas []vybory.AreaResult) error {
	for _, area := range areas {
		if err := out.Area(depth, []string{area.Name}, area); err != nil {
			return err
		}
	}
	return nil
}
