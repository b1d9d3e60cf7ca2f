package main

// Run executes the summary command.
func (c *SummaryCmd) Run(deps *Dependencies) error {
	e, err := c.OpenElection(deps)
	if err != nil {
		return err
	}
	area, err := e.Summary(deps.Ctx)
	if err != nil {
		return err
	}
	return deps.Output.Summary(area)
}
