package main

import "github.com/alateas/vybory/crawl"

// Run executes the candidates command.
func (c *CandidatesCmd) Run(deps *Dependencies) error {
	kind, electionURL, err := c.Locate(deps.BaseURL)
	if err != nil {
		return err
	}

	lister := &crawl.CandidateLister{
		Fetcher:     deps.Fetcher,
		Parser:      deps.Parser,
		RateLimiter: deps.RateLimiter,
	}
	names, err := lister.ListCandidates(deps.Ctx, kind, electionURL)
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := deps.Output.Candidate(name); err != nil {
			return err
		}
	}
	return nil
}
