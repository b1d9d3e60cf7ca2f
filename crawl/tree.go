package crawl

import (
	"context"
	"log/slog"
	"slices"

	"github.com/alateas/vybory"
	"github.com/alateas/vybory/bloom"
)

// Tree levels below the summary page.
const (
	DepthRegion = iota
	DepthTIK
	DepthUIK
)

// DefaultMaxDepth walks down to precincts.
const DefaultMaxDepth = DepthUIK + 1

// NoIndirection disables landing-page indirection in a Tree.
const NoIndirection = -1

// Node is one area reached by a tree walk.
type Node struct {
	// Depth is the level of the area, DepthRegion for top-level areas.
	Depth int

	// PageURL is the URL expanded to reach the area, or the URL that failed
	// to expand when Err is set and Area is empty.
	PageURL string

	// Path holds the area names from the top level down to this area.
	Path []string

	Area vybory.AreaResult

	// Err is set when the area failed to parse or its page failed to expand.
	Err error
}

// VisitFunc is called for every node in walk order. Returning a non-nil
// error stops the walk and Walk returns that error.
type VisitFunc func(node Node) error

// Tree drives the descent from the summary page down the area hierarchy.
type Tree struct {
	Election *Election

	// MaxDepth is the number of levels expanded. Defaults to DefaultMaxDepth.
	MaxDepth int

	// IndirectionDepth is the level whose pages are reached through a
	// landing page. Zero means DepthUIK; NoIndirection disables it.
	IndirectionDepth int

	// Logger receives warnings about skipped areas and pages. Optional.
	Logger *slog.Logger
}

// NewTree creates a Tree over e with default depths.
func NewTree(e *Election) *Tree {
	return &Tree{
		Election:         e,
		MaxDepth:         DefaultMaxDepth,
		IndirectionDepth: DepthUIK,
	}
}

// Walk visits every area of the election depth first. Leaves that point at
// their own page and pages already visited are not expanded again.
//
// A failure to expand the summary page is returned. Failures below it are
// reported to visit as nodes with Err set; visit decides whether to stop.
func (t *Tree) Walk(ctx context.Context, visit VisitFunc) error {
	w := treeWalk{
		tree:    t,
		visit:   visit,
		visited: bloom.NewVisitedSet(),
		logger:  t.Logger,
	}
	if w.logger == nil {
		w.logger = slog.New(slog.DiscardHandler)
	}
	maxDepth := t.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	w.maxDepth = maxDepth

	w.visited.Add(t.Election.SummaryURL)
	areas, err := t.expand(ctx, t.Election.SummaryURL, DepthRegion)
	if err != nil {
		return err
	}
	return w.areas(ctx, t.Election.SummaryURL, DepthRegion, nil, areas)
}

func (t *Tree) expand(ctx context.Context, pageURL string, depth int) ([]vybory.AreaResult, error) {
	return t.Election.Expand(ctx, pageURL, depth == t.indirectionDepth())
}

func (t *Tree) indirectionDepth() int {
	if t.IndirectionDepth == 0 {
		return DepthUIK
	}
	return t.IndirectionDepth
}

type treeWalk struct {
	tree     *Tree
	visit    VisitFunc
	visited  *bloom.Filter
	logger   *slog.Logger
	maxDepth int
}

func (w *treeWalk) areas(ctx context.Context, pageURL string, depth int, path []string, areas []vybory.AreaResult) error {
	for _, area := range areas {
		node := Node{
			Depth:   depth,
			PageURL: pageURL,
			Path:    append(slices.Clone(path), area.Name),
			Area:    area,
			Err:     area.Err,
		}
		if node.Err != nil {
			w.logger.Warn("skip area", "url", pageURL, "area", area.Name, "err", node.Err)
		}
		if err := w.visit(node); err != nil {
			return err
		}
		if node.Err != nil || area.IsLeaf(pageURL) || depth+1 >= w.maxDepth {
			continue
		}
		if w.visited.Visit(area.ChildURL) {
			w.logger.Warn("skip visited page", "url", area.ChildURL, "area", area.Name)
			continue
		}
		if err := w.descend(ctx, area.ChildURL, depth+1, node.Path); err != nil {
			return err
		}
	}
	return nil
}

func (w *treeWalk) descend(ctx context.Context, pageURL string, depth int, path []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	areas, err := w.tree.expand(ctx, pageURL, depth)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.logger.Warn("skip page", "url", pageURL, "err", err)
		return w.visit(Node{Depth: depth, PageURL: pageURL, Path: path, Err: err})
	}
	return w.areas(ctx, pageURL, depth, path, areas)
}
