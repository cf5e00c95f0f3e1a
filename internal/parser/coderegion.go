package parser

import (
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Region is a half-open byte range [Start, End) of the source document.
type Region struct {
	Start int
	End   int
}

// RegionSet answers offset-containment queries over a sorted set of
// non-overlapping regions.
type RegionSet struct {
	regions []Region
}

// Contains reports whether offset falls inside any region.
func (rs *RegionSet) Contains(offset int) bool {
	i := sort.Search(len(rs.regions), func(i int) bool {
		return rs.regions[i].End > offset
	})
	return i < len(rs.regions) && rs.regions[i].Start <= offset
}

// Regions returns the underlying sorted regions.
func (rs *RegionSet) Regions() []Region {
	return rs.regions
}

// CodeRegions locates fenced code blocks, indented code blocks, and
// inline code spans in content using the markdown AST. The result's
// Contains method is the code-exclusion predicate marker scanning wants.
func CodeRegions(content string) *RegionSet {
	source := []byte(content)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var regions []Region

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				regions = append(regions, Region{Start: seg.Start, End: seg.Stop})
			}
		case ast.KindCodeSpan:
			// A code span's children are text nodes whose segments point
			// back into the source between the backticks.
			for child := n.FirstChild(); child != nil; child = child.NextSibling() {
				if t, ok := child.(*ast.Text); ok {
					regions = append(regions, Region{Start: t.Segment.Start, End: t.Segment.Stop})
				}
			}
		}
		return ast.WalkContinue, nil
	})

	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Start < regions[j].Start
	})

	return &RegionSet{regions: regions}
}
