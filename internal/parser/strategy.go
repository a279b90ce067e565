// Package parser extracts structured data from the markdown documents the
// SEO workflow lives in: the keyword strategy file and the competitor
// analysis file.
package parser

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"

	"github.com/grabgifts/seo-analyst/internal/models"
)

// Volume and difficulty estimates for the qualitative labels the strategy
// documents use instead of hard numbers.
const (
	volumeHigh    = 50000
	volumeMedium  = 15000
	volumeLow     = 3000
	volumeDefault = 1000

	difficultyHigh    = 80
	difficultyMedium  = 50
	difficultyLow     = 20
	difficultyDefault = 50
)

var digitsPattern = regexp.MustCompile(`\d+`)

// ParseStrategy extracts the keyword tables from a strategy markdown
// document. Level-3 headings open clusters; table rows below a heading are
// attributed to it. Rows must carry at least four cells: term, volume,
// difficulty, intent.
func ParseStrategy(content string) models.Strategy {
	strategy := models.Strategy{
		Keywords:    []models.KeywordRecord{},
		Clusters:    map[string][]models.KeywordRecord{},
		LastUpdated: time.Now(),
	}
	if content == "" {
		return strategy
	}

	doc := markdown.Parse([]byte(content), nil)

	currentCluster := ""
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}

		switch n := node.(type) {
		case *ast.Heading:
			if n.Level == 3 {
				currentCluster = nodeText(n)
				strategy.Clusters[currentCluster] = []models.KeywordRecord{}
			}
			return ast.SkipChildren

		case *ast.TableRow:
			cells := rowCells(n)
			if len(cells) < 4 || isHeaderRow(cells) {
				return ast.SkipChildren
			}

			record := models.NewKeywordRecord(
				cells[0],
				ParseVolume(cells[1]),
				ParseDifficulty(cells[2]),
				0,
				models.Intent(strings.ToLower(cells[3])),
				1.0,
			)
			strategy.Keywords = append(strategy.Keywords, record)
			if currentCluster != "" {
				strategy.Clusters[currentCluster] = append(strategy.Clusters[currentCluster], record)
			}
			return ast.SkipChildren
		}

		return ast.GoToNext
	})

	strategy.TotalKeywords = len(strategy.Keywords)
	return strategy
}

// ParseVolume maps a table cell to a monthly search volume. Qualitative
// labels win over embedded digits; "10k"-style suffixes are expanded first.
func ParseVolume(cell string) int {
	cell = strings.ToLower(cell)
	cell = strings.ReplaceAll(cell, "k", "000")
	cell = strings.ReplaceAll(cell, "м", "000")

	switch {
	case strings.Contains(cell, "high") || strings.Contains(cell, "высокий"):
		return volumeHigh
	case strings.Contains(cell, "medium") || strings.Contains(cell, "средний"):
		return volumeMedium
	case strings.Contains(cell, "low") || strings.Contains(cell, "низкий"):
		return volumeLow
	}

	if match := digitsPattern.FindString(cell); match != "" {
		if n, err := strconv.Atoi(match); err == nil {
			return n
		}
	}

	return volumeDefault
}

// ParseDifficulty maps a table cell to a 0-100 difficulty. Numeric values
// are capped at 100.
func ParseDifficulty(cell string) int {
	cell = strings.ToLower(cell)

	switch {
	case strings.Contains(cell, "high") || strings.Contains(cell, "высокий"):
		return difficultyHigh
	case strings.Contains(cell, "medium") || strings.Contains(cell, "средний"):
		return difficultyMedium
	case strings.Contains(cell, "low") || strings.Contains(cell, "низкий"):
		return difficultyLow
	}

	if match := digitsPattern.FindString(cell); match != "" {
		if n, err := strconv.Atoi(match); err == nil {
			if n > 100 {
				return 100
			}
			return n
		}
	}

	return difficultyDefault
}

// isHeaderRow filters the label row of a keyword table: a row whose
// volume and difficulty cells both carry no digits and no known label is
// almost certainly "Volume | Difficulty | ..." itself.
func isHeaderRow(cells []string) bool {
	second := strings.ToLower(cells[1])
	if digitsPattern.MatchString(second) {
		return false
	}
	for _, label := range []string{"high", "высокий", "medium", "средний", "low", "низкий"} {
		if strings.Contains(second, label) {
			return false
		}
	}
	return true
}

// rowCells collects the plain-text content of every cell in a table row.
func rowCells(row *ast.TableRow) []string {
	cells := []string{}
	for _, child := range row.Children {
		if cell, ok := child.(*ast.TableCell); ok {
			cells = append(cells, nodeText(cell))
		}
	}
	return cells
}

// nodeText flattens a node's subtree into trimmed plain text.
func nodeText(node ast.Node) string {
	var buf bytes.Buffer
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch leaf := n.(type) {
		case *ast.Text:
			buf.Write(leaf.Literal)
		case *ast.Code:
			buf.Write(leaf.Literal)
		}
		return ast.GoToNext
	})
	return strings.TrimSpace(buf.String())
}
