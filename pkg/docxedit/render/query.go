package render

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Query evaluates an XPath expression against body and returns the inner
// text of every matching node in document order.
func Query(body, expr string) ([]string, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}

	root, err := xmlquery.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}

	nodes, err := xmlquery.QueryAll(root, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}

	result := make([]string, len(nodes))
	for i, n := range nodes {
		result[i] = n.InnerText()
	}
	return result, nil
}
