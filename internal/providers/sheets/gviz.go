package sheets

import (
	"encoding/json"
	"fmt"
	"strings"
)

// gvizResponse models the parts of the visualization API payload we read.
// The endpoint answers with JSONP:
//
//	google.visualization.Query.setResponse({...});
//
// so the JSON body has to be cut out of the envelope first.
type gvizResponse struct {
	Table struct {
		Rows []gvizRow `json:"rows"`
	} `json:"table"`
}

type gvizRow struct {
	Cells []gvizCell `json:"c"`
}

type gvizCell struct {
	Value any `json:"v"`
}

// parseGvizResponse strips the JSONP envelope and decodes the table inside.
func parseGvizResponse(body string) (*gvizResponse, error) {
	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("sheets: response carries no JSON object")
	}

	var payload gvizResponse
	if err := json.Unmarshal([]byte(body[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("sheets: decode response: %w", err)
	}
	return &payload, nil
}

// cellText extracts the first cell of a row as a trimmed string, with the
// trailing comma some hand-pasted rows carry removed. Empty when the cell
// is absent or not textual.
func cellText(row gvizRow) string {
	if len(row.Cells) == 0 {
		return ""
	}
	s, ok := row.Cells[0].Value.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	return strings.TrimSuffix(s, ",")
}
