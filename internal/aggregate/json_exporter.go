package aggregate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/pulibrary/marc-copyright/internal/domain"
)

// JSONExporter renders the aggregated job to indented JSON.
type JSONExporter struct {
	Writer io.Writer
}

type jsonPublication struct {
	SourceID string `json:"sourceId"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Year     int    `json:"year,omitempty"`
	HasYear  bool   `json:"hasYear"`
	Status   string `json:"status"`
	Rule     string `json:"rule"`
	Score    string `json:"sortScore"`
}

type jsonOutput struct {
	Stats        Stats              `json:"stats"`
	Publications []jsonPublication  `json:"publications"`
	Count        int                `json:"count"`
}

// Export writes pubs and stats as a single JSON document to e.Writer.
func (e JSONExporter) Export(ctx context.Context, pubs iter.Seq[*domain.Publication], stats Stats) error {
	out := jsonOutput{Stats: stats}
	for p := range pubs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		out.Publications = append(out.Publications, jsonPublication{
			SourceID: p.SourceID,
			Title:    p.Title(),
			Author:   p.Author(),
			Year:     p.Year,
			HasYear:  p.HasYear,
			Status:   p.Status.String(),
			Rule:     p.StatusRule.Description(),
			Score:    fmt.Sprintf("%.2f", p.SortScoreValue),
		})
	}
	out.Count = len(out.Publications)

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("aggregate: marshal JSON export: %w", err)
	}
	_, err = e.Writer.Write(data)
	return err
}
