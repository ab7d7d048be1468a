package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/csvinsight/csvinsight/internal/engine"
)

// Analysis is the immutable result record of one CSV analysis request.
//
// Identity is assigned by the repository on Save. The record owns its ordered
// column statistics one-directionally; statistics never reference back to the
// parent. Row and column counts always match the parsed table.
type Analysis struct {
	ID                 uuid.UUID                 `json:"id"`
	Name               string                    `json:"name,omitempty"`
	NumberOfRows       int                       `json:"numberOfRows"`
	NumberOfColumns    int                       `json:"numberOfColumns"`
	TotalCharacters    int64                     `json:"totalCharacters"`
	CSVTokenCount      int                       `json:"csvTokenCount"`
	MarkdownTokenCount int                       `json:"markdownTokenCount"`
	ColumnStatistics   []engine.ColumnStatistics `json:"columnStatistics"`
	CreatedAt          time.Time                 `json:"createdAt"`

	// RawData is the original CSV text, persisted so the Markdown rendering
	// can be reproduced byte-for-byte for download. Never serialized in API
	// responses.
	RawData string `json:"-"`
}

// Filename returns the download filename for the Markdown rendering of the
// analysis: "{name}.md" when a name was provided, "analysis-{id}.md" otherwise.
func (a Analysis) Filename() string {
	if a.Name != "" {
		return a.Name + ".md"
	}
	return "analysis-" + a.ID.String() + ".md"
}
