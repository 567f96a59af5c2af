package output

import (
	"time"

	"github.com/manav03panchal/countdown/internal/model"
)

// ExportDocument is the file written by the export command.
type ExportDocument struct {
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	Timers     []*model.Timer `json:"timers" yaml:"timers"`
}

// NewExportDocument creates an export of timers taken at now.
func NewExportDocument(now time.Time, timers []*model.Timer) *ExportDocument {
	if timers == nil {
		timers = []*model.Timer{}
	}
	return &ExportDocument{ExportedAt: now, Timers: timers}
}

// Export writes doc as YAML when asYAML is set, otherwise as JSON.
func (f *Formatter) Export(doc *ExportDocument, asYAML bool) error {
	if asYAML {
		return f.YAML(doc)
	}
	return f.JSON(doc)
}
