package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bharathk2498/migrationgpt/pkg/models/api"
)

type jsonRenderer struct{}

func (jsonRenderer) ContentType() string { return "application/json" }

func (jsonRenderer) Render(w io.Writer, analysis api.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(analysis); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
