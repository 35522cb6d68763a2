package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
)

// Reporter outputs the category profiles to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(profiles []domain.Profile) error {
	tmpl := `{{range .}}
=== {{.Category}} ({{.Category.Label}}) ===
Baseline customers: {{printf "%.0f" .BaselineCustomers}}
Baseline spend:     {{printf "%.0f" .BaselineSpend}}
Weekday (Mon-Sun):  {{range $i, $f := .Weekday}}{{if $i}} {{end}}{{$f}}{{end}}
Season:             {{range $m, $f := .Season}}{{$m}}={{$f}} {{else}}-{{end}}
{{end}}`
	t, err := template.New("profiles").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, profiles)
}
