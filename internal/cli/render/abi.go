package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rdatadao/rdat-registry/internal/usecase"
)

// ABIRenderer renders bundled ABIs
type ABIRenderer struct {
	out io.Writer
}

// NewABIRenderer creates a new ABI renderer
func NewABIRenderer(out io.Writer) *ABIRenderer {
	return &ABIRenderer{out: out}
}

// Render prints the ABI list, one ABI document or its signature summary
func (r *ABIRenderer) Render(result *usecase.ShowABIResult) error {
	switch {
	case result.Summary != nil:
		r.renderSummary(result.Name, result.Summary)
		return nil
	case result.Raw != nil:
		var buf bytes.Buffer
		if err := json.Indent(&buf, result.Raw, "", "  "); err != nil {
			return fmt.Errorf("invalid ABI document for %s: %w", result.Name, err)
		}
		buf.WriteByte('\n')
		_, err := r.out.Write(buf.Bytes())
		return err
	}

	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Bundled ABIs"))
	for _, name := range result.Names {
		fmt.Fprintf(r.out, "  %s\n", name)
	}
	return nil
}

func (r *ABIRenderer) renderSummary(name string, s *usecase.ABISummary) {
	fmt.Fprintln(r.out, nameStyle.Sprint(name))
	if s.Constructor != "" {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Constructor"))
		fmt.Fprintf(r.out, "  %s\n", s.Constructor)
	}
	r.section("Methods", s.Methods)
	r.section("Events", s.Events)
	r.section("Errors", s.Errors)
}

func (r *ABIRenderer) section(title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s %s\n", sectionHeaderStyle.Sprint(title), faintStyle.Sprintf("(%d)", len(lines)))
	for _, l := range lines {
		fmt.Fprintf(r.out, "  %s\n", l)
	}
}
