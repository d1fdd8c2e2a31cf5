package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rdatadao/rdat-registry/internal/usecase"
)

// GenerateRenderer renders the outcome of a bindgen run
type GenerateRenderer struct {
	out         io.Writer
	projectRoot string
}

// NewGenerateRenderer creates a new generate renderer
func NewGenerateRenderer(out io.Writer, projectRoot string) *GenerateRenderer {
	return &GenerateRenderer{
		out:         out,
		projectRoot: projectRoot,
	}
}

// Render lists the collected contracts and the files written
func (r *GenerateRenderer) Render(result *usecase.GenerateBindingsResult) error {
	fmt.Fprintf(r.out, "%s %s\n", sectionHeaderStyle.Sprint("Contracts"), faintStyle.Sprintf("(%d)", len(result.Contracts)))
	for _, c := range result.Contracts {
		source := c.ArtifactPath
		if source == "" {
			source = "abi file"
		}
		fmt.Fprintf(r.out, "  %s %s\n", nameStyle.Sprint(c.Name), faintStyle.Sprintf("(%s)", source))
	}
	fmt.Fprintln(r.out)

	verb := "Wrote"
	if result.DryRun {
		verb = "Would write"
	}
	fmt.Fprintf(r.out, "%s %s\n", sectionHeaderStyle.Sprint(verb), faintStyle.Sprintf("(%d)", len(result.Files)))
	for _, f := range result.Files {
		fmt.Fprintf(r.out, "  %s %s %s\n", r.relative(f.Path), faintStyle.Sprintf("[%s]", f.Plugin), faintStyle.Sprintf("%d bytes", len(f.Content)))
	}
	fmt.Fprintln(r.out)

	if result.DryRun {
		fmt.Fprintln(r.out, FormatWarning("Dry run, nothing was written"))
		return nil
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Generated bindings for %s", plural(len(result.Contracts), "contract", "contracts"))))
	return nil
}

func (r *GenerateRenderer) relative(path string) string {
	if rel, err := filepath.Rel(r.projectRoot, path); err == nil {
		return rel
	}
	return path
}
