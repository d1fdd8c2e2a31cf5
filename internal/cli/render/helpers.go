package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Color styles shared by the renderers
var (
	chainBg            = color.BgCyan
	chainHeader        = color.New(chainBg, color.FgBlack)
	chainHeaderBold    = color.New(chainBg, color.FgBlack, color.Bold)
	addressStyle       = color.New(color.FgWhite)
	pendingStyle       = color.New(color.FgYellow)
	okStyle            = color.New(color.FgGreen)
	failStyle          = color.New(color.FgRed)
	faintStyle         = color.New(color.Faint)
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	nameStyle          = color.New(color.FgWhite, color.Bold)
)

var titleCaser = cases.Title(language.English)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// chainBanner renders " vanaMoksha " " 14800 " as a colored header
func chainBanner(name string, chainID uint64) string {
	return chainHeaderBold.Sprintf(" %s ", name) + chainHeader.Sprintf(" %d ", chainID)
}

// newTable returns a borderless left aligned table writer
func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingLeft:  "  ",
		PaddingRight: " ",
	}
	t.Style().Format.Header = text.FormatDefault
	if header != nil {
		styled := make(table.Row, len(header))
		for i, h := range header {
			styled[i] = faintStyle.Sprint(h)
		}
		t.AppendHeader(styled)
	}
	return t
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[mGKHF]`)

// stripAnsiCodes removes ANSI escape sequences from a string
func stripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
