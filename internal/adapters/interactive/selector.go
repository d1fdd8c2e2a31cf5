package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/rdatadao/rdat-registry/internal/domain"
	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/rdatadao/rdat-registry/pkg/chains"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectChain selects a chain from a list
func (s *SelectorAdapter) SelectChain(ctx context.Context, options []chains.Chain, prompt string) (chains.Chain, error) {
	if s.config.NonInteractive {
		return chains.Chain{}, fmt.Errorf("%w: cannot prompt for a network", domain.ErrNonInteractive)
	}

	if len(options) == 0 {
		return chains.Chain{}, fmt.Errorf("no networks provided for selection")
	}

	if len(options) == 1 {
		return options[0], nil
	}

	items := formatChainOptions(options)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(items),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return chains.Chain{}, fmt.Errorf("selection cancelled: %w", err)
	}

	return options[index], nil
}

// formatChainOptions renders "vanaMoksha (14800) testnet"
func formatChainOptions(options []chains.Chain) []string {
	items := make([]string, len(options))
	for i, c := range options {
		name := color.New(color.FgWhite, color.Bold).Sprint(c.Name)
		id := color.New(color.FgBlue).Sprintf("%d", c.ID)
		if c.Testnet {
			items[i] = fmt.Sprintf("%s (%s) %s", name, id, color.New(color.FgYellow).Sprint("testnet"))
		} else {
			items[i] = fmt.Sprintf("%s (%s)", name, id)
		}
	}
	return items
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	plain := make([]string, len(items))
	for i, item := range items {
		plain[i] = strings.ToLower(stripANSI(item))
	}
	return func(input string, index int) bool {
		if input == "" {
			return true
		}
		return matches(strings.ToLower(input), plain[index])
	}
}

var _ usecase.InteractiveSelector = (*SelectorAdapter)(nil)
