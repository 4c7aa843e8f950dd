package monitor

import (
	"slices"

	"github.com/gravito-framework/sysmon-go/pkg/types"
)

// Select returns the categories to report, always in the fixed order.
// With no category flag at all, every category is reported.
func Select(opts types.Options) []types.Category {
	if opts.All || !opts.AnyCategory() {
		return slices.Clone(types.Categories)
	}

	var selected []types.Category
	for _, c := range types.Categories {
		if opts.Wants(c) {
			selected = append(selected, c)
		}
	}
	return selected
}
