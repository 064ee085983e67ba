package cli

import (
	"context"
	"fmt"

	"github.com/student-support/supportctl/internal/core/domain"
)

func (a *App) cmdResources(_ context.Context, args []string) error {
	category := ""
	if len(args) > 0 {
		switch args[0] {
		case "academic":
			category = domain.CategoryAcademic
		case "financial":
			category = domain.CategoryFinancial
		default:
			return fmt.Errorf("unknown resource category %q (want academic or financial)", args[0])
		}
	}

	for _, r := range domain.Resources(category) {
		fmt.Fprintf(a.out, "[%s] %s\n    %s\n    %s\n", r.Category, r.Title, r.Description, r.URL)
	}
	return nil
}
