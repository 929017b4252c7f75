package commands

import (
	"fmt"
	"os"

	"github.com/belay-dotnet/docbuild/internal/validate"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Dir  string `arg:"" optional:"" help:"Built site directory" default:".vitepress/dist"`
	JSON bool   `help:"Emit the report as JSON"`
}

func (v *ValidateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}

	report, err := validate.New(cfg).Run(v.Dir)
	if err != nil {
		return err
	}

	var formatter validate.Formatter = validate.NewTextFormatter()
	if v.JSON {
		formatter = validate.NewJSONFormatter()
	}
	if err := formatter.Format(os.Stdout, report); err != nil {
		return err
	}

	if report.HasErrors() {
		return fmt.Errorf("deployment validation failed with %d errors", report.ErrorCount())
	}
	return nil
}
