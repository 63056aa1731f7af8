package cmd

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/lepinkainen/png2webp/types"
	"github.com/lepinkainen/png2webp/ui"
	"github.com/lepinkainen/png2webp/utils"
)

type CheckCmd struct{}

// checkTool describes one external binary and what it is used for.
type checkTool struct {
	name     string
	purpose  string
	required bool
}

var checkTools = []checkTool{
	{name: "cwebp", purpose: "PNG to WebP conversion", required: true},
	{name: "exiftool", purpose: "metadata carry-over", required: false},
	{name: "fd", purpose: "faster file discovery", required: false},
}

func (cmd *CheckCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("png2webp %s - dependency check", version)))

	missingRequired := false
	for _, tool := range checkTools {
		path, err := exec.LookPath(tool.name)
		switch {
		case err == nil:
			fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("✅ %s (%s)", tool.name, path)))
		case tool.required:
			missingRequired = true
			fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("❌ %s missing, needed for %s", tool.name, tool.purpose)))
			fmt.Println(utils.InstallInstructions(tool.name))
		default:
			fmt.Println(ui.WarnStyle.Render(fmt.Sprintf("⚠️  %s missing (optional, %s)", tool.name, tool.purpose)))
			fmt.Println(utils.InstallInstructions(tool.name))
		}
	}

	if missingRequired {
		return errors.New("required tools are missing")
	}

	fmt.Println(ui.SuccessStyle.Render("✅ All required tools available"))
	return nil
}
