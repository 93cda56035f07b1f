package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// regionsCommand creates the regions command, which lists the viewport
// presets usable with 'render --region'.
func (c *CLI) regionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List viewport presets",
		Long:  `List the built-in viewport presets along with any defined in the config file. User-defined presets shadow built-in ones with the same slug.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRegions()
		},
	}
}

func (c *CLI) runRegions() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render("Viewport presets"))
	printNewline()

	for _, r := range cfg.AllRegions() {
		vp := r.Viewport
		fmt.Println("  " + StyleHighlight.Render(r.Slug) + StyleDim.Render(" · ") + StyleValue.Render(r.Name))
		printDetail("upper-left %g,%g  lower-right %g,%g",
			real(vp.UpperLeft), imag(vp.UpperLeft),
			real(vp.LowerRight), imag(vp.LowerRight))
		if r.Description != "" {
			printDetail("%s", r.Description)
		}
	}

	printNewline()
	printNextStep("Render one", "mandelband render out.png --region seahorse-valley")
	return nil
}
