package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/doeixd/dom/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		out    string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render [page]",
		Short: "Render one page to stdout",
		Long: `Render a single demo page as an HTML fragment.

Without arguments the available page names are listed.

Examples:
  dom render index
  dom render index --pretty -o index.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pages := staticPages()

			if len(args) == 0 {
				names := make([]string, 0, len(pages))
				for name := range pages {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Println(name)
				}
				return nil
			}

			root, ok := pages[args[0]]
			if !ok {
				return fmt.Errorf("unknown page %q", args[0])
			}

			r := render.New(render.Config{Pretty: pretty})
			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := r.Write(w, root); err != nil {
				return err
			}
			fmt.Fprintln(w)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent HTML output")

	return cmd
}
