package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/isobench/pkg/errors"
	"github.com/matzehuels/isobench/pkg/tree"
)

// encodeCommand creates the encode command for printing AHU encodings.
func (c *CLI) encodeCommand() *cobra.Command {
	root := -1

	cmd := &cobra.Command{
		Use:   "encode [graph]",
		Short: "Print the centers and AHU encodings of a tree",
		Long: `Print the centers and AHU encodings of a tree.

The graph is a graph6 string or file (see "check"). Without --root, the
encoding rooted at every center is printed; two trees are isomorphic exactly
when their sets of center encodings intersect.`,
		ValidArgsFunction: completeGraphFiles,
		Args:              cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEncode(args[0], root)
		},
	}

	cmd.Flags().IntVar(&root, "root", root, "encode rooted at this vertex instead of the centers")

	return cmd
}

func (c *CLI) runEncode(arg string, root int) error {
	g, err := loadGraphArg(arg)
	if err != nil {
		return err
	}
	t, err := tree.From(g)
	if err != nil {
		return errs.Wrap(errs.ErrCodeNotATree, err, "%s", arg)
	}

	if root >= 0 {
		enc, err := t.Encode(root)
		if err != nil {
			return errs.Wrap(errs.ErrCodeInvalidInput, err, "root")
		}
		fmt.Println(enc)
		return nil
	}

	for _, center := range t.Centers() {
		enc, err := t.Encode(center)
		if err != nil {
			return err
		}
		fmt.Println(StyleHighlight.Render(fmt.Sprintf("%d", center)) + " " + StyleValue.Render(enc))
	}
	return nil
}
