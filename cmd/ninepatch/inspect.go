package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"git.sr.ht/~gioverse/ninechat/ninepatch"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect SRC",
		Short: "Print the guide marks and geometry of a 9-Patch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			np, err := ninepatch.DecodeFile(args[0])
			if err != nil {
				return err
			}
			a.log.Printf("decoded %s", args[0])
			var (
				w = cmd.OutOrStdout()
				g = np.Grid
			)
			fmt.Fprintf(w, "size:    %dx%d\n", g.Size.X, g.Size.Y)
			fmt.Fprintf(w, "top:     %s\n", runs(np.Marks.Top))
			fmt.Fprintf(w, "left:    %s\n", runs(np.Marks.Left))
			fmt.Fprintf(w, "right:   %s\n", runs(np.Marks.Right))
			fmt.Fprintf(w, "bottom:  %s\n", runs(np.Marks.Bottom))
			fmt.Fprintf(w, "corners: left=%d right=%d top=%d bottom=%d\n", g.X1, g.X2, g.Y1, g.Y2)
			fmt.Fprintf(w, "min:     %dx%d\n", g.Min().X, g.Min().Y)
			fmt.Fprintf(w, "natural: %dx%d\n", g.Natural().X, g.Natural().Y)
			fmt.Fprintf(w, "content: %s\n", inset(np.Content))
			return nil
		},
	}
}

// runs formats sorted coordinates as inclusive ranges, e.g. "3-5,9".
func runs(marks []int) string {
	var out []string
	for ii := 0; ii < len(marks); {
		jj := ii
		for jj+1 < len(marks) && marks[jj+1] == marks[jj]+1 {
			jj++
		}
		if ii == jj {
			out = append(out, fmt.Sprint(marks[ii]))
		} else {
			out = append(out, fmt.Sprintf("%d-%d", marks[ii], marks[jj]))
		}
		ii = jj + 1
	}
	return strings.Join(out, ",")
}

func inset(in ninepatch.Inset) string {
	return fmt.Sprintf("top=%d right=%d bottom=%d left=%d", in.Top, in.Right, in.Bottom, in.Left)
}
