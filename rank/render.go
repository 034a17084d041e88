package rank

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Render writes a diagnostic table of the per-criterion breakdown for each
// item: one row per item, one raw/weighted column pair per criterion,
// followed by the total. label names an item for its row. Diagnostic only.
func (s *Sorter[T]) Render(w io.Writer, items []T, label func(T) string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprint(tw, "item")
	for i, c := range s.criteria {
		fmt.Fprintf(tw, "\tc%d (w=%g)", i, c.weight)
	}
	fmt.Fprintln(tw, "\ttotal")

	for _, item := range items {
		sc, err := s.Score(item)
		if err != nil {
			return err
		}

		fmt.Fprint(tw, label(item))
		for _, b := range sc.Breakdown {
			fmt.Fprintf(tw, "\t%.2f (%.2f)", b.Raw, b.Weighted)
		}
		fmt.Fprintf(tw, "\t%.2f\n", sc.Total)
	}

	return tw.Flush()
}
