package munin

import (
	"fmt"
	"io"
)

// WriteConfig emits configuration mode output for every graph in the
// registry, in registration order.  Each graph block is framed by a
// "multigraph" line and terminated by a blank line.
func WriteConfig(w io.Writer, r *Registry) error {
	for _, g := range r.Graphs() {
		if _, err := fmt.Fprintf(w, "multigraph %s\n", g.ID); err != nil {
			return err
		}
		fmt.Fprintf(w, "graph_title %s\n", g.Title)
		if g.Category != "" {
			fmt.Fprintf(w, "graph_category %s\n", g.Category)
		}
		if g.Args != "" {
			fmt.Fprintf(w, "graph_args %s\n", g.Args)
		}
		if g.VLabel != "" {
			fmt.Fprintf(w, "graph_vlabel %s\n", g.VLabel)
		}
		if g.Info != "" {
			fmt.Fprintf(w, "graph_info %s\n", g.Info)
		}
		for _, f := range g.Fields {
			fmt.Fprintf(w, "%s.label %s\n", f.ID, f.Label)
			if f.Type != "" {
				fmt.Fprintf(w, "%s.type %s\n", f.ID, f.Type)
			}
			if f.Draw != "" {
				fmt.Fprintf(w, "%s.draw %s\n", f.ID, f.Draw)
			}
			if f.Min != "" {
				fmt.Fprintf(w, "%s.min %s\n", f.ID, f.Min)
			}
			if f.Colour != "" {
				fmt.Fprintf(w, "%s.colour %s\n", f.ID, f.Colour)
			}
			if f.Negative != "" {
				fmt.Fprintf(w, "%s.negative %s\n", f.ID, f.Negative)
			}
			if f.Hidden {
				fmt.Fprintf(w, "%s.graph no\n", f.ID)
			}
			if f.Info != "" {
				fmt.Fprintf(w, "%s.info %s\n", f.ID, f.Info)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteValues emits value mode output for every graph in the registry,
// in registration order.  Unknown values render as the literal "U".
func WriteValues(w io.Writer, r *Registry) error {
	for _, g := range r.Graphs() {
		if _, err := fmt.Fprintf(w, "multigraph %s\n", g.ID); err != nil {
			return err
		}
		for _, f := range g.Fields {
			fmt.Fprintf(w, "%s.value %s\n", f.ID, r.Value(g.ID, f.ID))
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
