package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newDepsCmd creates the deps command.
func newDepsCmd() *cobra.Command {
	var reverse bool

	c := &cobra.Command{
		Use:   "deps <module-name>",
		Short: "Show a module's dependencies, or its dependents with --reverse",
		Long: `Without flags, prints the module's declared dependency entries (empty when
the module is unknown). With --reverse, prints every module whose dependency
list references the name by substring or trailing path segment. The substring
match is loose on purpose: "Combat" also matches "CombatSystem".`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			m := newManager()
			name := args[0]
			out := c.OutOrStdout()

			if reverse {
				dependents := m.FindDependents(name)
				if len(dependents) == 0 {
					fmt.Fprintf(out, "No modules depend on %q.\n", name)
					return nil
				}
				for _, mod := range dependents {
					fmt.Fprintf(out, "%s (%s)\n", mod.Name, mod.Type)
				}
				return nil
			}

			deps := m.ModuleDependencies(name)
			if len(deps) == 0 {
				fmt.Fprintf(out, "%q has no declared dependencies.\n", name)
				return nil
			}
			for _, dep := range deps {
				fmt.Fprintln(out, dep)
			}
			return nil
		},
	}

	c.Flags().BoolVarP(&reverse, "reverse", "r", false, "Show dependents instead of dependencies")

	return c
}
