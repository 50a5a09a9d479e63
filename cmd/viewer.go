package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newViewerCmd(app *app) *cobra.Command {
	var consumers int

	cmd := &cobra.Command{
		Use:   "viewer",
		Short: "Simulate 3D viewer consumers contending for render contexts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(out, "capacity: %d\n", app.leases.Capacity())

			granted := make([]string, 0, consumers)
			for i := 0; i < consumers; i++ {
				id := uuid.NewString()
				if app.leases.Request(id) {
					granted = append(granted, id)
					_, _ = fmt.Fprintf(out, "consumer %d (%s): granted\n", i+1, shortID(id))
				} else {
					_, _ = fmt.Fprintf(out, "consumer %d (%s): denied, showing placeholder\n", i+1, shortID(id))
				}
			}

			_, _ = fmt.Fprintf(out, "active: %d\n", app.leases.Active())

			for _, id := range granted {
				app.leases.Release(id)
			}

			_, _ = fmt.Fprintf(out, "released: %d, active: %d\n", len(granted), app.leases.Active())
			return nil
		},
	}

	cmd.Flags().IntVar(&consumers, "consumers", 8, "Number of consumers requesting a render context")

	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
