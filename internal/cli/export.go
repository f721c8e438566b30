package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"staffdir/internal/domain/directory"
)

func NewExportCommand(opts *RootOptions) *cobra.Command {
	var (
		query queryFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:          "export",
		Short:        "Export the filtered directory as a PDF",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			state, err := query.state()
			if err != nil {
				return err
			}
			svc, err := loadDirectory(loadConfig(opts))
			if err != nil {
				return err
			}
			rows, err := svc.Export(cmd.Context(), state)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, f.Close())
			}()
			if err := directory.WritePDF(f, "Employee Directory", time.Now(), rows); err != nil {
				return err
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"file": out, "employees": len(rows)})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d employee(s) to %s\n", len(rows), out)
			return err
		},
	}

	bindQueryFlags(cmd, &query)
	cmd.Flags().StringVarP(&out, "out", "o", "directory.pdf", "output file")

	return cmd
}
