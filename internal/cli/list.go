package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"staffdir/internal/domain/directory"
)

// NewListCommand prints one page of the directory after filter, sort and pagination.
func NewListCommand(opts *RootOptions) *cobra.Command {
	var (
		query    = queryFlags{paged: true}
		pageSize int
	)

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List employees",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(opts)
			if pageSize == 0 {
				pageSize = cfg.PageSize
			}
			if pageSize < 1 || pageSize > cfg.MaxPageSize {
				return fmt.Errorf("page-size must be between 1 and %d", cfg.MaxPageSize)
			}
			state, err := query.state()
			if err != nil {
				return err
			}
			svc, err := loadDirectory(cfg)
			if err != nil {
				return err
			}
			result, err := svc.Query(cmd.Context(), state, pageSize)
			if err != nil {
				return err
			}
			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return writeTable(cmd.OutOrStdout(), result)
		},
	}

	bindQueryFlags(cmd, &query)
	cmd.Flags().IntVar(&query.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "rows per page (defaults to DIRECTORY_PAGE_SIZE)")

	return cmd
}

func bindQueryFlags(cmd *cobra.Command, query *queryFlags) {
	cmd.Flags().StringVarP(&query.Search, "search", "s", "", "case-insensitive search across name, department, position, email and phone")
	cmd.Flags().StringSliceVar(&query.Departments, "department", nil, "department filter (repeatable)")
	cmd.Flags().StringSliceVar(&query.Positions, "position", nil, "position filter (repeatable)")
	cmd.Flags().StringSliceVar(&query.Managers, "manager", nil, "reporting manager filter (repeatable)")
	cmd.Flags().StringSliceVar(&query.Arrangement, "arrangement", nil, "work arrangement filter (repeatable)")
	cmd.Flags().StringSliceVar(&query.Statuses, "status", nil, "employment status filter (repeatable)")
	cmd.Flags().StringVar(&query.Sort, "sort", "", "sort field")
	cmd.Flags().StringVar(&query.Order, "order", "", "sort order (asc|desc)")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, result directory.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDEPARTMENT\tPOSITION\tMANAGER\tARRANGEMENT\tSTATUS\tSTART DATE")
	for _, e := range result.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.FullName, e.Department, e.Position, e.ReportingManager,
			e.WorkArrangement, e.EmploymentStatus, e.StartDate)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if result.Total == 0 {
		_, err := fmt.Fprintln(w, "No employees found")
		return err
	}
	_, err := fmt.Fprintf(w, "\nShowing %d of %d employees (page %d of %d)\n",
		len(result.Rows), result.Total, result.Page, result.TotalPages)
	return err
}
