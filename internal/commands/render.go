package commands

import (
	"fmt"
	"strings"

	"github.com/Alp4ka/sqlpager"
	"github.com/Alp4ka/sqlpager/internal/config"
	"github.com/spf13/cobra"
)

type renderOutput struct {
	SQL        string          `json:"sql" yaml:"sql"`
	Limit      uint64          `json:"limit" yaml:"limit"`
	Offset     uint64          `json:"offset" yaml:"offset"`
	Pager      *sqlpager.Pager `json:"pager,omitempty" yaml:"pager,omitempty"`
	NextCursor string          `json:"nextCursor,omitempty" yaml:"nextCursor,omitempty"`
	NextSQL    string          `json:"nextSql,omitempty" yaml:"nextSql,omitempty"`
}

func (o renderOutput) Text() string {
	if o.NextSQL == "" {
		return o.SQL
	}

	return strings.Join([]string{o.SQL, o.NextSQL}, "\n")
}

// renderFlagKeys binds config keys to render flags.
var renderFlagKeys = map[string]string{
	"query.source":     "source",
	"query.projection": "projection",
	"query.filter":     "filter",
	"query.order":      "order",
	"query.cursor":     "cursor",
	"query.page_size":  "page-size",
	"sort":             "sort",
	"columns":          "columns",
	"output":           "output",
	"logger.level":     "log-level",
	"logger.format":    "log-format",
}

// NewRenderCommand creates the command that prints the SQL of a page.
//
// With --rows, the rendered statement is assumed to have returned that many
// rows, and the pager and the statement of the next page are printed too.
func NewRenderCommand() *cobra.Command {
	var (
		configPath string
		rows       int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the SQL statement of a page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath, cmd.Flags(), renderFlagKeys)
			if err != nil {
				return err
			}

			log, err := config.NewLogger(cfg.Logger, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			sqlpager.SetLogger(log)

			query, err := cfg.BuildQuery()
			if err != nil {
				return fmt.Errorf("cannot build query: %w", err)
			}

			out := renderOutput{
				SQL:    query.ToSQL(),
				Limit:  query.Limit(),
				Offset: query.Offset(),
			}

			if cmd.Flags().Changed("rows") {
				if rows < 0 {
					return fmt.Errorf("rows must not be negative, got %d", rows)
				}

				fetched := make(sqlpager.Rows[struct{}], rows)
				pager := query.GetPager(&fetched)
				out.Pager = &pager

				if next := query.NextPage(pager); next != nil {
					out.NextCursor = next.Cursor()
					out.NextSQL = next.ToSQL()
				}
			}

			log.Debug().
				Str("source", query.Source()).
				Uint64("page_size", query.PageSize()).
				Msg("rendered query")

			return writeOutput(cmd.OutOrStdout(), cfg.Output, out)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to a config file (yaml, json or toml)")
	flags.IntVar(&rows, "rows", 0, "number of rows the statement returned, lookahead row included")
	flags.String("source", "", "table or view to select from")
	flags.StringSlice("projection", nil, "columns to select (default all)")
	flags.String("filter", "", "WHERE clause body")
	flags.String("order", "", "ORDER BY clause body")
	flags.StringSlice("sort", nil, "sort terms 'alias asc|desc', resolved via --columns")
	flags.StringToString("columns", nil, "sortable column aliases, alias=column")
	flags.String("cursor", "", "cursor token of the page")
	flags.Uint64("page-size", 0, fmt.Sprintf("page size (default %d)", sqlpager.DefaultPageSize))
	flags.StringP("output", "o", "text", "output format: text, json or yaml")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "console", "log format: console or json")

	return cmd
}
