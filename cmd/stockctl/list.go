package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simp-lee/stockroom/internal/table"
)

type listFlags struct {
	search   string
	field    string
	sort     string
	order    string
	page     int
	pageSize int
	where    []string
	file     string
}

func newListCmd(e *env) *cobra.Command {
	f := &listFlags{}
	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "Filter, sort and page one collection.",
		Long: `list fetches every record of a collection and prints one page of it.

Resources: customers, products, purchases, sales, staff, suppliers, users.`,
		Example: `  stockctl list products --search asp --sort qty --order desc
  stockctl list suppliers --where status=active
  stockctl list sales --field customer --search dara --file sales.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := resource(args[0])
			if err != nil {
				return err
			}
			q, err := f.query(e.cfg.Inventory.PageSize)
			if err != nil {
				return err
			}
			for name := range q.Where {
				if !res.HasFilter(name) {
					return fmt.Errorf("%s cannot be filtered by %q: accepted filters are %v", res.Name, name, res.Filters)
				}
			}

			records, err := e.load(cmd, res, f.file)
			if err != nil {
				return err
			}
			page, err := e.engine.Run(records, q, res.Schema)
			if err != nil {
				return err
			}
			return e.print(page)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.search, "search", "s", "", "search term")
	fl.StringVar(&f.field, "field", "", "search only this field (default: every searchable field)")
	fl.StringVar(&f.sort, "sort", "", "sort key")
	fl.StringVar(&f.order, "order", "asc", "sort direction: asc or desc")
	fl.IntVar(&f.page, "page", 1, "page number")
	fl.IntVar(&f.pageSize, "page-size", 0, "page size (default: inventory.page_size)")
	fl.StringArrayVar(&f.where, "where", nil, "exact filter as field=value; repeatable")
	fl.StringVar(&f.file, "file", "", "read the collection from a JSON file instead of the backend")
	return cmd
}

// query builds the table query. A zero page size uses defaultSize.
func (f *listFlags) query(defaultSize int) (table.Query, error) {
	q := table.NewQuery()
	if field := strings.TrimSpace(f.field); field != "" && !strings.EqualFold(field, string(table.ScopeAll)) {
		q = q.WithSearch(f.search, table.ScopeField, field)
	} else {
		q = q.WithSearch(f.search, table.ScopeAll, "")
	}

	dir, err := table.ParseDirection(f.order)
	if err != nil {
		return table.Query{}, err
	}
	q = q.WithSort(strings.TrimSpace(f.sort), dir)

	for _, kv := range f.where {
		name, value, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return table.Query{}, fmt.Errorf("invalid --where %q: want field=value", kv)
		}
		q = q.WithWhere(name, strings.TrimSpace(value))
	}

	q.PageSize = defaultSize
	if f.pageSize != 0 {
		q.PageSize = f.pageSize
	}
	return q.WithPage(f.page), nil
}
