package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/spf13/cobra"

	"tabula"
	nt "tabula/entity"
	"tabula/export"
	"tabula/store/duck"
	"tabula/util"
)

type options struct {
	layout string
	sample bool
	log    string
	save   bool

	dump   bool
	search string
	sort   string
	desc   bool
	page   int
	size   int
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tabula [file]",
		Short: "Browse a csv, json or parquet file as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return run(cmd.Context(), cmd.OutOrStdout(), opts, path)
		},
	}

	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "layout.yaml", "layout file")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "write a sample layout and exit")
	cmd.Flags().StringVar(&opts.log, "log", "tabula.log", "log file, empty to discard")
	cmd.Flags().BoolVar(&opts.save, "save", false, "save column visibility to the layout on quit")

	cmd.Flags().BoolVar(&opts.dump, "dump", false, "print one page and exit")
	cmd.Flags().StringVar(&opts.search, "search", "", "free text search for --dump")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort field for --dump")
	cmd.Flags().BoolVar(&opts.desc, "desc", false, "sort descending for --dump")
	cmd.Flags().IntVar(&opts.page, "page", 1, "page for --dump")
	cmd.Flags().IntVar(&opts.size, "size", 0, "page size for --dump, -1 for all")

	return cmd
}

func run(ctx context.Context, out io.Writer, opts *options, path string) (err error) {

	if opts.sample {
		return tabula.WriteSample(opts.layout)
	}

	logFile := util.OpenLog(opts.log, 0644)
	defer util.CloseLog(logFile)

	lgr := &sabot.Sabot{Writer: logFile, MaxLen: 199}

	layout, err := tabula.LoadLayout(opts.layout)
	if err != nil {
		lgr.Error(ctx, "failed to load layout", err)
		return
	}

	dk, err := duck.New(lgr)
	if err != nil {
		lgr.Error(ctx, "failed to start duck", err)
		return
	}
	defer dk.Close()

	cfg := &tabula.Config{Layout: layout}
	tbl, err := cfg.New(ctx, dk, path, lgr)
	if err != nil {
		lgr.Error(ctx, "failed to build table", err)
		return
	}
	defer tbl.Controller.Wait()

	if opts.dump {
		dump(out, tbl, opts)
		return
	}

	_, err = tea.NewProgram(tbl.Model(ctx)).Run()
	if err != nil {
		lgr.Error(ctx, "failed to run program", err)
		return
	}

	if opts.save {
		err = layout.Save(opts.layout, tbl.Controller.Columns())
		if err != nil {
			lgr.Error(ctx, "failed to save layout", err)
		}
	}
	return
}

func dump(out io.Writer, tbl *tabula.Tabula, opts *options) {

	ctl := tbl.Controller
	if opts.size != 0 {
		ctl.SetPageSize(opts.size)
	}
	if opts.search != "" {
		ctl.Search(opts.search)
	}
	if opts.sort != "" {
		ctl.SortOn(nt.Sort{Field: opts.sort, Desc: opts.desc})
	}
	ctl.GoTo(opts.page)

	rows := make([]nt.Record, len(ctl.ActiveData()))
	for i, rec := range ctl.ActiveData() {
		row := nt.Record{}
		for _, col := range ctl.Visible() {
			row[col.Field] = ctl.Cell(rec, col)
		}
		rows[i] = row
	}

	sheet := export.Snapshot(ctl.Model().Title, rows, ctl.Visible())
	fmt.Fprintln(out, export.Markup(sheet))
	fmt.Fprintln(out, ctl.Info())
}
