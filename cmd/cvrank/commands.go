package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"cv-ranking-web/internal/domain"
	"cv-ranking-web/internal/widget"
)

// uploadFile reads path, selects it in w and uploads it, printing the
// resulting status line to out.
func uploadFile(ctx context.Context, out io.Writer, w *widget.UploadWidget, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		printStatus(out, w.RejectFile(err))
		return err
	}

	w.SelectFile(&domain.SelectedFile{
		Filename:    filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Data:        data,
	})

	status, err := w.Upload(ctx)
	printStatus(out, status)
	return err
}

// showRanking fetches the ranking and prints the status followed by the table.
func showRanking(ctx context.Context, out io.Writer, w *widget.RankingWidget) error {
	status, err := w.FetchRanking(ctx)
	printStatus(out, status)
	if err != nil {
		return err
	}
	return printTable(out, widget.RenderRankingRows(w.Entries()))
}

func printStatus(out io.Writer, status domain.StatusMessage) {
	if status.Detail != "" {
		fmt.Fprintf(out, "%s (%s)\n", status.Text, status.Detail)
		return
	}
	fmt.Fprintln(out, status.Text)
}

func printTable(out io.Writer, rows []widget.RankingRow) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(widget.RankingHeaders[:], "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row.Cells[:], "\t"))
	}
	return tw.Flush()
}
