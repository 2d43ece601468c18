// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatTable writes one result page as a human-readable table to w.
func FormatTable(res Result, w io.Writer) {
	if len(res.Data) == 0 {
		fmt.Fprintln(w, "No pain points found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-18s  %-9s  %-5s  %-10s\n",
		"#", "Title", "Category", "Sentiment", "Score", "Date")
	fmt.Fprintln(w, strings.Repeat("-", 104))

	for i, r := range res.Data {
		title := r.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		flag := " "
		if r.Liked() {
			flag = "+"
		} else if r.Unliked() {
			flag = "-"
		}
		fmt.Fprintf(w, "%-4d%s %-50s  %-18s  %-9.2f  %-5d  %-10s\n",
			(res.Pagination.Page-1)*res.Pagination.Limit+i+1, flag,
			title, r.Category, r.SentimentScore, r.Score,
			r.Date.Format("2006-01-02"))
	}

	fmt.Fprintf(w, "\npage %d/%d, %d total\n",
		res.Pagination.Page, res.Pagination.TotalPages, res.Pagination.TotalItems)
}

// FormatJSON writes the result as indented JSON to w.
func FormatJSON(res Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
