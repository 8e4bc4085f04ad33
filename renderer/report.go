// Package renderer turns computed reports into markdown documents.
//
// Every surface that displays a report (terminal summary, exported file)
// goes through this package, so the numbers are formatted exactly once.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/fairsplit/tripledger"
)

// ReportMarkdown renders the full trip report: overview, per-group
// allocation, settlement plan, category breakdown and the chronological
// expense list with dual-currency amounts.
func ReportMarkdown(r *tripledger.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title(doc, r)
	overview(doc, r)
	groupTable(doc, r)
	settlementSection(doc, r)
	categoryTable(doc, r)
	expenseTable(doc, r)

	return doc.String()
}

// SummaryMarkdown renders the compact view for the terminal: everything
// except the expense list.
func SummaryMarkdown(r *tripledger.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title(doc, r)
	overview(doc, r)
	groupTable(doc, r)
	settlementSection(doc, r)
	categoryTable(doc, r)

	return doc.String()
}

func title(doc *md.Markdown, r *tripledger.Report) {
	if r.Destination != "" && r.Destination != r.Name {
		doc.H1(fmt.Sprintf("%s (%s)", r.Name, r.Destination))
	} else {
		doc.H1(r.Name)
	}
}

func overview(doc *md.Markdown, r *tripledger.Report) {
	doc.PlainText(fmt.Sprintf("Total spent: %s (%s)", r.Total.Round(), r.TotalBase.Round()))
	doc.PlainText(fmt.Sprintf("Exchange rate: 1 %s = %s %s", r.BaseCurrency, r.Rate, r.Currency))
	doc.PlainText(fmt.Sprintf("Generated on %s", r.GeneratedAt.Format("2006-01-02 15:04")))
}

func groupTable(doc *md.Markdown, r *tripledger.Report) {
	doc.H2("Groups")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Group", "People", "Paid", "Share", "Balance"},
		Rows:   [][]string{},
	}
	for _, g := range r.Groups {
		table.Rows = append(table.Rows, []string{
			g.Name,
			fmt.Sprintf("%d", g.Count),
			g.Paid.Round().String(),
			g.Share.Round().String(),
			g.Balance.Round().SignedString(),
		})
	}
	doc.Table(table)
}

func settlementSection(doc *md.Markdown, r *tripledger.Report) {
	doc.H2("Settlement")
	if r.Settled() {
		doc.PlainText("All settled, no transfers needed.")
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"From", "To", "Amount", fmt.Sprintf("In %s", r.BaseCurrency)},
		Rows:   [][]string{},
	}
	for _, s := range r.Settlements {
		table.Rows = append(table.Rows, []string{
			s.FromName,
			s.ToName,
			s.Amount.Round().String(),
			s.AmountBase.Round().String(),
		})
	}
	doc.Table(table)
}

func categoryTable(doc *md.Markdown, r *tripledger.Report) {
	if len(r.Categories) == 0 {
		return
	}
	doc.H2("By category")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Category", "Amount"},
		Rows:      [][]string{},
	}
	for _, c := range r.Categories {
		table.Rows = append(table.Rows, []string{
			c.Category.Label(),
			c.Amount.Round().String(),
		})
	}
	doc.Table(table)
}

func expenseTable(doc *md.Markdown, r *tripledger.Report) {
	if len(r.Expenses) == 0 {
		return
	}
	doc.H2("Expenses")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Description", "Category", "Paid by", "Amount", fmt.Sprintf("In %s", r.BaseCurrency)},
		Rows:   [][]string{},
	}
	for _, e := range r.Expenses {
		table.Rows = append(table.Rows, []string{
			e.Time().Format("2006-01-02"),
			e.Description,
			e.Category.Label(),
			e.PayerName,
			e.Amount.Round().String(),
			e.AmountBase.Round().String(),
		})
	}
	doc.Table(table)
}
