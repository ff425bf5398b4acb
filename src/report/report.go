// Package report renders simulation results for the command line.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"diskarm/src/types"
)

// JoinSequence joins cylinders with sep.
func JoinSequence(seq []int, sep string) string {
	parts := make([]string, len(seq))
	for i, c := range seq {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, sep)
}

// Line renders movement|seek|rotational|transfer|total|c0,c1,... with the
// four times fixed to two decimals.
func Line(res types.Result) string {
	return fmt.Sprintf("%d|%.2f|%.2f|%.2f|%.2f|%s",
		res.Movement,
		res.Timing.Seek,
		res.Timing.Rotational,
		res.Timing.Transfer,
		res.Timing.Total,
		JoinSequence(res.Sequence, ","))
}

// Detail writes a multi-line breakdown of one run.
func Detail(w io.Writer, res types.Result) error {
	rule := strings.Repeat("=", 50)
	lines := []string{
		fmt.Sprintf("%s DISK ACCESS PERFORMANCE", res.Algorithm),
		rule,
		fmt.Sprintf("%-30s: %.2f ms", "Seek Time (head movement)", res.Timing.Seek),
		fmt.Sprintf("%-30s: %.2f ms", "Rotational Latency", res.Timing.Rotational),
		fmt.Sprintf("%-30s: %.2f ms", "Data Transfer Time", res.Timing.Transfer),
		strings.Repeat("-", 30) + " TOTAL " + strings.Repeat("-", 13),
		fmt.Sprintf("%-30s: %.2f ms", "TOTAL ACCESS TIME", res.Timing.Total),
		fmt.Sprintf("%-30s: %d cylinders", "Total Head Movement", res.Movement),
		rule,
		"SERVICE ORDER:",
		JoinSequence(res.Sequence, " -> "),
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// Table writes one row per result and names best in the footer.
func Table(w io.Writer, results []types.Result, best types.Result) {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, []string{
			string(res.Algorithm),
			fmt.Sprintf("%.2f", res.Timing.Seek),
			fmt.Sprintf("%.2f", res.Timing.Rotational),
			fmt.Sprintf("%.2f", res.Timing.Transfer),
			fmt.Sprintf("%.2f", res.Timing.Total),
			strconv.Itoa(res.Movement),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Seek", "Rot", "Xfer", "Total", "Movement"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"Best", string(best.Algorithm), "", "", fmt.Sprintf("%.2f", best.Timing.Total), strconv.Itoa(best.Movement)})
	table.Render()
}
