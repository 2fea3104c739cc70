package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/KirkDiggler/dicepool/internal/models"
	poolService "github.com/KirkDiggler/dicepool/internal/services/pool"
)

// render writes a pool, its score and every die's audit trail
func render(w io.Writer, record *models.PoolRecord, eval *poolService.Evaluation) {
	p := record.Pool

	title := record.ID
	if record.Label != "" {
		title = fmt.Sprintf("%s (%s)", record.Label, record.ID)
	}
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "  success %s  double %s  stunt %d  wound %d\n", p.Success, p.Double, p.Stunt, p.Wound)
	fmt.Fprintf(w, "  dice %v\n", eval.Values)

	result := fmt.Sprintf("%d successes", eval.Successes)
	if eval.AutomaticSuccesses > 0 {
		result += fmt.Sprintf(" (%d automatic)", eval.AutomaticSuccesses)
	}
	if eval.Botch {
		result += " - BOTCH"
	}
	fmt.Fprintf(w, "  %s\n", result)

	for i, d := range p.Dice {
		if !d.Rerolled() {
			continue
		}
		steps := make([]string, 0, len(d.History))
		for _, entry := range d.Audit() {
			steps = append(steps, fmt.Sprintf("%d %s", entry.Value, entry.Reason))
		}
		fmt.Fprintf(w, "  die %d: %s\n", i+1, strings.Join(steps, " <- "))
	}
}

func renderList(w io.Writer, records []*models.PoolRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No pools")
		return
	}
	for _, r := range records {
		fmt.Fprintf(w, "%s  %-20s  %v  %s\n", r.ID, r.Label, r.Pool.Values(), r.UpdatedAt.Format(time.RFC3339))
	}
}
