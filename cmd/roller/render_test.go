package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/KirkDiggler/dicepool/internal/models"
	dicePool "github.com/KirkDiggler/dicepool/internal/pool"
	poolService "github.com/KirkDiggler/dicepool/internal/services/pool"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	record := &models.PoolRecord{
		ID:    "pool-1",
		Label: "Dodge",
		Pool: dicePool.Pool{
			Dice: []dicePool.Die{
				{Value: 7, History: []dicePool.HistoryEntry{{Value: 7, Reason: dicePool.ReasonInitial}}},
				{Value: 1, History: []dicePool.HistoryEntry{
					{Value: 3, Reason: dicePool.ReasonInitial},
					{Value: 1, Reason: "Reroll non successes"},
				}},
			},
			Success: dicePool.Faces{7, 8, 9, 10},
			Double:  dicePool.Faces{10},
		},
	}
	eval := &poolService.Evaluation{Values: []int{7, 1}, Successes: 1}

	var buf bytes.Buffer
	render(&buf, record, eval)

	out := buf.String()
	assert.Contains(t, out, "Dodge (pool-1)")
	assert.Contains(t, out, "success [7, 8, 9, 10]  double [10]")
	assert.Contains(t, out, "dice [7 1]")
	assert.Contains(t, out, "1 successes")
	assert.Contains(t, out, "die 2: 1 Reroll non successes <- 3 Initial")
	assert.NotContains(t, out, "die 1:")
	assert.NotContains(t, out, "BOTCH")
}

func TestRenderBotch(t *testing.T) {
	record := &models.PoolRecord{ID: "pool-2"}
	eval := &poolService.Evaluation{Values: []int{1}, Botch: true}

	var buf bytes.Buffer
	render(&buf, record, eval)

	assert.Contains(t, buf.String(), "0 successes - BOTCH")
}

func TestRenderList(t *testing.T) {
	var buf bytes.Buffer
	renderList(&buf, nil)
	assert.Equal(t, "No pools\n", buf.String())

	buf.Reset()
	renderList(&buf, []*models.PoolRecord{{
		ID:        "pool-1",
		Label:     "Dodge",
		UpdatedAt: time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC),
	}})
	assert.Contains(t, buf.String(), "pool-1")
	assert.Contains(t, buf.String(), "2025-04-19T12:00:00Z")
}
