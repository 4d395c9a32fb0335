// Package cutstock packs required cut lengths into standard stock bars
// with a first-fit-decreasing heuristic. Bin packing is NP-hard; this
// is an approximation with a pinned deterministic tie-break order
// (descending length, first-opened bar wins, smallest adequate stock
// opens) so output is reproducible.
package cutstock

import (
	"fmt"
	"sort"
)

// Demand is one required cut length and how many pieces of it.
type Demand struct {
	Length   float64 // mm
	Quantity int
	Mark     string // optional bar mark carried through to the layout
}

// Cut is one placed piece on a stock bar.
type Cut struct {
	Length float64
	Mark   string
}

// StockBar is one consumed stock bar and its assigned cuts, in
// placement order. Invariant: sum(cuts) + kerf*len(cuts) + Leftover
// equals Stock.
type StockBar struct {
	Stock    float64 // mm
	Cuts     []Cut
	Leftover float64 // mm
}

// UnfulfillableItem records a demand that fits no stock length.
type UnfulfillableItem struct {
	Demand Demand
	Reason string
}

// Solution is the full packing outcome.
type Solution struct {
	Bars          []StockBar
	Unfulfillable []UnfulfillableItem

	TotalStock float64 // sum of consumed stock lengths (mm)
	TotalCut   float64 // sum of placed cut lengths (mm)
	KerfLoss   float64 // kerf * number of cuts (mm)
	TotalWaste float64 // sum of leftovers (mm)
}

// Optimizer holds the stock configuration.
type Optimizer struct {
	stocks []float64 // ascending
	kerf   float64   // per-cut saw allowance (mm)
}

// New validates the stock configuration. Stock lengths are kept
// ascending so "smallest adequate stock" is a forward scan.
func New(stockLengths []float64, kerf float64) (*Optimizer, error) {
	if len(stockLengths) == 0 {
		return nil, fmt.Errorf("cutstock: at least one stock length is required")
	}
	for _, s := range stockLengths {
		if s <= 0 {
			return nil, fmt.Errorf("cutstock: stock length must be positive, got %.1f", s)
		}
	}
	if kerf < 0 {
		return nil, fmt.Errorf("cutstock: kerf must not be negative, got %.1f", kerf)
	}
	stocks := append([]float64(nil), stockLengths...)
	sort.Float64s(stocks)
	return &Optimizer{stocks: stocks, kerf: kerf}, nil
}

type piece struct {
	length float64
	mark   string
	order  int // original demand position, stabilizes equal lengths
}

type openBar struct {
	stock     float64
	cuts      []Cut
	remaining float64
}

// Optimize packs every demanded piece. Demands that fit no stock are
// reported per item and never abort the rest of the schedule.
func (o *Optimizer) Optimize(demands []Demand) Solution {
	var sol Solution

	// Expand quantities into individual pieces, filtering impossible
	// lengths up front.
	maxStock := o.stocks[len(o.stocks)-1]
	var pieces []piece
	for i, d := range demands {
		if d.Quantity <= 0 || d.Length <= 0 {
			continue
		}
		if d.Length+o.kerf > maxStock {
			sol.Unfulfillable = append(sol.Unfulfillable, UnfulfillableItem{
				Demand: d,
				Reason: fmt.Sprintf("cut length %.0f mm exceeds every stock length (max %.0f mm)", d.Length, maxStock),
			})
			continue
		}
		for q := 0; q < d.Quantity; q++ {
			pieces = append(pieces, piece{length: d.Length, mark: d.Mark, order: i})
		}
	}

	// Descending length; equal lengths keep demand order.
	sort.SliceStable(pieces, func(a, b int) bool {
		if pieces[a].length != pieces[b].length {
			return pieces[a].length > pieces[b].length
		}
		return pieces[a].order < pieces[b].order
	})

	var open []*openBar
	for _, p := range pieces {
		need := p.length + o.kerf
		placed := false
		for _, bar := range open {
			if bar.remaining >= need {
				bar.cuts = append(bar.cuts, Cut{Length: p.length, Mark: p.mark})
				bar.remaining -= need
				placed = true
				break
			}
		}
		if placed {
			continue
		}
		// Open the smallest standard stock the piece fits.
		for _, s := range o.stocks {
			if s >= need {
				open = append(open, &openBar{
					stock:     s,
					cuts:      []Cut{{Length: p.length, Mark: p.mark}},
					remaining: s - need,
				})
				break
			}
		}
	}

	for _, bar := range open {
		sol.Bars = append(sol.Bars, StockBar{
			Stock:    bar.stock,
			Cuts:     bar.cuts,
			Leftover: bar.remaining,
		})
		sol.TotalStock += bar.stock
		sol.TotalWaste += bar.remaining
		for _, c := range bar.cuts {
			sol.TotalCut += c.Length
			sol.KerfLoss += o.kerf
		}
	}
	return sol
}
