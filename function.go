package weave

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"crosswarped.com/weave/pkg/primitives"
	"crosswarped.com/weave/xw_generator/generator"
)

func init() {
	functions.HTTP("GenerateGrid", GenerateGrid)
}

// GenerateRequest is the JSON body accepted by the GenerateGrid function.
// Words must be pre-sanitized uppercase A-Z; trial and worker counts fall
// back to the engine defaults when omitted.
type GenerateRequest struct {
	Words   []string `json:"words"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Wrap    bool     `json:"wrap,omitempty"`
	Trials  int      `json:"trials,omitempty"`
	Workers int      `json:"workers,omitempty"`
	Seed    uint64   `json:"seed,omitempty"`
}

// PlacedWordJSON reports one placed word and where it starts.
type PlacedWordJSON struct {
	Word     string `json:"word"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Vertical bool   `json:"vertical"`
}

// LabelJSON reports one numbered word start for annotation layers.
type LabelJSON struct {
	Number int  `json:"number"`
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Across bool `json:"across"`
	Down   bool `json:"down"`
}

// GenerateResponse carries the finished grid. Rows hold one string per grid
// row with spaces for empty cells; Words is the subset of the input that was
// actually placed.
type GenerateResponse struct {
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Rows      []string         `json:"rows"`
	Words     []PlacedWordJSON `json:"words"`
	Density   float64          `json:"density"`
	Numbering []LabelJSON      `json:"numbering"`
}

// GenerateGrid is the HTTP function surface over the engine: it decodes a
// word list and configuration, runs the full search, and returns the best
// grid found.
func GenerateGrid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}

	cfg := primitives.Config{Width: req.Width, Height: req.Height, Wrap: req.Wrap}
	params := generator.DefaultParams()
	if req.Trials > 0 {
		params.Trials = req.Trials
	}
	if req.Workers > 0 {
		params.Workers = req.Workers
	}
	params.Seed = req.Seed

	gen, err := generator.CreateGenerator(req.Words, cfg, params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	grid, err := gen.Best(r.Context())
	if err != nil {
		// Only cancellation can get here; the search itself never fails.
		if errors.Is(err, r.Context().Err()) {
			http.Error(w, err.Error(), http.StatusRequestTimeout)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := gridResponse(grid)
	slog.InfoContext(r.Context(), "grid generated",
		"width", cfg.Width,
		"height", cfg.Height,
		"words_in", len(req.Words),
		"words_placed", len(resp.Words),
		"density", resp.Density,
		"elapsed", time.Since(start),
	)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "encoding response", "error", err)
	}
}

// gridResponse flattens a finished grid into the wire shape.
func gridResponse(grid *primitives.Grid) GenerateResponse {
	resp := GenerateResponse{
		Width:   grid.Width(),
		Height:  grid.Height(),
		Density: grid.Density(),
	}

	cells := grid.Cells()
	for y := range grid.Height() {
		row := cells[y*grid.Width() : (y+1)*grid.Width()]
		resp.Rows = append(resp.Rows, string(row))
	}
	for _, p := range grid.PlacedWords() {
		resp.Words = append(resp.Words, PlacedWordJSON{
			Word: p.Word, X: p.X, Y: p.Y, Vertical: p.Vertical,
		})
	}
	for _, l := range grid.Numbering() {
		resp.Numbering = append(resp.Numbering, LabelJSON{
			Number: l.Number, X: l.X, Y: l.Y, Across: l.Across, Down: l.Down,
		})
	}
	return resp
}
