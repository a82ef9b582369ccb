package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects a report encoding.
type Format string

// Supported report formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want table, json or yaml)", ErrUnknownFormat, name)
	}
}

// Report is the aggregated outcome of a Suite run.
type Report struct {
	Rows      int     `json:"rows" yaml:"rows"`
	Cols      int     `json:"cols" yaml:"cols"`
	ObstacleP float64 `json:"obstacle_p" yaml:"obstacle_p"`
	Trials    int     `json:"trials" yaml:"trials"`
	Seed      int64   `json:"seed" yaml:"seed"`
	Stats     []Stats `json:"-" yaml:"-"`
}

func newReport(s Suite, stats []Stats) *Report {
	return &Report{
		Rows:      s.Rows,
		Cols:      s.Cols,
		ObstacleP: s.ObstacleP,
		Trials:    s.Trials,
		Seed:      s.Seed,
		Stats:     stats,
	}
}

// Write encodes r in the given format.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatTable:
		return r.WriteTable(w)
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

const (
	nameWidth = 38
	ruleWidth = 108
)

// WriteTable prints the header line and one aligned row per config.
// Averages without successful runs print as "nan".
func (r *Report) WriteTable(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Grid: %dx%d, obstacle_p=%v, trials=%d\n\n", r.Rows, r.Cols, r.ObstacleP, r.Trials)
	fmt.Fprintf(&sb, "%-*s %10s %14s %10s %16s %11s\n", nameWidth,
		"Config", "avg ms", "avg expanded", "success", "avg cost(found)", "max subopt")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteByte('\n')
	for _, st := range r.Stats {
		fmt.Fprintf(&sb, "%-*s %10.2f %14.1f %10d %16s %11s\n", nameWidth,
			st.Name, st.AvgMillis, st.AvgExpanded, st.Successes,
			fixed(st.AvgCost, 16, 2), fixed(st.MaxSubopt, 11, 3))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// fixed formats v with prec decimals right-aligned in width, printing NaN as "nan".
func fixed(v float64, width, prec int) string {
	if math.IsNaN(v) {
		return fmt.Sprintf("%*s", width, "nan")
	}
	return fmt.Sprintf("%*.*f", width, prec, v)
}

// statsView is the serialized shape of Stats; NaN becomes null.
type statsView struct {
	Name        string   `json:"name" yaml:"name"`
	Weight      float64  `json:"weight" yaml:"weight"`
	AvgMillis   float64  `json:"avg_ms" yaml:"avg_ms"`
	AvgExpanded float64  `json:"avg_expanded" yaml:"avg_expanded"`
	Successes   int      `json:"success" yaml:"success"`
	Trials      int      `json:"trials" yaml:"trials"`
	AvgCost     *float64 `json:"avg_cost" yaml:"avg_cost"`
	MaxSubopt   *float64 `json:"max_subopt" yaml:"max_subopt"`
}

type reportView struct {
	Report  `yaml:",inline"`
	Configs []statsView `json:"configs" yaml:"configs"`
}

func (r *Report) view() reportView {
	v := reportView{Report: *r, Configs: make([]statsView, len(r.Stats))}
	for i, st := range r.Stats {
		v.Configs[i] = statsView{
			Name:        st.Name,
			Weight:      st.Weight,
			AvgMillis:   st.AvgMillis,
			AvgExpanded: st.AvgExpanded,
			Successes:   st.Successes,
			Trials:      st.Trials,
			AvgCost:     finite(st.AvgCost),
			MaxSubopt:   finite(st.MaxSubopt),
		}
	}
	return v
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// WriteJSON encodes r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.view())
}

// WriteYAML encodes r as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.view()); err != nil {
		return err
	}
	return enc.Close()
}
