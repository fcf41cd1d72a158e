package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/propsim/internal/motion"
)

type ExportData struct {
	ID         string             `json:"id"`
	Preset     string             `json:"preset"`
	SwingSpeed float64            `json:"swing_speed"`
	MaxAngle   float64            `json:"max_angle"`
	SpinSpeed  float64            `json:"spin_speed"`
	Steps      int                `json:"steps"`
	Ticks      []int              `json:"ticks"`
	Swing      []float64          `json:"swing"`
	Direction  []int              `json:"direction"`
	Spin       []float64          `json:"spin"`
	Turns      []int              `json:"turns"`
	Metrics    map[string]float64 `json:"metrics"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, frames []motion.Frame) error {
	data := ExportData{
		ID:         meta.ID,
		Preset:     meta.Preset,
		SwingSpeed: meta.SwingSpeed,
		MaxAngle:   meta.MaxAngle,
		SpinSpeed:  meta.SpinSpeed,
		Steps:      len(frames),
		Ticks:      make([]int, len(frames)),
		Swing:      make([]float64, len(frames)),
		Direction:  make([]int, len(frames)),
		Spin:       make([]float64, len(frames)),
		Turns:      make([]int, len(frames)),
		Metrics:    meta.Metrics,
	}

	for i, f := range frames {
		data.Ticks[i] = f.Tick
		data.Swing[i] = f.Swing
		data.Direction[i] = int(f.Direction)
		data.Spin[i] = f.Spin
		data.Turns[i] = f.Turns
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteFramesCSV writes tick,swing,direction,spin,turns rows. Angles use the
// shortest representation that parses back to the same float64.
func WriteFramesCSV(w io.Writer, frames []motion.Frame) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"tick", "swing", "direction", "spin", "turns"}); err != nil {
		return err
	}
	for _, f := range frames {
		row := []string{
			strconv.Itoa(f.Tick),
			strconv.FormatFloat(f.Swing, 'g', -1, 64),
			strconv.Itoa(int(f.Direction)),
			strconv.FormatFloat(f.Spin, 'g', -1, 64),
			strconv.Itoa(f.Turns),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
