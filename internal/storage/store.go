package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/propsim/internal/motion"
	"github.com/san-kum/propsim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Preset     string             `json:"preset"`
	Timestamp  time.Time          `json:"timestamp"`
	SwingSpeed float64            `json:"swing_speed"`
	MaxAngle   float64            `json:"max_angle"`
	SpinSpeed  float64            `json:"spin_speed"`
	Frames     int                `json:"frames"`
	Metrics    map[string]float64 `json:"metrics"`
}

func NewMetadata(preset string, p motion.Params, result *sim.Result) RunMetadata {
	return RunMetadata{
		Preset:     preset,
		SwingSpeed: p.SwingSpeed,
		MaxAngle:   p.MaxAngle,
		SpinSpeed:  p.SpinSpeed,
		Frames:     result.StepsTaken,
		Metrics:    result.Metrics,
	}
}

// Save writes a run directory and returns its id.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	now := time.Now()
	name := meta.Preset
	if name == "" {
		name = "run"
	}
	meta.ID = fmt.Sprintf("%s_%d", name, now.UnixNano())
	meta.Timestamp = now
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	err := writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}

	err = writeFile(filepath.Join(runDir, framesFile), func(w io.Writer) error {
		return WriteFramesCSV(w, result.Frames)
	})
	if err != nil {
		return "", fmt.Errorf("write frames: %w", err)
	}

	return meta.ID, nil
}

// writeFile creates path, fills it with write and closes it, reporting the
// first error including a failed close.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), metadataFile))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]motion.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []motion.Frame{}, nil
	}

	frames := make([]motion.Frame, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 4 {
			continue
		}

		tick, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		swing, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			continue
		}
		dir, err := strconv.Atoi(rec[2])
		if err != nil {
			continue
		}
		spin, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			continue
		}
		// runs saved before the turns column was added load with zero turns
		var turns int
		if len(rec) > 4 {
			if turns, err = strconv.Atoi(rec[4]); err != nil {
				continue
			}
		}

		frames = append(frames, motion.Frame{
			Tick:      tick,
			Swing:     swing,
			Direction: motion.Direction(dir),
			Spin:      spin,
			Turns:     turns,
		})
	}

	return frames, nil
}
