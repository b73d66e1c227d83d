package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"monopoly/game"
)

type Writer struct {
	baseDir string
}

func NewWriter() (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", "landing", timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// WriteLanding writes one row per board position with its tile kind and
// landing probability.
func (w *Writer) WriteLanding(landings [game.BoardSize]float64) error {
	path := filepath.Join(w.baseDir, "landing.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create landing file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"position", "tile", "probability"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write landing header: %w", err)
	}

	for pos, probability := range landings {
		row := []string{
			strconv.Itoa(pos),
			game.KindOf(pos).String(),
			strconv.FormatFloat(probability, 'g', -1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write landing row: %w", err)
		}
	}

	return nil
}
