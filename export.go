package ranger

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ExportConfig configures the exporting of the simulation.
type ExportConfig struct {
	Filename  string
	OutputDir string // Overrides general.output_path when set
	AsCSV     bool
	Summary   bool
	Timestamp bool
}

// IsUseless returns whether this config doesn't write any sample.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV
}

func (c ExportConfig) outputDir() (string, error) {
	if c.OutputDir != "" {
		return c.OutputDir, nil
	}
	conf, err := rangerConfig()
	if err != nil {
		return "", err
	}
	return conf.outputDir, nil
}

// path returns the full path of an exported file of the given kind and extension.
func (c ExportConfig) path(kind, ext string) (string, error) {
	dir, err := c.outputDir()
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-%s", kind, c.Filename)
	if c.Timestamp {
		t := time.Now()
		name += fmt.Sprintf("-%d-%02d-%02dT%02d.%02d.%02d", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	return filepath.Join(dir, name+"."+ext), nil
}

// createAsCSVFile returns a file which requires a defer close statement!
func createAsCSVFile(conf ExportConfig) (*os.File, error) {
	filename, err := conf.path("thrust", "csv")
	if err != nil {
		return nil, err
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	// Header
	if _, err := fmt.Fprintf(f, `# Creation date (UTC): %s
# Records are <t> <thrust>
#   Time in seconds since the start of the simulation
#   Thrust in Newtons
`, time.Now().UTC()); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// StreamSamples writes the samples of the channel until it is closed.
// The channel is always drained, even when writing fails, so the producer never blocks.
func StreamSamples(conf ExportConfig, sampleChan <-chan Sample) (err error) {
	defer func() {
		for range sampleChan {
		}
	}()
	f, err := createAsCSVFile(conf)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"t", "thrust"}); err != nil {
		return err
	}
	for sample := range sampleChan {
		record := []string{strconv.FormatFloat(sample.Time, 'f', -1, 64), strconv.FormatFloat(sample.Thrust, 'f', -1, 64)}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteSummary saves the summary as JSON next to the exported samples.
func WriteSummary(conf ExportConfig, s Summary) error {
	filename, err := conf.path("summary", "json")
	if err != nil {
		return err
	}
	marsh, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, marsh, 0o644)
}
