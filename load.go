package ranger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EngMotor is a motor read from a RASP engine file (.eng).
type EngMotor struct {
	Name           string
	Diameter       float64 // mm
	Length         float64 // mm
	Delays         []string
	PropellantMass float64 // kg
	TotalMass      float64 // kg
	Manufacturer   string
	Profile        *Profile
}

func (m *EngMotor) String() string {
	return fmt.Sprintf("%s by %s (%.0fx%.0f mm)", m.Name, m.Manufacturer, m.Diameter, m.Length)
}

// LoadProfile reads a thrust curve from a file. The format is chosen from the extension:
// .eng (RASP), .json or .yaml/.yml (a list of {t, th} points).
func LoadProfile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".eng":
		m, err := ParseEng(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return m.Profile, nil
	case ".json":
		var knots []Knot
		if err := json.NewDecoder(f).Decode(&knots); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return NewProfile(knots)
	case ".yaml", ".yml":
		var knots []Knot
		if err := yaml.NewDecoder(f).Decode(&knots); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return NewProfile(knots)
	default:
		return nil, fmt.Errorf("%s: unsupported thrust curve format `%s`", path, ext)
	}
}

// ParseEng reads the first motor of a RASP engine file.
func ParseEng(r io.Reader) (*EngMotor, error) {
	var (
		m     *EngMotor
		knots []Knot
	)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		fields := strings.Fields(line)
		if m == nil {
			hdr, err := parseEngHeader(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			m = hdr
			continue
		}
		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			if len(knots) > 0 {
				// Header of the next motor of the file.
				break
			}
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected `time thrust`, got `%s`", lineNo, line)
		}
		th, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		knots = append(knots, Knot{t, th})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: no motor header found", ErrInvalidProfile)
	}
	p, err := NewProfile(knots)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.Name, err)
	}
	m.Profile = p
	return m, nil
}

func parseEngHeader(fields []string) (*EngMotor, error) {
	if len(fields) < 7 {
		return nil, fmt.Errorf("motor header needs 7 fields, got %d", len(fields))
	}
	var nums [4]float64
	for i, idx := range []int{1, 2, 4, 5} {
		v, err := strconv.ParseFloat(fields[idx], 64)
		if err != nil {
			return nil, fmt.Errorf("motor header field #%d: %w", idx+1, err)
		}
		nums[i] = v
	}
	return &EngMotor{
		Name:           fields[0],
		Diameter:       nums[0],
		Length:         nums[1],
		Delays:         strings.Split(fields[3], "-"),
		PropellantMass: nums[2],
		TotalMass:      nums[3],
		Manufacturer:   strings.Join(fields[6:], " "),
	}, nil
}
