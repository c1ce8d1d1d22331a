package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sig-0/policyrates/storage/types"
)

const (
	// DatasetFile is the machine-readable artifact name
	DatasetFile = "rates_data.json"

	// ScriptFile is the dashboard-consumable artifact name
	ScriptFile = "data.js"
)

// scriptHeader precedes the generated assignment; the trailing blank
// line separates the update instructions from the literal
const scriptHeader = `// 세계 각국의 기준금리 데이터 (최신 업데이트)
// 출처: 각국 중앙은행 공식 API 및 발표
// 자동 업데이트: policyrates collect 실행

`

// Storage persists the dataset as the two published artifacts:
// an indented JSON document and a JavaScript source file assigning
// the same array to a module-scope constant
type Storage struct {
	dir string
}

// NewStorage creates a file-backed dataset store rooted at dir.
// The directory is created if it does not exist
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}

	return &Storage{
		dir: dir,
	}, nil
}

// DatasetPath returns the path of the JSON artifact
func (s *Storage) DatasetPath() string {
	return filepath.Join(s.dir, DatasetFile)
}

// ScriptPath returns the path of the JavaScript artifact
func (s *Storage) ScriptPath() string {
	return filepath.Join(s.dir, ScriptFile)
}

// SaveDataset overwrites both artifacts with the given dataset.
// There is no merge and no backup, each run fully replaces the files
func (s *Storage) SaveDataset(_ context.Context, records []*types.Record) error {
	document, err := MarshalDataset(records)
	if err != nil {
		return fmt.Errorf("unable to encode dataset: %w", err)
	}

	if err := os.WriteFile(s.DatasetPath(), document, 0o644); err != nil {
		return fmt.Errorf("unable to write %s: %w", DatasetFile, err)
	}

	script, err := MarshalScript(records)
	if err != nil {
		return fmt.Errorf("unable to encode script: %w", err)
	}

	if err := os.WriteFile(s.ScriptPath(), script, 0o644); err != nil {
		return fmt.Errorf("unable to write %s: %w", ScriptFile, err)
	}

	return nil
}

// LatestDataset reads the JSON artifact back
func (s *Storage) LatestDataset(_ context.Context) ([]*types.Record, error) {
	content, err := os.ReadFile(s.DatasetPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil //nolint:nilnil // valid case, no run yet
		}

		return nil, fmt.Errorf("unable to read %s: %w", DatasetFile, err)
	}

	var records []*types.Record
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", DatasetFile, err)
	}

	return records, nil
}

// MarshalDataset renders the machine-readable artifact: a UTF-8 JSON
// array, 2-space indent, terminated by a newline
func MarshalDataset(records []*types.Record) ([]byte, error) {
	document, err := encodeRecords(records, "  ")
	if err != nil {
		return nil, err
	}

	return append(document, '\n'), nil
}

// MarshalScript renders the dashboard artifact: the fixed header
// comments followed by the dataset assigned to a script constant
func MarshalScript(records []*types.Record) ([]byte, error) {
	literal, err := encodeRecords(records, "    ")
	if err != nil {
		return nil, err
	}

	var script bytes.Buffer

	script.WriteString(scriptHeader)
	script.WriteString("const baseRates = ")
	script.Write(literal)
	script.WriteString(";\n")

	return script.Bytes(), nil
}

// encodeRecords renders the dataset as an indented JSON array with
// HTML escaping off, keeping the Korean names and flag glyphs literal
func encodeRecords(records []*types.Record, indent string) ([]byte, error) {
	if records == nil {
		records = []*types.Record{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	if err := enc.Encode(records); err != nil {
		return nil, err
	}

	// Encode terminates the stream with a newline the literal must not carry
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
