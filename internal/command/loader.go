package command

import (
	"fmt"
	"io"
	"os"

	"github.com/apstudio/apstudio/internal/fileutil"
	"gopkg.in/yaml.v3"
)

// Load parses a draft from r with strict field checking. Keys missing from
// the document keep their Default values; unknown keys are an error.
// JSON documents are accepted too, since the field names are shared.
func Load(r io.Reader) (*State, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	state := Default()
	if err := decoder.Decode(&state); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty draft file")
		}
		return nil, fmt.Errorf("failed to parse draft: %w", err)
	}

	return &state, nil
}

// LoadFile loads a draft from the given file path.
func LoadFile(path string) (*State, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the user or the data dir
	if err != nil {
		return nil, fmt.Errorf("failed to open draft file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// LoadFileOrDefault loads the draft at path, returning Default when the file
// does not exist yet.
func LoadFileOrDefault(path string) (*State, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		s := Default()
		return &s, nil
	}
	return LoadFile(path)
}

// WriteFile persists the draft as YAML using an atomic rename.
func WriteFile(path string, s *State) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := fileutil.WriteAtomic(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	return nil
}
