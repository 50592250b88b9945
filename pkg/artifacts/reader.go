package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads scanner artifacts from a single directory.
type Store struct {
	Dir string
}

// NewStore creates a store rooted at dir. The directory is not created here;
// the pipeline owns it.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// ReadResult classifies one artifact file. Parsed implies Found, and Raw is
// set only when Parsed. A result is never updated after Read returns it.
type ReadResult struct {
	Name   string
	Path   string
	Found  bool
	Parsed bool
	Raw    []byte
	Err    string
}

// Read loads the named artifact and classifies it as absent, present but not
// valid JSON, or parsed. It never returns an error; every failure is captured
// in the result.
func (s *Store) Read(name string) ReadResult {
	res := ReadResult{Name: name, Path: filepath.Join(s.Dir, name)}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		if os.IsNotExist(err) {
			res.Err = "file not found"
		} else {
			res.Err = err.Error()
		}
		return res
	}
	res.Found = true

	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		res.Err = fmt.Sprintf("invalid JSON: %v", err)
		return res
	}
	res.Parsed = true
	res.Raw = data
	return res
}
