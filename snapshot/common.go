package snapshot

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ID is a unique identifier of the snapshot.
type ID struct {
	// Label of the snapshot source (e.g. staging, production).
	Label string
	// Unix time the snapshot was taken at.
	Epoch uint64
}

// String returns hyphen-separated ID fields.
func (x ID) String() string {
	return x.Label + sep + strconv.FormatUint(x.Epoch, 10)
}

// ParseID decodes ID from its String form.
func ParseID(s string) (ID, error) {
	var id ID
	return id, id.decodeString(s)
}

// decodeString decodes ID from '<label>-<epoch>' optionally followed by
// '-<file suffix>'.
func (x *ID) decodeString(s string) error {
	ss := strings.SplitN(s, sep, 3)
	if len(ss) < 2 || ss[0] == "" {
		return fmt.Errorf("expected '<label>%s<epoch>' prefix in '%s'", sep, s)
	}

	n, err := strconv.ParseUint(ss[1], 10, 64)
	if err != nil {
		return fmt.Errorf("decode epoch from '%s': %w", ss[1], err)
	}

	x.Label = ss[0]
	x.Epoch = n

	return nil
}

// global encoding of binary values.
var _encoding = base64.StdEncoding

// manifest is a JSON-encoded summary of the snapshot.
type manifest struct {
	Label     string `json:"label"`
	Epoch     uint64 `json:"epoch"`
	Items     int    `json:"items"`
	StateHash string `json:"stateHash"`
}

// streams groups data streams of the snapshot files.
type streams struct {
	manifest, state io.ReadWriteCloser
}

// close closes all streams.
func (x *streams) close() {
	_ = x.state.Close()
	_ = x.manifest.Close()
}

const (
	// word separator used in snapshot file naming
	sep = "-"
	// suffix of the manifest file
	manifestFileSuffix = "manifest.json"
	// suffix of the state file
	stateFileSuffix = "state.csv"
)

// openStreams opens data streams for the snapshot files located in the
// specified directory. If read flag is set, streams are read-only. Otherwise,
// files must not exist, and streams are write only.
func openStreams(s *streams, dir string, id ID, read bool) error {
	var err error

	pathState := filepath.Join(dir, strings.Join([]string{id.String(), stateFileSuffix}, sep))
	pathManifest := filepath.Join(dir, strings.Join([]string{id.String(), manifestFileSuffix}, sep))

	if !read {
		if err = checkFileNotExists(pathState); err != nil {
			return err
		}
		if err = checkFileNotExists(pathManifest); err != nil {
			return err
		}
	}

	var flag int
	var perm os.FileMode

	if read {
		flag = os.O_RDONLY
	} else {
		flag = os.O_CREATE | os.O_WRONLY
		perm = 0600
	}

	s.state, err = os.OpenFile(pathState, flag, perm)
	if err != nil {
		return fmt.Errorf("open file with state items: %w", err)
	}

	s.manifest, err = os.OpenFile(pathManifest, flag, perm)
	if err != nil {
		_ = s.state.Close()
		return fmt.Errorf("open manifest file: %w", err)
	}

	return nil
}

// checkFileNotExists checks that there is no file at the specified path.
func checkFileNotExists(p string) error {
	_, err := os.Stat(p)
	if !os.IsNotExist(err) {
		if err == nil {
			err = os.ErrExist
		}
		return fmt.Errorf("file '%s' absence check failed: %w", p, err)
	}
	return nil
}
