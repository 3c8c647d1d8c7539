// Package util reads and writes the yaml layout and opens the log file.
package util

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OpenLog appends to path, or discards when path is empty or cannot be opened.
func OpenLog(path string, mode os.FileMode) (log io.Writer) {

	if path == "" {
		return io.Discard
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %s\n", err)
		return io.Discard
	}
	return file
}

// CloseLog closes a log from OpenLog.
func CloseLog(log io.Writer) {

	if file, ok := log.(*os.File); ok {
		file.Close()
	}
}

// LoadConfig decodes yaml at path into cfg, rejecting unknown keys.
// An empty file leaves cfg untouched.
func LoadConfig(cfg any, path string) (err error) {

	file, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	err = decoder.Decode(cfg)
	if err == io.EOF {
		return nil
	}
	err = errors.Wrapf(err, "failed to decode %s", path)
	return
}

// WriteConfig encodes cfg as yaml to path, replacing what was there.
func WriteConfig(cfg any, path string, mode os.FileMode) (err error) {

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		err = errors.Wrapf(err, "failed to write to %s", path)
		return
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	err = encoder.Encode(cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to encode to %s", path)
		return
	}

	err = encoder.Close()
	err = errors.Wrapf(err, "failed to flush %s", path)
	return
}

// SampleConfig creates path holding data, leaving an existing file alone.
func SampleConfig(data []byte, path string, mode os.FileMode) (err error) {

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if errors.Is(err, os.ErrExist) {
		return nil
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to create %s", path)
		return
	}
	defer file.Close()

	_, err = file.Write(data)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}
