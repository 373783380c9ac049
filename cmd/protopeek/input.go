package main

import (
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// readInput reads the whole input from path, or from stdin when path is
// empty or "-". With hexText the input is hex digits, whitespace ignored.
func readInput(path string, stdin io.Reader, hexText bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
		err = errors.Wrap(err, "read stdin")
	} else {
		data, err = os.ReadFile(path)
		err = errors.Wrapf(err, "read %s", path)
	}
	if err != nil {
		return nil, err
	}

	if !hexText {
		return data, nil
	}
	digits := strings.Join(strings.Fields(string(data)), "")
	digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")
	decoded, err := hex.DecodeString(digits)
	if err != nil {
		return nil, errors.Wrap(err, "decode hex input")
	}
	return decoded, nil
}

// sourceName is the input's name in log lines.
func sourceName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
