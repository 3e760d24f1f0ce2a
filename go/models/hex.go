package models

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

var hexCleaner = strings.NewReplacer(`\x`, "", "0x", "", " ", "", "\t", "", "\n", "", "\r", "", ",", "")

// ParseHex decodes "55 48 8b", "\x55\x48\x8b", "0x55,0x48" and plain "55488b".
func ParseHex(s string) ([]byte, error) {
	clean := hexCleaner.Replace(strings.TrimSpace(s))
	code, err := hex.DecodeString(clean)
	if err != nil {
		return nil, errors.Wrap(err, "bad hex input")
	}
	return code, nil
}
