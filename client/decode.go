package client

import (
	"fmt"

	"golang.org/x/text/encoding/htmlindex"
)

// decode converts body from charset to a UTF-8 string. An empty charset
// means UTF-8.
func decode(body []byte, charset string) (string, error) {
	if charset == "" {
		return string(body), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("unknown charset %q: %w", charset, err)
	}

	b, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("decoding %s body: %w", charset, err)
	}

	return string(b), nil
}
