package pixmask

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrInvalidKey = errors.New("key must be an integer between 0 and 255")
)

// Key is the byte XOR'd with each color channel.
type Key byte

func (k Key) String() string {
	return strconv.Itoa(int(k))
}

// ParseKey validates user input as a Key.
// Surrounding whitespace is ignored, but anything other than a base 10 integer in [0, 255] is rejected with ErrInvalidKey.
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: no key given", ErrInvalidKey)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' is not an integer", ErrInvalidKey, s)
	}
	return KeyFromInt(n)
}

// KeyFromInt will return ErrInvalidKey if n is out of range.
func KeyFromInt(n int) (Key, error) {
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("%w: %d is out of range", ErrInvalidKey, n)
	}
	return Key(n), nil
}

// GenKey will generate a Key from the OS entropy pool.
func GenKey() (Key, error) {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return 0, fmt.Errorf("failed to read random key: %w", err)
	}
	return Key(buf[0]), nil
}
