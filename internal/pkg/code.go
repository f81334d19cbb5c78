package pkg

import (
	cryptoRand "crypto/rand"
	"math/big"
	"strings"
)

const (
	CaptchaChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
)

// RandCode draws n characters from charset using crypto/rand.
func RandCode(n int, charset string) (string, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(charset)))
	for i := 0; i < n; i++ {
		x, err := cryptoRand.Int(cryptoRand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(charset[x.Int64()])
	}
	return b.String(), nil
}
