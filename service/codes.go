package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"scorecard/app_error"
)

// No 0/O or 1/I so codes survive being read aloud across a table.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	codeLength   = 6
	codeAttempts = 10
)

func randomCode() (string, error) {
	code := make([]byte, codeLength)
	limit := big.NewInt(int64(len(codeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// uniqueCode draws codes until taken reports a free one.
func uniqueCode(taken func(code string) (bool, error)) (string, error) {
	for range codeAttempts {
		code, err := randomCode()
		if err != nil {
			return "", err
		}
		used, err := taken(code)
		if err != nil {
			return "", err
		}
		if !used {
			return code, nil
		}
	}
	return "", fmt.Errorf("no free code after %d attempts", codeAttempts)
}

// lookupTaken adapts a by-code lookup where NotFound means the code is free.
func lookupTaken[T any](lookup func(code string) (T, error)) func(string) (bool, error) {
	return func(code string) (bool, error) {
		_, err := lookup(code)
		if err == nil {
			return true, nil
		}
		if app_error.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
}
