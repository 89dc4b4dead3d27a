package utils

import (
	"io"
	"log"
	"math"
)

func Map[A any, B any](input []A, mapper func(A) B) []B {
	output := make([]B, len(input))
	for i, item := range input {
		output[i] = mapper(item)
	}
	return output
}

func Filter[A any](input []A, filter func(A) bool) []A {
	output := make([]A, 0)
	for _, item := range input {
		if filter(item) {
			output = append(output, item)
		}
	}
	return output
}

func Contains[A comparable](input []A, item A) bool {
	for _, i := range input {
		if i == item {
			return true
		}
	}
	return false
}

func Keys[A comparable, B any](input map[A]B) []A {
	keys := make([]A, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	return keys
}

func GroupBy[A any, K comparable](input []A, key func(A) K) map[K][]A {
	groups := make(map[K][]A)
	for _, item := range input {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// RoundTo1 rounds half away from zero to one decimal place.
func RoundTo1(value float64) float64 {
	return math.Round(value*10) / 10
}

func Closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Printf("failed to close: %v", err)
		}
	}
}
