package common

import (
	"os"
	"testing"
)

func IsTestEnv() bool {
	return testing.Testing()
}

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}

// Mapper applies mapFn to every element of items and collects the results.
func Mapper[T any, R any](items []T, mapFn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, mapFn(item))
	}
	return out
}

// Reducer folds items into a single value, starting from initAcc.
func Reducer[T any, R any](items []T, reduceFn func(R, T) R, initAcc R) R {
	acc := initAcc
	for _, item := range items {
		acc = reduceFn(acc, item)
	}
	return acc
}
