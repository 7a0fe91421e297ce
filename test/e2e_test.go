package test

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/graeme-hill/calcstuff-go/lib"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	input, err := os.Open("./basic/input.txt")
	require.NoError(t, err)
	defer input.Close()

	expected, err := os.ReadFile("./basic/expected.txt")
	require.NoError(t, err)

	var out bytes.Buffer
	err = lib.RunLines(input, &out, lib.DriverOptions{})
	require.NoError(t, err)

	require.Equal(t, string(expected), out.String())
}

func TestConcurrentEvaluate(t *testing.T) {
	exprs := map[string]float64{
		"1 + 2 * 3":                   7,
		"1 / 3":                       0.33,
		"-10 + (8 * 2.5) - (3 / 1,5)": 8,
		"(4 - 6) * -2":                4,
	}

	var wg sync.WaitGroup
	errs := make(chan error, 100*len(exprs))
	for i := 0; i < 100; i++ {
		for expr, want := range exprs {
			wg.Add(1)
			go func(expr string, want float64) {
				defer wg.Done()
				got, err := lib.Evaluate(expr)
				if err != nil {
					errs <- err
					return
				}
				if got != want {
					errs <- fmt.Errorf("%s: got %v, want %v", expr, got, want)
				}
			}(expr, want)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
