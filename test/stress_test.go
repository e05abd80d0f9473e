//go:build stress

package test

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gostonefire/dictionary"
	"github.com/gostonefire/dictionary/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createAndStoreTestdata - Writes nTestdata lines of "key value" pairs with random keys, duplicates may occur
func createAndStoreTestdata(nTestdata int, fileName string) error {
	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	fw := bufio.NewWriter(f)
	for i := 0; i < nTestdata; i++ {
		if _, err = fmt.Fprintf(fw, "k%d %d\n", rand.Int63n(int64(nTestdata)*4), i); err != nil {
			return err
		}
	}

	return fw.Flush()
}

// readTestdata - Calls fn for every "key value" line in fileName
func readTestdata(fileName string, fn func(key string, value int) error) error {
	f, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	var line string
	fr := bufio.NewReader(f)

	for {
		line, err = fr.ReadString('\n')
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("malformed line %q", line)
		}
		value, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		if err = fn(fields[0], value); err != nil {
			return err
		}
	}

	return nil
}

// loadTestdata - Inserts every line of fileName, later lines overwrite earlier ones, and returns the expected content
func loadTestdata(fileName string, d *dictionary.Dictionary[string, int]) (expected map[string]int, err error) {
	expected = make(map[string]int)
	err = readTestdata(fileName, func(key string, value int) error {
		d.Insert(key, value)
		expected[key] = value
		return nil
	})
	return
}

// removeTestdata - Removes every key of fileName, each key only succeeds the first time it is seen
func removeTestdata(fileName string, d *dictionary.Dictionary[string, int]) error {
	removed := make(map[string]bool)
	return readTestdata(fileName, func(key string, _ int) error {
		_, err := d.Remove(key)
		if removed[key] {
			if !errors.Is(err, engine.NoEntryFound{}) {
				return fmt.Errorf("second remove of %s should give NoEntryFound, got %v", key, err)
			}
			return nil
		}
		removed[key] = true
		return err
	})
}

type TestCaseStressTest struct {
	engineName string
	nTestdata  int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all engines", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{engineName: "avltree", nTestdata: 200000},
			{engineName: "chainedhash", nTestdata: 200000},
			{engineName: "sortedarray", nTestdata: 50000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("loads, verifies and removes lots of entries for %s", test.engineName), func(t *testing.T) {
				// Prepare test data
				rand.Seed(123)
				dir := t.TempDir()
				file1 := filepath.Join(dir, "testdata_1.txt")
				file2 := filepath.Join(dir, "testdata_2.txt")
				require.NoError(t, createAndStoreTestdata(test.nTestdata, file1), "create testdata 1")
				require.NoError(t, createAndStoreTestdata(test.nTestdata, file2), "create testdata 2")

				conf, err := dictionary.DecodeConfig[string](map[string]interface{}{"engine": test.engineName})
				require.NoError(t, err, "decode config")
				d, err := dictionary.NewDictionary[string, int](conf)
				require.NoError(t, err, "create dictionary")

				// Load first set
				start := time.Now()
				expected1, err := loadTestdata(file1, d)
				require.NoError(t, err, "load test set 1")
				t.Logf("%s: loaded %d lines in %s", test.engineName, test.nTestdata, time.Since(start))
				assert.Equal(t, len(expected1), d.Size(), "size after set 1")

				// Check all entries of the first set
				start = time.Now()
				for k, v := range expected1 {
					value, err := d.Search(k)
					require.NoError(t, err, "search %s", k)
					require.Equal(t, v, value, "value of %s", k)
				}
				t.Logf("%s: searched %d keys in %s", test.engineName, len(expected1), time.Since(start))

				// Remove first set and load second set
				start = time.Now()
				require.NoError(t, removeTestdata(file1, d), "remove test set 1")
				t.Logf("%s: removed %d keys in %s", test.engineName, len(expected1), time.Since(start))
				assert.Zero(t, d.Size(), "size after removing set 1")

				expected2, err := loadTestdata(file2, d)
				require.NoError(t, err, "load test set 2")

				// Check content by traversal
				seen := 0
				for entry, err := range d.All() {
					require.NoError(t, err, "traversal")
					v, ok := expected2[entry.Key()]
					require.True(t, ok, "unexpected key %s", entry.Key())
					require.Equal(t, v, entry.Value(), "value of %s", entry.Key())
					seen++
				}
				assert.Equal(t, len(expected2), seen, "traversal covers all entries")

				stat := d.Stat()
				assert.Equal(t, len(expected2), stat.Entries, "stat entries")
				t.Logf("%s: entries=%d capacity=%d height=%d modifications=%d", test.engineName, stat.Entries, stat.Capacity, stat.Height, stat.Modifications)
			})
		}
	})
}
