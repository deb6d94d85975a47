package words

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{ err error }

func (s failingSource) ReadEntries(context.Context) ([]Entry, error) { return nil, s.err }
func (failingSource) Describe() string                               { return "failing" }

func TestLoadFile_SingleEntry(t *testing.T) {
	t.Parallel()

	logger, buf := captureLogger()
	path := writeDataset(t, `[{"word": "你", "zhuyin": ["ㄋ","ㄧˇ"], "keys": ["s","u3"]}]`)

	ds := LoadFile(path, logger)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, Entry{Word: "你", Zhuyin: []string{"ㄋ", "ㄧˇ"}, Keys: []string{"s", "u3"}}, ds.At(0))

	recs := logRecords(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "words.loaded", recs[0]["msg"])
	assert.EqualValues(t, 1, recs[0]["count"])
	assert.Equal(t, path, recs[0]["source"])
}

func TestLoadFile_MissingYieldsEmpty(t *testing.T) {
	t.Parallel()

	logger, buf := captureLogger()
	ds := LoadFile(filepath.Join(t.TempDir(), "words.json"), logger)
	require.NotNil(t, ds)
	assert.Equal(t, 0, ds.Len())

	recs := logRecords(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "words.resource_missing", recs[0]["msg"])
	assert.Equal(t, "ERROR", recs[0]["level"])
}

func TestLoadFile_MalformedYieldsEmpty(t *testing.T) {
	t.Parallel()

	logger, buf := captureLogger()
	ds := LoadFile(writeDataset(t, `not json`), logger)
	assert.Equal(t, 0, ds.Len())

	recs := logRecords(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "words.resource_malformed", recs[0]["msg"])
	assert.Contains(t, recs[0]["error"], "malformed")
}

func TestLoadFile_NullElementYieldsEmpty(t *testing.T) {
	t.Parallel()

	logger, buf := captureLogger()
	svc := NewService(LoadFile(writeDataset(t, `[null]`), logger), nil)
	assert.Equal(t, 0, svc.Count())
	_, ok := svc.RandomEntry()
	assert.False(t, ok)

	recs := logRecords(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "words.resource_malformed", recs[0]["msg"])
}

func TestLoad_UnclassifiedErrorYieldsEmpty(t *testing.T) {
	t.Parallel()

	logger, buf := captureLogger()
	ds := Load(context.Background(), failingSource{err: errors.New("connection refused")}, logger)
	assert.Equal(t, 0, ds.Len())

	recs := logRecords(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "words.resource_missing", recs[0]["msg"])
	assert.Equal(t, "failing", recs[0]["source"])
}

func TestLoad_PreservesOrderAndWarnsOnViolations(t *testing.T) {
	t.Parallel()

	logger, buf := captureLogger()
	path := writeDataset(t, `[
		{"word": "一", "zhuyin": ["ㄧ",""], "keys": ["u"," "]},
		{"word": "二", "zhuyin": ["ㄦˋ"], "keys": []},
		{"word": "三", "zhuyin": ["ㄙ","ㄢ",""], "keys": ["n","0"," "]}
	]`)

	ds := LoadFile(path, logger)
	require.Equal(t, 3, ds.Len())
	got := make([]string, 0, ds.Len())
	for _, e := range ds.Entries() {
		got = append(got, e.Word)
	}
	assert.Equal(t, []string{"一", "二", "三"}, got)

	// The misaligned entry is still served as-is.
	assert.Equal(t, "二", ds.At(1).Word)
	assert.Empty(t, ds.At(1).Keys)

	recs := logRecords(t, buf)
	require.Len(t, recs, 2)
	assert.Equal(t, "words.invariant_violations", recs[1]["msg"])
	assert.EqualValues(t, 1, recs[1]["count"])
}

func TestLoad_NilLoggerUsesDefault(t *testing.T) {
	ds := LoadFile(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Equal(t, 0, ds.Len())
}

func TestBundledDataset(t *testing.T) {
	t.Parallel()

	logger, _ := captureLogger()
	ds := LoadFile(filepath.Join("..", "..", "data", "words.json"), logger)

	require.GreaterOrEqual(t, ds.Len(), 25)
	assert.Empty(t, ds.Violations())

	hasTone := false
	for _, e := range ds.Entries() {
		assert.NotEmpty(t, e.Word)
		for _, sym := range e.Zhuyin {
			switch sym {
			case "":
				hasTone = true
			default:
				for _, mark := range []string{"ˊ", "ˇ", "ˋ", "˙"} {
					if len(sym) >= len(mark) && sym[len(sym)-len(mark):] == mark {
						hasTone = true
					}
				}
			}
		}
	}
	assert.True(t, hasTone, "dataset should include tone marks")
}
