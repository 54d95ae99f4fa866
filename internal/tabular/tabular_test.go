// Copyright Security Ronin, 2026. All rights reserved.

package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	content := "id,pos,name\n1,\"33T WN 12345 67890\",Alice\n2,not-a-coord,Bob\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "pos", "name"}, ds.Headers)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, []string{"1", "33T WN 12345 67890", "Alice"}, ds.Rows[0])
	assert.Equal(t, []string{"2", "not-a-coord", "Bob"}, ds.Rows[1])
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "empty file",
			content: "",
			errMsg:  "reading header",
		},
		{
			name:    "ragged record",
			content: "id,pos\n1,2,3\n",
			errMsg:  "reading records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening input file")
}

func TestCSVWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, closer, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Write([]string{"a", "b"}))
	require.NoError(t, w.Write([]string{"1", "x,y"}))
	require.NoError(t, w.Flush())
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,\"x,y\"\n", string(data))
}

func TestCreateStdout(t *testing.T) {
	w, closer, err := Create("")
	require.NoError(t, err)
	assert.NotNil(t, w)
	require.NoError(t, closer.Close())
}

func TestCreateBadPath(t *testing.T) {
	// Both formats must reject an uncreatable path up front, not after
	// the whole run has been converted.
	for _, name := range []string{"out.csv", "out.xlsx"} {
		t.Run(name, func(t *testing.T) {
			_, _, err := Create(filepath.Join(t.TempDir(), "missing-dir", name))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "creating output file")
		})
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	w, closer, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Write([]string{"id", "pos"}))
	require.NoError(t, w.Write([]string{"1", "33TWN1234567890"}))
	require.NoError(t, w.Write([]string{"2", ""}))
	require.NoError(t, w.Flush())
	require.NoError(t, closer.Close())

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "pos"}, ds.Headers)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, []string{"1", "33TWN1234567890"}, ds.Rows[0])
	// Trailing empty cells come back padded to the header width.
	assert.Equal(t, []string{"2", ""}, ds.Rows[1])
}

type parquetRow struct {
	ID   int64  `parquet:"id"`
	Pos  string `parquet:"pos"`
	Name string `parquet:"name"`
}

func TestLoadParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.parquet")
	f, err := os.Create(path)
	require.NoError(t, err)

	pw := parquet.NewGenericWriter[parquetRow](f)
	_, err = pw.Write([]parquetRow{
		{ID: 1, Pos: "33TWN1234567890", Name: "Alice"},
		{ID: 2, Pos: "not-a-coord", Name: "Bob"},
	})
	require.NoError(t, err)
	require.NoError(t, pw.Close())
	require.NoError(t, f.Close())

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "pos", "name"}, ds.Headers)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, []string{"1", "33TWN1234567890", "Alice"}, ds.Rows[0])
	assert.Equal(t, []string{"2", "not-a-coord", "Bob"}, ds.Rows[1])
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"bytes", []byte("xyz"), "xyz"},
		{"float64", 1.25, "1.25"},
		{"bool", true, "true"},
		{"int64", int64(42), "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.in))
		})
	}
}
