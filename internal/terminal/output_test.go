package terminal

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "json", "yaml"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestPrinter(t *testing.T) {
	v := sample{Name: "Pixel 7", Count: 2, Tags: []string{"screen", "battery"}}

	tests := map[string]struct {
		format Format
		want   string
	}{
		"json": {
			format: FormatJSON,
			want:   "{\n  \"name\": \"Pixel 7\",\n  \"count\": 2,\n  \"tags\": [\n    \"screen\",\n    \"battery\"\n  ]\n}\n",
		},
		"yaml keeps field order": {
			format: FormatYAML,
			want:   "name: Pixel 7\ncount: 2\ntags:\n  - screen\n  - battery\n",
		},
		"table": {
			format: FormatTable,
			want:   "Pixel 7 (2)\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			p := NewPrinter(&buf, tt.format)

			err := p.Print(v, func(w io.Writer) error {
				_, err := io.WriteString(w, "Pixel 7 (2)\n")
				return err
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_TableError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	p := NewPrinter(io.Discard, FormatTable)

	err := p.Print(nil, func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom)
}
