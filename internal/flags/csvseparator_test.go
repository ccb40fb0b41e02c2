package flags

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestCSVSeparator(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		value   string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{";", ';', false},
		{"tab", '\t', false},
		{"", 0, true},
		{";;", 0, true},
		{`"`, 0, true},
	}
	for _, tt := range tests {
		csvSeparatorValue = tt.value
		got, err := CSVSeparator()
		if tt.wantErr {
			c.Assert(err, qt.IsNotNil, qt.Commentf("value %q", tt.value))
			continue
		}
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, tt.want)
	}
}
