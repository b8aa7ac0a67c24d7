package wikifmt_test

import (
	"math"
	"testing"

	"github.com/bjaus/wikifmt"
	"github.com/stretchr/testify/assert"
)

func TestRenderRaw(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v       wikifmt.Value
		percent bool
		want    string
	}{
		"text":                  {v: wikifmt.Text("x"), want: "x"},
		"text percent":          {v: wikifmt.Text("x"), percent: true, want: "x%"},
		"signed groups":         {v: wikifmt.Signed(12345), want: "12,345"},
		"signed negative":       {v: wikifmt.Signed(-1234567), want: "-1,234,567"},
		"signed percent":        {v: wikifmt.Signed(5), percent: true, want: "500%"},
		"unsigned small":        {v: wikifmt.Unsigned(999), want: "999"},
		"unsigned percent":      {v: wikifmt.Unsigned(12345), percent: true, want: "1,234,500%"},
		"float rounds":          {v: wikifmt.Floating(2.5), want: "3"},
		"float rounds negative": {v: wikifmt.Floating(-2.5), want: "-3"},
		"float no separators":   {v: wikifmt.Floating(1234567.8), want: "1234568"},
		"float percent no sign": {v: wikifmt.Floating(0.5), percent: true, want: "50"},
		"float percent rounds":  {v: wikifmt.Floating(0.125), percent: true, want: "13"},
		"float negative zero":   {v: wikifmt.Floating(-0.2), want: "0"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.v.RenderRaw(tt.percent))
		})
	}
}

func TestRenderAsInteger(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v       wikifmt.Value
		percent bool
		want    string
	}{
		"text marker":             {v: wikifmt.Text("x"), want: "x[i]"},
		"text marker percent":     {v: wikifmt.Text("x"), percent: true, want: "x[i]%"},
		"signed":                  {v: wikifmt.Signed(1000), want: "1,000"},
		"signed scaled first":     {v: wikifmt.Signed(12345), percent: true, want: "1,234,500%"},
		"signed saturates":        {v: wikifmt.Signed(math.MaxInt64 / 10), percent: true, want: "9,223,372,036,854,775,807%"},
		"signed saturates low":    {v: wikifmt.Signed(math.MinInt64 / 10), percent: true, want: "-9,223,372,036,854,775,808%"},
		"unsigned":                {v: wikifmt.Unsigned(12345678901), want: "12,345,678,901"},
		"float rounds and groups": {v: wikifmt.Floating(1234.5), want: "1,235"},
		"float scales once":       {v: wikifmt.Floating(0.125), percent: true, want: "13%"},
		"float large percent":     {v: wikifmt.Floating(123.456), percent: true, want: "12,346%"},
		"float negative":          {v: wikifmt.Floating(-9999.5), want: "-10,000"},
		"float saturates":         {v: wikifmt.Floating(1e30), want: "9,223,372,036,854,775,807"},
		"float nan":               {v: wikifmt.Floating(math.NaN()), want: "0"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.v.RenderAsInteger(tt.percent))
		})
	}
}

func TestRenderAsFloat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v         wikifmt.Value
		precision int
		percent   bool
		want      string
	}{
		"text marker":             {v: wikifmt.Text("x"), want: "x[f]"},
		"text marker precision":   {v: wikifmt.Text("x"), precision: 2, want: "x[f2]"},
		"text marker percent":     {v: wikifmt.Text("x"), precision: 1, percent: true, want: "x[f1]%"},
		"half rounds away":        {v: wikifmt.Floating(0.125), precision: 2, want: "0.13"},
		"negative half":           {v: wikifmt.Floating(-0.125), precision: 2, want: "-0.13"},
		"scale before rounding":   {v: wikifmt.Floating(0.3333), precision: 1, percent: true, want: "33.3%"},
		"trailing zeros trimmed":  {v: wikifmt.Floating(1.5), precision: 3, want: "1.5"},
		"whole number":            {v: wikifmt.Floating(2), precision: 2, want: "2"},
		"precision zero":          {v: wikifmt.Floating(1234.5678), want: "1235"},
		"precision zero percent":  {v: wikifmt.Floating(0.4), percent: true, want: "40%"},
		"negative zero":           {v: wikifmt.Floating(-0.001), precision: 2, want: "0"},
		"float32 widened":         {v: wikifmt.Float(float32(0.1)), precision: 2, want: "0.1"},
		"huge precision":          {v: wikifmt.Floating(0.5), precision: 400, want: "0.5"},
		"signed widens":           {v: wikifmt.Signed(12345), precision: 2, want: "12345"},
		"signed percent":          {v: wikifmt.Signed(3), precision: 1, percent: true, want: "300%"},
		"unsigned widens":         {v: wikifmt.Unsigned(7), precision: 1, want: "7"},
		"no grouping for float":   {v: wikifmt.Floating(1234567.25), precision: 1, want: "1234567.3"},
		"negative scaled percent": {v: wikifmt.Floating(-0.255), precision: 1, percent: true, want: "-25.5%"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.v.RenderAsFloat(tt.precision, tt.percent))
		})
	}
}
