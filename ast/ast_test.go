// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jdom/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},

		{ast.Float(-0.00239), `-0.00239`},
		{ast.Float(5e21), `5e+21`},

		// A floating-point value whose numeral would otherwise look like an
		// integer gets an explicit fraction, so it reparses as floating.
		{ast.Float(2), `2.0`},

		{ast.Int(0), `0`},
		{ast.Int(15), `15`},
		{ast.Int(-25), `-25`},

		{ast.Array{}, `[]`},
		{ast.Array{
			ast.Bool(false),
		}, `[false]`},
		{ast.Array{
			ast.Bool(true),
			ast.Int(199),
		}, `[true,199]`},
		{ast.Array{
			ast.String("free"),
			ast.String("your"),
			ast.String("mind"),
		}, `["free","your","mind"]`},

		{ast.Object{}, `{}`},
		{ast.Object{
			ast.Field("xs", ast.Null),
		}, `{"xs":null}`},
		{ast.Object{
			ast.Field("name", ast.String("Dennis")),
			ast.Field("age", ast.Int(37)),
			ast.Field("isOld", ast.Bool(false)),
		}, `{"name":"Dennis","age":37,"isOld":false}`},

		{ast.Object{
			ast.Field("values", ast.Array{
				ast.Int(5),
				ast.Int(10),
				ast.Bool(true),
			}),
			ast.Field("page", ast.Object{
				ast.Field("token", ast.String("xyz-pdq-zvm")),
				ast.Field("count", ast.Int(100)),
			}),
		}, `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestFind(t *testing.T) {
	obj := ast.Object{
		ast.Field("a", ast.Int(1)),
		ast.Field("b", ast.Int(2)),
		ast.Field("a", ast.Int(3)),
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf("Find(nonesuch): got %+v, want nil", m)
	}
	if m := obj.Find("b"); m == nil {
		t.Error(`Find(b): got nil, want a member`)
	}

	// With duplicate keys, Find reports the first member in input order.
	m := obj.Find("a")
	if m == nil {
		t.Fatal(`Find(a): got nil, want a member`)
	}
	if diff := cmp.Diff(ast.Int(1), m.Value, numOpt); diff != "" {
		t.Errorf("Find(a): (-want, +got)\n%s", diff)
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  ast.Value
	}{
		{nil, ast.Null},
		{true, ast.Bool(true)},
		{"ok go", ast.String("ok go")},
		{3, ast.Int(3)},
		{int64(-9), ast.Int(-9)},
		{2.5, ast.Float(2.5)},
		{[]any{1, "a", false}, ast.Array{ast.Int(1), ast.String("a"), ast.Bool(false)}},

		// Map keys are emitted in sorted order.
		{map[string]any{"b": 1, "a": nil}, ast.Object{
			ast.Field("a", ast.Null),
			ast.Field("b", ast.Int(1)),
		}},

		// A Value passes through unchanged.
		{ast.Int(11), ast.Int(11)},
	}
	for _, test := range tests {
		got := ast.ToValue(test.input)
		if diff := cmp.Diff(test.want, got, numOpt); diff != "" {
			t.Errorf("ToValue(%+v): (-want, +got)\n%s", test.input, diff)
		}
	}

	t.Run("Unsupported", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
	})
}

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestPath(t *testing.T) {
	v, err := ast.Parse(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, nil, true},
		{"WrongType", []any{11}, nil, true},
		{"BadElement", []any{"list", 1.5}, nil, true},

		{"ArrayPos", []any{"list", 1},
			v.(ast.Object).Find("list").Value.(ast.Array)[1],
			false,
		},
		{"ArrayNeg", []any{"list", -1},
			v.(ast.Object).Find("list").Value.(ast.Array)[1],
			false,
		},
		{"ArrayRange", []any{"o", 25}, nil, true},
		{"ObjPath", []any{"xyz", "d"},
			v.(ast.Object).Find("xyz").Value.(ast.Object).Find("d").Value,
			false,
		},
		{"Deep", []any{"list", 0, "x"}, ast.Int(1), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ast.Path(v, tc.path...)
			if err != nil {
				if !tc.fail {
					t.Fatalf("Path: unexpected error: %v", err)
				}
				return
			}
			if tc.fail {
				t.Fatalf("Path: got %v, want error", got)
			}
			if diff := cmp.Diff(tc.want, got, numOpt); diff != "" {
				t.Errorf("Path: (-want, +got)\n%s", diff)
			}
		})
	}
}
