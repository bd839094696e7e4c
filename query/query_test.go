package query

import (
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-leo/spec-filter/specification"
)

type book struct {
	Title  string
	Author string
	Pages  int
}

var errNotANumber = errors.New("not a number")

func registry(t *testing.T) *Registry[book] {
	r := NewRegistry[book]()
	require.NoError(t, r.Register("title", func(v string) (specification.Specification[book], error) {
		return specification.Equal("title", func(b book) string { return b.Title }, v)
	}))
	require.NoError(t, r.Register("Author", func(v string) (specification.Specification[book], error) {
		return specification.Equal("author", func(b book) string { return b.Author }, v)
	}))
	require.NoError(t, r.Register("pages", func(v string) (specification.Specification[book], error) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(errNotANumber, "%q", v)
		}
		return specification.Equal("pages", func(b book) int { return b.Pages }, n)
	}))
	return r
}

var books = []book{
	{Title: "Dune", Author: "Herbert", Pages: 412},
	{Title: "Emma", Author: "Austen", Pages: 474},
	{Title: "Persuasion", Author: "Austen", Pages: 249},
	{Title: "The Hobbit", Author: "Tolkien", Pages: 310},
}

func matching(spec specification.Specification[book]) []string {
	var titles []string
	for _, b := range books {
		if spec.IsSatisfiedBy(b) {
			titles = append(titles, b.Title)
		}
	}
	return titles
}

func TestParse(t *testing.T) {
	r := registry(t)
	tests := []struct {
		expr string
		want []string
		desc string
	}{
		{expr: "author=Austen", want: []string{"Emma", "Persuasion"}, desc: "author=Austen"},
		{expr: `title="The Hobbit"`, want: []string{"The Hobbit"}, desc: "title=The Hobbit"},
		{expr: "AUTHOR = Austen and pages=249", want: []string{"Persuasion"}, desc: "(author=Austen AND pages=249)"},
		{expr: "author=Austen && pages=249 && title=Persuasion", want: []string{"Persuasion"}, desc: "(author=Austen AND pages=249 AND title=Persuasion)"},
		{expr: "author=Herbert || author=Tolkien", want: []string{"Dune", "The Hobbit"}, desc: "(author=Herbert OR author=Tolkien)"},
		{expr: "author!=Austen", want: []string{"Dune", "The Hobbit"}, desc: "NOT author=Austen"},
		{expr: "not author=Austen", want: []string{"Dune", "The Hobbit"}, desc: "NOT author=Austen"},
		{expr: "!!author=Austen", want: []string{"Emma", "Persuasion"}, desc: "NOT NOT author=Austen"},
		{expr: "author=Herbert or author=Austen and pages=474", want: []string{"Dune", "Emma"}, desc: "(author=Herbert OR (author=Austen AND pages=474))"},
		{expr: "(author=Herbert or author=Austen) and not pages=474", want: []string{"Dune", "Persuasion"}, desc: "((author=Herbert OR author=Austen) AND NOT pages=474)"},
		{expr: `title="say \"hi\""`, want: nil, desc: `title=say "hi"`},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			spec, err := r.Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matching(spec))
			assert.Equal(t, tt.desc, specification.Describe(spec))
		})
	}
}

func TestParseErrors(t *testing.T) {
	r := registry(t)
	tests := []struct {
		expr string
		want error
		msg  string
	}{
		{expr: "", want: ErrSyntax, msg: "expected attribute, got end of expression"},
		{expr: "author", want: ErrSyntax, msg: "expected '=' or '!=', got end of expression"},
		{expr: "author=", want: ErrSyntax, msg: "expected value"},
		{expr: "author=Austen and", want: ErrSyntax, msg: "expected attribute"},
		{expr: "(author=Austen", want: ErrSyntax, msg: "expected ')'"},
		{expr: "author=Austen)", want: ErrSyntax, msg: "expected end of expression, got ')'"},
		{expr: "author=Austen title=Emma", want: ErrSyntax, msg: `got "title"`},
		{expr: `title="Dune`, want: ErrSyntax, msg: "unterminated string"},
		{expr: "author=Austen & pages=1", want: ErrSyntax, msg: "unexpected character"},
		{expr: "publisher=Penguin", want: ErrUnknownAttribute, msg: `"publisher"`},
		{expr: "pages=many", want: errNotANumber, msg: "pages"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			spec, err := r.Parse(tt.expr)
			require.Error(t, err)
			assert.Nil(t, spec)
			assert.True(t, errors.Is(err, tt.want), err.Error())
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestRegister(t *testing.T) {
	r := registry(t)
	assert.Equal(t, []string{"author", "pages", "title"}, r.Attributes())

	err := r.Register("TITLE", func(string) (specification.Specification[book], error) { return nil, nil })
	assert.True(t, errors.Is(err, ErrRegistered))

	err = r.Register(" ", func(string) (specification.Specification[book], error) { return nil, nil })
	assert.True(t, errors.Is(err, specification.ErrInvalidArgument))

	err = r.Register("isbn", nil)
	assert.True(t, errors.Is(err, specification.ErrInvalidArgument))
}

func TestParseNilLeaf(t *testing.T) {
	r := NewRegistry[book]()
	require.NoError(t, r.Register("broken", func(string) (specification.Specification[book], error) { return nil, nil }))
	_, err := r.Parse("broken=yes")
	assert.True(t, errors.Is(err, specification.ErrInvalidArgument))
}
