package specification

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Mobile struct {
	Brand string
	Price int
}

const (
	MI      = "xiaomi"
	VIVO    = "vivo"
	OPPO    = "oppo"
	Samsung = "samsung"
)

func brandIs(brand string) Specification[Mobile] {
	return Must(Equal("brand", func(m Mobile) string { return m.Brand }, brand))
}

// stub counts how often it is evaluated and always answers result.
type stub struct {
	result bool
	calls  atomic.Int64
}

func (s *stub) IsSatisfiedBy(Mobile) bool {
	s.calls.Add(1)
	return s.result
}

func TestSpecification(t *testing.T) {
	isMIMobile := brandIs(MI)
	isVIVOMobile := brandIs(VIVO)
	isOPPOMobile := brandIs(OPPO)
	isSamSungMobile := brandIs(Samsung)

	a := Mobile{Brand: MI}
	assert.True(t, isMIMobile.IsSatisfiedBy(a))
	assert.False(t, isVIVOMobile.IsSatisfiedBy(a))
	assert.False(t, isOPPOMobile.IsSatisfiedBy(a))
	assert.False(t, isSamSungMobile.IsSatisfiedBy(a))

	assert.False(t, Must(And(isMIMobile, isVIVOMobile)).IsSatisfiedBy(a))
	assert.False(t, Must(And(isOPPOMobile, isSamSungMobile)).IsSatisfiedBy(a))

	assert.True(t, Must(Or(isMIMobile, isVIVOMobile)).IsSatisfiedBy(a))
	assert.False(t, Must(Or(isOPPOMobile, isSamSungMobile)).IsSatisfiedBy(a))

	assert.False(t, Must(Not(isMIMobile)).IsSatisfiedBy(a))
	assert.True(t, Must(Not(isVIVOMobile)).IsSatisfiedBy(a))
	assert.True(t, Must(Not(isOPPOMobile)).IsSatisfiedBy(a))
	assert.True(t, Must(Not(isSamSungMobile)).IsSatisfiedBy(a))

	assert.True(t, Must(Disjunction(isOPPOMobile, isSamSungMobile, isMIMobile)).IsSatisfiedBy(a))
	assert.False(t, Must(Conjunction(isMIMobile, isMIMobile, isVIVOMobile)).IsSatisfiedBy(a))
	assert.True(t, Must(Conjunction(isMIMobile)).IsSatisfiedBy(a))
}

func TestAndMatchesBooleanAnd(t *testing.T) {
	mobiles := []Mobile{{Brand: MI, Price: 1}, {Brand: MI, Price: 5}, {Brand: VIVO, Price: 5}, {Brand: VIVO, Price: 1}}
	cheap := Func[Mobile](func(m Mobile) bool { return m.Price < 3 })
	specs := []Specification[Mobile]{brandIs(MI), brandIs(VIVO), cheap, Must(Not[Mobile](cheap))}
	for _, left := range specs {
		for _, right := range specs {
			both := Must(And(left, right))
			either := Must(Or(left, right))
			for _, m := range mobiles {
				assert.Equal(t, left.IsSatisfiedBy(m) && right.IsSatisfiedBy(m), both.IsSatisfiedBy(m))
				assert.Equal(t, left.IsSatisfiedBy(m) || right.IsSatisfiedBy(m), either.IsSatisfiedBy(m))
			}
		}
	}
}

func TestShortCircuit(t *testing.T) {
	a := Mobile{Brand: MI}

	Convey("Given a failing and a passing stub", t, func() {
		failing := &stub{result: false}
		passing := &stub{result: true}

		Convey("And stops at the first unsatisfied child", func() {
			So(Must(And[Mobile](failing, passing)).IsSatisfiedBy(a), ShouldBeFalse)
			So(failing.calls.Load(), ShouldEqual, int64(1))
			So(passing.calls.Load(), ShouldEqual, int64(0))
		})

		Convey("Conjunction stops at the first unsatisfied child", func() {
			So(Must(Conjunction[Mobile](passing, failing, passing)).IsSatisfiedBy(a), ShouldBeFalse)
			So(passing.calls.Load(), ShouldEqual, int64(1))
			So(failing.calls.Load(), ShouldEqual, int64(1))
		})

		Convey("Or stops at the first satisfied child", func() {
			So(Must(Or[Mobile](passing, failing)).IsSatisfiedBy(a), ShouldBeTrue)
			So(passing.calls.Load(), ShouldEqual, int64(1))
			So(failing.calls.Load(), ShouldEqual, int64(0))
		})

		Convey("Disjunction stops at the first satisfied child", func() {
			So(Must(Disjunction[Mobile](failing, passing, failing)).IsSatisfiedBy(a), ShouldBeTrue)
			So(failing.calls.Load(), ShouldEqual, int64(1))
			So(passing.calls.Load(), ShouldEqual, int64(1))
		})
	})
}

func TestNilChildren(t *testing.T) {
	ok := brandIs(MI)
	var nilStub *stub
	var nilFunc Func[Mobile]

	tests := []struct {
		name string
		new  func() (Specification[Mobile], error)
	}{
		{name: "and left", new: func() (Specification[Mobile], error) { return And(nil, ok) }},
		{name: "and right", new: func() (Specification[Mobile], error) { return And(ok, nil) }},
		{name: "and typed nil", new: func() (Specification[Mobile], error) { return And[Mobile](ok, nilStub) }},
		{name: "or func nil", new: func() (Specification[Mobile], error) { return Or[Mobile](nilFunc, ok) }},
		{name: "not", new: func() (Specification[Mobile], error) { return Not[Mobile](nil) }},
		{name: "conjunction empty", new: func() (Specification[Mobile], error) { return Conjunction[Mobile]() }},
		{name: "conjunction nil", new: func() (Specification[Mobile], error) { return Conjunction(ok, nil, ok) }},
		{name: "disjunction empty", new: func() (Specification[Mobile], error) { return Disjunction[Mobile]() }},
		{name: "disjunction nil", new: func() (Specification[Mobile], error) { return Disjunction(nil, ok) }},
		{name: "equal accessor", new: func() (Specification[Mobile], error) { return Equal[Mobile, string]("brand", nil, MI) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := tt.new()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Nil(t, spec)
		})
	}
}

func TestMustPanics(t *testing.T) {
	assert.Panics(t, func() { Must(And[Mobile](nil, nil)) })
}

func TestConjunctionOwnsChildren(t *testing.T) {
	specs := []Specification[Mobile]{brandIs(MI), brandIs(MI)}
	spec := Must(Conjunction(specs...))
	specs[1] = brandIs(VIVO)
	assert.True(t, spec.IsSatisfiedBy(Mobile{Brand: MI}))
}

func TestPurity(t *testing.T) {
	spec := Must(Or(Must(And(brandIs(MI), Func[Mobile](func(m Mobile) bool { return m.Price > 2 }))), brandIs(OPPO)))
	mobiles := []Mobile{{Brand: MI, Price: 3}, {Brand: MI, Price: 1}, {Brand: OPPO}}
	want := []bool{true, false, true}

	for round := 0; round < 3; round++ {
		for i, m := range mobiles {
			assert.Equal(t, want[i], spec.IsSatisfiedBy(m))
		}
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, m := range mobiles {
				assert.Equal(t, want[i], spec.IsSatisfiedBy(m))
			}
		}()
	}
	wg.Wait()
}

func TestDescribe(t *testing.T) {
	spec := Must(Conjunction(brandIs(MI), Must(Or(brandIs(VIVO), Must(Not(brandIs(OPPO)))))))
	assert.Equal(t, "(brand=xiaomi AND (brand=vivo OR NOT brand=oppo))", Describe(spec))
	assert.Equal(t, "func", Describe[Mobile](Func[Mobile](func(Mobile) bool { return true })))
	assert.Equal(t, "*specification.stub", Describe[Mobile](&stub{}))
	assert.Equal(t, "<nil>", Describe[Mobile](nil))
}
