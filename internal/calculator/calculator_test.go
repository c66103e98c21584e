package calculator_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Rorical/RoriCalc/internal/calculator"
)

type CalculatorSuite struct {
	suite.Suite
	c *calculator.Calculator
}

func (s *CalculatorSuite) SetupTest() {
	s.c = calculator.New()
}

func (s *CalculatorSuite) enter(n string) {
	for _, r := range n {
		s.c.EnterDigit(int(r - '0'))
	}
}

func (s *CalculatorSuite) TestInitialState() {
	require := require.New(s.T())
	require.Equal(int32(0), s.c.Display())
	require.True(s.c.HasEntry())
	_, ok := s.c.Pending()
	require.False(ok, "fresh calculator has no pending operation")
}

func (s *CalculatorSuite) TestDigitsBuildBase10Number() {
	require := require.New(s.T())
	s.enter("0042")
	require.Equal(int32(42), s.c.Display())
	s.enter("7")
	require.Equal(int32(427), s.c.Display())
}

func (s *CalculatorSuite) TestDigitEntrySaturates() {
	require := require.New(s.T())
	s.enter("99999999999999")
	require.Equal(int32(math.MaxInt32), s.c.Display())
	// once saturated further digits change nothing
	s.enter("0")
	require.Equal(int32(math.MaxInt32), s.c.Display())
}

func (s *CalculatorSuite) TestEnterDigitRejectsOutOfRange() {
	require := require.New(s.T())
	require.Panics(func() { s.c.EnterDigit(10) })
	require.Panics(func() { s.c.EnterDigit(-1) })
	require.Equal(int32(0), s.c.Display(), "rejected digit leaves state untouched")
}

func (s *CalculatorSuite) TestClearResetsEverything() {
	require := require.New(s.T())
	s.enter("12")
	s.c.Mul()
	s.enter("3")
	s.c.Clear()
	require.Equal(int32(0), s.c.Display())
	_, ok := s.c.Pending()
	require.False(ok)

	// the discarded operator must not resurface on evaluate
	s.enter("5")
	s.c.Evaluate()
	require.Equal(int32(5), s.c.Display())
}

func (s *CalculatorSuite) TestOperatorShowsPreviousNumber() {
	require := require.New(s.T())
	s.enter("17")
	s.c.Sub()
	require.Equal(int32(17), s.c.Display())
	require.False(s.c.HasEntry())
	op, ok := s.c.Pending()
	require.True(ok)
	require.Equal(calculator.Operation{Kind: calculator.Sub, LHS: 17}, op)

	s.enter("4")
	require.Equal(int32(4), s.c.Display())
}

func (s *CalculatorSuite) TestScenarios() {
	cases := []struct {
		name string
		run  func()
		want int32
	}{
		{"5+3=", func() { s.enter("5"); s.c.Add(); s.enter("3"); s.c.Evaluate() }, 8},
		{"9/0=", func() { s.enter("9"); s.c.Div(); s.enter("0"); s.c.Evaluate() }, 0},
		{"2*3+4=", func() {
			s.enter("2")
			s.c.Mul()
			s.enter("3")
			s.c.Add()
			s.enter("4")
			s.c.Evaluate()
		}, 10},
		{"+=", func() { s.c.Add(); s.c.Evaluate() }, 0},
		{"max+1=", func() { s.enter("2147483647"); s.c.Add(); s.enter("1"); s.c.Evaluate() }, math.MaxInt32},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.c.Clear()
			tc.run()
			s.Require().Equal(tc.want, s.c.Display())
		})
	}
}

func (s *CalculatorSuite) TestChainingShowsIntermediateResult() {
	require := require.New(s.T())
	s.enter("3")
	s.c.Add()
	s.enter("4")
	s.c.Mul()
	require.Equal(int32(7), s.c.Display(), "3+4 evaluated when × is pressed")
	s.enter("2")
	s.c.Evaluate()
	require.Equal(int32(14), s.c.Display())
}

func (s *CalculatorSuite) TestOperatorWithoutRHSUsesZero() {
	require := require.New(s.T())
	s.enter("8")
	s.c.Mul()
	s.c.Evaluate()
	require.Equal(int32(0), s.c.Display(), "8×0")
}

func (s *CalculatorSuite) TestReplacingOperatorEvaluatesAgainstZero() {
	require := require.New(s.T())
	s.enter("6")
	s.c.Add()
	s.c.Mul()
	// 6+0 is evaluated first, then × starts with 6
	require.Equal(int32(6), s.c.Display())
	s.enter("2")
	s.c.Evaluate()
	require.Equal(int32(12), s.c.Display())
}

func (s *CalculatorSuite) TestEvaluateIdempotentWithoutPending() {
	require := require.New(s.T())
	s.enter("5")
	s.c.Add()
	s.enter("3")
	s.c.Evaluate()
	require.Equal(int32(8), s.c.Display())
	for i := 0; i < 3; i++ {
		s.c.Evaluate()
		require.Equal(int32(8), s.c.Display(), "evaluate does not repeat the last operation")
	}
}

func (s *CalculatorSuite) TestDigitsAfterResultExtendIt() {
	require := require.New(s.T())
	s.enter("1")
	s.c.Add()
	s.enter("1")
	s.c.Evaluate()
	s.enter("5")
	require.Equal(int32(25), s.c.Display())
}

func (s *CalculatorSuite) TestSubtractionGoesNegativeAndSaturates() {
	require := require.New(s.T())
	s.enter("3")
	s.c.Sub()
	s.enter("10")
	s.c.Evaluate()
	require.Equal(int32(-7), s.c.Display())

	s.c.Clear()
	s.c.Sub()
	s.enter("2147483647")
	s.c.Sub()
	s.enter("2")
	s.c.Evaluate()
	require.Equal(int32(math.MinInt32), s.c.Display())
}

func TestCalculatorSuite(t *testing.T) {
	suite.Run(t, new(CalculatorSuite))
}

func TestDigitSequenceMatchesParsedValue(t *testing.T) {
	for _, seq := range []string{"0", "7", "10", "123456", "2147483647", "2147483648", "9999999999", "000000000001"} {
		t.Run(seq, func(t *testing.T) {
			c := calculator.New()
			for _, r := range seq {
				c.EnterDigit(int(r - '0'))
			}
			want, err := strconv.ParseInt(seq, 10, 64)
			if err != nil || want > math.MaxInt32 {
				want = math.MaxInt32
			}
			require.Equal(t, int32(want), c.Display())
		})
	}
}

func TestChainingLaw(t *testing.T) {
	cases := []struct{ a, b, c int32 }{
		{1, 2, 3},
		{0, 0, 9},
		{1000, 1000, 1000},
		{2147483647, 5, 1},
		{65536, 0, 65536},
	}
	for _, tc := range cases {
		c := calculator.New()
		enterNumber(c, tc.a)
		c.Add()
		enterNumber(c, tc.b)
		c.Mul()
		enterNumber(c, tc.c)
		c.Evaluate()

		sum := calculator.Operation{Kind: calculator.Add, LHS: tc.a}.Apply(tc.b)
		want := calculator.Operation{Kind: calculator.Mul, LHS: sum}.Apply(tc.c)
		require.Equal(t, want, c.Display(), "(%d+%d)*%d", tc.a, tc.b, tc.c)
	}
}

func TestDivideByZeroLaw(t *testing.T) {
	for _, a := range []int32{0, 1, 9, 123, math.MaxInt32} {
		c := calculator.New()
		enterNumber(c, a)
		c.Div()
		c.EnterDigit(0)
		c.Evaluate()
		require.Equal(t, int32(0), c.Display(), "%d/0", a)
	}
}

func enterNumber(c *calculator.Calculator, n int32) {
	for _, r := range strconv.FormatInt(int64(n), 10) {
		c.EnterDigit(int(r - '0'))
	}
}
