package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *PoolTestSuite) TestRerollNotSuccessOnce() {
	p := poolOf(0, 3, 8, 1)
	s.expectRolls(5, 9)

	rerolled, err := p.Reroll(s.mockRoller, NotSuccess{}, ModeOnce)
	s.Require().NoError(err)

	s.Equal([]int{5, 8, 9}, rerolled.Values())

	// The success die is untouched
	s.Equal(p.Dice[1], rerolled.Dice[1])

	for _, i := range []int{0, 2} {
		s.Len(rerolled.Dice[i].History, 2)
		s.Equal(ReasonInitial, rerolled.Dice[i].History[0].Reason)
		s.Equal("Reroll non successes", rerolled.Dice[i].History[1].Reason)
	}

	// The receiver keeps its dice
	s.Equal([]int{3, 8, 1}, p.Values())
	s.Len(p.Dice[0].History, 1)
}

func (s *PoolTestSuite) TestRerollNotTensOnce() {
	p := poolOf(0, 10, 4, 9)
	s.expectRolls(10, 2)

	rerolled, err := p.Reroll(s.mockRoller, NotTens{}, ModeOnce)
	s.Require().NoError(err)

	s.Equal([]int{10, 10, 2}, rerolled.Values())
	s.Equal("Reroll non 10s", rerolled.Dice[1].History[1].Reason)
	s.Len(rerolled.Dice[0].History, 1)
}

func (s *PoolTestSuite) TestRerollOnceLeavesNewMatches() {
	p := poolOf(0, 1, 6)
	s.expectRolls(1)

	rerolled, err := p.Reroll(s.mockRoller, Values{Faces: Faces{1}}, ModeOnce)
	s.Require().NoError(err)

	s.Equal([]int{1, 6}, rerolled.Values())
	s.Equal("Reroll no [1]", rerolled.Dice[0].History[1].Reason)
}

func (s *PoolTestSuite) TestRerollUntilNone() {
	p := poolOf(0, 1, 5, 2)

	// First pass rerolls dice 0 and 2, second pass only die 0
	s.expectRolls(2, 7, 9)

	rerolled, err := p.Reroll(s.mockRoller, Values{Faces: Faces{2, 1}}, ModeUntilNone)
	s.Require().NoError(err)

	s.Equal([]int{9, 5, 7}, rerolled.Values())
	s.Empty(rerolled.Matching(Values{Faces: Faces{1, 2}}))

	s.Equal([]HistoryEntry{
		{Value: 1, Reason: ReasonInitial},
		{Value: 2, Reason: "Reroll until no [1, 2]"},
		{Value: 9, Reason: "Reroll until no [1, 2]"},
	}, rerolled.Dice[0].History)
	s.Len(rerolled.Dice[1].History, 1)
	s.Len(rerolled.Dice[2].History, 2)
}

func (s *PoolTestSuite) TestRerollUntilNoneNotSuccess() {
	p := poolOf(0, 4, 4)
	s.expectRolls(3, 8, 7)

	rerolled, err := p.Reroll(s.mockRoller, NotSuccess{}, ModeUntilNone)
	s.Require().NoError(err)

	s.Equal([]int{7, 8}, rerolled.Values())
	s.Len(rerolled.Dice[0].History, 3)
	s.Len(rerolled.Dice[1].History, 2)
	for _, entry := range rerolled.Dice[0].History[1:] {
		s.Equal("Reroll non successes", entry.Reason)
	}
}

func (s *PoolTestSuite) TestRerollUntilNoneWithoutMatches() {
	p := poolOf(0, 7, 8)

	rerolled, err := p.Reroll(s.mockRoller, NotSuccess{}, ModeUntilNone)
	s.Require().NoError(err)
	s.Equal(p, rerolled)
}

func (s *PoolTestSuite) TestRerollCarriesFrozen() {
	p := poolOf(0, 2)
	p.Dice[0].Frozen = true
	s.expectRolls(8)

	rerolled, err := p.Reroll(s.mockRoller, NotSuccess{}, ModeOnce)
	s.Require().NoError(err)
	s.True(rerolled.Dice[0].Frozen)
}

func (s *PoolTestSuite) TestRerollUsesPoolSuccessSet() {
	p := poolOf(0, 5, 8)
	p.Success = Faces{5, 6}
	s.expectRolls(6)

	rerolled, err := p.Reroll(s.mockRoller, NotSuccess{}, ModeOnce)
	s.Require().NoError(err)
	s.Equal([]int{5, 6}, rerolled.Values())
}

func (s *PoolTestSuite) TestRerollErrors() {
	p := poolOf(0, 1)

	_, err := p.Reroll(s.mockRoller, nil, ModeOnce)
	s.ErrorIs(err, ErrUnknownCriteria)

	_, err = p.Reroll(s.mockRoller, nil, ModeUntilNone)
	s.ErrorIs(err, ErrUnknownCriteria)

	_, err = p.Reroll(s.mockRoller, NotTens{}, Mode(0))
	s.ErrorIs(err, ErrUnknownMode)

	_, err = p.Reroll(nil, NotTens{}, ModeOnce)
	s.ErrorIs(err, ErrNilRoller)

	_, err = p.Pass(s.mockRoller, NotTens{}, Mode(7))
	s.ErrorIs(err, ErrUnknownMode)
}

func (s *PoolTestSuite) TestPassLabelsByMode() {
	p := poolOf(0, 3)
	s.expectRolls(3)

	once, err := p.Pass(s.mockRoller, Values{Faces: Faces{3}}, ModeUntilNone)
	s.Require().NoError(err)

	s.Equal("Reroll until no [3]", once.Dice[0].History[1].Reason)
	s.Equal([]int{0}, once.Matching(Values{Faces: Faces{3}}))
}

func TestMatching(t *testing.T) {
	p := poolOf(0, 10, 3, 7, 1)

	assert.Equal(t, []int{1, 3}, p.Matching(NotSuccess{}))
	assert.Equal(t, []int{1, 2, 3}, p.Matching(NotTens{}))
	assert.Equal(t, []int{0}, p.Matching(Values{Faces: Faces{10}}))
	assert.Nil(t, p.Matching(nil))
}

func TestCriteriaReasons(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		mode     Mode
		expected string
	}{
		{name: "not success once", criteria: NotSuccess{}, mode: ModeOnce, expected: "Reroll non successes"},
		{name: "not success until none", criteria: NotSuccess{}, mode: ModeUntilNone, expected: "Reroll non successes"},
		{name: "not tens once", criteria: NotTens{}, mode: ModeOnce, expected: "Reroll non 10s"},
		{name: "not tens until none", criteria: NotTens{}, mode: ModeUntilNone, expected: "Reroll non 10s"},
		{name: "values once", criteria: Values{Faces: Faces{3, 4, 5}}, mode: ModeOnce, expected: "Reroll no [3, 4, 5]"},
		{name: "values until none", criteria: Values{Faces: Faces{5, 4, 3}}, mode: ModeUntilNone, expected: "Reroll until no [3, 4, 5]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.criteria.reason(tt.mode))
		})
	}
}

func TestCriteriaFaces(t *testing.T) {
	p := Pool{Success: Faces{7, 8, 9, 10}}

	assert.Equal(t, Faces{1, 2, 3, 4, 5, 6}, NotSuccess{}.faces(p))
	assert.Equal(t, Faces{1, 2, 3, 4, 5, 6, 7, 8, 9}, NotTens{}.faces(p))
}

func TestParseCriteria(t *testing.T) {
	c, err := ParseCriteria("not_success")
	require.NoError(t, err)
	assert.Equal(t, NotSuccess{}, c)

	c, err = ParseCriteria("not_10s")
	require.NoError(t, err)
	assert.Equal(t, NotTens{}, c)

	c, err = ParseCriteria("5, 3,4")
	require.NoError(t, err)
	assert.Equal(t, Values{Faces: Faces{3, 4, 5}}, c)

	_, err = ParseCriteria("")
	assert.ErrorIs(t, err, ErrUnknownCriteria)

	_, err = ParseCriteria("3,x")
	assert.ErrorIs(t, err, ErrInvalidFaces)

	// A face no die can show would never match
	_, err = ParseCriteria("12")
	assert.ErrorIs(t, err, ErrInvalidFaces)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("once")
	require.NoError(t, err)
	assert.Equal(t, ModeOnce, m)

	m, err = ParseMode("until_none")
	require.NoError(t, err)
	assert.Equal(t, ModeUntilNone, m)
	assert.Equal(t, "until_none", m.String())

	_, err = ParseMode("forever")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseFaces(t *testing.T) {
	f, err := ParseFaces("")
	require.NoError(t, err)
	assert.Nil(t, f)

	f, err = ParseFaces("10,9,9")
	require.NoError(t, err)
	assert.Equal(t, Faces{9, 10}, f)

	f, err = ParseFaces("1,10")
	require.NoError(t, err)
	assert.Equal(t, Faces{1, 10}, f)

	for _, in := range []string{"0,11", "0", "11", "-1", "7,8,9,10,11"} {
		_, err = ParseFaces(in)
		assert.ErrorIs(t, err, ErrInvalidFaces, in)
	}
}
