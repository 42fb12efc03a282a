package grammartoy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Length: 5[ 1,2,3,4,5]", true},
		{"Length: 0[ ]", true},
		{"Length: 0[ 1]", false},
		{"Length: 10[ ]", false},
		{"Length: 10[ 1,200,3,4,5,6,7,8,9,10]", true},
		{"Length: 3[ 1,2]", false},
		{"garbage", false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, Match(c.in))
		})
	}
}

func TestParseReturnsValues(t *testing.T) {
	values, err := Parse("Length: 3[ 1,2,3]")
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]int{1, 2, 3}, values)
}
