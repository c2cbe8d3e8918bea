package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixedPicker(i int) Picker {
	return func(n int) int {
		return i
	}
}

func urls(pool []Video) []string {
	var res []string
	for _, v := range pool {
		res = append(res, v.URL)
	}
	return res
}

func TestCatalog_Normalize(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, "math", c.Normalize("MATH"))
	assert.Equal(t, "science", c.Normalize("Science"))
	assert.Equal(t, GeneralSubject, c.Normalize(""))
	assert.Equal(t, "art", c.Normalize("Art"))
}

func TestCatalog_Pool(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, defaultPools["math"], c.Pool("Math"))
	assert.Equal(t, defaultPools["science"], c.Pool("science"))
	for _, s := range []string{"", "art", "history", "general", "MATHS"} {
		assert.Equal(t, defaultPools[GeneralSubject], c.Pool(s), s)
	}
}

func TestCatalog_Pick_Deterministic(t *testing.T) {
	for i, want := range defaultPools["science"] {
		c := NewCatalog(WithPicker(fixedPicker(i)))
		assert.Equal(t, want, c.Pick("science"))
	}
}

func TestCatalog_Pick_MemberOfPool(t *testing.T) {
	c := NewCatalog()
	for _, s := range []string{"math", "science", "art", ""} {
		for i := 0; i < 50; i++ {
			v := c.Pick(s)
			assert.Contains(t, urls(c.Pool(s)), v.URL)
		}
	}
}

func TestCatalog_Pick_OutOfRangePicker(t *testing.T) {
	c := NewCatalog(WithPicker(fixedPicker(42)))
	assert.Equal(t, defaultPools["math"][0], c.Pick("math"))
}

func TestCatalog_Pick_EmptyCatalog(t *testing.T) {
	c := NewCatalog(WithPools(map[string][]Video{}))
	assert.Equal(t, Video{}, c.Pick("math"))
}
