package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagSet(t *testing.T) {
	s := NewFlagSet("b", "a", "a")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))
	assert.Equal(t, []string{"a", "b"}, s.Sorted())

	s.Add("c")
	assert.True(t, s.Has("c"))
}

func TestFlagSet_Difference(t *testing.T) {
	active := NewFlagSet("clj", "devshell", "devsel")
	used := NewFlagSet("clj", "devshell", "other")

	assert.Equal(t, []string{"devsel"}, active.Difference(used).Sorted())
	assert.Empty(t, used.Difference(NewFlagSet("clj", "devshell", "other")).Sorted())
}

func TestFlagSet_Union(t *testing.T) {
	s := NewFlagSet("a")
	s.Union(NewFlagSet("b", "a"))
	assert.Equal(t, []string{"a", "b"}, s.Sorted())
}

func TestRenderTreeResult_Count(t *testing.T) {
	r := &RenderTreeResult{Files: []FileResult{
		{RelPath: "a", Status: StatusWritten},
		{RelPath: "b", Status: StatusSkipped},
		{RelPath: "c", Status: StatusWritten},
	}}

	assert.Equal(t, 2, r.Count(StatusWritten))
	assert.Equal(t, 1, r.Count(StatusSkipped))
}

func TestUsageReport_HasUnused(t *testing.T) {
	var nilReport *UsageReport
	assert.False(t, nilReport.HasUnused())
	assert.False(t, (&UsageReport{}).HasUnused())
	assert.True(t, (&UsageReport{Unused: []UnusedFlag{{Name: "x"}}}).HasUnused())
}
