package imap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFlagSet(t *testing.T) {
	fs := NewFlagSet()
	require.Equal(t, 0, fs.Len())

	fs = NewFlagSet("flag1")
	require.Equal(t, 1, fs.Len())
	require.ElementsMatch(t, fs.ToSlice(), []string{"flag1"})

	fs = NewFlagSet("flag1", "flag1", "FLAG1")
	require.Equal(t, 1, fs.Len())
	require.ElementsMatch(t, fs.ToSlice(), []string{"flag1"})

	fs = NewFlagSet("flag1", "FLAG2", "flag2", "FLAG1")
	require.Equal(t, 2, fs.Len())
	require.ElementsMatch(t, fs.ToSlice(), []string{"flag1", "FLAG2"})
}

func TestNewFlagSet_SystemFlagsAreCanonical(t *testing.T) {
	fs := NewFlagSet(`\SEEN`, `\deleted`, `$Forwarded`)

	require.ElementsMatch(t, fs.ToSlice(), []string{FlagSeen, FlagDeleted, `$Forwarded`})
}

func TestFlagSet_Contains(t *testing.T) {
	fs := NewFlagSet("flag1", "flag2", "flag3", "flag4")
	require.Equal(t, 4, fs.Len())

	require.False(t, NewFlagSet().Contains("flag1"))
	require.True(t, fs.Contains("flag1"))
	require.True(t, fs.Contains("FLAG1"))
	require.True(t, fs.Contains("flAg2"))
	require.False(t, fs.Contains("flag5"))
	require.False(t, fs.Contains("flag4 "))
	require.False(t, fs.Contains(""))

	require.True(t, fs.ContainsAll("flag1", "FLAG4"))
	require.False(t, fs.ContainsAll("flag1", "flag5"))
}

func TestFlagSet_ToSlice(t *testing.T) {
	require.True(t, len(NewFlagSet().ToSlice()) == 0)

	// Check that we return a hard copy.
	fs := NewFlagSet("flag1", "flag2", "flag3")
	sl := fs.ToSlice()
	require.Equal(t, 3, len(sl))

	sl[0] = "flag2"

	require.Equal(t, "flag1", fs.ToSlice()[0])
}

func TestFlagSet_Equals(t *testing.T) {
	require.True(t, NewFlagSet().Equals(NewFlagSet()))
	require.False(t, NewFlagSet().Equals(NewFlagSet("flag1")))

	fs := NewFlagSet("flag1", "flag2", "flag3")
	require.True(t, fs.Equals(NewFlagSet("FLAG3", "FLAG2", "FLAG1")))
	require.False(t, fs.Equals(NewFlagSet("flag3", "flag2")))
}

func TestFlagSet_Add(t *testing.T) {
	fs := NewFlagSet()

	added := fs.Add("flag1")
	require.Equal(t, 0, fs.Len())
	require.True(t, added.Equals(NewFlagSet("flag1")))

	added = added.Add("FLAG1", "flag2")
	require.ElementsMatch(t, added.ToSlice(), []string{"flag1", "flag2"})

	union := added.AddFlagSet(NewFlagSet("flag3", "FLAG2"))
	require.ElementsMatch(t, union.ToSlice(), []string{"flag1", "flag2", "flag3"})
}

func TestFlagSet_AllowsKeywords(t *testing.T) {
	require.False(t, NewFlagSet(FlagSeen).AllowsKeywords())
	require.True(t, NewFlagSet(FlagSeen, `\*`).AllowsKeywords())
}
