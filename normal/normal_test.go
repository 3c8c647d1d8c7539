package normal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "tabula/entity"
)

func model() nt.TableModel {
	return nt.TableModel{
		Columns: []nt.Column{
			{Field: "name", Title: "Name"},
			{Field: "age", Title: "Age"},
			{Field: "city", Title: "City", Hidden: true},
			{Field: "email", Title: "Email"},
		},
	}
}

func TestNormalize_Defaults(t *testing.T) {
	out, err := Normalize(model())
	require.NoError(t, err)

	assert.Equal(t, DefaultActions, out.Actions)
	assert.Equal(t, DefaultButtons, out.Buttons)
	assert.Equal(t, DefaultLanguage, out.Language)
	assert.Equal(t, DefaultPageSize, out.PageSize)
	assert.Equal(t, DefaultPageSizes, out.PageSizes)
	assert.Equal(t, 2, out.WindowRadius)
	require.NotNil(t, out.ActionsAt)
	assert.Equal(t, 4, *out.ActionsAt)
}

func TestNormalize_AppendsActionsAndButtons(t *testing.T) {
	tm := model()
	tm.Actions = []nt.Action{{Kind: nt.Custom, Name: "archive", Content: "Archive"}}
	tm.Buttons = []nt.Button{{Kind: nt.CustomButton, Name: "refresh"}}

	out, err := Normalize(tm)
	require.NoError(t, err)

	require.Len(t, out.Actions, 4)
	assert.Equal(t, "archive", out.Actions[0].Name)
	assert.Equal(t, nt.Add, out.Actions[1].Kind)

	require.Len(t, out.Buttons, 6)
	assert.Equal(t, "refresh", out.Buttons[0].Name)
	assert.Equal(t, nt.Excel, out.Buttons[1].Kind)
}

func TestNormalize_LanguageCallerWins(t *testing.T) {
	tm := model()
	tm.Language = nt.Language{"search": "Buscar:", "extra": "x"}

	out, err := Normalize(tm)
	require.NoError(t, err)

	assert.Equal(t, "Buscar:", out.Language["search"])
	assert.Equal(t, "x", out.Language["extra"])
	assert.Equal(t, DefaultLanguage["info"], out.Language["info"])
	assert.Equal(t, "Search:", DefaultLanguage["search"], "defaults must not change")
}

func TestNormalize_LeavesCallerAlone(t *testing.T) {
	tm := model()
	tm.Actions = []nt.Action{{Kind: nt.Custom, Name: "archive"}}
	tm.Language = nt.Language{"search": "Find:"}

	_, err := Normalize(tm)
	require.NoError(t, err)

	assert.Len(t, tm.Actions, 1)
	assert.Len(t, tm.Language, 1)
	assert.Nil(t, tm.ActionsAt)
}

func TestNormalize_SharedLiteral(t *testing.T) {
	tm := model()

	one, err := Normalize(tm)
	require.NoError(t, err)
	two, err := Normalize(tm)
	require.NoError(t, err)

	one.Columns[0].Hidden = true
	one.Language["search"] = "changed"

	assert.False(t, two.Columns[0].Hidden)
	assert.Equal(t, "Search:", two.Language["search"])
}

func TestNormalize_NoColumns(t *testing.T) {
	_, err := Normalize(nt.TableModel{})

	assert.True(t, IsConfiguration(err))
}

func TestNormalize_ActionsAtOutOfRange(t *testing.T) {
	for _, at := range []int{-1, 5} {
		tm := model()
		tm.ActionsAt = &at

		_, err := Normalize(tm)
		assert.True(t, IsConfiguration(err), "at %d", at)
	}
}

func TestNormalize_ActionsAtBounds(t *testing.T) {
	for _, at := range []int{0, 4} {
		tm := model()
		tm.ActionsAt = &at

		out, err := Normalize(tm)
		require.NoError(t, err)
		assert.Equal(t, at, *out.ActionsAt)
	}
}

func TestPartition(t *testing.T) {
	cols := model().Columns

	before, after := Partition(cols, 2)

	assert.Equal(t, []string{"name", "age"}, fields(before))
	assert.Equal(t, []string{"email"}, fields(after))
}

func TestPartition_ActionsLast(t *testing.T) {
	cols := model().Columns

	before, after := Partition(cols, len(cols))

	assert.Equal(t, []string{"name", "age", "email"}, fields(before))
	assert.Empty(t, after)
}

func fields(cols []nt.Column) (names []string) {
	for _, col := range cols {
		names = append(names, col.Field)
	}
	return
}

func TestNormalize_BadPageSize(t *testing.T) {
	for _, size := range []int{-5, -2} {
		tm := model()
		tm.PageSize = size

		_, err := Normalize(tm)
		assert.True(t, IsConfiguration(err), "size %d", size)
	}
}

func TestNormalize_ShowAllPageSize(t *testing.T) {
	tm := model()
	tm.PageSize = -1

	out, err := Normalize(tm)
	require.NoError(t, err)
	assert.Equal(t, -1, out.PageSize)
}

func TestNormalize_BadPageSizes(t *testing.T) {
	for _, sizes := range [][]int{{10, 0, 25}, {-3}, {5, -1, -7}} {
		tm := model()
		tm.PageSizes = sizes

		_, err := Normalize(tm)
		assert.True(t, IsConfiguration(err), "sizes %v", sizes)
	}

	tm := model()
	tm.PageSizes = []int{5, -1}
	out, err := Normalize(tm)
	require.NoError(t, err)
	assert.Equal(t, []int{5, -1}, out.PageSizes)
}
