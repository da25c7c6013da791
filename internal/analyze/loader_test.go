package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"value-objects/codec"
)

const rosterPkg = "./testdata/roster"

func TestLoader_Load(t *testing.T) {
	loader := NewLoader("")

	pkg, err := loader.Load(rosterPkg)
	require.NoError(t, err)
	assert.Equal(t, "value-objects/internal/analyze/testdata/roster", pkg.PkgPath)
	assert.Equal(t, "roster", pkg.Name)

	again, err := loader.Load(rosterPkg)
	require.NoError(t, err)
	assert.Same(t, pkg, again)
}

func TestLoader_LoadErrors(t *testing.T) {
	_, err := NewLoader("").Load("./testdata/missing")
	assert.Error(t, err)
}

func TestLoader_MemberLayout(t *testing.T) {
	layout, err := NewLoader("").Layout(rosterPkg, "Member")
	require.NoError(t, err)

	assert.Equal(t, "value-objects/internal/analyze/testdata/roster.Member", layout.ID.String())

	expect := []Field{
		{Name: "created_by", Path: "Audit.CreatedBy", Type: "string"},
		{Name: "id", Path: "ID", Type: "integer"},
		{Name: "name", Path: "Name", Type: "string"},
		{Name: "nickname", Path: "Nickname", Type: "string", Nullable: true},
		{Name: "score", Path: "Score", Type: "float"},
		{Name: "tags", Path: "Tags", Type: "sequence<string>", Nullable: true},
		{Name: "extra", Path: "Extra", Type: "sequence", Nullable: true},
		{Name: "limits", Path: "Limits", Type: "mapping<integer>", Nullable: true},
		{Name: "joined", Path: "Joined", Type: "unsupported time.Time"},
		{Name: "team", Path: "Team", Type: "object roster.Team", Nullable: true},
		{Name: "meta", Path: "Meta", Type: "any", Nullable: true},
		{Name: "Revision", Path: "Revision", Type: "integer"},
	}
	assert.Equal(t, expect, layout.Fields)
}

func TestLoader_GenericField(t *testing.T) {
	layout, err := NewLoader("").Layout(rosterPkg, "Team")
	require.NoError(t, err)

	f, ok := layout.Field("members")
	require.True(t, ok)
	assert.Equal(t, "object collection.Collection[*roster.Member]", f.Type)
	assert.True(t, f.Nullable)

	_, ok = layout.Field("Members")
	assert.False(t, ok)
}

func TestLoader_LayoutErrors(t *testing.T) {
	loader := NewLoader("")

	_, err := loader.Layout(rosterPkg, "Missing")
	require.ErrorIs(t, err, ErrTypeNotFound)
	assert.EqualError(t, err, "type not found: value-objects/internal/analyze/testdata/roster.Missing")

	_, err = loader.Layout(rosterPkg, "Status")
	assert.ErrorIs(t, err, ErrNotStruct)
}

func TestLayout_ToTree(t *testing.T) {
	layout := &Layout{Fields: []Field{
		{Name: "created_by", Path: "Audit.CreatedBy", Type: "string"},
		{Name: "tags", Path: "Tags", Type: "sequence<string>", Nullable: true},
	}}

	doc, err := layout.ToTree()
	require.NoError(t, err)

	out, err := codec.EncodeYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, `created_by:
  go: Audit.CreatedBy
  type: string
  nullable: false
tags:
  go: Tags
  type: sequence<string>
  nullable: true
`, string(out))
}
