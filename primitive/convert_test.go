package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"value-objects/tree"
)

type fakeLister []any

func (l fakeLister) List() []any { return []any(l) }

type fakeKeyed []tree.Entry[any]

func (k fakeKeyed) Entries() []tree.Entry[any] { return []tree.Entry[any](k) }

func keyedMap() *tree.Map {
	m := tree.NewMap()
	m.SetField("foo", 1)
	m.SetField("bar", 2)

	return m
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		to     KindEnum
		expect any
	}{
		{"sequence", []any{1, 2, 3}, KindSequence, []any{1, 2, 3}},
		{"sequence from typed slice", []int{1, 2, 3}, KindSequence, []any{1, 2, 3}},
		{"sequence from array", [2]string{"a", "b"}, KindSequence, []any{"a", "b"}},
		{"sequence from lister", fakeLister{1, 2, 3}, KindSequence, []any{1, 2, 3}},
		{"sequence from scalar", "1,2", KindSequence, nil},
		{"sequence from mapping keeps keys", keyedMap(), KindSequence, keyedMap()},
		{"sequence from keyed keeps keys", fakeKeyed(keyedMap().Entries()), KindSequence, keyedMap()},
		{"sequence from keyed list", fakeKeyed{{Key: tree.Int(0), Value: "a"}}, KindSequence, []any{"a"}},

		{"boolean", true, KindBool, true},
		{"boolean int", 1, KindBool, true},
		{"boolean zero", 0, KindBool, false},
		{"boolean string", "true", KindBool, true},
		{"boolean string int", "1", KindBool, true},
		{"boolean yes", " Yes ", KindBool, true},
		{"boolean off", "off", KindBool, false},
		{"boolean empty", "", KindBool, false},
		{"boolean unparseable", "maybe", KindBool, nil},
		{"boolean two", 2, KindBool, nil},

		{"float", 1.0, KindFloat, 1.0},
		{"float from string", "1.0", KindFloat, 1.0},
		{"float from int", 1, KindFloat, 1.0},
		{"float from int string", "1", KindFloat, 1.0},
		{"float from float32", float32(0.5), KindFloat, 0.5},
		{"float from word", "foo", KindFloat, nil},
		{"float from bool", true, KindFloat, 1.0},
		{"float from false", false, KindFloat, 0.0},

		{"int", 1, KindInt, 1},
		{"int from string", "1", KindInt, 1},
		{"int from double", 1.0, KindInt, 1},
		{"int from double string", "1.0", KindInt, 1},
		{"int from int64", int64(42), KindInt, 42},
		{"int from fraction", 1.5, KindInt, nil},
		{"int from fraction string", "1.5", KindInt, nil},
		{"int from word", "foo", KindInt, nil},
		{"int from bool", true, KindInt, 1},

		{"string", "1.0", KindString, "1.0"},
		{"string from double", 1.2, KindString, "1.2"},
		{"string from integral double", 3.0, KindString, "3"},
		{"string from int", 10, KindString, "10"},
		{"string from bool", false, KindString, "false"},
		{"string from sequence", []any{1, 2}, KindString, nil},
		{"string from map", map[string]any{}, KindString, nil},

		{"nil", nil, KindInt, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Convert(tt.value, tt.to, CategoryAll))
		})
	}
}

func TestConvertHonorsCategories(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		to      KindEnum
		allowed CategoryEnum
		expect  any
	}{
		{"text number disabled", "12", KindInt, CategoryAll &^ CategoryTextNumber, nil},
		{"text number enabled", "12", KindInt, CategoryTextNumber, 12},
		{"numeric bool disabled", 1, KindBool, CategoryTextualBool, nil},
		{"textual bool disabled", "yes", KindBool, CategoryNumericBool, nil},
		{"safe number disabled", 2.0, KindInt, CategoryNone, nil},
		{"scalar text disabled", 5, KindString, CategoryNone, nil},
		{"sequence copy disabled", []int{1}, KindSequence, CategoryNone, nil},
		{"keyed copy disabled", fakeKeyed(keyedMap().Entries()), KindSequence, CategoryNone, nil},
		{"mapping identity always allowed", keyedMap(), KindSequence, CategoryNone, keyedMap()},
		{"bool to float disabled", true, KindFloat, CategoryAll &^ CategoryNumericBool, nil},
		{"bool to float enabled", true, KindFloat, CategoryNumericBool, 1.0},
		{"identity always allowed", "x", KindString, CategoryNone, "x"},
		{"sequence identity always allowed", []any{1}, KindSequence, CategoryNone, []any{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Convert(tt.value, tt.to, tt.allowed))
		})
	}
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed(KindInt, KindString, CategoryAll))
	assert.True(t, Allowed(KindBool, KindString, CategoryScalarText))
	assert.False(t, Allowed(KindString, KindString, CategoryScalarText))
	assert.False(t, Allowed(KindSequence, KindString, CategoryAll))
	assert.False(t, Allowed(KindInt, KindFloat, CategoryNone))
}
