package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/pagecraft/internal/builder"
	"github.com/lumenlearn/pagecraft/internal/i18n"
)

func newTestRegistry(t *testing.T) *builder.Registry {
	t.Helper()
	return NewRegistry(i18n.ForLocale("en"))
}

func TestNewEmptySection_EveryTag(t *testing.T) {
	tr := i18n.ForLocale("en")
	for _, tag := range Tags() {
		t.Run(tag, func(t *testing.T) {
			s, ok := NewEmptySection(tag, tr)
			require.True(t, ok)
			assert.Equal(t, tag, s.Kind())
			assert.NotEmpty(t, s.SectionID())
		})
	}

	_, ok := NewEmptySection("unheard-of", tr)
	assert.False(t, ok)
}

func TestAddTextSection_Defaults(t *testing.T) {
	reg := newTestRegistry(t)
	orch := builder.NewOrchestrator(reg, builder.Options{AutoSelectOnAdd: true})

	s, err := orch.AddSection(TypeText)
	require.NoError(t, err)

	sections := orch.Sections()
	require.Len(t, sections, 1)

	text, ok := sections[0].(TextSection)
	require.True(t, ok)
	assert.Equal(t, TypeText, text.Kind())
	assert.Equal(t, "", text.Content, "a new text section starts empty")
	assert.Equal(t, s.SectionID(), text.SectionID())

	idx, selected := orch.Selected()
	require.True(t, selected)
	assert.Equal(t, 0, idx)
}

func TestExperience_WithCurrent(t *testing.T) {
	e := Experience{Title: "Dev", StartDate: "2020-01-01", EndDate: "2023-05-01"}

	cur := e.WithCurrent(true)
	assert.True(t, cur.Current)
	assert.Empty(t, cur.EndDate, "a current role cannot keep an end date")

	back := cur.WithCurrent(false)
	assert.False(t, back.Current)
	assert.Empty(t, back.EndDate, "the end date does not come back on its own")
}

func TestExperienceSection_NormalizeOnDecode(t *testing.T) {
	reg := newTestRegistry(t)
	raw := json.RawMessage(`{
		"id": "s-1",
		"type": "experience",
		"title": "Experience",
		"experiences": [
			{"title":"Dev","organization":"Acme","startDate":"2020-01-01","endDate":"2024-01-01","current":true,"description":""}
		]
	}`)

	s, err := reg.DecodeSection(raw)
	require.NoError(t, err)

	exp, ok := s.(ExperienceSection)
	require.True(t, ok)
	require.Len(t, exp.Experiences, 1)
	assert.True(t, exp.Experiences[0].Current)
	assert.Empty(t, exp.Experiences[0].EndDate, "decode must reconcile current with endDate")
}

func TestEducationSection_FieldName(t *testing.T) {
	reg := newTestRegistry(t)
	s, err := reg.DecodeSection(json.RawMessage(`{
		"id":"s-2","type":"education",
		"education":[{"institution":"MIT","degree":"BS","field":"CS","startDate":"2015-09-01","current":false}]
	}`))
	require.NoError(t, err)

	edu, ok := s.(EducationSection)
	require.True(t, ok)
	require.Len(t, edu.Education, 1)
	assert.Equal(t, "MIT", edu.Education[0].Institution)

	// The persisted field must stay "education".
	out, err := json.Marshal(edu)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"education":[`)
}

func TestSkillLevel_Valid(t *testing.T) {
	assert.True(t, SkillLevel("").Valid())
	assert.True(t, SkillBeginner.Valid())
	assert.True(t, SkillExpert.Valid())
	assert.False(t, SkillLevel("grandmaster").Valid())
}

func TestNewItemDefaults(t *testing.T) {
	e := NewExperienceItem()
	assert.False(t, e.Current)
	assert.NotEmpty(t, e.StartDate)
	assert.Empty(t, e.EndDate)

	ed := NewEducationItem()
	assert.False(t, ed.Current)
	assert.NotEmpty(t, ed.StartDate)
}

func TestApplyItemOp(t *testing.T) {
	t.Run("append link", func(t *testing.T) {
		s := LinksSection{Base: builder.NewBase(TypeLinks, "Links"), Links: []Link{{Title: "one"}}}
		out, err := ApplyItemOp(s, builder.ItemOp{Field: "links", Op: builder.OpAdd})
		require.NoError(t, err)
		assert.Len(t, out.(LinksSection).Links, 2)
		assert.Len(t, s.Links, 1, "input section is untouched")
	})

	t.Run("toggle experience current clears end date", func(t *testing.T) {
		s := ExperienceSection{
			Base: builder.NewBase(TypeExperience, "Experience"),
			Experiences: []Experience{
				{Title: "Dev", StartDate: "2020-01-01", EndDate: "2022-01-01", Current: false},
			},
		}
		out, err := ApplyItemOp(s, builder.ItemOp{Field: "experiences", Op: builder.OpToggle, Index: 0})
		require.NoError(t, err)

		got := out.(ExperienceSection).Experiences[0]
		assert.True(t, got.Current)
		assert.Empty(t, got.EndDate)
	})

	t.Run("toggle out of range", func(t *testing.T) {
		s := ExperienceSection{Base: builder.NewBase(TypeExperience, "Experience")}
		_, err := ApplyItemOp(s, builder.ItemOp{Field: "experiences", Op: builder.OpToggle, Index: 0})
		assert.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		s := TextSection{Base: builder.NewBase(TypeText, "Text")}
		_, err := ApplyItemOp(s, builder.ItemOp{Field: "paragraphs", Op: builder.OpAdd})
		assert.Error(t, err)
	})

	t.Run("reorder skills", func(t *testing.T) {
		s := SkillsSection{
			Base:   builder.NewBase(TypeSkills, "Skills"),
			Skills: []Skill{{Name: "go"}, {Name: "sql"}},
		}
		out, err := ApplyItemOp(s, builder.ItemOp{Field: "skills", Op: builder.OpDown, Index: 0})
		require.NoError(t, err)
		assert.Equal(t, "sql", out.(SkillsSection).Skills[0].Name)
	})
}

func TestEditor_UnknownFallback(t *testing.T) {
	tr := i18n.ForLocale("en")
	node := Editor(builder.UnknownSection{ID: "x", Type: "martian"}, "/put", "/op", tr)
	require.NotNil(t, node)

	html := renderToString(t, node)
	assert.Contains(t, html, "Unknown section")
	assert.Contains(t, html, "martian")
}

func TestEditor_DispatchesKnownTypes(t *testing.T) {
	tr := i18n.ForLocale("en")
	for _, tag := range Tags() {
		t.Run(tag, func(t *testing.T) {
			s, ok := NewEmptySection(tag, tr)
			require.True(t, ok)
			html := renderToString(t, Editor(s, "/put", "/op", tr))
			assert.NotContains(t, html, "Unknown section", "every vocabulary tag needs a real editor")
		})
	}
}
