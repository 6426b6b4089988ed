package profile

import (
	"fmt"

	hx "maragu.dev/gomponents-htmx"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/lumenlearn/pagecraft/internal/builder"
	"github.com/lumenlearn/pagecraft/internal/domain"
	"github.com/lumenlearn/pagecraft/internal/i18n"
	"github.com/lumenlearn/pagecraft/internal/ui"
)

// Editor dispatches a profile section to its type-specific editor. A tag
// outside the vocabulary renders the inert unknown notice; the section's
// raw payload is untouched and survives the next save.
func Editor(s builder.Section, putURL, opURL string, tr *i18n.Translator) cmp.Node {
	switch sec := s.(type) {
	case ImageGallerySection:
		return imageGalleryEditor(sec, putURL, opURL)
	case TextSection:
		return textEditor(sec, putURL)
	case LinksSection:
		return linksEditor(sec, putURL, opURL)
	case SkillsSection:
		return skillsEditor(sec, putURL, opURL)
	case ExperienceSection:
		return experienceEditor(sec, putURL, opURL)
	case EducationSection:
		return educationEditor(sec, putURL, opURL)
	case AffiliationSection:
		return affiliationEditor(sec, putURL, opURL)
	case CoursesSection:
		return coursesEditor(sec)
	case builder.UnknownSection:
		return ui.UnknownNotice(tr, sec.Type)
	default:
		return ui.UnknownNotice(tr, s.Kind())
	}
}

// ApplyItemOp applies one list edit to a profile section and returns the
// updated copy. The input section is never mutated.
func ApplyItemOp(s builder.Section, op builder.ItemOp) (builder.Section, error) {
	switch sec := s.(type) {
	case ImageGallerySection:
		if op.Field == "images" {
			var err error
			sec.Images, err = builder.ApplyListOp(sec.Images, op, func() Image { return Image{} })
			return sec, err
		}
	case LinksSection:
		if op.Field == "links" {
			var err error
			sec.Links, err = builder.ApplyListOp(sec.Links, op, func() Link { return Link{} })
			return sec, err
		}
	case SkillsSection:
		if op.Field == "skills" {
			var err error
			sec.Skills, err = builder.ApplyListOp(sec.Skills, op, func() Skill { return Skill{} })
			return sec, err
		}
	case ExperienceSection:
		if op.Field == "experiences" {
			if op.Op == builder.OpToggle {
				if op.Index < 0 || op.Index >= len(sec.Experiences) {
					return nil, domain.ErrIndexOutOfRange
				}
				e := sec.Experiences[op.Index]
				sec.Experiences = builder.ReplaceAt(sec.Experiences, op.Index, e.WithCurrent(!e.Current))
				return sec, nil
			}
			var err error
			sec.Experiences, err = builder.ApplyListOp(sec.Experiences, op, NewExperienceItem)
			return sec, err
		}
	case EducationSection:
		if op.Field == "education" {
			if op.Op == builder.OpToggle {
				if op.Index < 0 || op.Index >= len(sec.Education) {
					return nil, domain.ErrIndexOutOfRange
				}
				e := sec.Education[op.Index]
				sec.Education = builder.ReplaceAt(sec.Education, op.Index, e.WithCurrent(!e.Current))
				return sec, nil
			}
			var err error
			sec.Education, err = builder.ApplyListOp(sec.Education, op, NewEducationItem)
			return sec, err
		}
	case AffiliationSection:
		if op.Field == "affiliations" {
			var err error
			sec.Affiliations, err = builder.ApplyListOp(sec.Affiliations, op, func() Affiliation { return Affiliation{} })
			return sec, err
		}
	}
	return nil, fmt.Errorf("profile: no list field %q on section %q", op.Field, s.Kind())
}

func editorForm(s builder.Section, putURL string, children ...cmp.Node) cmp.Node {
	return g.Form(
		hx.Put(putURL),
		hx.Ext("json-enc"),
		hx.Trigger("change delay:300ms"),
		hx.Swap("none"),
		g.Input(g.Type("hidden"), g.Name("id"), g.Value(s.SectionID())),
		g.Input(g.Type("hidden"), g.Name("type"), g.Value(s.Kind())),
		cmp.Group(children),
	)
}

func textEditor(s TextSection, putURL string) cmp.Node {
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		ui.TextArea("content", "Content", s.Content),
	)
}

func imageGalleryEditor(s ImageGallerySection, putURL, opURL string) cmp.Node {
	items := make([]cmp.Node, 0, len(s.Images))
	for i, img := range s.Images {
		items = append(items, g.Div(
			g.Class("border rounded p-3 mb-2"),
			ui.ItemToolbar(opURL, "images", i),
			ui.TextField(ui.IndexName("images", i, "url"), "Image URL", img.URL),
			ui.TextField(ui.IndexName("images", i, "caption"), "Caption", img.Caption),
		))
	}
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		cmp.Group(items),
		ui.OpButton(opURL, "Add image", builder.ItemOp{Field: "images", Op: builder.OpAdd}),
	)
}

func linksEditor(s LinksSection, putURL, opURL string) cmp.Node {
	items := make([]cmp.Node, 0, len(s.Links))
	for i, l := range s.Links {
		items = append(items, g.Div(
			g.Class("border rounded p-3 mb-2"),
			ui.ItemToolbar(opURL, "links", i),
			ui.TextField(ui.IndexName("links", i, "title"), "Link title", l.Title),
			ui.TextField(ui.IndexName("links", i, "url"), "URL", l.URL),
			ui.TextField(ui.IndexName("links", i, "icon"), "Icon", l.Icon),
		))
	}
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		cmp.Group(items),
		ui.OpButton(opURL, "Add link", builder.ItemOp{Field: "links", Op: builder.OpAdd}),
	)
}

func skillsEditor(s SkillsSection, putURL, opURL string) cmp.Node {
	levels := []string{
		string(SkillBeginner),
		string(SkillIntermediate),
		string(SkillAdvanced),
		string(SkillExpert),
	}
	items := make([]cmp.Node, 0, len(s.Skills))
	for i, sk := range s.Skills {
		items = append(items, g.Div(
			g.Class("border rounded p-3 mb-2"),
			ui.ItemToolbar(opURL, "skills", i),
			ui.TextField(ui.IndexName("skills", i, "name"), "Skill", sk.Name),
			ui.SelectField(ui.IndexName("skills", i, "level"), "Level", string(sk.Level), levels),
			ui.TextField(ui.IndexName("skills", i, "category"), "Category", sk.Category),
		))
	}
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		cmp.Group(items),
		ui.OpButton(opURL, "Add skill", builder.ItemOp{Field: "skills", Op: builder.OpAdd}),
	)
}

func experienceEditor(s ExperienceSection, putURL, opURL string) cmp.Node {
	items := make([]cmp.Node, 0, len(s.Experiences))
	for i, e := range s.Experiences {
		items = append(items, g.Div(
			g.Class("border rounded p-3 mb-2"),
			ui.ItemToolbar(opURL, "experiences", i),
			ui.TextField(ui.IndexName("experiences", i, "title"), "Role", e.Title),
			ui.TextField(ui.IndexName("experiences", i, "organization"), "Organization", e.Organization),
			ui.TextField(ui.IndexName("experiences", i, "startDate"), "Start date", e.StartDate),
			ui.TextField(ui.IndexName("experiences", i, "endDate"), "End date", e.EndDate),
			ui.OpButton(opURL, currentLabel(e.Current), builder.ItemOp{Field: "experiences", Op: builder.OpToggle, Index: i}),
			ui.TextArea(ui.IndexName("experiences", i, "description"), "Description", e.Description),
		))
	}
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		cmp.Group(items),
		ui.OpButton(opURL, "Add experience", builder.ItemOp{Field: "experiences", Op: builder.OpAdd}),
	)
}

func educationEditor(s EducationSection, putURL, opURL string) cmp.Node {
	items := make([]cmp.Node, 0, len(s.Education))
	for i, e := range s.Education {
		items = append(items, g.Div(
			g.Class("border rounded p-3 mb-2"),
			ui.ItemToolbar(opURL, "education", i),
			ui.TextField(ui.IndexName("education", i, "institution"), "Institution", e.Institution),
			ui.TextField(ui.IndexName("education", i, "degree"), "Degree", e.Degree),
			ui.TextField(ui.IndexName("education", i, "field"), "Field of study", e.Field),
			ui.TextField(ui.IndexName("education", i, "startDate"), "Start date", e.StartDate),
			ui.TextField(ui.IndexName("education", i, "endDate"), "End date", e.EndDate),
			ui.OpButton(opURL, currentLabel(e.Current), builder.ItemOp{Field: "education", Op: builder.OpToggle, Index: i}),
		))
	}
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		cmp.Group(items),
		ui.OpButton(opURL, "Add education", builder.ItemOp{Field: "education", Op: builder.OpAdd}),
	)
}

func affiliationEditor(s AffiliationSection, putURL, opURL string) cmp.Node {
	items := make([]cmp.Node, 0, len(s.Affiliations))
	for i, a := range s.Affiliations {
		items = append(items, g.Div(
			g.Class("border rounded p-3 mb-2"),
			ui.ItemToolbar(opURL, "affiliations", i),
			ui.TextField(ui.IndexName("affiliations", i, "name"), "Name", a.Name),
			ui.TextField(ui.IndexName("affiliations", i, "logoUrl"), "Logo URL", a.LogoURL),
			ui.TextArea(ui.IndexName("affiliations", i, "description"), "Description", a.Description),
		))
	}
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		cmp.Group(items),
		ui.OpButton(opURL, "Add affiliation", builder.ItemOp{Field: "affiliations", Op: builder.OpAdd}),
	)
}

// coursesEditor has no payload fields. The section renders the owner's
// courses at view time, so the editor only shows the title.
func coursesEditor(s CoursesSection) cmp.Node {
	return g.Div(
		g.Class("bg-white shadow rounded-lg border border-gray-200 p-6 mb-4"),
		g.H2(g.Class("text-lg font-semibold"), cmp.Text(s.Title)),
		g.P(g.Class("text-sm text-gray-500 mt-1"), cmp.Text("Courses are pulled from your catalog automatically.")),
	)
}

func currentLabel(current bool) string {
	if current {
		return "Mark as finished"
	}
	return "Mark as current"
}
