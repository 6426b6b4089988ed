package landing

import (
	"fmt"
	"strconv"

	hx "maragu.dev/gomponents-htmx"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/lumenlearn/pagecraft/internal/builder"
	"github.com/lumenlearn/pagecraft/internal/domain"
	"github.com/lumenlearn/pagecraft/internal/i18n"
	"github.com/lumenlearn/pagecraft/internal/ui"
)

// Editor dispatches a landing section to its type-specific editor. Tags
// outside the vocabulary render the inert unknown notice and their raw
// payload rides along unchanged until the next save.
func Editor(s builder.Section, putURL, opURL string, tr *i18n.Translator) cmp.Node {
	switch sec := s.(type) {
	case HeroSection:
		return heroEditor(sec, putURL, opURL)
	case TextAndImageSection:
		return textAndImageEditor(sec, putURL, opURL)
	case LogosSection:
		return logosEditor(sec, putURL, opURL)
	case PeopleSection:
		return peopleEditor(sec, putURL, opURL)
	case FeaturedCoursesSection:
		return featuredCoursesEditor(sec, putURL, opURL)
	case HeroLeadMagnetSection:
		return heroLeadMagnetEditor(sec, putURL, opURL)
	case AboutSection:
		return aboutEditor(sec, putURL, opURL)
	case TestimonialsGridSection:
		return testimonialsEditor(sec, putURL, opURL)
	case HowItWorksSection:
		return howItWorksEditor(sec, putURL, opURL)
	case PricingSection:
		return pricingEditor(sec, putURL, opURL)
	case TrustSection:
		return trustEditor(sec, putURL, opURL)
	case CommunitySection:
		return communityEditor(sec, putURL, opURL)
	case FAQSection:
		return faqEditor(sec, putURL, opURL)
	case FinalCTASection:
		return finalCTAEditor(sec, putURL, opURL)
	case FooterSection:
		return footerEditor(sec, putURL, opURL)
	case builder.UnknownSection:
		return ui.UnknownNotice(tr, sec.Type)
	default:
		return ui.UnknownNotice(tr, s.Kind())
	}
}

// ApplyItemOp applies one list edit to a landing section and returns the
// updated copy. Nested lists (plan features, footer column links) are
// addressed through op.Parent.
func ApplyItemOp(s builder.Section, op builder.ItemOp) (builder.Section, error) {
	var err error
	switch sec := s.(type) {
	case HeroSection:
		if op.Field == "buttons" {
			sec.Buttons, err = builder.ApplyListOp(sec.Buttons, op, func() Button { return Button{} })
			return sec, err
		}
	case TextAndImageSection:
		if op.Field == "buttons" {
			sec.Buttons, err = builder.ApplyListOp(sec.Buttons, op, func() Button { return Button{} })
			return sec, err
		}
	case LogosSection:
		if op.Field == "logos" {
			sec.Logos, err = builder.ApplyListOp(sec.Logos, op, func() Image { return Image{} })
			return sec, err
		}
	case PeopleSection:
		if op.Field == "people" {
			sec.People, err = builder.ApplyListOp(sec.People, op, func() Person { return Person{} })
			return sec, err
		}
	case FeaturedCoursesSection:
		if op.Field == "courses" {
			sec.Courses, err = builder.ApplyListOp(sec.Courses, op, func() CourseRef { return CourseRef{} })
			return sec, err
		}
	case HeroLeadMagnetSection:
		if op.Field == "headline" {
			sec.Headline, err = builder.ApplyListOp(sec.Headline, op, func() ColoredTextSegment { return ColoredTextSegment{} })
			return sec, err
		}
	case AboutSection:
		switch op.Field {
		case "bullets":
			sec.Bullets, err = builder.ApplyListOp(sec.Bullets, op, func() string { return "" })
			return sec, err
		case "body":
			sec.Body, err = builder.ApplyListOp(sec.Body, op, func() string { return "" })
			return sec, err
		}
	case TestimonialsGridSection:
		if op.Field == "items" {
			sec.Items, err = builder.ApplyListOp(sec.Items, op, func() TestimonialCard { return TestimonialCard{} })
			return sec, err
		}
	case HowItWorksSection:
		if op.Field == "steps" {
			sec.Steps, err = builder.ApplyListOp(sec.Steps, op, func() HowItWorksStep { return HowItWorksStep{} })
			return sec, err
		}
	case PricingSection:
		switch op.Field {
		case "plans":
			sec.Plans, err = builder.ApplyListOp(sec.Plans, op, func() PricingPlan {
				return PricingPlan{Features: []PricingFeature{}}
			})
			return sec, err
		case "features":
			if op.Parent < 0 || op.Parent >= len(sec.Plans) {
				return nil, domain.ErrIndexOutOfRange
			}
			plan := sec.Plans[op.Parent]
			if op.Op == builder.OpToggle {
				if op.Index < 0 || op.Index >= len(plan.Features) {
					return nil, domain.ErrIndexOutOfRange
				}
				f := plan.Features[op.Index]
				f.State = f.State.Toggle()
				plan.Features = builder.ReplaceAt(plan.Features, op.Index, f)
			} else {
				plan.Features, err = builder.ApplyListOp(plan.Features, op, func() PricingFeature {
					return PricingFeature{State: FeatureIncluded}
				})
				if err != nil {
					return nil, err
				}
			}
			sec.Plans = builder.ReplaceAt(sec.Plans, op.Parent, plan)
			return sec, nil
		case "footerHighlights":
			sec.FooterHighlights, err = builder.ApplyListOp(sec.FooterHighlights, op, func() string { return "" })
			return sec, err
		}
	case TrustSection:
		switch op.Field {
		case "cards":
			sec.Cards, err = builder.ApplyListOp(sec.Cards, op, func() TrustCard { return TrustCard{} })
			return sec, err
		case "trustRow":
			sec.TrustRow, err = builder.ApplyListOp(sec.TrustRow, op, func() string { return "" })
			return sec, err
		}
	case CommunitySection:
		if op.Field == "bullets" {
			sec.Bullets, err = builder.ApplyListOp(sec.Bullets, op, func() string { return "" })
			return sec, err
		}
	case FAQSection:
		if op.Field == "items" {
			sec.Items, err = builder.ApplyListOp(sec.Items, op, func() FAQItem { return FAQItem{} })
			return sec, err
		}
	case FinalCTASection:
		if op.Field == "title" {
			sec.Title, err = builder.ApplyListOp(sec.Title, op, func() ColoredTextSegment { return ColoredTextSegment{} })
			return sec, err
		}
	case FooterSection:
		switch op.Field {
		case "columns":
			sec.Columns, err = builder.ApplyListOp(sec.Columns, op, func() FooterColumn {
				return FooterColumn{Links: []builder.NavbarLink{}}
			})
			return sec, err
		case "links":
			if op.Parent < 0 || op.Parent >= len(sec.Columns) {
				return nil, domain.ErrIndexOutOfRange
			}
			col := sec.Columns[op.Parent]
			col.Links, err = builder.ApplyListOp(col.Links, op, func() builder.NavbarLink { return builder.NavbarLink{} })
			if err != nil {
				return nil, err
			}
			sec.Columns = builder.ReplaceAt(sec.Columns, op.Parent, col)
			return sec, nil
		}
	}
	return nil, fmt.Errorf("landing: no list field %q on section %q", op.Field, s.Kind())
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

func itemBox(children ...cmp.Node) cmp.Node {
	return g.Div(g.Class("border rounded p-3 mb-2"), cmp.Group(children))
}

func accentOptions() []string {
	return []string{
		string(AccentBlue),
		string(AccentOrange),
		string(AccentGreen),
		string(AccentPurple),
		string(AccentNeutral),
	}
}

func segmentEditor(field string, opURL string, segments []ColoredTextSegment) cmp.Node {
	items := make([]cmp.Node, 0, len(segments)+1)
	for i, seg := range segments {
		items = append(items, itemBox(
			ui.ItemToolbar(opURL, field, i),
			ui.TextField(ui.IndexName(field, i, "text"), "Text", seg.Text),
			ui.SelectField(ui.IndexName(field, i, "colorKey"), "Accent", string(seg.ColorKey), accentOptions()),
		))
	}
	items = append(items, ui.OpButton(opURL, "Add segment", builder.ItemOp{Field: field, Op: builder.OpAdd}))
	return cmp.Group(items)
}

func stringListEditor(field, label, addLabel, opURL string, values []string) cmp.Node {
	items := make([]cmp.Node, 0, len(values)+1)
	for i, v := range values {
		items = append(items, itemBox(
			ui.ItemToolbar(opURL, field, i),
			ui.TextField(field+"."+strconv.Itoa(i), label, v),
		))
	}
	items = append(items, ui.OpButton(opURL, addLabel, builder.ItemOp{Field: field, Op: builder.OpAdd}))
	return cmp.Group(items)
}

func ctaFields(prefix, label string, cta CTA) cmp.Node {
	return g.FieldSet(
		g.Class("border rounded p-3 mb-3"),
		g.Legend(g.Class("text-sm font-medium text-gray-600 px-1"), cmp.Text(label)),
		ui.TextField(prefix+".label", "Label", cta.Label),
		ui.TextField(prefix+".href", "Link", cta.Href),
	)
}

func buttonListEditor(opURL string, buttons []Button) cmp.Node {
	items := make([]cmp.Node, 0, len(buttons)+1)
	for i, b := range buttons {
		items = append(items, itemBox(
			ui.ItemToolbar(opURL, "buttons", i),
			ui.TextField(ui.IndexName("buttons", i, "text"), "Text", b.Text),
			ui.TextField(ui.IndexName("buttons", i, "link"), "Link", b.Link),
			ui.TextField(ui.IndexName("buttons", i, "color"), "Text color", b.Color),
			ui.TextField(ui.IndexName("buttons", i, "background"), "Background", b.Background),
		))
	}
	items = append(items, ui.OpButton(opURL, "Add button", builder.ItemOp{Field: "buttons", Op: builder.OpAdd}))
	return cmp.Group(items)
}

func heroEditor(s HeroSection, putURL, opURL string) cmp.Node {
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		ui.TextField("heading.text", "Heading", s.Heading.Text),
		ui.TextField("heading.color", "Heading color", s.Heading.Color),
		ui.TextField("subheading.text", "Subheading", s.Subheading.Text),
		ui.SelectField("background.type", "Background", s.Background.Type, []string{"solid", "gradient", "image"}),
		ui.TextField("background.color", "Background color", s.Background.Color),
		ui.TextField("background.image", "Background image", s.Background.Image),
		ui.SelectField("contentAlign", "Content align", s.ContentAlign, []string{"left", "center", "right"}),
		buttonListEditor(opURL, s.Buttons),
	)
}

func textAndImageEditor(s TextAndImageSection, putURL, opURL string) cmp.Node {
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		ui.TextArea("text", "Text", s.Text),
		ui.SelectField("flow", "Image side", s.Flow, []string{"left", "right"}),
		ui.TextField("image.url", "Image URL", s.Image.URL),
		ui.TextField("image.alt", "Image alt text", s.Image.Alt),
		buttonListEditor(opURL, s.Buttons),
	)
}

func logosEditor(s LogosSection, putURL, opURL string) cmp.Node {
	items := make([]cmp.Node, 0, len(s.Logos)+1)
	for i, l := range s.Logos {
		items = append(items, itemBox(
			ui.ItemToolbar(opURL, "logos", i),
			ui.TextField(ui.IndexName("logos", i, "url"), "Logo URL", l.URL),
			ui.TextField(ui.IndexName("logos", i, "alt"), "Alt text", l.Alt),
		))
	}
	items = append(items, ui.OpButton(opURL, "Add logo", builder.ItemOp{Field: "logos", Op: builder.OpAdd}))
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		cmp.Group(items),
	)
}

func peopleEditor(s PeopleSection, putURL, opURL string) cmp.Node {
	items := make([]cmp.Node, 0, len(s.People)+1)
	for i, p := range s.People {
		items = append(items, itemBox(
			ui.ItemToolbar(opURL, "people", i),
			ui.TextField(ui.IndexName("people", i, "name"), "Name", p.Name),
			ui.TextField(ui.IndexName("people", i, "description"), "Description", p.Description),
			ui.TextField(ui.IndexName("people", i, "image_url"), "Photo URL", p.ImageURL),
			ui.TextField(ui.IndexName("people", i, "username"), "Username", p.Username),
		))
	}
	items = append(items, ui.OpButton(opURL, "Add person", builder.ItemOp{Field: "people", Op: builder.OpAdd}))
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		cmp.Group(items),
	)
}

func featuredCoursesEditor(s FeaturedCoursesSection, putURL, opURL string) cmp.Node {
	items := make([]cmp.Node, 0, len(s.Courses)+1)
	for i, c := range s.Courses {
		items = append(items, itemBox(
			ui.ItemToolbar(opURL, "courses", i),
			ui.TextField(ui.IndexName("courses", i, "course_uuid"), "Course UUID", c.CourseUUID),
		))
	}
	items = append(items, ui.OpButton(opURL, "Add course", builder.ItemOp{Field: "courses", Op: builder.OpAdd}))
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		cmp.Group(items),
	)
}

func heroLeadMagnetEditor(s HeroLeadMagnetSection, putURL, opURL string) cmp.Node {
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		segmentEditor("headline", opURL, s.Headline),
		ui.TextArea("subtitle", "Subtitle", s.Subtitle),
		ctaFields("primaryCta", "Primary CTA", s.PrimaryCTA),
		ctaFields("secondaryCta", "Secondary CTA", s.SecondaryCTA),
		ui.TextField("videoUrl", "Video URL", s.VideoURL),
		g.FieldSet(
			g.Class("border rounded p-3 mb-3"),
			g.Legend(g.Class("text-sm font-medium text-gray-600 px-1"), cmp.Text("Lead magnet")),
			ui.TextField("leadMagnet.title", "Title", s.LeadMagnet.Title),
			ui.TextField("leadMagnet.subtitle", "Subtitle", s.LeadMagnet.Subtitle),
			ui.TextField("leadMagnet.emailPlaceholder", "Email placeholder", s.LeadMagnet.EmailPlaceholder),
			ui.TextField("leadMagnet.buttonLabel", "Button label", s.LeadMagnet.ButtonLabel),
			ui.TextField("leadMagnet.microcopy", "Microcopy", s.LeadMagnet.Microcopy),
			ui.TextField("leadMagnet.badgeText", "Badge", s.LeadMagnet.BadgeText),
		),
	)
}

func aboutEditor(s AboutSection, putURL, opURL string) cmp.Node {
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		ui.TextField("headline", "Headline", s.Headline),
		ui.TextField("videoLabel", "Video label", s.VideoLabel),
		g.H3(g.Class("text-sm font-semibold mt-4 mb-2"), cmp.Text("Bullets")),
		stringListEditor("bullets", "Bullet", "Add bullet", opURL, s.Bullets),
		g.H3(g.Class("text-sm font-semibold mt-4 mb-2"), cmp.Text("Paragraphs")),
		stringListEditor("body", "Paragraph", "Add paragraph", opURL, s.Body),
	)
}

func testimonialsEditor(s TestimonialsGridSection, putURL, opURL string) cmp.Node {
	items := make([]cmp.Node, 0, len(s.Items)+1)
	for i, t := range s.Items {
		items = append(items, itemBox(
			ui.ItemToolbar(opURL, "items", i),
			ui.TextField(ui.IndexName("items", i, "name"), "Name", t.Name),
			ui.TextField(ui.IndexName("items", i, "role"), "Role", t.Role),
			ui.TextField(ui.IndexName("items", i, "location"), "Location", t.Location),
			ui.TextArea(ui.IndexName("items", i, "quote"), "Quote", t.Quote),
			ui.TextField(ui.IndexName("items", i, "metricLabel"), "Metric label", t.MetricLabel),
			ui.TextField(ui.IndexName("items", i, "metricValue"), "Metric value", t.MetricValue),
			ui.SelectField(ui.IndexName("items", i, "colorKey"), "Accent", string(t.ColorKey), accentOptions()),
		))
	}
	items = append(items, ui.OpButton(opURL, "Add testimonial", builder.ItemOp{Field: "items", Op: builder.OpAdd}))
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		cmp.Group(items),
	)
}

func howItWorksEditor(s HowItWorksSection, putURL, opURL string) cmp.Node {
	items := make([]cmp.Node, 0, len(s.Steps)+1)
	for i, st := range s.Steps {
		items = append(items, itemBox(
			ui.ItemToolbar(opURL, "steps", i),
			ui.TextField(ui.IndexName("steps", i, "title"), "Step title", st.Title),
			ui.TextArea(ui.IndexName("steps", i, "body"), "Step body", st.Body),
			ui.TextField(ui.IndexName("steps", i, "iconKey"), "Icon", st.IconKey),
			ui.SelectField(ui.IndexName("steps", i, "colorKey"), "Accent", string(st.ColorKey), accentOptions()),
		))
	}
	items = append(items, ui.OpButton(opURL, "Add step", builder.ItemOp{Field: "steps", Op: builder.OpAdd}))
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		cmp.Group(items),
	)
}

func pricingEditor(s PricingSection, putURL, opURL string) cmp.Node {
	plans := make([]cmp.Node, 0, len(s.Plans)+1)
	for i, p := range s.Plans {
		features := make([]cmp.Node, 0, len(p.Features)+1)
		for j, f := range p.Features {
			features = append(features, g.Div(
				g.Class("flex items-center gap-2 mb-1"),
				ui.OpButton(opURL, string(f.State), builder.ItemOp{Field: "features", Op: builder.OpToggle, Index: j, Parent: i}),
				ui.TextField(ui.IndexName("plans", i, "features."+strconv.Itoa(j)+".text"), "Feature", f.Text),
				ui.OpButton(opURL, "Remove", builder.ItemOp{Field: "features", Op: builder.OpRemove, Index: j, Parent: i}),
			))
		}
		features = append(features, ui.OpButton(opURL, "Add feature", builder.ItemOp{Field: "features", Op: builder.OpAdd, Parent: i}))
		plans = append(plans, itemBox(
			ui.ItemToolbar(opURL, "plans", i),
			ui.TextField(ui.IndexName("plans", i, "name"), "Plan name", p.Name),
			ui.TextField(ui.IndexName("plans", i, "price"), "Price", p.Price),
			ui.TextField(ui.IndexName("plans", i, "period"), "Period", p.Period),
			ui.TextField(ui.IndexName("plans", i, "badge"), "Badge", p.Badge),
			ui.SelectField(ui.IndexName("plans", i, "accent"), "Accent", string(p.Accent), accentOptions()),
			ui.TextField(ui.IndexName("plans", i, "buttonLabel"), "Button label", p.ButtonLabel),
			ui.TextField(ui.IndexName("plans", i, "buttonHref"), "Button link", p.ButtonHref),
			g.H4(g.Class("text-sm font-semibold mt-3 mb-1"), cmp.Text("Features")),
			cmp.Group(features),
		))
	}
	plans = append(plans, ui.OpButton(opURL, "Add plan", builder.ItemOp{Field: "plans", Op: builder.OpAdd}))
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		ui.TextField("subtitle", "Subtitle", s.Subtitle),
		cmp.Group(plans),
		g.H3(g.Class("text-sm font-semibold mt-4 mb-2"), cmp.Text("Footer highlights")),
		stringListEditor("footerHighlights", "Highlight", "Add highlight", opURL, s.FooterHighlights),
	)
}

func trustEditor(s TrustSection, putURL, opURL string) cmp.Node {
	cards := make([]cmp.Node, 0, len(s.Cards)+1)
	for i, c := range s.Cards {
		cards = append(cards, itemBox(
			ui.ItemToolbar(opURL, "cards", i),
			ui.TextField(ui.IndexName("cards", i, "title"), "Card title", c.Title),
			ui.TextArea(ui.IndexName("cards", i, "body"), "Card body", c.Body),
			ui.TextField(ui.IndexName("cards", i, "iconKey"), "Icon", c.IconKey),
		))
	}
	cards = append(cards, ui.OpButton(opURL, "Add card", builder.ItemOp{Field: "cards", Op: builder.OpAdd}))
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		cmp.Group(cards),
		g.H3(g.Class("text-sm font-semibold mt-4 mb-2"), cmp.Text("Trust row")),
		stringListEditor("trustRow", "Entry", "Add entry", opURL, s.TrustRow),
	)
}

func communityEditor(s CommunitySection, putURL, opURL string) cmp.Node {
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		g.H3(g.Class("text-sm font-semibold mt-4 mb-2"), cmp.Text("Bullets")),
		stringListEditor("bullets", "Bullet", "Add bullet", opURL, s.Bullets),
		g.FieldSet(
			g.Class("border rounded p-3 mb-3"),
			g.Legend(g.Class("text-sm font-medium text-gray-600 px-1"), cmp.Text("Highlighted testimonial")),
			ui.TextArea("testimonial.quote", "Quote", s.Testimonial.Quote),
			ui.TextField("testimonial.name", "Name", s.Testimonial.Name),
			ui.TextField("testimonial.meta", "Meta", s.Testimonial.Meta),
		),
		ui.TextField("buttonLabel", "Button label", s.ButtonLabel),
		ui.TextField("buttonHref", "Button link", s.ButtonHref),
	)
}

func faqEditor(s FAQSection, putURL, opURL string) cmp.Node {
	items := make([]cmp.Node, 0, len(s.Items)+1)
	for i, item := range s.Items {
		items = append(items, itemBox(
			ui.ItemToolbar(opURL, "items", i),
			ui.TextField(ui.IndexName("items", i, "q"), "Question", item.Question),
			ui.TextArea(ui.IndexName("items", i, "a"), "Answer", item.Answer),
		))
	}
	items = append(items, ui.OpButton(opURL, "Add question", builder.ItemOp{Field: "items", Op: builder.OpAdd}))
	return editorForm(s, putURL, cmp.Group(items))
}

func finalCTAEditor(s FinalCTASection, putURL, opURL string) cmp.Node {
	return editorForm(s, putURL,
		g.H3(g.Class("text-sm font-semibold mb-2"), cmp.Text("Headline segments")),
		segmentEditor("title", opURL, s.Title),
		ui.TextArea("subtitle", "Subtitle", s.Subtitle),
		ctaFields("primaryCta", "Primary CTA", s.PrimaryCTA),
		ctaFields("secondaryCta", "Secondary CTA", s.SecondaryCTA),
	)
}

func footerEditor(s FooterSection, putURL, opURL string) cmp.Node {
	cols := make([]cmp.Node, 0, len(s.Columns)+1)
	for i, col := range s.Columns {
		links := make([]cmp.Node, 0, len(col.Links)+1)
		for j, l := range col.Links {
			links = append(links, g.Div(
				g.Class("flex items-center gap-2 mb-1"),
				ui.TextField(ui.IndexName("columns", i, "links."+strconv.Itoa(j)+".label"), "Label", l.Label),
				ui.TextField(ui.IndexName("columns", i, "links."+strconv.Itoa(j)+".href"), "Link", l.Href),
				ui.OpButton(opURL, "Remove", builder.ItemOp{Field: "links", Op: builder.OpRemove, Index: j, Parent: i}),
			))
		}
		links = append(links, ui.OpButton(opURL, "Add link", builder.ItemOp{Field: "links", Op: builder.OpAdd, Parent: i}))
		cols = append(cols, itemBox(
			ui.ItemToolbar(opURL, "columns", i),
			ui.TextField(ui.IndexName("columns", i, "title"), "Column title", col.Title),
			cmp.Group(links),
		))
	}
	cols = append(cols, ui.OpButton(opURL, "Add column", builder.ItemOp{Field: "columns", Op: builder.OpAdd}))
	return editorForm(s, putURL,
		ui.TextField("title", "Title", s.Title),
		cmp.Group(cols),
		g.FieldSet(
			g.Class("border rounded p-3 mb-3"),
			g.Legend(g.Class("text-sm font-medium text-gray-600 px-1"), cmp.Text("Newsletter")),
			ui.TextField("newsletter.title", "Title", s.Newsletter.Title),
			ui.TextField("newsletter.placeholder", "Placeholder", s.Newsletter.Placeholder),
			ui.TextField("newsletter.buttonLabel", "Button label", s.Newsletter.ButtonLabel),
			ui.TextField("newsletter.microcopy", "Microcopy", s.Newsletter.Microcopy),
		),
		ui.TextField("copyright", "Copyright line", s.Copyright),
	)
}
