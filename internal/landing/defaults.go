package landing

import "github.com/lumenlearn/pagecraft/internal/builder"

// DefaultNavbar seeds the navbar for a fresh v2 landing.
func DefaultNavbar() *builder.NavbarConfig {
	return &builder.NavbarConfig{
		BrandTitle:    "NEXUS",
		BrandSubtitle: "INTELIGENCIA ARTIFICIAL",
		Links: []builder.NavbarLink{
			{Label: "Inicio", Href: "#inicio"},
			{Label: "Programas", Href: "#programas"},
			{Label: "Cómo Funciona", Href: "#como-funciona"},
			{Label: "Comunidad", Href: "#comunidad"},
			{Label: "Quiénes Somos", Href: "#quienes-somos"},
			{Label: "Precios", Href: "#precios"},
			{Label: "FAQ", Href: "#faq"},
		},
		CTALabel: "Iniciar Sesión",
		CTAHref:  "/login",
	}
}

// NewEmptySection is the exhaustive empty-section factory for the landing
// vocabulary. The v2 defaults are safe placeholder copy; the v2 anchor
// sections keep their conventional anchors as ids so in-page navbar links
// resolve out of the box.
func NewEmptySection(tag string) (builder.Section, bool) {
	switch tag {
	case TypeHero:
		return HeroSection{
			Base: builder.NewBase(tag, "Hero Section"),
			Background: Background{
				Type:  "solid",
				Color: "#ffffff",
			},
			Heading: Heading{
				Text:  "Your heading here",
				Color: "#000000",
				Size:  "large",
			},
			Subheading: Heading{
				Text:  "Your subheading here",
				Color: "#666666",
				Size:  "medium",
			},
			Buttons:      []Button{},
			ContentAlign: "center",
		}, true
	case TypeTextAndImage:
		return TextAndImageSection{
			Base:    builder.NewBase(tag, "Section Title"),
			Text:    "Your content here",
			Flow:    "left",
			Image:   Image{},
			Buttons: []Button{},
		}, true
	case TypeLogos:
		return LogosSection{
			Base:  builder.NewBase(tag, "Our Partners"),
			Logos: []Image{},
		}, true
	case TypePeople:
		return PeopleSection{
			Base:   builder.NewBase(tag, "Meet the Team"),
			People: []Person{},
		}, true
	case TypeFeaturedCourses:
		return FeaturedCoursesSection{
			Base:    builder.NewBase(tag, "Featured Courses"),
			Courses: []CourseRef{},
		}, true
	case TypeHeroLeadMagnet:
		return HeroLeadMagnetSection{
			Base: builder.Base{ID: "inicio", Type: tag},
			Headline: []ColoredTextSegment{
				{Text: "Aprende a usar IA para generar ", ColorKey: AccentNeutral},
				{Text: "ingresos reales", ColorKey: AccentBlue},
				{Text: ", con guías probadas y una ", ColorKey: AccentNeutral},
				{Text: "comunidad que te respalda", ColorKey: AccentOrange},
			},
			Subtitle:     "Educación práctica enfocada en ejecución. Únete a emprendedores que buscan aplicar IA de forma ética y medible.",
			PrimaryCTA:   CTA{Label: "Empieza a ganar dinero", Href: "#precios"},
			SecondaryCTA: CTA{Label: "Ver Cómo Funciona", Href: "#como-funciona"},
			VideoURL:     "https://www.youtube.com/embed/ABC123",
			VideoCard: &VideoCard{
				BadgeText: "Video de 3 minutos",
				Title:     "¿Listo para generar ingresos reales con IA?",
				Subtitle:  "Mira este video de 3 minutos y descubre cómo emprendedores como tú ya están facturando miles de pesos extra al mes.",
				CTALabel:  "Empieza a ganar dinero ahora",
			},
			LeadMagnet: LeadMagnet{
				Title:            "Guía Gratis de IA",
				Subtitle:         "Recibe una guía práctica y editable para empezar hoy.",
				EmailPlaceholder: "Tu email",
				ButtonLabel:      "Descargar Guía Gratis",
				Microcopy:        "Sin spam. Puedes darte de baja en cualquier momento.",
				BadgeText:        "+2,500 descargas esta semana",
			},
		}, true
	case TypeAbout:
		return AboutSection{
			Base:     builder.Base{ID: "quienes-somos", Type: tag, Title: "Quiénes Somos"},
			Headline: "Aprendizaje práctico con enfoque en ejecución",
			Bullets: []string{
				"Contenido accionable y actualizado",
				"Comunidad para dudas y accountability",
				"Recursos y plantillas para implementar",
			},
			VideoLabel: "Video: Conoce más sobre Nexo…",
			Body: []string{
				"Construimos un espacio para aprender y aplicar IA con criterio, ética y foco en resultados medibles.",
				"Ajusta este texto desde el builder para reflejar tu historia real y tu propuesta de valor.",
			},
		}, true
	case TypeTestimonialsGrid:
		return TestimonialsGridSection{
			Base: builder.NewBase(tag, "Historias de Éxito Reales"),
			Items: []TestimonialCard{
				{Name: "Ana P.", Role: "Emprendedora", Location: "MX", Quote: "El enfoque práctico me ayudó a pasar de ideas a ejecución.", MetricLabel: "Resultado", MetricValue: "Más claridad y constancia", ColorKey: AccentBlue},
				{Name: "Luis M.", Role: "Freelancer", Location: "CO", Quote: "Plantillas y comunidad = avance sostenido.", MetricLabel: "Resultado", MetricValue: "Procesos más eficientes", ColorKey: AccentOrange},
				{Name: "Carla R.", Role: "Marketer", Location: "ES", Quote: "Aprendí a probar, medir y mejorar.", MetricLabel: "Resultado", MetricValue: "Mejores experimentos", ColorKey: AccentGreen},
				{Name: "Diego S.", Role: "Operador", Location: "AR", Quote: "Me dio un sistema, no solo teoría.", MetricLabel: "Resultado", MetricValue: "Sistema de ejecución", ColorKey: AccentPurple},
			},
		}, true
	case TypeHowItWorks:
		return HowItWorksSection{
			Base: builder.Base{ID: "como-funciona", Type: tag, Title: "Cómo Funciona"},
			Steps: []HowItWorksStep{
				{Title: "Aprendes", Body: "Entiendes lo esencial con guías claras.", IconKey: "BookOpen", ColorKey: AccentBlue},
				{Title: "Implementas", Body: "Aplicas con plantillas y ejemplos.", IconKey: "Wrench", ColorKey: AccentOrange},
				{Title: "Ajustas", Body: "Mides, iteras y mejoras el sistema.", IconKey: "LineChart", ColorKey: AccentGreen},
				{Title: "Escalas", Body: "Estandarizas y creces con soporte.", IconKey: "Rocket", ColorKey: AccentPurple},
			},
		}, true
	case TypePricing:
		return PricingSection{
			Base:     builder.Base{ID: "precios", Type: tag, Title: "Elige cómo quieres avanzar"},
			Subtitle: "Selecciona el plan que mejor se adapte a tu etapa.",
			Plans: []PricingPlan{
				{
					Name: "Starter", Price: "$299", Period: "USD", Accent: AccentNeutral,
					Features: []PricingFeature{
						{Text: "Acceso a guías base", State: FeatureIncluded},
						{Text: "Comunidad", State: FeatureIncluded},
						{Text: "Soporte prioritario", State: FeatureExcluded},
					},
					ButtonLabel: "Empezar", ButtonHref: "#",
				},
				{
					Name: "PRO", Price: "$999", Period: "USD", Accent: AccentOrange, Badge: "Más popular",
					Features: []PricingFeature{
						{Text: "Todo en Starter", State: FeatureIncluded},
						{Text: "Plantillas avanzadas", State: FeatureIncluded},
						{Text: "Sesiones en vivo", State: FeatureIncluded},
					},
					ButtonLabel: "Elegir PRO", ButtonHref: "#",
				},
				{
					Name: "Operator", Price: "$3,999", Period: "USD", Accent: AccentNeutral,
					Features: []PricingFeature{
						{Text: "Acompañamiento", State: FeatureIncluded},
						{Text: "Revisión de implementación", State: FeatureIncluded},
						{Text: "SOPs y sistemas", State: FeatureIncluded},
					},
					ButtonLabel: "Hablar con ventas", ButtonHref: "#",
				},
			},
			FooterHighlights: []string{"Garantía 30 días", "Acceso inmediato", "Pago seguro"},
		}, true
	case TypeTrust:
		return TrustSection{
			Base: builder.NewBase(tag, "Por Qué Confiar en Nosotros"),
			Cards: []TrustCard{
				{Title: "Metodología práctica", Body: "Enfoque en ejecución, no solo teoría.", IconKey: "Check"},
				{Title: "Iteración", Body: "Mejoras con métricas y feedback.", IconKey: "RefreshCcw"},
				{Title: "Comunidad", Body: "Acompañamiento y dudas resueltas.", IconKey: "Users"},
				{Title: "Recursos", Body: "Plantillas y guías listas para usar.", IconKey: "FileText"},
				{Title: "Actualizaciones", Body: "Contenido actualizado regularmente.", IconKey: "Sparkles"},
				{Title: "Seguridad", Body: "Pagos seguros y protección.", IconKey: "ShieldCheck"},
			},
			TrustRow: []string{"Pago seguro", "Stripe", "SSL Encriptado"},
		}, true
	case TypeCommunity:
		return CommunitySection{
			Base: builder.Base{ID: "comunidad", Type: tag, Title: "Accede a Nuestra Comunidad Privada"},
			Bullets: []string{
				"Soporte entre miembros",
				"Feedback y accountability",
				"Recursos compartidos",
			},
			Testimonial: CommunityTestimonial{
				Quote: "Sentí progreso real al compartir avances y recibir feedback.",
				Name:  "Miembro Nexo",
				Meta:  "Testimonio editable",
			},
			ButtonLabel: "Únete a la comunidad",
			ButtonHref:  "#",
		}, true
	case TypeFAQ:
		return FAQSection{
			Base: builder.Base{ID: "faq", Type: tag, Title: "Preguntas Frecuentes"},
			Items: []FAQItem{
				{Question: "¿Cuándo obtengo acceso?", Answer: "Inmediatamente después del pago confirmado."},
				{Question: "¿Hay garantía?", Answer: "Sí, revisa las condiciones del plan."},
				{Question: "¿Puedo cancelar?", Answer: "Puedes cancelar tu suscripción cuando quieras."},
				{Question: "¿Necesito experiencia previa?", Answer: "No, empezamos desde lo esencial."},
				{Question: "¿Cómo recibo soporte?", Answer: "A través de la comunidad y recursos incluidos."},
			},
		}, true
	case TypeFinalCTA:
		return FinalCTASection{
			Base: builder.NewBase(tag, ""),
			Title: []ColoredTextSegment{
				{Text: "¿Listo para generar ingresos con IA ", ColorKey: AccentBlue},
				{Text: "de forma ética y práctica?", ColorKey: AccentOrange},
			},
			Subtitle:     "Únete hoy y empieza a ejecutar con guía y comunidad.",
			PrimaryCTA:   CTA{Label: "Únete a Nexo hoy", Href: "#precios"},
			SecondaryCTA: CTA{Label: "Ver Cómo Funciona", Href: "#como-funciona"},
		}, true
	case TypeFooter:
		return FooterSection{
			Base: builder.NewBase(tag, ""),
			Columns: []FooterColumn{
				{Title: "Nexus", Links: []builder.NavbarLink{{Label: "Inicio", Href: "#inicio"}, {Label: "Comunidad", Href: "#comunidad"}}},
				{Title: "Programas", Links: []builder.NavbarLink{{Label: "Precios", Href: "#precios"}, {Label: "Cómo Funciona", Href: "#como-funciona"}}},
				{Title: "Información", Links: []builder.NavbarLink{{Label: "FAQ", Href: "#faq"}, {Label: "Quiénes Somos", Href: "#quienes-somos"}}},
			},
			Newsletter: FooterNewsletter{
				Title:       "Newsletter",
				Placeholder: "Tu email",
				ButtonLabel: "Suscribirme",
				Microcopy:   "Contenido práctico. Sin spam.",
			},
			Copyright: "© Nexus. Todos los derechos reservados.",
		}, true
	}
	return nil, false
}
