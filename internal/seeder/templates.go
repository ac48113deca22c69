package seeder

import (
	"fmt"

	"github.com/glosariodev/glosario-backend/internal/domain"
)

// categoryProfile carries the per-category phrasing used when a catalog
// record does not supply its own what/how text, plus the default variant
// language. One entry per Category; categoryProfiles is the closed strategy
// table (see TestCategoryProfilesExhaustive).
type categoryProfile struct {
	// PhraseEs/PhraseEn describe the part of the stack the category lives in
	// ("la capa de interfaz" / "the UI layer"). Embedded in use-case text.
	PhraseEs string
	PhraseEn string

	// DefaultLanguage is the variant/exercise language when the record has
	// no LanguageOverride.
	DefaultLanguage string

	WhatEs func(term string) string
	WhatEn func(term string) string
	HowEs  func(term string) string
	HowEn  func(term string) string
}

var categoryProfiles = map[domain.Category]categoryProfile{
	domain.CategoryFrontend: {
		PhraseEs:        "la capa de interfaz",
		PhraseEn:        "the UI layer",
		DefaultLanguage: "ts",
		WhatEs: func(term string) string {
			return fmt.Sprintf("\"%s\" es un concepto de frontend con el que trabajarás al construir interfaces de usuario.", term)
		},
		WhatEn: func(term string) string {
			return fmt.Sprintf("\"%s\" is a frontend concept you will run into while building user interfaces.", term)
		},
		HowEs: func(term string) string {
			return fmt.Sprintf("Usa \"%s\" dentro de tus componentes de UI y verifica el resultado en el navegador.", term)
		},
		HowEn: func(term string) string {
			return fmt.Sprintf("Use \"%s\" inside your UI components and check the result in the browser.", term)
		},
	},
	domain.CategoryBackend: {
		PhraseEs:        "la capa de servidor",
		PhraseEn:        "the server layer",
		DefaultLanguage: "js",
		WhatEs: func(term string) string {
			return fmt.Sprintf("\"%s\" es un concepto de backend que aparece al diseñar APIs y servicios.", term)
		},
		WhatEn: func(term string) string {
			return fmt.Sprintf("\"%s\" is a backend concept that shows up when designing APIs and services.", term)
		},
		HowEs: func(term string) string {
			return fmt.Sprintf("Aplica \"%s\" en tus controladores o servicios y pruébalo con peticiones reales.", term)
		},
		HowEn: func(term string) string {
			return fmt.Sprintf("Apply \"%s\" in your controllers or services and exercise it with real requests.", term)
		},
	},
	domain.CategoryDatabase: {
		PhraseEs:        "la capa de datos",
		PhraseEn:        "the data layer",
		DefaultLanguage: "py",
		WhatEs: func(term string) string {
			return fmt.Sprintf("\"%s\" es un concepto de bases de datos clave para modelar y consultar información.", term)
		},
		WhatEn: func(term string) string {
			return fmt.Sprintf("\"%s\" is a database concept central to modeling and querying data.", term)
		},
		HowEs: func(term string) string {
			return fmt.Sprintf("Practica \"%s\" sobre un esquema de ejemplo y revisa el plan de ejecución de tus consultas.", term)
		},
		HowEn: func(term string) string {
			return fmt.Sprintf("Practice \"%s\" against a sample schema and inspect the execution plan of your queries.", term)
		},
	},
	domain.CategoryDevOps: {
		PhraseEs:        "la infraestructura y el despliegue",
		PhraseEn:        "infrastructure and deployment",
		DefaultLanguage: "go",
		WhatEs: func(term string) string {
			return fmt.Sprintf("\"%s\" es un concepto de DevOps ligado a cómo se construye, despliega y opera el software.", term)
		},
		WhatEn: func(term string) string {
			return fmt.Sprintf("\"%s\" is a DevOps concept tied to how software is built, shipped and operated.", term)
		},
		HowEs: func(term string) string {
			return fmt.Sprintf("Incorpora \"%s\" en tu pipeline o entorno local y observa el efecto en cada despliegue.", term)
		},
		HowEn: func(term string) string {
			return fmt.Sprintf("Bring \"%s\" into your pipeline or local environment and watch its effect on each deploy.", term)
		},
	},
	domain.CategoryGeneral: {
		PhraseEs:        "todo el stack",
		PhraseEn:        "the whole stack",
		DefaultLanguage: "ts",
		WhatEs: func(term string) string {
			return fmt.Sprintf("\"%s\" es un concepto transversal que encontrarás en casi cualquier proyecto de software.", term)
		},
		WhatEn: func(term string) string {
			return fmt.Sprintf("\"%s\" is a cross-cutting concept you will find in almost any software project.", term)
		},
		HowEs: func(term string) string {
			return fmt.Sprintf("Identifica dónde aparece \"%s\" en tu código actual y escribe un ejemplo mínimo que lo aísle.", term)
		},
		HowEn: func(term string) string {
			return fmt.Sprintf("Spot where \"%s\" appears in your current code and write a minimal example that isolates it.", term)
		},
	},
}

// Bilingual meaning synthesis, applied only when the catalog record carries
// no description in that language.

func synthMeaningEs(term, translation string) string {
	if translation == "" {
		return fmt.Sprintf("En programación, \"%s\" es un concepto común en todo el stack.", term)
	}
	return fmt.Sprintf("En programación, \"%s\" hace referencia a %s.", term, translation)
}

func synthMeaningEn(term, translation string) string {
	if translation == "" {
		return fmt.Sprintf("In programming, \"%s\" is a common concept used across the stack.", term)
	}
	return fmt.Sprintf("In programming, \"%s\" refers to %s.", term, translation)
}

// useCaseTemplate builds the three canonical use-case write-ups.
type useCaseTemplate struct {
	Context   domain.UseCaseContext
	SummaryEs func(term, phrase string) string
	SummaryEn func(term, phrase string) string
	StepsEs   func(term string) string
	StepsEn   func(term string) string
	TipsEs    func(term string) string
	TipsEn    func(term string) string
}

var useCaseTemplates = []useCaseTemplate{
	{
		Context: domain.UseCaseProject,
		SummaryEs: func(term, phrase string) string {
			return fmt.Sprintf("Aplica \"%s\" en un proyecto real que toque %s.", term, phrase)
		},
		SummaryEn: func(term, phrase string) string {
			return fmt.Sprintf("Apply \"%s\" in a real project touching %s.", term, phrase)
		},
		StepsEs: func(term string) string {
			return fmt.Sprintf("Elige una pantalla o módulo existente, introduce \"%s\" en un cambio pequeño y revisa el resultado con tu equipo.", term)
		},
		StepsEn: func(term string) string {
			return fmt.Sprintf("Pick an existing screen or module, introduce \"%s\" in a small change, and review the result with your team.", term)
		},
		TipsEs: func(term string) string {
			return fmt.Sprintf("Empieza con el caso más simple de \"%s\" antes de optimizar.", term)
		},
		TipsEn: func(term string) string {
			return fmt.Sprintf("Start with the simplest case of \"%s\" before optimizing.", term)
		},
	},
	{
		Context: domain.UseCaseInterview,
		SummaryEs: func(term, phrase string) string {
			return fmt.Sprintf("Explica \"%s\" con tus propias palabras en una entrevista técnica.", term)
		},
		SummaryEn: func(term, phrase string) string {
			return fmt.Sprintf("Explain \"%s\" in your own words during a technical interview.", term)
		},
		StepsEs: func(term string) string {
			return fmt.Sprintf("Define \"%s\" en una frase, da un ejemplo de código corto y menciona un error típico.", term)
		},
		StepsEn: func(term string) string {
			return fmt.Sprintf("Define \"%s\" in one sentence, give a short code example, and mention a common mistake.", term)
		},
		TipsEs: func(term string) string {
			return "Practica la explicación en voz alta; la claridad pesa más que el detalle."
		},
		TipsEn: func(term string) string {
			return "Rehearse the explanation out loud; clarity beats detail."
		},
	},
	{
		Context: domain.UseCaseBug,
		SummaryEs: func(term, phrase string) string {
			return fmt.Sprintf("Diagnostica un bug relacionado con \"%s\".", term)
		},
		SummaryEn: func(term, phrase string) string {
			return fmt.Sprintf("Diagnose a bug related to \"%s\".", term)
		},
		StepsEs: func(term string) string {
			return fmt.Sprintf("Reproduce el fallo, aísla la parte donde interviene \"%s\" y compara el comportamiento esperado con el real.", term)
		},
		StepsEn: func(term string) string {
			return fmt.Sprintf("Reproduce the failure, isolate the part where \"%s\" is involved, and compare expected versus actual behavior.", term)
		},
		TipsEs: func(term string) string {
			return "Reduce el caso a un ejemplo mínimo antes de buscar la causa."
		},
		TipsEn: func(term string) string {
			return "Shrink the case to a minimal example before hunting for the cause."
		},
	},
}

func synthFAQQuestionEs(term string) string {
	return fmt.Sprintf("¿Cómo explicarías \"%s\" en una entrevista técnica?", term)
}

func synthFAQQuestionEn(term string) string {
	return fmt.Sprintf("How would you explain \"%s\" in a technical interview?", term)
}

func synthExercisePromptEs(term string) string {
	return fmt.Sprintf("Implementa \"%s\" en un ejemplo práctico y explica cada paso.", term)
}

func synthExercisePromptEn(term string) string {
	return fmt.Sprintf("Implement \"%s\" in a practical example and explain each step.", term)
}

func synthSolutionExplanationEs(term string) string {
	return fmt.Sprintf("Solución de referencia para \"%s\"; léela línea a línea y reescríbela sin mirar.", term)
}

func synthSolutionExplanationEn(term string) string {
	return fmt.Sprintf("Reference solution for \"%s\"; read it line by line, then rewrite it from memory.", term)
}
