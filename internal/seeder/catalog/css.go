package catalog

import "github.com/glosariodev/glosario-backend/internal/domain"

// CSS returns the CSS-specific catalog. Utility-class entries carry the
// "tailwind" tag, which makes the normalizer reuse the practice snippet as
// the second example. One term ("fetch" is only in General; "flexbox" below
// also exists here with richer CSS text) may overlap with General — overlap
// is resolved by merge precedence, not by keeping the catalogs disjoint.
func CSS() []domain.RawTermInput {
	return []domain.RawTermInput{
		{
			Term:             "flexbox",
			Translation:      "caja flexible para maquetar",
			Category:         domain.CategoryFrontend,
			DescriptionEs:    "Modelo de layout unidimensional: distribuye y alinea elementos en una fila o columna.",
			DescriptionEn:    "One-dimensional layout model: distributes and aligns items along a row or column.",
			Aliases:          []string{"flexible box"},
			Tags:             []string{"css", "layout"},
			LanguageOverride: "css",
			Example: domain.CodeSnippet{
				TitleEs: "Centrar con flexbox",
				TitleEn: "Centering with flexbox",
				Code: `.parent {
  display: flex;
  justify-content: center;
  align-items: center;
}`,
			},
		},
		{
			Term:             "grid",
			Translation:      "rejilla bidimensional",
			Category:         domain.CategoryFrontend,
			DescriptionEs:    "Modelo de layout bidimensional: define filas y columnas y coloca elementos en las celdas.",
			Aliases:          []string{"CSS grid"},
			Tags:             []string{"css", "layout"},
			LanguageOverride: "css",
			Example: domain.CodeSnippet{
				TitleEs: "Rejilla de tres columnas",
				TitleEn: "Three-column grid",
				Code: `.gallery {
  display: grid;
  grid-template-columns: repeat(3, 1fr);
  gap: 1rem;
}`,
			},
		},
		{
			Term:             "media query",
			Translation:      "estilos según el dispositivo",
			Category:         domain.CategoryFrontend,
			DescriptionEs:    "Regla CSS que aplica estilos solo cuando se cumplen condiciones del dispositivo, como el ancho de pantalla.",
			Tags:             []string{"css", "responsive"},
			LanguageOverride: "css",
			Example: domain.CodeSnippet{
				TitleEs: "Breakpoint móvil",
				TitleEn: "Mobile breakpoint",
				Code: `@media (max-width: 640px) {
  .sidebar { display: none; }
}`,
			},
		},
		{
			Term:             "box-sizing",
			Translation:      "cómo se calcula el tamaño de una caja",
			Category:         domain.CategoryFrontend,
			DescriptionEs:    "Propiedad que decide si padding y borde cuentan dentro del ancho declarado (border-box) o se suman fuera (content-box).",
			Tags:             []string{"css", "modelo de caja"},
			LanguageOverride: "css",
			Example: domain.CodeSnippet{
				TitleEs: "border-box global",
				TitleEn: "Global border-box",
				Code: `*, *::before, *::after {
  box-sizing: border-box;
}`,
				NotesEs: ptr("Con border-box, width incluye padding y borde."),
				NotesEn: ptr("With border-box, width includes padding and border."),
			},
		},
		{
			Term:             "z-index",
			Translation:      "orden de apilamiento",
			Category:         domain.CategoryFrontend,
			DescriptionEs:    "Propiedad que controla qué elemento posicionado queda por encima cuando varios se solapan.",
			Tags:             []string{"css", "posicionamiento"},
			LanguageOverride: "css",
			Example: domain.CodeSnippet{
				TitleEs: "Modal por encima del overlay",
				TitleEn: "Modal above the overlay",
				Code: `.overlay { position: fixed; z-index: 10; }
.modal   { position: fixed; z-index: 20; }`,
				NotesEs: ptr("z-index solo aplica a elementos posicionados."),
				NotesEn: ptr("z-index only applies to positioned elements."),
			},
		},
		{
			Term:             "hover",
			Translation:      "estado al pasar el cursor",
			Category:         domain.CategoryFrontend,
			DescriptionEs:    "Pseudo-clase que aplica estilos mientras el puntero está encima del elemento.",
			Tags:             []string{"css", "pseudo-clases"},
			LanguageOverride: "css",
			Example: domain.CodeSnippet{
				TitleEs: "Botón con hover",
				TitleEn: "Button hover state",
				Code: `.btn:hover {
  background-color: #1d4ed8;
}`,
			},
		},
		{
			Term:             "flex",
			Translation:      "contenedor flexible (Tailwind)",
			Category:         domain.CategoryFrontend,
			DescriptionEs:    "Clase utilitaria de Tailwind que equivale a display: flex en el elemento.",
			Tags:             []string{"tailwind", "layout"},
			LanguageOverride: "css",
			Example: domain.CodeSnippet{
				TitleEs: "Fila centrada",
				TitleEn: "Centered row",
				Code:    `<div class="flex items-center justify-center gap-4">…</div>`,
			},
			ExerciseExample: &domain.CodeSnippet{
				TitleEs: "Barra de navegación",
				TitleEn: "Navigation bar",
				Code:    `<nav class="flex items-center justify-between px-6 py-3">…</nav>`,
			},
		},
		{
			Term:             "rounded",
			Translation:      "esquinas redondeadas (Tailwind)",
			Category:         domain.CategoryFrontend,
			DescriptionEs:    "Familia de clases utilitarias de Tailwind para border-radius: rounded, rounded-lg, rounded-full.",
			Tags:             []string{"tailwind"},
			LanguageOverride: "css",
			Example: domain.CodeSnippet{
				TitleEs: "Tarjeta redondeada",
				TitleEn: "Rounded card",
				Code:    `<article class="rounded-lg border p-4 shadow-sm">…</article>`,
			},
			ExerciseExample: &domain.CodeSnippet{
				TitleEs: "Avatar circular",
				TitleEn: "Circular avatar",
				Code:    `<img class="h-12 w-12 rounded-full" src="avatar.png" alt="" />`,
			},
		},
		{
			Term:             "truncate",
			Translation:      "cortar texto con puntos suspensivos (Tailwind)",
			Category:         domain.CategoryFrontend,
			DescriptionEs:    "Clase utilitaria de Tailwind que combina overflow, white-space y text-overflow para cortar texto en una línea.",
			Tags:             []string{"tailwind", "texto"},
			LanguageOverride: "css",
			Example: domain.CodeSnippet{
				TitleEs: "Título truncado",
				TitleEn: "Truncated title",
				Code:    `<h3 class="w-48 truncate">Un título demasiado largo para caber aquí</h3>`,
			},
			ExerciseExample: &domain.CodeSnippet{
				TitleEs: "Celda de tabla truncada",
				TitleEn: "Truncated table cell",
				Code:    `<td class="max-w-xs truncate">{row.description}</td>`,
			},
		},
		{
			Term:             "specificity",
			Translation:      "peso de un selector",
			Category:         domain.CategoryFrontend,
			DescriptionEs:    "Regla con la que el navegador decide qué declaración gana cuando varios selectores apuntan al mismo elemento.",
			Aliases:          []string{"especificidad"},
			Tags:             []string{"css", "cascada"},
			LanguageOverride: "css",
			Example: domain.CodeSnippet{
				TitleEs: "El id gana a la clase",
				TitleEn: "The id beats the class",
				Code: `/* gana #title (1,0,0) sobre .title (0,1,0) */
#title { color: navy; }
.title { color: gray; }`,
			},
		},
	}
}
