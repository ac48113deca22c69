package catalog

import "github.com/glosariodev/glosario-backend/internal/domain"

// General returns the cross-stack programming catalog: HTML, JavaScript,
// TypeScript, backend, database and DevOps terms.
func General() []domain.RawTermInput {
	return []domain.RawTermInput{
		{
			Term:          "fetch",
			Translation:   "solicitar datos a un servidor",
			Category:      domain.CategoryFrontend,
			DescriptionEs: "API del navegador para hacer peticiones HTTP y recibir respuestas como promesas.",
			DescriptionEn: "Browser API for making HTTP requests and receiving responses as promises.",
			Aliases:       []string{"fetch API"},
			Tags:          []string{"javascript", "http", "async"},
			Example: domain.CodeSnippet{
				TitleEs: "Petición GET básica",
				TitleEn: "Basic GET request",
				Code: `const res = await fetch("/api/terms?q=css");
const data = await res.json();
console.log(data);`,
				NotesEs: ptr("fetch no rechaza la promesa en errores HTTP; revisa res.ok."),
				NotesEn: ptr("fetch does not reject on HTTP errors; check res.ok."),
			},
			SecondExample: &domain.CodeSnippet{
				TitleEs: "POST con JSON",
				TitleEn: "POST with JSON",
				Code: `await fetch("/api/terms", {
  method: "POST",
  headers: { "Content-Type": "application/json" },
  body: JSON.stringify({ name: "flexbox" }),
});`,
			},
		},
		{
			Term:          "useState",
			Translation:   "estado local de un componente",
			Category:      domain.CategoryFrontend,
			DescriptionEs: "Hook de React que guarda un valor entre renders y devuelve una función para actualizarlo.",
			DescriptionEn: "React hook that keeps a value across renders and returns a function to update it.",
			Aliases:       []string{"state hook"},
			Tags:          []string{"react", "hooks"},
			Example: domain.CodeSnippet{
				TitleEs: "Contador con useState",
				TitleEn: "Counter with useState",
				Code: `const [count, setCount] = useState(0);
return <button onClick={() => setCount(count + 1)}>{count}</button>;`,
			},
		},
		{
			Term:          "closure",
			Translation:   "función que recuerda su ámbito",
			Category:      domain.CategoryGeneral,
			DescriptionEs: "Función que conserva acceso a las variables del ámbito donde fue creada, incluso después de que ese ámbito termine.",
			Aliases:       []string{"clausura"},
			Tags:          []string{"javascript", "funciones"},
			Example: domain.CodeSnippet{
				TitleEs: "Contador con clausura",
				TitleEn: "Counter closure",
				Code: `function makeCounter() {
  let n = 0;
  return () => ++n;
}
const next = makeCounter();
next(); // 1
next(); // 2`,
			},
		},
		{
			Term:          "promise",
			Translation:   "valor futuro de una operación asíncrona",
			Category:      domain.CategoryGeneral,
			DescriptionEs: "Objeto que representa el resultado eventual de una operación asíncrona: pendiente, resuelta o rechazada.",
			DescriptionEn: "Object representing the eventual result of an async operation: pending, fulfilled or rejected.",
			Tags:          []string{"javascript", "async"},
			WhatEs:        "Una promesa te deja encadenar trabajo que depende de un resultado que todavía no existe.",
			WhatEn:        "A promise lets you chain work that depends on a result that does not exist yet.",
			Example: domain.CodeSnippet{
				TitleEs: "Encadenar promesas",
				TitleEn: "Chaining promises",
				Code: `loadUser(id)
  .then((user) => loadPosts(user))
  .catch((err) => console.error(err));`,
			},
		},
		{
			Term:          "generic",
			Translation:   "tipo parametrizado",
			Category:      domain.CategoryGeneral,
			DescriptionEs: "Mecanismo de TypeScript (y otros lenguajes) para escribir funciones y tipos que trabajan con cualquier tipo sin perder seguridad.",
			Aliases:       []string{"genérico", "type parameter"},
			Tags:          []string{"typescript", "tipos"},
			Example: domain.CodeSnippet{
				TitleEs: "Función genérica",
				TitleEn: "Generic function",
				Code: `function first<T>(items: T[]): T | undefined {
  return items[0];
}
const n = first([1, 2, 3]); // number | undefined`,
			},
		},
		{
			Term:          "middleware",
			Translation:   "capa intermedia de una petición",
			Category:      domain.CategoryBackend,
			DescriptionEs: "Función que intercepta cada petición HTTP antes del handler final: autenticación, logging, CORS.",
			DescriptionEn: "Function that intercepts every HTTP request before the final handler: auth, logging, CORS.",
			Tags:          []string{"http", "express"},
			Example: domain.CodeSnippet{
				TitleEs: "Middleware de logging en Express",
				TitleEn: "Logging middleware in Express",
				Code: `app.use((req, res, next) => {
  console.log(req.method, req.url);
  next();
});`,
			},
		},
		{
			Term:          "REST",
			Translation:   "estilo de APIs sobre HTTP",
			Category:      domain.CategoryBackend,
			DescriptionEs: "Convención para exponer recursos mediante URLs y verbos HTTP (GET, POST, PUT, DELETE).",
			Aliases:       []string{"RESTful", "API REST"},
			Tags:          []string{"http", "api"},
			Example: domain.CodeSnippet{
				TitleEs: "Rutas REST de un recurso",
				TitleEn: "REST routes for a resource",
				Code: `GET    /api/terms        // listar
GET    /api/terms/:slug  // detalle
POST   /api/terms        // crear
DELETE /api/terms/:slug  // borrar`,
			},
		},
		{
			Term:             "JWT",
			Translation:      "token firmado de identidad",
			Category:         domain.CategoryBackend,
			DescriptionEs:    "JSON Web Token: credencial compacta y firmada que el cliente reenvía en cada petición autenticada.",
			Aliases:          []string{"JSON Web Token"},
			Tags:             []string{"auth", "http"},
			LanguageOverride: "ts",
			Example: domain.CodeSnippet{
				TitleEs: "Enviar un JWT",
				TitleEn: "Sending a JWT",
				Code: `await fetch("/api/me", {
  headers: { Authorization: ` + "`Bearer ${token}`" + ` },
});`,
			},
		},
		{
			Term:          "index",
			Translation:   "estructura para acelerar consultas",
			Category:      domain.CategoryDatabase,
			DescriptionEs: "Estructura auxiliar que la base de datos mantiene para encontrar filas sin recorrer toda la tabla.",
			Aliases:       []string{"índice"},
			Tags:          []string{"sql", "rendimiento"},
			Example: domain.CodeSnippet{
				TitleEs: "Crear un índice",
				TitleEn: "Creating an index",
				Code:    `CREATE INDEX idx_terms_name ON terms (name);`,
				NotesEs: ptr("Un índice acelera lecturas pero encarece cada escritura."),
				NotesEn: ptr("An index speeds up reads but taxes every write."),
			},
		},
		{
			Term:          "JOIN",
			Translation:   "combinar filas de varias tablas",
			Category:      domain.CategoryDatabase,
			DescriptionEs: "Operación SQL que combina filas de dos tablas según una condición, normalmente una clave foránea.",
			Tags:          []string{"sql"},
			Example: domain.CodeSnippet{
				TitleEs: "INNER JOIN",
				TitleEn: "INNER JOIN",
				Code: `SELECT t.name, v.language
FROM terms t
JOIN term_variants v ON v.term_id = t.id;`,
			},
		},
		{
			Term:          "transaction",
			Translation:   "grupo de operaciones todo-o-nada",
			Category:      domain.CategoryDatabase,
			DescriptionEs: "Conjunto de operaciones que la base de datos aplica de forma atómica: o entran todas, o ninguna.",
			Aliases:       []string{"transacción"},
			Tags:          []string{"sql", "acid"},
			Example: domain.CodeSnippet{
				TitleEs: "Transacción explícita",
				TitleEn: "Explicit transaction",
				Code: `BEGIN;
UPDATE accounts SET balance = balance - 100 WHERE id = 1;
UPDATE accounts SET balance = balance + 100 WHERE id = 2;
COMMIT;`,
			},
		},
		{
			Term:          "Docker",
			Translation:   "contenedores para empaquetar software",
			Category:      domain.CategoryDevOps,
			DescriptionEs: "Herramienta que empaqueta una aplicación y sus dependencias en una imagen que corre igual en cualquier máquina.",
			Tags:          []string{"contenedores", "infraestructura"},
			Example: domain.CodeSnippet{
				TitleEs: "Dockerfile mínimo",
				TitleEn: "Minimal Dockerfile",
				Code: `FROM node:20-alpine
WORKDIR /app
COPY . .
RUN npm ci
CMD ["node", "server.js"]`,
			},
			SecondExample: &domain.CodeSnippet{
				TitleEs: "Construir y ejecutar",
				TitleEn: "Build and run",
				Code: `docker build -t glosario .
docker run -p 8080:8080 glosario`,
			},
		},
		{
			Term:          "CI/CD",
			Translation:   "integración y despliegue continuos",
			Category:      domain.CategoryDevOps,
			DescriptionEs: "Práctica de integrar cambios con frecuencia y desplegarlos automáticamente tras pasar las pruebas.",
			Aliases:       []string{"continuous integration", "continuous delivery"},
			Tags:          []string{"pipeline", "automatización"},
			Example: domain.CodeSnippet{
				TitleEs: "Job de CI",
				TitleEn: "CI job",
				Code: `test:
  script:
    - npm ci
    - npm test`,
			},
		},
		{
			Term:          "environment variable",
			Translation:   "configuración fuera del código",
			Category:      domain.CategoryDevOps,
			DescriptionEs: "Valor de configuración que el proceso lee de su entorno en lugar de llevarlo escrito en el código.",
			Aliases:       []string{"variable de entorno", "env var"},
			Tags:          []string{"configuración", "12factor"},
			Example: domain.CodeSnippet{
				TitleEs: "Leer una variable de entorno",
				TitleEn: "Reading an environment variable",
				Code:    `const dsn = process.env.DATABASE_DSN ?? "postgres://localhost/dev";`,
			},
		},
	}
}
