package compile

import "regexp"

// The pattern tables below are the language data behind free-text find
// queries. Matching is case-insensitive substring containment, and the
// status, date, and priority tables are first-match-wins in declaration
// order, so entry order is part of the contract. English and Spanish
// triggers ship by default; adding a language means adding triggers here,
// not touching extractor logic.

// patternEntry maps one canonical facet value to its trigger substrings.
type patternEntry struct {
	value    string
	triggers []string
}

var statusPatterns = []patternEntry{
	// Spanish adjective triggers are stems so gendered and plural forms
	// ("terminada", "terminados") match too.
	{"done", []string{"done", "completed", "finished", "hecho", "hecha", "terminad", "completad"}},
	{"in progress", []string{"in progress", "doing", "working on", "en progreso", "en curso", "haciendo"}},
	{"todo", []string{"todo", "to do", "pending", "not started", "por hacer", "pendiente"}},
	{"blocked", []string{"blocked", "stuck", "bloqueado", "atascado"}},
}

// datePatterns order is significant beyond first-match-wins: "today" appears
// before "modified today" and "created today", so those two phrases resolve
// to the generic today facet and the last-edited/created entries are only
// reachable through triggers that avoid the word "today" ("recently edited",
// "recien creado"). This shadowing mirrors the established CLI behavior and
// is pinned by a test; reordering it is a product decision, not a cleanup.
var datePatterns = []patternEntry{
	{"overdue", []string{"overdue", "late", "past due", "vencido", "vencida", "atrasado", "atrasada"}},
	{"today", []string{"today", "hoy"}},
	{"this week", []string{"this week", "esta semana"}},
	{"edited today", []string{"modified today", "edited today", "recently edited", "modificado hoy", "editado hoy", "recien editado"}},
	{"created today", []string{"created today", "recently created", "creado hoy", "recien creado"}},
}

var priorityPatterns = []patternEntry{
	{"high", []string{"high priority", "priority high", "urgent", "important", "alta prioridad", "prioridad alta", "urgente", "importante"}},
	{"medium", []string{"medium priority", "priority medium", "media prioridad", "prioridad media"}},
	{"low", []string{"low priority", "priority low", "baja prioridad", "prioridad baja"}},
}

var assigneeEmptyTriggers = []string{
	"unassigned", "no assignee", "without assignee", "nobody assigned",
	"sin asignar", "no asignado", "sin responsable",
}

// tagPattern captures the quoted tag list in phrases like `tagged "a, b"`,
// `with tag "x"`, or `con etiqueta "x"`.
var tagPattern = regexp.MustCompile(`(?:tagged|with tags?|con etiquetas?|etiquetado con)\s+"([^"]+)"`)

// propertyHints name the schema columns a facet kind usually lives in, in
// both languages. Used by the property resolver's exact and substring tiers.
var (
	statusHints   = []string{"status", "state", "estado", "etapa"}
	assigneeHints = []string{"assignee", "assigned", "owner", "person", "asignado", "responsable"}
	dateHints     = []string{"due", "deadline", "date", "fecha", "vencimiento", "entrega"}
	priorityHints = []string{"priority", "prioridad", "importance", "importancia"}
	tagHints      = []string{"tags", "tag", "labels", "label", "etiquetas", "etiqueta"}
)

// optionSynonyms is the canonical synonym table consulted when an option
// cannot be matched exactly or by substring. Each group is matched by
// substring against both the requested value and the declared option names.
// Ordered so resolution is deterministic.
var optionSynonyms = []patternEntry{
	{"done", []string{"done", "complete", "completed", "finished", "closed", "hecho", "terminado", "completado", "finalizado", "cerrado"}},
	{"in progress", []string{"in progress", "progress", "doing", "working", "active", "started", "en progreso", "en curso", "haciendo", "activo"}},
	{"todo", []string{"todo", "to do", "pending", "backlog", "not started", "open", "por hacer", "pendiente", "sin empezar", "abierto"}},
	{"blocked", []string{"blocked", "stuck", "waiting", "on hold", "bloqueado", "atascado", "en espera"}},
	{"high", []string{"high", "urgent", "critical", "p1", "alta", "urgente", "critico", "critica"}},
	{"medium", []string{"medium", "normal", "p2", "media"}},
	{"low", []string{"low", "minor", "p3", "baja", "menor"}},
}
