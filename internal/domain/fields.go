package domain

// Index attribute names shared by the filter compiler, the schema registrar,
// and the query renderer. Free-text fields carry an un-analyzed sibling
// (FieldNameKeyword) for exact matching and deterministic sort.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldNameKeyword = "name_kw"
	FieldCompanyID   = "company_id"
	FieldTags        = "tags"
	FieldStatus      = "status"
	FieldAge         = "age"

	// ChildPath is the embedded collection path on Person documents. Clauses
	// inside a nested scope use child-relative field names (name, grade,
	// hobbies); the renderer maps them to child_* index aliases.
	ChildPath         = "children"
	FieldChildName    = "name"
	FieldChildGrade   = "grade"
	FieldChildHobbies = "hobbies"
)
