package domain

// Child is an embedded sub-document of Person. Children have no identity
// outside their parent document: they are written, queried, and removed only
// as part of it.
type Child struct {
	Name    string `json:"name"`
	Grade   int    `json:"grade"`
	Hobbies string `json:"hobbies"`
}

// Person is the single-index nested entity.
type Person struct {
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	Children []Child `json:"children"`
}
