package domain

// Topic is a named category used to classify articles. The slug is the
// natural key; topics are seeded outside this API and never written here.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
