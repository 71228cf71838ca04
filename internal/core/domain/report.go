package domain

// ReportEntry is one resolved module in a resolution report.
type ReportEntry struct {
	// Path is the canonical path of the resolved module.
	Path InternedString `json:"path"`
	// Realm is the identity of the realm the module was resolved under.
	Realm uint64 `json:"realm"`
	// ContentHash is the xxhash of the module source, hex encoded.
	ContentHash string `json:"contentHash"`
	// Requests lists the specifiers the module statically imports.
	Requests []string `json:"requests,omitempty"`
}
