package domain

// Resource categories shown by the support listings.
const (
	CategoryAcademic  = "academic"
	CategoryFinancial = "financial"
)

// Resource is a static support listing entry: a campus service with a
// link. The catalog ships with the client and involves no backend call.
type Resource struct {
	Title       string
	Description string
	URL         string
	Category    string
}

var catalog = []Resource{
	{
		Title:       "University Library",
		Description: "Access digital archives, research papers, and more.",
		URL:         "https://example.com/library",
		Category:    CategoryAcademic,
	},
	{
		Title:       "Tutoring Center",
		Description: "Get help with challenging subjects from peer tutors.",
		URL:         "https://example.com/tutoring",
		Category:    CategoryAcademic,
	},
	{
		Title:       "Writing Center",
		Description: "Improve your essays and academic writing skills.",
		URL:         "https://example.com/writing-center",
		Category:    CategoryAcademic,
	},
	{
		Title:       "Study Group Finder",
		Description: "Connect with classmates to form study groups.",
		URL:         "https://example.com/study-groups",
		Category:    CategoryAcademic,
	},
	{
		Title:       "Scholarship Portal",
		Description: "Find and apply for scholarships and grants.",
		URL:         "https://example.com/scholarships",
		Category:    CategoryFinancial,
	},
	{
		Title:       "Financial Aid Office",
		Description: "Get help with loans, grants, and work-study programs.",
		URL:         "https://example.com/financial-aid",
		Category:    CategoryFinancial,
	},
	{
		Title:       "Part-Time Job Board",
		Description: "Browse on-campus and local part-time job opportunities.",
		URL:         "https://example.com/jobs",
		Category:    CategoryFinancial,
	},
	{
		Title:       "Budgeting Tools",
		Description: "Access resources to manage your personal finances.",
		URL:         "https://example.com/budgeting",
		Category:    CategoryFinancial,
	},
}

// Resources returns the catalog entries for a category, or the whole
// catalog when category is empty.
func Resources(category string) []Resource {
	if category == "" {
		out := make([]Resource, len(catalog))
		copy(out, catalog)
		return out
	}
	var out []Resource
	for _, r := range catalog {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}
