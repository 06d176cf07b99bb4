package blog

import "fmt"

// SiteURL is the root every category and post URL lives under.
const SiteURL = "https://aws.amazon.com/blogs/"

// Category is one AWS blog with its own RSS feed.
type Category struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	URL     string `json:"url" yaml:"url"`
	FeedURL string `json:"feed_url" yaml:"feed_url"`
}

func newCategory(id, name string) Category {
	return Category{
		ID:      id,
		Name:    name,
		URL:     SiteURL + id + "/",
		FeedURL: SiteURL + id + "/feed/",
	}
}

// Registry is an immutable, ordered set of categories keyed by ID.
type Registry struct {
	ordered []Category
	byID    map[string]Category
}

// NewRegistry builds a registry from the given categories. Duplicate IDs are
// rejected so lookups stay unambiguous.
func NewRegistry(categories ...Category) (*Registry, error) {
	r := &Registry{
		ordered: make([]Category, 0, len(categories)),
		byID:    make(map[string]Category, len(categories)),
	}
	for _, c := range categories {
		if c.ID == "" {
			return nil, fmt.Errorf("category %q: id is required", c.Name)
		}
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("category %q: duplicate id", c.ID)
		}
		r.byID[c.ID] = c
		r.ordered = append(r.ordered, c)
	}
	return r, nil
}

// DefaultRegistry returns the fixed AWS blog categories.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		newCategory("aws", "AWS News Blog"),
		newCategory("architecture", "AWS Architecture Blog"),
		newCategory("compute", "AWS Compute Blog"),
		newCategory("containers", "Containers"),
		newCategory("database", "Database"),
		newCategory("developer", "AWS Developer Tools Blog"),
		newCategory("devops", "AWS DevOps Blog"),
		newCategory("machine-learning", "AWS Machine Learning Blog"),
		newCategory("networking-and-content-delivery", "Networking & Content Delivery"),
		newCategory("security", "AWS Security Blog"),
		newCategory("storage", "AWS Storage Blog"),
	)
	if err != nil {
		panic(err)
	}
	return r
}

// List returns a copy of the categories in registration order.
func (r *Registry) List() []Category {
	out := make([]Category, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Get looks up a category by ID.
func (r *Registry) Get(id string) (Category, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// Lookup is Get with ErrCategoryNotFound for unknown IDs.
func (r *Registry) Lookup(id string) (Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q (use list_blog_categories to see available options)", ErrCategoryNotFound, id)
	}
	return c, nil
}

// Len reports the number of categories.
func (r *Registry) Len() int { return len(r.ordered) }
