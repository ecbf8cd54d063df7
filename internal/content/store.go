package content

import "sort"

// Store is an immutable snapshot of the loaded posts. Hidden posts resolve
// by slug but are left out of every listing.
type Store struct {
	posts  []Post
	listed []Post
	bySlug map[string]int
	tags   []string
}

// NewStore indexes posts. The slice is sorted and then owned by the store.
func NewStore(posts []Post) *Store {
	SortPosts(posts)
	s := &Store{
		posts:  posts,
		bySlug: make(map[string]int, len(posts)),
	}
	seen := make(map[string]bool)
	for i, p := range posts {
		s.bySlug[p.Slug] = i
		if p.Meta.Hidden {
			continue
		}
		s.listed = append(s.listed, p)
		for _, tag := range p.Meta.Tags {
			if !seen[tag] {
				seen[tag] = true
				s.tags = append(s.tags, tag)
			}
		}
	}
	sort.Strings(s.tags)
	return s
}

// Len returns the number of listed posts.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.listed)
}

// All returns a copy of the listed posts, newest first.
func (s *Store) All() []Post {
	if s == nil {
		return nil
	}
	return append([]Post(nil), s.listed...)
}

// Every returns a copy of all posts, hidden ones included, newest first.
func (s *Store) Every() []Post {
	if s == nil {
		return nil
	}
	return append([]Post(nil), s.posts...)
}

// BySlug looks up a post, hidden or not.
func (s *Store) BySlug(slug string) (Post, bool) {
	if s == nil {
		return Post{}, false
	}
	i, ok := s.bySlug[slug]
	if !ok {
		return Post{}, false
	}
	return s.posts[i], true
}

// Tags returns every tag used by a listed post, sorted.
func (s *Store) Tags() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.tags...)
}

// ByTag returns the posts carrying tag, newest first.
func (s *Store) ByTag(tag string) []Post {
	var out []Post
	for _, p := range s.All() {
		for _, t := range p.Meta.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// SummaryMeta is the subset of Meta served by the posts API.
type SummaryMeta struct {
	Title       string   `json:"title"`
	Date        Date     `json:"date"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// PostSummary is one entry of the posts API.
type PostSummary struct {
	Path string      `json:"path"`
	Meta SummaryMeta `json:"meta"`
}

// Summaries returns the listed posts in API form, newest first.
func (s *Store) Summaries() []PostSummary {
	posts := s.All()
	out := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		tags := []string(p.Meta.Tags)
		if tags == nil {
			tags = []string{}
		}
		out = append(out, PostSummary{
			Path: p.Path(),
			Meta: SummaryMeta{
				Title:       p.Meta.Title,
				Date:        p.Meta.Date,
				Description: p.Meta.Description,
				Tags:        tags,
			},
		})
	}
	return out
}
