package question

// Question is one interview question with its answer. Answer text is
// multi-line; when a code example is present the answer embeds it between
// code-fence markers.
type Question struct {
	Category    string
	Subcategory string
	Question    string
	Answer      string
	CodeExample string
	Difficulty  int // 1-5 scale
}

// CategorySet is an insertion-ordered mapping of category name to questions.
// Iteration order is the order categories were added, which downstream
// becomes the guide's chapter order.
type CategorySet struct {
	names  []string
	byName map[string][]Question
}

func NewCategorySet() *CategorySet {
	return &CategorySet{byName: make(map[string][]Question)}
}

// Add appends questions to a category, registering the category on first use.
func (s *CategorySet) Add(category string, qs ...Question) {
	if _, ok := s.byName[category]; !ok {
		s.names = append(s.names, category)
		s.byName[category] = nil
	}
	s.byName[category] = append(s.byName[category], qs...)
}

// Categories returns category names in insertion order.
func (s *CategorySet) Categories() []string {
	return s.names
}

// Questions returns the questions for a category, in the order received.
func (s *CategorySet) Questions(category string) []Question {
	return s.byName[category]
}

// Total counts questions across all categories.
func (s *CategorySet) Total() int {
	n := 0
	for _, qs := range s.byName {
		n += len(qs)
	}
	return n
}
