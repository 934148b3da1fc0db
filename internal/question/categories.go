package question

import (
	"strings"

	"github.com/mtreece/prepguide/internal/jobdesc"
)

// Category display names. Their order here is the guide's chapter order.
const (
	CategoryCoreJava     = "Core Java"
	CategorySpring       = "Spring & Spring Boot"
	CategoryRestAPI      = "REST API & Microservices"
	CategoryDatabase     = "Database & ORM"
	CategoryCloud        = "Cloud & Containerization"
	CategorySystemDesign = "System Design & Architecture"
	CategoryCoding       = "Coding Challenges"
)

// CategoriesFor selects the question categories relevant to a job
// description. Core Java, system design and coding challenges always make
// the cut; the rest depend on keyword matches against the combined skills,
// technologies and any comma-separated additional skills.
func CategoriesFor(jd *jobdesc.JobDescription, additionalSkills string) []string {
	terms := matchTerms(jd, additionalSkills)

	cats := []string{CategoryCoreJava}
	if containsAny(terms, "spring", "spring boot", "springboot", "spring framework") {
		cats = append(cats, CategorySpring)
	}
	if containsAny(terms, "rest", "api", "microservices", "micro services", "web services", "restful") {
		cats = append(cats, CategoryRestAPI)
	}
	if containsAny(terms, "sql", "database", "db", "oracle", "mysql", "postgresql", "nosql",
		"mongodb", "hibernate", "jpa", "jdbc") {
		cats = append(cats, CategoryDatabase)
	}
	if containsAny(terms, "cloud", "aws", "azure", "gcp", "docker", "kubernetes", "k8s",
		"container", "devops", "ci/cd", "jenkins") {
		cats = append(cats, CategoryCloud)
	}
	cats = append(cats, CategorySystemDesign, CategoryCoding)
	return cats
}

// Subcategories returns the topic breakdown generation prompts are built
// around.
func Subcategories(category string) []string {
	switch category {
	case CategoryCoreJava:
		return []string{"OOP", "Collections", "Multithreading", "Streams", "Exception Handling", "JVM"}
	case CategorySpring:
		return []string{"Spring Core", "Spring Boot", "Spring Security", "Spring Data", "Spring Cloud"}
	case CategoryRestAPI:
		return []string{"REST Principles", "Microservices", "API Security", "API Gateway", "Service Discovery"}
	case CategoryDatabase:
		return []string{"SQL", "NoSQL", "Hibernate", "JPA", "Transaction Management", "Database Design"}
	case CategoryCloud:
		return []string{"Docker", "Kubernetes", "AWS/Azure/GCP", "CI/CD", "Infrastructure as Code"}
	case CategorySystemDesign:
		return []string{"Scalability", "Caching", "Load Balancing", "Messaging", "Event-Driven Architecture"}
	case CategoryCoding:
		return []string{"Algorithms", "Data Structures", "Problem Solving", "Design Patterns"}
	default:
		return []string{"General"}
	}
}

// catalogCounts is how many catalog questions each category contributes;
// summed across the always-on categories plus typical matches this lands
// above one hundred questions per guide.
var catalogCounts = map[string]int{
	CategoryCoreJava:     30,
	CategorySpring:       20,
	CategoryRestAPI:      20,
	CategoryDatabase:     20,
	CategoryCloud:        20,
	CategorySystemDesign: 15,
	CategoryCoding:       10,
}

func matchTerms(jd *jobdesc.JobDescription, additionalSkills string) []string {
	var terms []string
	for _, s := range jd.Skills {
		terms = append(terms, strings.ToLower(s))
	}
	for _, t := range jd.Technologies {
		terms = append(terms, strings.ToLower(t))
	}
	for _, s := range strings.Split(additionalSkills, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			terms = append(terms, strings.ToLower(s))
		}
	}
	return terms
}

func containsAny(terms []string, keywords ...string) bool {
	for _, term := range terms {
		for _, kw := range keywords {
			if strings.Contains(term, kw) {
				return true
			}
		}
	}
	return false
}
