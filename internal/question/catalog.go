package question

import (
	"math/rand"
	"strings"
	"time"

	"github.com/mtreece/prepguide/internal/jobdesc"
)

// Catalog is the built-in question bank used when AI generation is disabled
// or comes up short. Curated questions are served first; templated ones top
// up each category to its target count.
type Catalog struct {
	byCategory map[string][]Question
	rng        *rand.Rand
}

func NewCatalog() *Catalog {
	return newCatalogWithSeed(time.Now().UnixNano())
}

func newCatalogWithSeed(seed int64) *Catalog {
	c := &Catalog{
		byCategory: make(map[string][]Question),
		rng:        rand.New(rand.NewSource(seed)),
	}
	c.seed()
	return c
}

// Select assembles the per-category question set for a job description. Each
// relevant category gets its target count; if the total still falls short of
// min, the remainder is spread across categories, skipping duplicates.
func (c *Catalog) Select(jd *jobdesc.JobDescription, additionalSkills string, min int) *CategorySet {
	set := NewCategorySet()
	for _, cat := range CategoriesFor(jd, additionalSkills) {
		set.Add(cat, c.take(cat, catalogCounts[cat])...)
	}

	if set.Total() >= min {
		return set
	}
	short := min - set.Total()
	cats := set.Categories()
	per := short / len(cats)
	rem := short % len(cats)
	for i, cat := range cats {
		n := per
		if i < rem {
			n++
		}
		if n == 0 {
			continue
		}
		added := 0
		for _, q := range c.generate(cat, n+len(set.Questions(cat))) {
			if added == n {
				break
			}
			if !hasQuestion(set.Questions(cat), q.Question) {
				set.Add(cat, q)
				added++
			}
		}
	}
	return set
}

// take returns count questions for a category: all curated ones (a random
// subset when there are more than needed) topped up with templated ones.
func (c *Catalog) take(category string, count int) []Question {
	curated := c.byCategory[category]
	if len(curated) >= count {
		picked := make([]Question, len(curated))
		copy(picked, curated)
		c.rng.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
		return picked[:count]
	}
	out := make([]Question, len(curated), count)
	copy(out, curated)
	return append(out, c.generate(category, count-len(curated))...)
}

// generate produces count templated questions for a category by cycling its
// topic list.
func (c *Catalog) generate(category string, count int) []Question {
	topics, format := topicTemplates(category)
	out := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		topic := topics[i%len(topics)]
		out = append(out, Question{
			Category:    category,
			Subcategory: topic,
			Question:    format.question(topic),
			Answer:      format.answer(topic),
			Difficulty:  2 + i%3,
		})
	}
	return out
}

type template struct {
	question func(topic string) string
	answer   func(topic string) string
}

func topicTemplates(category string) ([]string, template) {
	explain := func(context string) template {
		return template{
			question: func(t string) string {
				return "Explain " + t + " and provide examples of its practical applications."
			},
			answer: func(t string) string {
				return "A detailed explanation of " + t + " in the context of " + context +
					", covering core concepts, examples, best practices, and common pitfalls."
			},
		}
	}
	switch category {
	case CategoryCoreJava:
		return []string{
			"Java Fundamentals", "OOP Concepts", "Collections Framework", "Multithreading",
			"Exception Handling", "Java 8 Features", "Java 17 Features", "Generics",
			"Annotations", "Reflection", "IO and NIO", "Serialization",
			"Memory Management", "JVM Architecture", "Garbage Collection",
		}, explain("core Java")
	case CategorySpring:
		return []string{
			"Dependency Injection", "Spring IoC Container", "Spring AOP", "Spring MVC",
			"Spring Boot Autoconfiguration", "Spring Data JPA", "Spring Security",
			"Spring Cloud", "Spring Testing", "Spring Profiles", "Spring Boot Actuator",
			"Spring WebFlux",
		}, explain("Spring applications")
	case CategoryRestAPI:
		return []string{
			"REST Principles", "API Design", "Microservices Architecture", "Service Discovery",
			"API Gateway", "Circuit Breaker Pattern", "Distributed Tracing", "API Security",
			"API Versioning", "Event-Driven Architecture", "CQRS Pattern", "Saga Pattern",
		}, explain("REST APIs and microservices")
	case CategoryDatabase:
		return []string{
			"SQL Fundamentals", "Database Normalization", "Indexing", "Transactions",
			"ACID Properties", "Hibernate Architecture", "JPA Annotations", "Query Optimization",
			"Connection Pooling", "NoSQL Databases", "Database Sharding", "N+1 Problem",
			"Lazy Loading vs Eager Loading",
		}, explain("databases and ORM frameworks")
	case CategoryCloud:
		return []string{
			"Docker Fundamentals", "Kubernetes Architecture", "Container Orchestration",
			"Cloud Service Models", "Infrastructure as Code", "CI/CD Pipelines",
			"DevOps Practices", "Cloud Security", "Serverless Architecture",
			"Monitoring and Logging", "Auto-scaling",
		}, explain("cloud-native applications")
	case CategorySystemDesign:
		return []string{
			"Scalability", "High Availability", "Load Balancing", "Caching Strategies",
			"Microservices vs Monoliths", "Event-Driven Architecture", "Distributed Systems",
			"Message Queues", "Service Mesh", "Domain-Driven Design", "Hexagonal Architecture",
		}, template{
			question: func(t string) string {
				return "How would you implement " + t + " in a large-scale distributed system?"
			},
			answer: func(t string) string {
				return "A walkthrough of implementing " + t + " in system design, including trade-offs, " +
					"representative architectures, and operational concerns."
			},
		}
	case CategoryCoding:
		return []string{
			"Array Manipulation", "String Processing", "Linked Lists", "Trees and Graphs",
			"Dynamic Programming", "Sorting Algorithms", "Hash Tables", "Stacks and Queues",
			"Recursion", "Bit Manipulation", "Design Patterns", "Concurrency",
		}, template{
			question: func(t string) string {
				return "Implement a solution for a " + t + " problem."
			},
			answer: func(t string) string {
				return "A worked solution for a " + t + " problem with code, time and space " +
					"complexity analysis, and optimization notes."
			},
		}
	default:
		return []string{"General"}, explain(category)
	}
}

func hasQuestion(qs []Question, text string) bool {
	for _, q := range qs {
		if strings.EqualFold(q.Question, text) {
			return true
		}
	}
	return false
}

// codeExampleFrom pulls the first fenced code block out of an answer, if any.
func codeExampleFrom(answer string) string {
	open := strings.Index(answer, "```")
	if open < 0 {
		return ""
	}
	rest := answer[open+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:] // drop the language tag line
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}
