package guide

import (
	"strings"

	"github.com/mtreece/prepguide/internal/jobdesc"
)

// Introduction renders the opening chapter for a job description.
func Introduction(jd *jobdesc.JobDescription) string {
	var b strings.Builder

	b.WriteString("# Technical Interview Guide for " + jd.Title + "\n\n")

	b.WriteString("## About This Guide\n\n")
	b.WriteString("This comprehensive technical interview guide has been tailored specifically for the " +
		jd.Title + " position")
	if jd.Company != "" && jd.Company != jobdesc.UnknownCompany {
		b.WriteString(" at " + jd.Company)
	}
	b.WriteString(". It contains over 100 pages of interview questions and detailed answers " +
		"covering all the technical areas relevant to this role.\n\n")

	b.WriteString("## Key Skills Required\n\n")
	if len(jd.Skills) > 0 {
		for _, skill := range jd.Skills {
			b.WriteString("- " + skill + "\n")
		}
	} else {
		b.WriteString("- Java programming\n")
		b.WriteString("- Object-oriented design\n")
		b.WriteString("- Problem-solving skills\n")
	}

	b.WriteString("\n## Technologies\n\n")
	if len(jd.Technologies) > 0 {
		for _, tech := range jd.Technologies {
			b.WriteString("- " + tech + "\n")
		}
	} else {
		b.WriteString("- Java 8/11/17\n")
		b.WriteString("- Spring Framework\n")
		b.WriteString("- Databases (SQL/NoSQL)\n")
	}

	b.WriteString("\n## How to Use This Guide\n\n")
	b.WriteString("This guide is organized into sections covering different technical areas. " +
		"Each section contains questions of varying difficulty levels, from basic to advanced. " +
		"Review the questions and answers thoroughly, and practice explaining the concepts " +
		"in your own words. For coding questions, try to solve them yourself before looking at the solutions.\n\n")

	b.WriteString("Good luck with your interview preparation!\n")

	return b.String()
}

// FinalTips renders the closing chapter. The content is static.
func FinalTips() string {
	var b strings.Builder

	b.WriteString("# Final Tips & Resources\n\n")

	b.WriteString("## Interview Preparation Tips\n\n")
	b.WriteString("1. **Review Core Concepts**: Ensure you have a solid understanding of core Java concepts, especially those highlighted in this guide.\n\n")
	b.WriteString("2. **Practice Coding**: Regularly solve coding problems on platforms like LeetCode, HackerRank, or CodeSignal.\n\n")
	b.WriteString("3. **Mock Interviews**: Conduct mock interviews with peers or use services like Pramp or interviewing.io.\n\n")
	b.WriteString("4. **System Design Practice**: Draw out system architectures and practice explaining your design decisions.\n\n")
	b.WriteString("5. **Behavioral Preparation**: Prepare stories about your past experiences using the STAR method (Situation, Task, Action, Result).\n\n")

	b.WriteString("## Recommended Resources\n\n")
	b.WriteString("### Books\n")
	b.WriteString("- \"Effective Java\" by Joshua Bloch\n")
	b.WriteString("- \"Clean Code\" by Robert C. Martin\n")
	b.WriteString("- \"Java Concurrency in Practice\" by Brian Goetz\n")
	b.WriteString("- \"Spring in Action\" by Craig Walls\n")
	b.WriteString("- \"Designing Data-Intensive Applications\" by Martin Kleppmann\n\n")

	b.WriteString("### Online Courses\n")
	b.WriteString("- Coursera: \"Java Programming and Software Engineering Fundamentals\"\n")
	b.WriteString("- Udemy: \"Spring & Hibernate for Beginners\"\n")
	b.WriteString("- Pluralsight: \"Java Fundamentals\"\n")
	b.WriteString("- Baeldung: Various Spring tutorials\n\n")

	b.WriteString("### Websites\n")
	b.WriteString("- Baeldung (https://www.baeldung.com/)\n")
	b.WriteString("- DZone (https://dzone.com/)\n")
	b.WriteString("- Stack Overflow (https://stackoverflow.com/)\n")
	b.WriteString("- GitHub (explore open-source Java projects)\n")
	b.WriteString("- Spring.io (https://spring.io/guides)\n\n")

	b.WriteString("## Day Before the Interview\n\n")
	b.WriteString("1. Review this guide one more time, focusing on areas you're less confident about.\n")
	b.WriteString("2. Get a good night's sleep.\n")
	b.WriteString("3. Prepare your environment for a virtual interview or plan your route for an in-person interview.\n")
	b.WriteString("4. Have questions ready to ask the interviewer about the role, team, and company.\n\n")

	b.WriteString("Remember, interviews are also an opportunity for you to evaluate if the company and role are a good fit for you. Good luck!")

	return b.String()
}
