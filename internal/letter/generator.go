// Package letter renders a personalized motivation letter from a match
// result and candidate details. Output is plain text with the customary
// header, subject, body sections and sign-off.
package letter

import (
	"strings"
	"time"
	"unicode"

	"github.com/jonathan/cv-tailor/internal/types"
)

// Skill buckets drive which body paragraphs appear and what they mention.
var (
	programmingLanguages = wordSet("python", "java", "javascript", "typescript", "c++", "c#", "r", "scala", "go")
	frameworks           = wordSet("react", "angular", "vue", "django", "flask", "spring boot", "node.js", "express")
	dataTools            = wordSet("sql", "postgresql", "mongodb", "pandas", "numpy", "spark", "hadoop", "tableau", "power bi")
	cloudDevOps          = wordSet("aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "ci/cd")
	machineLearning      = wordSet("machine learning", "deep learning", "tensorflow", "pytorch", "nlp", "computer vision")
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// Generator renders motivation letters. The zero value is not usable; use
// NewGenerator.
type Generator struct {
	now func() time.Time
}

// NewGenerator returns a Generator stamping letters with the current date.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate renders the letter for the given candidate and position details.
func (g *Generator) Generate(req *types.LetterRequest) string {
	langs := pick(req.MatchedSkills, programmingLanguages)
	fwks := pick(req.MatchedSkills, frameworks)
	data := pick(req.MatchedSkills, dataTools)
	cloud := pick(req.MatchedSkills, cloudDevOps)
	ml := pick(req.MatchedSkills, machineLearning)

	var b strings.Builder

	// Header with contact details and date.
	b.WriteString(req.CandidateName + "\n")
	if req.CandidateAddress != "" {
		b.WriteString(req.CandidateAddress + "\n")
	}
	b.WriteString("Email: " + req.CandidateEmail + "\n")
	if req.CandidatePhone != "" {
		b.WriteString("Mobile: " + req.CandidatePhone + "\n")
	}
	b.WriteString(g.now().Format("January 2, 2006") + "\n\n")

	// Company address block.
	b.WriteString(req.Company + "\n")
	b.WriteString("Hiring Team\n")
	if req.JobTitle != "" {
		b.WriteString(req.JobTitle + "\n")
	}
	b.WriteString("\n")

	subject := "Application for Position"
	if req.JobTitle != "" {
		subject = "Application for " + req.JobTitle
	}
	b.WriteString("Subject: " + subject + "\n\n")

	b.WriteString("Dear " + req.Company + " Team,\n\n")

	// Introduction.
	b.WriteString("My name is " + req.CandidateName)
	if req.Education != "" {
		b.WriteString(", and " + req.Education)
	}
	b.WriteString(". I am writing to express my strong interest in the " + req.JobTitle +
		" position at " + req.Company + ".\n\n")

	b.WriteString(req.Company + "'s mission and commitment to innovation deeply resonate with me. " +
		"I am particularly inspired by your approach to delivering cutting-edge solutions and " +
		"creating meaningful impact in your industry. This philosophy aligns perfectly with my " +
		"passion for leveraging technology to solve real-world problems and drive positive change.\n\n")

	b.WriteString("Why I am a strong fit for this role\n\n")
	b.WriteString("I bring hands-on experience in creating data-driven solutions, building robust applications, " +
		"and delivering projects that combine technical excellence with real business value. ")
	if len(ml) > 0 || len(data) > 0 {
		b.WriteString("Throughout my experience, I have developed and deployed machine learning solutions, " +
			"designed data pipelines, and transformed complex datasets into actionable insights. ")
	}
	if len(fwks) > 0 || len(langs) > 0 {
		b.WriteString("I have built full-stack applications, integrated APIs, and created user-friendly interfaces " +
			"that prioritize both functionality and user experience. ")
	}
	b.WriteString("This experience has taught me how to bridge the gap between technical complexity and practical, " +
		"scalable solutions.\n\n")

	if len(req.MatchedSkills) > 0 {
		b.WriteString("Technical Expertise\n\n")
		if len(langs) > 0 {
			b.WriteString("I am proficient in " + joinWithAnd(langs) + ", enabling me to tackle diverse technical challenges. ")
		}
		if len(fwks) > 0 {
			b.WriteString("I have experience with " + strings.Join(head(fwks, 2), ", ") + " and other modern frameworks, " +
				"allowing me to build scalable and maintainable applications. ")
		}
		if len(data) > 0 {
			b.WriteString("My expertise in " + strings.Join(head(data, 3), ", ") + " helps me design data pipelines, " +
				"perform complex analyses, and create compelling visualizations. ")
		}
		if len(cloud) > 0 {
			b.WriteString("I work with " + strings.Join(head(cloud, 2), ", ") + " to deploy, monitor, and scale applications " +
				"in production environments. ")
		}
		if len(ml) > 0 {
			b.WriteString("My machine learning experience includes " + strings.Join(head(ml, 2), ", ") + ", " +
				"where I've built predictive models and deployed AI-driven features.")
		}
		b.WriteString("\n\n")
	}

	b.WriteString("Beyond technical skills, I bring creativity, initiative, and meticulous attention to detail. " +
		"I work independently, think in solutions, and value quality in everything I deliver. " +
		"My strong communication and organizational abilities enable me to collaborate effectively with " +
		"cross-functional teams and translate complex technical concepts into clear, actionable insights.\n\n")

	if len(req.Responsibilities) > 0 {
		b.WriteString("I am particularly excited about the opportunity to:\n")
		for _, resp := range head(req.Responsibilities, 3) {
			b.WriteString("• " + capitalize(resp) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Why " + req.Company + " and why me?\n\n")
	b.WriteString("I am highly motivated to contribute to " + req.Company + "'s mission because it combines my " +
		"technical expertise with my genuine passion for innovation and continuous learning. " +
		"The opportunity to work on impactful projects, collaborate with talented teams, and grow " +
		"professionally in an environment that values excellence excites me greatly.\n\n")

	b.WriteString("I am eager to learn from your experienced team, contribute meaningfully to real projects, " +
		"and help drive " + req.Company + "'s success through dedication, technical skill, and innovative thinking.\n\n")

	b.WriteString("I would be honored to join " + req.Company + " as a " + req.JobTitle + " and help make a positive impact. ")
	switch {
	case req.PortfolioURL != "" && req.GitHubURL != "":
		b.WriteString("You can explore examples of my work and projects on my portfolio (" + req.PortfolioURL +
			") and GitHub (" + req.GitHubURL + ").")
	case req.PortfolioURL != "":
		b.WriteString("You can explore examples of my work and projects on my portfolio (" + req.PortfolioURL + ").")
	case req.GitHubURL != "":
		b.WriteString("You can explore examples of my work and projects on my GitHub (" + req.GitHubURL + ").")
	}
	b.WriteString("\n\n")

	b.WriteString("Thank you very much for considering my application. I would be delighted to further discuss " +
		"how my skills, creativity, and enthusiasm can support your mission.\n\n")

	b.WriteString("Warm regards,\n\n")
	b.WriteString(req.CandidateName + "\n")
	b.WriteString(req.CandidateEmail)
	if req.CandidatePhone != "" {
		b.WriteString("\n" + req.CandidatePhone)
	}

	return b.String()
}

// pick returns the skills whose lowercase form is in the bucket, preserving
// input order.
func pick(skills []string, bucket map[string]bool) []string {
	var out []string
	for _, s := range skills {
		if bucket[strings.ToLower(s)] {
			out = append(out, s)
		}
	}
	return out
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// joinWithAnd renders "a, b and c" for multi-element lists.
func joinWithAnd(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func capitalize(s string) string {
	if s == "" {
		return "Contribute to innovative projects"
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
